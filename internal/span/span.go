// Package span provides byte-offset text ranges over UTF-8 source.
//
// Offsets are uint32 indexes into the source bytes. Ranges are half-open:
// Start is inclusive, End is exclusive. All rule diagnostics and fix edits
// are expressed in these terms so that fix application never needs to
// consult the syntax tree.
package span

import "fmt"

// Range is a half-open byte range [Start, End) into a source file.
type Range struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// New creates a range. Panics if end < start; ranges are constructed from
// parser positions and violating this invariant is always a programming error.
func New(start, end uint32) Range {
	if end < start {
		panic(fmt.Sprintf("span: invalid range [%d, %d)", start, end))
	}
	return Range{Start: start, End: end}
}

// At creates an empty range anchored at a single offset.
func At(offset uint32) Range {
	return Range{Start: offset, End: offset}
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() uint32 {
	return r.End - r.Start
}

// Empty reports whether the range covers zero bytes.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether the offset falls inside the range.
func (r Range) Contains(offset uint32) bool {
	return offset >= r.Start && offset < r.End
}

// Intersects reports whether two ranges share at least one byte.
// Two empty ranges at the same offset do not intersect.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// In slices the covered bytes out of source. The range must be within
// the source's byte length.
func (r Range) In(source []byte) []byte {
	return source[r.Start:r.End]
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
