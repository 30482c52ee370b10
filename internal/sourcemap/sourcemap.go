// Package sourcemap provides line-indexed access to Java source code.
//
// A SourceMap pairs the raw source with a precomputed line index (the byte
// offset at which every line begins) so that rules and reporters can convert
// byte offsets to 1-based line/column positions without rescanning the file.
//
// The index is derived purely from the source bytes; it is safe to share
// between rules for the duration of a file's run and is invalidated the
// moment the source changes (fix application builds a fresh one).
package sourcemap

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/wharflab/jstyle/internal/span"
)

// Position is a 1-based line/column location in a source file.
// Column counts Unicode scalar values from the line start, not bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceMap provides efficient line-based access to source code.
type SourceMap struct {
	// source is the raw source content.
	source []byte

	// lineOffsets[i] is the byte offset where line i+1 starts.
	// lineOffsets[0] is always 0; subsequent entries are the offsets
	// immediately after each newline byte.
	lineOffsets []uint32
}

// New builds a SourceMap by scanning the source once.
func New(source []byte) *SourceMap {
	offsets := make([]uint32, 1, 16)
	offsets[0] = 0
	for i, b := range source {
		if b == '\n' {
			offsets = append(offsets, uint32(i+1))
		}
	}
	return &SourceMap{source: source, lineOffsets: offsets}
}

// Source returns the raw source content. The returned slice must not be
// modified.
func (sm *SourceMap) Source() []byte {
	return sm.source
}

// Text returns the source bytes covered by a range as a string.
func (sm *SourceMap) Text(r span.Range) string {
	return string(r.In(sm.source))
}

// LineCount returns the total number of lines. A trailing newline starts a
// final empty line, matching how editors count.
func (sm *SourceMap) LineCount() int {
	return len(sm.lineOffsets)
}

// LineOf returns the 1-based line containing the byte offset.
func (sm *SourceMap) LineOf(offset uint32) int {
	// First index whose line start is past the offset; the offset's line is
	// the one before it.
	i := sort.Search(len(sm.lineOffsets), func(i int) bool {
		return sm.lineOffsets[i] > offset
	})
	return i
}

// LineStart returns the byte offset at which the 1-based line begins.
// Out-of-range lines are clamped.
func (sm *SourceMap) LineStart(line int) uint32 {
	if line < 1 {
		line = 1
	}
	if line > len(sm.lineOffsets) {
		line = len(sm.lineOffsets)
	}
	return sm.lineOffsets[line-1]
}

// LineEnd returns the byte offset just past the last content byte of the
// 1-based line, excluding the terminating newline (and any preceding '\r').
func (sm *SourceMap) LineEnd(line int) uint32 {
	if line < 1 {
		line = 1
	}
	var end uint32
	if line >= len(sm.lineOffsets) {
		end = uint32(len(sm.source))
	} else {
		end = sm.lineOffsets[line] - 1 // strip '\n'
	}
	if end > 0 && end > sm.LineStart(line) && sm.source[end-1] == '\r' {
		end--
	}
	return end
}

// Line returns the text of a 1-based line without its line ending.
func (sm *SourceMap) Line(line int) string {
	if line < 1 || line > len(sm.lineOffsets) {
		return ""
	}
	return string(sm.source[sm.LineStart(line):sm.LineEnd(line)])
}

// Lines returns all lines without line endings.
func (sm *SourceMap) Lines() []string {
	lines := make([]string, len(sm.lineOffsets))
	for i := range sm.lineOffsets {
		lines[i] = sm.Line(i + 1)
	}
	return lines
}

// PositionFor converts a byte offset to a 1-based line/column position.
func (sm *SourceMap) PositionFor(offset uint32) Position {
	if offset > uint32(len(sm.source)) {
		offset = uint32(len(sm.source))
	}
	line := sm.LineOf(offset)
	start := sm.LineStart(line)
	col := 1 + utf8.RuneCount(sm.source[start:offset])
	return Position{Line: line, Column: col}
}

// OffsetFor converts a 1-based line/column position back to a byte offset.
// It is the inverse of PositionFor for any position produced by it.
func (sm *SourceMap) OffsetFor(pos Position) uint32 {
	offset := sm.LineStart(pos.Line)
	rest := sm.source[offset:]
	for col := 1; col < pos.Column && len(rest) > 0; col++ {
		_, size := utf8.DecodeRune(rest)
		rest = rest[size:]
		offset += uint32(size)
	}
	return offset
}

// Snippet extracts an inclusive range of 1-based lines joined by newlines.
func (sm *SourceMap) Snippet(startLine, endLine int) string {
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(sm.lineOffsets) {
		endLine = len(sm.lineOffsets)
	}
	if startLine > endLine {
		return ""
	}
	parts := make([]string, 0, endLine-startLine+1)
	for line := startLine; line <= endLine; line++ {
		parts = append(parts, sm.Line(line))
	}
	return strings.Join(parts, "\n")
}
