package rules

import (
	"github.com/wharflab/jstyle/internal/span"
)

// Applicability categorizes how reliable a fix is.
type Applicability int

const (
	// ApplicabilitySafe means the fix preserves behavior and compilability.
	// Safe fixes are applied in default fix mode without opt-in.
	ApplicabilitySafe Applicability = iota

	// ApplicabilityUnsafe means the fix may change behavior in edge cases.
	// Unsafe fixes require the unsafe-fixes setting to apply.
	ApplicabilityUnsafe

	// ApplicabilityDisplay means the fix is never applied, only shown.
	ApplicabilityDisplay
)

// String returns the string representation of an Applicability.
func (a Applicability) String() string {
	switch a {
	case ApplicabilitySafe:
		return "safe"
	case ApplicabilityUnsafe:
		return "unsafe"
	case ApplicabilityDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// IsolationLevel controls how conflicting fixes are grouped by the applier.
type IsolationLevel int

const (
	// IsolationNone lets the edit compete byte-by-byte with all others.
	IsolationNone IsolationLevel = iota

	// IsolationGroup marks a fix whose edits belong together. The applier
	// treats it like IsolationNone: each edit competes on its own.
	IsolationGroup

	// IsolationWholeFile marks a fix that rewrites so much of the file that
	// it pre-empts every other fix in the same pass.
	IsolationWholeFile
)

// Edit is a contiguous replacement of one byte range by a (possibly empty)
// replacement string. Edits reference only byte offsets into the original
// source; they never depend on the syntax tree.
type Edit struct {
	// Range is the replaced byte range. A zero-length range is an insertion.
	Range span.Range `json:"range"`

	// Replacement is the text to insert. Empty means deletion.
	Replacement string `json:"replacement"`
}

// Insertion creates an edit that inserts text at an offset.
func Insertion(text string, at uint32) Edit {
	return Edit{Range: span.At(at), Replacement: text}
}

// Deletion creates an edit that removes a byte range.
func Deletion(r span.Range) Edit {
	return Edit{Range: r}
}

// Replacement creates an edit that replaces a byte range with text.
func Replacement(text string, r span.Range) Edit {
	return Edit{Range: r, Replacement: text}
}

// IsInsertion reports whether the edit inserts without removing anything.
func (e Edit) IsInsertion() bool {
	return e.Range.Empty()
}

// IsDeletion reports whether the edit removes without inserting anything.
func (e Edit) IsDeletion() bool {
	return !e.Range.Empty() && e.Replacement == ""
}

// Fix bundles one or more edits under a single applicability. All edits of a
// fix share its applicability. The applier places each edit on its own, so
// a composite fix that touches several places may be applied only in part
// when some of its edits overlap other fixes.
type Fix struct {
	Edits         []Edit         `json:"edits"`
	Applicability Applicability  `json:"applicability"`
	Isolation     IsolationLevel `json:"isolation,omitzero"`
}

// SafeEdit creates a safe single-edit fix.
func SafeEdit(edit Edit) *Fix {
	return &Fix{Edits: []Edit{edit}, Applicability: ApplicabilitySafe}
}

// SafeEdits creates a safe multi-edit fix.
func SafeEdits(edits ...Edit) *Fix {
	return &Fix{Edits: edits, Applicability: ApplicabilitySafe}
}

// UnsafeEdit creates an unsafe single-edit fix.
func UnsafeEdit(edit Edit) *Fix {
	return &Fix{Edits: []Edit{edit}, Applicability: ApplicabilityUnsafe}
}

// DisplayEdit creates a display-only single-edit fix.
func DisplayEdit(edit Edit) *Fix {
	return &Fix{Edits: []Edit{edit}, Applicability: ApplicabilityDisplay}
}

// WithIsolation returns a copy of the fix with the given isolation level.
func (f *Fix) WithIsolation(level IsolationLevel) *Fix {
	clone := *f
	clone.Isolation = level
	return &clone
}

// Diagnostic is a located, described observation produced by a rule.
// Diagnostics are immutable once emitted; the runner stamps Rule with the
// producing rule's module name at emission.
type Diagnostic struct {
	// Rule is the module name of the producing rule (e.g. "WhitespaceAround").
	Rule string `json:"rule"`

	// Kind is the violation tag, distinct per message shape within a rule
	// (e.g. "ws.notPreceded").
	Kind string `json:"kind"`

	// Message is the rendered human-readable message.
	Message string `json:"message"`

	// Range is the violating byte range in the source file.
	Range span.Range `json:"range"`

	// Fix optionally carries a machine-applicable repair.
	Fix *Fix `json:"fix,omitempty"`
}

// NewDiagnostic creates a fixless diagnostic.
func NewDiagnostic(kind, message string, r span.Range) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, Range: r}
}

// WithFix returns a copy of the diagnostic with the fix attached.
func (d Diagnostic) WithFix(fix *Fix) Diagnostic {
	d.Fix = fix
	return d
}

// Fixable reports whether the diagnostic carries any fix at all.
func (d Diagnostic) Fixable() bool {
	return d.Fix != nil
}
