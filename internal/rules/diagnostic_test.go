package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wharflab/jstyle/internal/span"
)

func TestEditShapes(t *testing.T) {
	ins := Insertion(" ", 5)
	assert.True(t, ins.IsInsertion())
	assert.False(t, ins.IsDeletion())

	del := Deletion(span.New(3, 7))
	assert.True(t, del.IsDeletion())
	assert.False(t, del.IsInsertion())

	rep := Replacement("L", span.New(3, 4))
	assert.False(t, rep.IsDeletion())
	assert.False(t, rep.IsInsertion())
}

func TestFixConstructors(t *testing.T) {
	safe := SafeEdit(Insertion(" ", 0))
	assert.Equal(t, ApplicabilitySafe, safe.Applicability)
	assert.Len(t, safe.Edits, 1)

	unsafe := UnsafeEdit(Deletion(span.New(0, 1)))
	assert.Equal(t, ApplicabilityUnsafe, unsafe.Applicability)

	display := DisplayEdit(Insertion("x", 0))
	assert.Equal(t, ApplicabilityDisplay, display.Applicability)

	multi := SafeEdits(Insertion("a", 0), Insertion("b", 2))
	assert.Len(t, multi.Edits, 2)

	isolated := safe.WithIsolation(IsolationWholeFile)
	assert.Equal(t, IsolationWholeFile, isolated.Isolation)
	assert.Equal(t, IsolationNone, safe.Isolation, "original fix unchanged")
}

func TestDiagnosticWithFix(t *testing.T) {
	d := NewDiagnostic("upperEll", "Should use uppercase 'L'.", span.New(9, 13))
	assert.False(t, d.Fixable())

	fixed := d.WithFix(SafeEdit(Replacement("L", span.New(12, 13))))
	assert.True(t, fixed.Fixable())
	assert.False(t, d.Fixable(), "WithFix returns a copy")
}

func TestApplicabilityString(t *testing.T) {
	assert.Equal(t, "safe", ApplicabilitySafe.String())
	assert.Equal(t, "unsafe", ApplicabilityUnsafe.String())
	assert.Equal(t, "display", ApplicabilityDisplay.String())
}
