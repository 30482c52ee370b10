// Package fixer turns collected diagnostics into a rewritten source file.
//
// The applier treats edits as opaque byte-range text operations; it never
// consults the syntax tree. Overlapping edits are not merged: when two edits
// touch the same byte, at most one applies and the other is skipped, staying
// reportable on the next run. Repeated parse→check→fix cycles therefore
// converge to a fixed point.
package fixer

import (
	"bytes"
	"sort"

	"github.com/wharflab/jstyle/internal/rules"
)

// Policy selects which fix applicabilities are applied.
type Policy struct {
	// Unsafe additionally applies fixes marked unsafe. Safe fixes always
	// apply; display-only fixes never do.
	Unsafe bool
}

// admits reports whether the policy applies a fix of the given applicability.
func (p Policy) admits(a rules.Applicability) bool {
	switch a {
	case rules.ApplicabilitySafe:
		return true
	case rules.ApplicabilityUnsafe:
		return p.Unsafe
	default:
		return false
	}
}

// Result is the outcome of one fix application pass.
type Result struct {
	// Source is the rewritten file content.
	Source []byte

	// Applied counts the edits written into Source.
	Applied int

	// Skipped counts edits dropped because they overlapped an earlier
	// retained edit. Skipped violations remain reportable on the next run.
	Skipped int
}

// Changed reports whether any edit was applied.
func (r Result) Changed() bool {
	return r.Applied > 0
}

// sequencedEdit pairs an edit with its stable collection index for
// deterministic tie-breaking.
type sequencedEdit struct {
	rules.Edit
	seq int
}

// Apply rewrites source with every eligible edit from the diagnostics.
//
// Edits are sorted ascending by start offset, ties broken by longer range
// first and then by stable collection order. A single whole-file isolation
// fix, when present and eligible, pre-empts all other fixes in the pass.
func Apply(source []byte, diags []rules.Diagnostic, policy Policy) Result {
	edits := collect(diags, policy)
	if len(edits) == 0 {
		return Result{Source: source}
	}

	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Range.Start != edits[j].Range.Start {
			return edits[i].Range.Start < edits[j].Range.Start
		}
		if edits[i].Range.Len() != edits[j].Range.Len() {
			return edits[i].Range.Len() > edits[j].Range.Len()
		}
		return edits[i].seq < edits[j].seq
	})

	var out bytes.Buffer
	out.Grow(len(source) + len(source)/8)

	result := Result{}
	cursor := uint32(0)
	for _, edit := range edits {
		if edit.Range.Start < cursor {
			// Overlaps an already-applied edit. Drop it; the violation
			// stays reportable and the next pass picks it up.
			result.Skipped++
			continue
		}
		out.Write(source[cursor:edit.Range.Start])
		out.WriteString(edit.Replacement)
		cursor = edit.Range.End
		result.Applied++
	}
	out.Write(source[cursor:])

	result.Source = out.Bytes()
	return result
}

// collect gathers the edits of every policy-admitted fix. A whole-file
// isolation fix pre-empts the rest before selection.
func collect(diags []rules.Diagnostic, policy Policy) []sequencedEdit {
	for _, d := range diags {
		if d.Fix == nil || !policy.admits(d.Fix.Applicability) {
			continue
		}
		if d.Fix.Isolation == rules.IsolationWholeFile {
			edits := make([]sequencedEdit, 0, len(d.Fix.Edits))
			for i, e := range d.Fix.Edits {
				edits = append(edits, sequencedEdit{Edit: e, seq: i})
			}
			return edits
		}
	}

	var edits []sequencedEdit
	seq := 0
	for _, d := range diags {
		if d.Fix == nil || !policy.admits(d.Fix.Applicability) {
			continue
		}
		for _, e := range d.Fix.Edits {
			edits = append(edits, sequencedEdit{Edit: e, seq: seq})
			seq++
		}
	}
	return edits
}
