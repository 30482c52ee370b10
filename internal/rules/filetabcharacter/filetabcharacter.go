// Package filetabcharacter implements the FileTabCharacter checkstyle
// module: no tab characters in the source file.
package filetabcharacter

import (
	"bytes"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "FileTabCharacter"

var relevantKinds = []string{"program"}

// Rule reports tab characters anywhere in the file.
//
// Properties:
//   - eachLine (default false): report every line containing a tab instead
//     of only the first occurrence in the file.
type Rule struct {
	eachLine bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{eachLine: props.Bool("eachLine", false)}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule. The rule anchors on the program root and
// scans the raw lines itself; tabs live in trivia the tree does not expose.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "program" {
		return nil
	}

	sm := ctx.SourceMap()
	var diags []rules.Diagnostic
	for line := 1; line <= sm.LineCount(); line++ {
		start := sm.LineStart(line)
		end := sm.LineEnd(line)
		col := bytes.IndexByte(ctx.Source()[start:end], '\t')
		if col < 0 {
			continue
		}
		at := start + uint32(col)
		diags = append(diags, rules.NewDiagnostic(
			"containsTab",
			"File contains tab characters (this is the first instance).",
			span.New(at, at+1),
		))
		if !r.eachLine {
			break
		}
	}

	if r.eachLine {
		for i := range diags {
			diags[i].Message = "Line contains a tab character."
		}
	}
	return diags
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
