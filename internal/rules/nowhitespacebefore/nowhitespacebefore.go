// Package nowhitespacebefore implements the NoWhitespaceBefore checkstyle
// module: selected tokens must not be preceded by whitespace.
package nowhitespacebefore

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "NoWhitespaceBefore"

var relevantKinds = []string{",", ";", "update_expression"}

// Rule checks that commas, semicolons, and postfix increment/decrement
// operators are not preceded by whitespace.
//
// Properties:
//   - allowLineBreaks (default false): a token at the start of a line is
//     not flagged.
type Rule struct {
	allowLineBreaks bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{allowLineBreaks: props.Bool("allowLineBreaks", false)}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case ",", ";":
		return r.checkToken(ctx, node)
	case "update_expression":
		// Postfix only: the operand comes first.
		children := node.Children()
		if len(children) == 2 && children[0].IsNamed() {
			op := children[1]
			if op.Kind() == "++" || op.Kind() == "--" {
				return r.checkToken(ctx, op)
			}
		}
	}
	return nil
}

func (r *Rule) checkToken(ctx *rules.Context, token cst.Node) []rules.Diagnostic {
	start := token.Range().Start
	if start == 0 {
		return nil
	}
	source := ctx.Source()

	// Find the run of whitespace immediately before the token.
	gapStart := start
	sawNewline := false
	for gapStart > 0 {
		switch source[gapStart-1] {
		case ' ', '\t':
			gapStart--
		case '\n', '\r':
			sawNewline = true
			gapStart--
		default:
			goto done
		}
	}
done:
	if gapStart == start {
		return nil
	}
	if sawNewline && r.allowLineBreaks {
		return nil
	}

	return []rules.Diagnostic{
		rules.NewDiagnostic(
			"ws.preceded",
			fmt.Sprintf("'%s' is preceded with whitespace.", token.Text()),
			token.Range(),
		).WithFix(rules.SafeEdit(rules.Deletion(span.New(gapStart, start)))),
	}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
