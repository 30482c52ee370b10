// Package methodlength implements the MethodLength checkstyle module.
package methodlength

import (
	"fmt"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "MethodLength"

var relevantKinds = []string{"method_declaration", "constructor_declaration"}

// Rule flags methods and constructors spanning more lines than the limit.
//
// Properties:
//   - max (default 150): the allowed line count, declaration through
//     closing brace inclusive.
//   - countEmpty (default true): when false, blank lines and comment-only
//     lines are not counted.
type Rule struct {
	max        int
	countEmpty bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		max:        props.Int("max", 150),
		countEmpty: props.Bool("countEmpty", true),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "method_declaration", "constructor_declaration":
	default:
		return nil
	}

	sm := ctx.SourceMap()
	startLine := sm.LineOf(node.Range().Start)
	endLine := sm.LineOf(node.Range().End - 1)

	length := endLine - startLine + 1
	if !r.countEmpty {
		for line := startLine; line <= endLine; line++ {
			text := strings.TrimSpace(sm.Line(line))
			if text == "" || strings.HasPrefix(text, "//") {
				length--
			}
		}
	}

	if length <= r.max {
		return nil
	}

	name := "method"
	if n, ok := node.ChildByFieldName("name"); ok {
		name = n.Text()
	}
	return []rules.Diagnostic{rules.NewDiagnostic(
		"maxLen.method",
		fmt.Sprintf("Method %s length is %d lines (max allowed is %d).", name, length, r.max),
		node.Range(),
	)}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
