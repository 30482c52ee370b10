// Package emptystatement implements the EmptyStatement checkstyle module:
// stray semicolons and empty loop/if bodies.
package emptystatement

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "EmptyStatement"

var relevantKinds = []string{
	"if_statement",
	"while_statement",
	"for_statement",
	"enhanced_for_statement",
	"do_statement",
	";",
}

// Rule flags empty statements. The module has no properties.
//
// The deletion fix is deliberately unsafe: removing the ';' body of a loop
// turns the following statement into the loop body and changes semantics.
type Rule struct{}

// New constructs the rule.
func New(rules.Properties) *Rule {
	return &Rule{}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "if_statement":
		var diags []rules.Diagnostic
		if c, ok := node.ChildByFieldName("consequence"); ok && c.Kind() == ";" {
			diags = append(diags, violation(c))
		}
		if a, ok := node.ChildByFieldName("alternative"); ok && a.Kind() == ";" {
			diags = append(diags, violation(a))
		}
		return diags

	case "while_statement", "for_statement", "enhanced_for_statement", "do_statement":
		if body, ok := node.ChildByFieldName("body"); ok && body.Kind() == ";" {
			return []rules.Diagnostic{violation(body)}
		}
		return nil

	case ";":
		parent, ok := node.Parent()
		if !ok {
			return nil
		}
		switch parent.Kind() {
		case "block", "constructor_body", "program", "switch_block_statement_group":
			return []rules.Diagnostic{violation(node)}
		}
		return nil

	default:
		return nil
	}
}

func violation(semi cst.Node) rules.Diagnostic {
	return rules.NewDiagnostic("emptyStatement", "Empty statement.", semi.Range()).
		WithFix(rules.UnsafeEdit(rules.Deletion(semi.Range())))
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
