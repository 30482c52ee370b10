// Package stringliteralequality implements the StringLiteralEquality
// checkstyle module: string literals are compared with equals(), not == or
// !=.
package stringliteralequality

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "StringLiteralEquality"

var relevantKinds = []string{"binary_expression"}

// Rule flags identity comparison with a string operand. The rewrite to
// equals() is unsafe: reference comparison of interned strings is rarely
// intended but occasionally deliberate, and the rewrite flips null
// semantics.
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
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "binary_expression" {
		return nil
	}
	operator, ok := node.ChildByFieldName("operator")
	if !ok {
		return nil
	}
	opText := operator.Text()
	if opText != "==" && opText != "!=" {
		return nil
	}

	left, okLeft := node.ChildByFieldName("left")
	right, okRight := node.ChildByFieldName("right")
	if !okLeft || !okRight {
		return nil
	}
	if !isStringExpression(left) && !isStringExpression(right) {
		return nil
	}

	diag := rules.NewDiagnostic(
		"stringEquality",
		"Literal Strings should be compared using equals(), not '=='.",
		operator.Range(),
	)

	// Rewrite only when one side is a plain literal; concatenations need
	// more than a mechanical transform.
	if left.Kind() == "string_literal" || right.Kind() == "string_literal" {
		literal, other := left.Text(), right.Text()
		if left.Kind() != "string_literal" {
			literal, other = right.Text(), left.Text()
		}
		replacement := fmt.Sprintf("%s.equals(%s)", literal, other)
		if opText == "!=" {
			replacement = "!" + replacement
		}
		diag = diag.WithFix(rules.UnsafeEdit(rules.Replacement(replacement, node.Range())))
	}
	return []rules.Diagnostic{diag}
}

// isStringExpression reports whether the expression is a string literal, a
// concatenation involving one, or a parenthesized form of either.
func isStringExpression(node cst.Node) bool {
	switch node.Kind() {
	case "string_literal":
		return true
	case "binary_expression":
		operator, ok := node.ChildByFieldName("operator")
		if !ok || operator.Text() != "+" {
			return false
		}
		left, okLeft := node.ChildByFieldName("left")
		right, okRight := node.ChildByFieldName("right")
		return okLeft && isStringExpression(left) || okRight && isStringExpression(right)
	case "parenthesized_expression":
		for _, c := range node.NamedChildren() {
			return isStringExpression(c)
		}
		return false
	default:
		return false
	}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
