// Package upperell implements the UpperEll checkstyle module: long literals
// use an uppercase 'L' suffix, because the lowercase 'l' reads like '1'.
package upperell

import (
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "UpperEll"

var relevantKinds = []string{
	"decimal_integer_literal",
	"hex_integer_literal",
	"octal_integer_literal",
	"binary_integer_literal",
}

// Rule flags integer literals with a lowercase 'l' suffix. The module has
// no properties.
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
	case "decimal_integer_literal", "hex_integer_literal",
		"octal_integer_literal", "binary_integer_literal":
	default:
		return nil
	}
	if !strings.HasSuffix(node.Text(), "l") {
		return nil
	}

	r2 := node.Range()
	suffix := span.New(r2.End-1, r2.End)
	return []rules.Diagnostic{
		rules.NewDiagnostic("upperEll", "Should use uppercase 'L'.", r2).
			WithFix(rules.SafeEdit(rules.Replacement("L", suffix))),
	}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
