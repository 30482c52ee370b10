// Package missingswitchdefault implements the MissingSwitchDefault
// checkstyle module.
package missingswitchdefault

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "MissingSwitchDefault"

var relevantKinds = []string{"switch_expression"}

// Rule flags switch constructs without a default clause. The module has no
// properties and no fix; the correct default body is the author's call.
type Rule struct{}

// New constructs the rule.
func New(rules.Properties) *Rule {
	return &Rule{}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule. The grammar parses both switch statements
// and switch expressions as switch_expression.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "switch_expression" {
		return nil
	}
	body, ok := node.ChildByFieldName("body")
	if !ok || hasDefault(body) {
		return nil
	}
	return []rules.Diagnostic{rules.NewDiagnostic(
		"missingSwitchDefault",
		`switch without "default" clause.`,
		node.Range(),
	)}
}

func hasDefault(switchBlock cst.Node) bool {
	for _, group := range switchBlock.Children() {
		switch group.Kind() {
		case "switch_block_statement_group", "switch_rule":
			for _, label := range group.Children() {
				if label.Kind() != "switch_label" {
					continue
				}
				if _, ok := label.ChildOfKind("default"); ok {
					return true
				}
			}
		}
	}
	return false
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
