// Package parametername implements the ParameterName checkstyle module.
package parametername

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "ParameterName"

const defaultFormat = "^[a-z][a-zA-Z0-9]*$"

var relevantKinds = []string{"formal_parameter", "spread_parameter"}

// Rule checks method and constructor parameter names against a pattern.
//
// Properties:
//   - format (default "^[a-z][a-zA-Z0-9]*$")
//   - ignoreOverridden (default false): parameters of @Override methods
//     are exempt; their names mirror the supertype.
type Rule struct {
	format           nameutil.Format
	ignoreOverridden bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		format:           nameutil.FormatProperty(props, defaultFormat),
		ignoreOverridden: props.Bool("ignoreOverridden", false),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "formal_parameter", "spread_parameter":
	default:
		return nil
	}

	name, ok := node.ChildByFieldName("name")
	if !ok {
		// Spread parameters expose the declarator without a field name.
		for _, c := range node.NamedChildren() {
			if c.Kind() == "variable_declarator" {
				if n, ok := c.ChildByFieldName("name"); ok {
					name = n
					break
				}
			}
			if c.Kind() == "identifier" {
				name = c
				break
			}
		}
		if name.IsZero() {
			return nil
		}
	}

	if r.ignoreOverridden && r.inOverriddenMethod(node) {
		return nil
	}
	if r.format.Pattern.MatchString(name.Text()) {
		return nil
	}
	return []rules.Diagnostic{rules.NewDiagnostic(
		"nameInvalidPattern", r.format.Message(name.Text()), name.Range(),
	)}
}

func (r *Rule) inOverriddenMethod(param cst.Node) bool {
	current, ok := param.Parent()
	for ok {
		if current.Kind() == "method_declaration" {
			return nameutil.HasAnnotation(current, "Override")
		}
		current, ok = current.Parent()
	}
	return false
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
