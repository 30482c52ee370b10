// Package staticvariablename implements the StaticVariableName checkstyle
// module: static, non-final field names.
package staticvariablename

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "StaticVariableName"

const defaultFormat = "^[a-z][a-zA-Z0-9]*$"

var relevantKinds = []string{"field_declaration"}

// Rule checks static non-final field names against a pattern.
//
// Properties: format, applyToPublic/Protected/Package/Private.
type Rule struct {
	format nameutil.Format
	access nameutil.AccessFilter
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		format: nameutil.FormatProperty(props, defaultFormat),
		access: nameutil.AccessProperty(props),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "field_declaration" {
		return nil
	}
	isStatic, isFinal := nameutil.FieldClass(node)
	if !isStatic || isFinal {
		return nil
	}
	if !r.access.Applies(node) {
		return nil
	}

	var diags []rules.Diagnostic
	for _, name := range nameutil.DeclaratorNames(node) {
		if !r.format.Pattern.MatchString(name.Text()) {
			diags = append(diags, rules.NewDiagnostic(
				"nameInvalidPattern", r.format.Message(name.Text()), name.Range(),
			))
		}
	}
	return diags
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
