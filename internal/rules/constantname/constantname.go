// Package constantname implements the ConstantName checkstyle module:
// static final field names.
package constantname

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "ConstantName"

// defaultFormat is SCREAMING_SNAKE_CASE.
const defaultFormat = "^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$"

var relevantKinds = []string{"field_declaration", "constant_declaration"}

// Rule checks static final field names against a pattern.
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

// Check implements rules.Rule. Interface fields are implicitly static
// final constants.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if k := node.Kind(); k != "field_declaration" && k != "constant_declaration" {
		return nil
	}
	isStatic, isFinal := nameutil.FieldClass(node)
	if nameutil.InInterface(node) {
		isStatic, isFinal = true, true
	}
	if !isStatic || !isFinal {
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
