// Package typename implements the TypeName checkstyle module.
package typename

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "TypeName"

// defaultFormat is UpperCamelCase.
const defaultFormat = "^[A-Z][a-zA-Z0-9]*$"

var relevantKinds = []string{
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
}

// Rule checks type names against a pattern.
//
// Properties: format (default "^[A-Z][a-zA-Z0-9]*$"), plus
// applyToPublic/Protected/Package/Private (default true).
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
	switch node.Kind() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
	default:
		return nil
	}
	if !r.access.Applies(node) {
		return nil
	}
	name, ok := node.ChildByFieldName("name")
	if !ok || r.format.Pattern.MatchString(name.Text()) {
		return nil
	}
	return []rules.Diagnostic{rules.NewDiagnostic(
		"nameInvalidPattern", r.format.Message(name.Text()), name.Range(),
	)}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
