// Package methodname implements the MethodName checkstyle module.
package methodname

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "MethodName"

// defaultFormat is lowerCamelCase.
const defaultFormat = "^[a-z][a-zA-Z0-9]*$"

var relevantKinds = []string{"method_declaration"}

// Rule checks method names against a pattern and flags methods named after
// their enclosing class. Overridden methods (@Override) are exempt: their
// names are fixed elsewhere.
//
// Properties: format, allowClassName (default false), and
// applyToPublic/Protected/Package/Private (default true).
type Rule struct {
	format         nameutil.Format
	allowClassName bool
	access         nameutil.AccessFilter
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		format:         nameutil.FormatProperty(props, defaultFormat),
		allowClassName: props.Bool("allowClassName", false),
		access:         nameutil.AccessProperty(props),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "method_declaration" {
		return nil
	}
	name, ok := node.ChildByFieldName("name")
	if !ok {
		return nil
	}
	if nameutil.HasAnnotation(node, "Override") {
		return nil
	}
	if !r.access.Applies(node) {
		return nil
	}

	var diags []rules.Diagnostic
	if !r.format.Pattern.MatchString(name.Text()) {
		diags = append(diags, rules.NewDiagnostic(
			"nameInvalidPattern", r.format.Message(name.Text()), name.Range(),
		))
	}
	if !r.allowClassName {
		if class, ok := nameutil.EnclosingTypeName(node); ok && class == name.Text() {
			diags = append(diags, rules.NewDiagnostic(
				"methodNameEqualsClassName",
				fmt.Sprintf("Method name '%s' must not equal the enclosing class name.", name.Text()),
				name.Range(),
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
