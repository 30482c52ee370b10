// Package localvariablename implements the LocalVariableName checkstyle
// module.
package localvariablename

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/nameutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "LocalVariableName"

const defaultFormat = "^[a-z][a-zA-Z0-9]*$"

var relevantKinds = []string{"local_variable_declaration"}

// Rule checks non-final local variable names against a pattern. Final
// locals belong to the LocalFinalVariableName module and are skipped.
//
// Properties:
//   - format (default "^[a-z][a-zA-Z0-9]*$")
//   - allowOneCharVarInForLoop (default false): single-letter loop
//     counters are tolerated regardless of format.
type Rule struct {
	format            nameutil.Format
	allowOneCharInFor bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		format:            nameutil.FormatProperty(props, defaultFormat),
		allowOneCharInFor: props.Bool("allowOneCharVarInForLoop", false),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "local_variable_declaration" {
		return nil
	}
	if _, isFinal := nameutil.FieldClass(node); isFinal {
		return nil
	}

	inFor := false
	if parent, ok := node.Parent(); ok && parent.Kind() == "for_statement" {
		inFor = true
	}

	var diags []rules.Diagnostic
	for _, name := range nameutil.DeclaratorNames(node) {
		text := name.Text()
		if r.allowOneCharInFor && inFor && len(text) == 1 {
			continue
		}
		if !r.format.Pattern.MatchString(text) {
			diags = append(diags, rules.NewDiagnostic(
				"nameInvalidPattern", r.format.Message(text), name.Range(),
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
