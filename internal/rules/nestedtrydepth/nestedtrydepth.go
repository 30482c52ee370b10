// Package nestedtrydepth implements the NestedTryDepth checkstyle module.
package nestedtrydepth

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "NestedTryDepth"

var relevantKinds = []string{"try_statement", "try_with_resources_statement"}

// Rule flags try statements nested deeper than the configured limit.
//
// Properties:
//   - max (default 1): the allowed nesting depth.
type Rule struct {
	max int
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{max: props.Int("max", 1)}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "try_statement", "try_with_resources_statement":
	default:
		return nil
	}

	depth := 0
	current, ok := node.Parent()
	for ok {
		switch current.Kind() {
		case "try_statement", "try_with_resources_statement":
			depth++
		}
		current, ok = current.Parent()
	}

	if depth > r.max {
		return []rules.Diagnostic{rules.NewDiagnostic(
			"nestedTryDepth",
			fmt.Sprintf("Nested try depth is %d (max allowed is %d).", depth, r.max),
			node.Range(),
		)}
	}
	return nil
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
