// Package avoidnestedblocks implements the AvoidNestedBlocks checkstyle
// module: freestanding blocks are usually leftovers of debugging or
// refactoring.
package avoidnestedblocks

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "AvoidNestedBlocks"

var relevantKinds = []string{"block"}

// Rule flags blocks nested directly inside another block or switch case.
//
// Properties:
//   - allowInSwitchCase (default false): a block that is the only statement
//     of a switch case is tolerated (scoping case-local variables).
type Rule struct {
	allowInSwitchCase bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{allowInSwitchCase: props.Bool("allowInSwitchCase", false)}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(_ *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "block" {
		return nil
	}
	parent, ok := node.Parent()
	if !ok {
		return nil
	}

	inSwitchCase := parent.Kind() == "switch_block_statement_group"
	if parent.Kind() != "block" && !inSwitchCase {
		return nil
	}
	if inSwitchCase && r.allowInSwitchCase && statementCount(parent) <= 1 {
		return nil
	}

	return []rules.Diagnostic{rules.NewDiagnostic(
		"blockNested",
		"Avoid nested blocks.",
		openingBrace(node),
	)}
}

// statementCount counts the statements of a switch case group, excluding
// its labels and comments.
func statementCount(group cst.Node) int {
	count := 0
	for _, c := range group.NamedChildren() {
		switch c.Kind() {
		case "switch_label", "line_comment", "block_comment":
		default:
			count++
		}
	}
	return count
}

func openingBrace(block cst.Node) span.Range {
	if open, ok := block.ChildOfKind("{"); ok {
		return open.Range()
	}
	return block.Range()
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
