// Package emptyblock implements the EmptyBlock checkstyle module.
package emptyblock

import (
	"fmt"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "EmptyBlock"

var relevantKinds = []string{
	"while_statement",
	"try_statement",
	"finally",
	"do_statement",
	"if_statement",
	"for_statement",
	"enhanced_for_statement",
	"switch_expression",
	"synchronized_statement",
	"static_initializer",
	"block",
	"switch_block_statement_group",
	"switch_rule",
}

// Option selects what makes a block non-empty.
type Option int

const (
	// OptionStatement requires at least one statement; comments are not
	// content.
	OptionStatement Option = iota
	// OptionText requires any non-whitespace text between the braces;
	// comments are content.
	OptionText
)

// Rule flags empty blocks of statements and initializers. Catch blocks are
// the EmptyCatchBlock module's territory and are not checked here.
//
// Properties:
//   - option: "statement" (default) or "text".
type Rule struct {
	option Option
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	option := OptionStatement
	if strings.EqualFold(strings.TrimSpace(props.String("option", "statement")), "text") {
		option = OptionText
	}
	return &Rule{option: option}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	blockType, ok := blockTypeName(node)
	if !ok {
		return nil
	}
	block, ok := associatedBlock(node)
	if !ok {
		return nil
	}

	if r.option == OptionStatement {
		if !hasStatement(block) {
			return []rules.Diagnostic{rules.NewDiagnostic(
				"blockNoStatement",
				"Must have at least one statement.",
				block.Range(),
			)}
		}
		return nil
	}

	if !hasText(ctx, block) {
		return []rules.Diagnostic{rules.NewDiagnostic(
			"blockEmpty",
			fmt.Sprintf("Empty %s block.", blockType),
			block.Range(),
		)}
	}
	return nil
}

// blockTypeName maps a node kind to the construct name used in messages.
func blockTypeName(node cst.Node) (string, bool) {
	switch node.Kind() {
	case "while_statement":
		return "while", true
	case "try_statement":
		return "try", true
	case "finally":
		return "finally", true
	case "do_statement":
		return "do", true
	case "if_statement":
		return "if", true
	case "for_statement", "enhanced_for_statement":
		return "for", true
	case "switch_expression":
		return "switch", true
	case "synchronized_statement":
		return "synchronized", true
	case "static_initializer":
		return "STATIC_INIT", true
	case "block":
		// Instance initializer: a block directly inside a class body.
		if parent, ok := node.Parent(); ok && parent.Kind() == "class_body" {
			return "INSTANCE_INIT", true
		}
		return "", false
	case "switch_block_statement_group", "switch_rule":
		if isDefaultGroup(node) {
			return "default", true
		}
		return "case", true
	default:
		return "", false
	}
}

func isDefaultGroup(node cst.Node) bool {
	for _, c := range node.Children() {
		if c.Kind() == "switch_label" {
			if _, ok := c.ChildOfKind("default"); ok {
				return true
			}
		}
	}
	return false
}

// associatedBlock finds the block a construct owns, when it has one.
func associatedBlock(node cst.Node) (cst.Node, bool) {
	switch node.Kind() {
	case "while_statement", "do_statement", "for_statement", "enhanced_for_statement",
		"synchronized_statement":
		body, ok := node.ChildByFieldName("body")
		if ok && body.Kind() == "block" {
			return body, true
		}
		return cst.Node{}, false
	case "if_statement":
		body, ok := node.ChildByFieldName("consequence")
		if ok && body.Kind() == "block" {
			return body, true
		}
		return cst.Node{}, false
	case "try_statement":
		return node.ChildByFieldName("body")
	case "finally":
		// The "finally" keyword; its block is the next named sibling.
		sib, ok := node.NextNamedSibling()
		if ok && sib.Kind() == "block" {
			return sib, true
		}
		return cst.Node{}, false
	case "static_initializer":
		return node.ChildOfKind("block")
	case "block":
		return node, true
	case "switch_expression":
		return node.ChildByFieldName("body")
	case "switch_block_statement_group", "switch_rule":
		return node.ChildOfKind("block")
	default:
		return cst.Node{}, false
	}
}

// hasStatement reports whether the block has any child beyond braces,
// comments, and error recovery nodes.
func hasStatement(block cst.Node) bool {
	if block.Kind() == "switch_block" {
		for _, c := range block.Children() {
			if c.Kind() == "switch_block_statement_group" || c.Kind() == "switch_rule" {
				return true
			}
		}
		return false
	}
	for _, c := range block.Children() {
		switch c.Kind() {
		case "{", "}", "line_comment", "block_comment", "ERROR":
		default:
			return true
		}
	}
	return false
}

// hasText reports whether anything but whitespace sits between the braces.
func hasText(ctx *rules.Context, block cst.Node) bool {
	open, hasOpen := block.ChildOfKind("{")
	closing, hasClose := block.ChildOfKind("}")
	if !hasOpen || !hasClose {
		return true
	}
	interior := ctx.SourceMap().Text(span.New(open.Range().End, closing.Range().Start))
	return strings.TrimSpace(interior) != ""
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
