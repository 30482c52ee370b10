// Package needbraces implements the NeedBraces checkstyle module: code
// blocks of control constructs must use braces.
package needbraces

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "NeedBraces"

var relevantKinds = []string{
	"if_statement",
	"while_statement",
	"do_statement",
	"for_statement",
	"enhanced_for_statement",
}

// Rule flags non-block bodies of if/else/while/do/for.
//
// Properties:
//   - allowSingleLineStatement (default false): constructs confined to one
//     source line are tolerated.
//   - allowEmptyLoopBody (default false): a bare ';' loop body is tolerated.
//
// No fix is emitted: wrapping an arbitrary statement in braces moves
// following tokens and interacts with comment placement, so the repair is
// left to the author.
type Rule struct {
	allowSingleLineStatement bool
	allowEmptyLoopBody       bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		allowSingleLineStatement: props.Bool("allowSingleLineStatement", false),
		allowEmptyLoopBody:       props.Bool("allowEmptyLoopBody", false),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "if_statement":
		return r.checkIf(ctx, node)
	case "while_statement":
		return r.checkLoop(ctx, node, "while")
	case "do_statement":
		return r.checkDo(ctx, node)
	case "for_statement", "enhanced_for_statement":
		return r.checkLoop(ctx, node, "for")
	default:
		return nil
	}
}

func (r *Rule) checkIf(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	var diags []rules.Diagnostic

	if consequence, ok := node.ChildByFieldName("consequence"); ok &&
		consequence.Kind() != "block" &&
		!r.skipSingleLine(ctx, node, consequence) {
		diags = append(diags, violation("if", node))
	}

	if alternative, ok := node.ChildByFieldName("alternative"); ok &&
		alternative.Kind() != "block" &&
		alternative.Kind() != "if_statement" { // else-if chains are fine
		if elseKw, ok := node.ChildOfKind("else"); ok &&
			!r.skipSingleLineElse(ctx, elseKw, alternative) {
			diags = append(diags, violation("else", elseKw))
		}
	}
	return diags
}

func (r *Rule) checkLoop(ctx *rules.Context, node cst.Node, construct string) []rules.Diagnostic {
	body, ok := node.ChildByFieldName("body")
	if !ok || body.Kind() == "block" {
		return nil
	}
	if r.allowEmptyLoopBody && body.Kind() == ";" {
		return nil
	}
	if r.skipSingleLine(ctx, node, body) {
		return nil
	}
	return []rules.Diagnostic{violation(construct, node)}
}

func (r *Rule) checkDo(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	body, ok := node.ChildByFieldName("body")
	if !ok || body.Kind() == "block" {
		return nil
	}
	if r.allowSingleLineStatement && inStatementList(node) && onOneLine(ctx, node) {
		return nil
	}
	return []rules.Diagnostic{violation("do", node)}
}

// skipSingleLine implements allowSingleLineStatement: the construct, from its
// keyword to the end of its body, lies on one line, and the construct is
// itself a direct statement of a block.
func (r *Rule) skipSingleLine(ctx *rules.Context, node, body cst.Node) bool {
	if !r.allowSingleLineStatement || !inStatementList(node) {
		return false
	}
	if body.Kind() == ";" {
		return true
	}
	sm := ctx.SourceMap()
	return sm.LineOf(node.Range().Start) == sm.LineOf(body.Range().End)
}

func (r *Rule) skipSingleLineElse(ctx *rules.Context, elseKw, alternative cst.Node) bool {
	if !r.allowSingleLineStatement {
		return false
	}
	sm := ctx.SourceMap()
	return sm.LineOf(elseKw.Range().Start) == sm.LineOf(alternative.Range().End)
}

func inStatementList(node cst.Node) bool {
	parent, ok := node.Parent()
	return ok && parent.Kind() == "block"
}

func onOneLine(ctx *rules.Context, node cst.Node) bool {
	sm := ctx.SourceMap()
	return sm.LineOf(node.Range().Start) == sm.LineOf(node.Range().End)
}

func violation(construct string, anchor cst.Node) rules.Diagnostic {
	return rules.NewDiagnostic(
		"needBraces",
		fmt.Sprintf("'%s' construct must use '{}'s.", construct),
		anchor.Range(),
	)
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
