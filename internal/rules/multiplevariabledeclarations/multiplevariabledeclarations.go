// Package multiplevariabledeclarations implements the
// MultipleVariableDeclarations checkstyle module: every variable gets its
// own statement and its own line.
package multiplevariabledeclarations

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "MultipleVariableDeclarations"

var relevantKinds = []string{
	"local_variable_declaration",
	"field_declaration",
	"block",
	"class_body",
}

// Rule flags comma-separated declarators within one statement and separate
// declarations sharing a line. The module has no properties and emits no
// fix; splitting declarations moves type annotations and initializers in
// ways that need author judgment.
type Rule struct{}

// New constructs the rule.
func New(rules.Properties) *Rule {
	return &Rule{}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "local_variable_declaration", "field_declaration":
		if inForInit(node) {
			return nil
		}
		declarators := 0
		for _, c := range node.NamedChildren() {
			if c.Kind() == "variable_declarator" {
				declarators++
			}
		}
		if declarators > 1 {
			return []rules.Diagnostic{rules.NewDiagnostic(
				"multipleDeclarationsComma",
				"Each variable declaration must be in its own statement.",
				node.Range(),
			)}
		}
		return nil

	case "block", "class_body":
		return r.checkSameLine(ctx, node)

	default:
		return nil
	}
}

// checkSameLine flags a declaration starting on the line a previous
// declaration of the same scope ended on.
func (r *Rule) checkSameLine(ctx *rules.Context, scope cst.Node) []rules.Diagnostic {
	sm := ctx.SourceMap()
	var diags []rules.Diagnostic
	prevEndLine := -1
	for _, child := range scope.NamedChildren() {
		switch child.Kind() {
		case "local_variable_declaration", "field_declaration":
		default:
			continue
		}
		startLine := sm.LineOf(child.Range().Start)
		if startLine == prevEndLine {
			diags = append(diags, rules.NewDiagnostic(
				"multipleDeclarations",
				"Only one variable definition per line allowed.",
				child.Range(),
			))
		}
		prevEndLine = sm.LineOf(child.Range().End)
	}
	return diags
}

// inForInit reports whether the declaration is a for-loop initializer,
// where multiple variables are conventional.
func inForInit(node cst.Node) bool {
	parent, ok := node.Parent()
	if !ok || parent.Kind() != "for_statement" {
		return false
	}
	init, ok := parent.ChildByFieldName("init")
	return ok && init.Range() == node.Range()
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
