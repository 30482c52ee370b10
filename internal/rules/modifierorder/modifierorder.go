// Package modifierorder implements the ModifierOrder checkstyle module:
// modifier keywords follow the order suggested by the Java Language
// Specification, with annotations first.
package modifierorder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "ModifierOrder"

var relevantKinds = []string{"modifiers"}

// jlsOrder is the JLS-suggested modifier keyword sequence.
var jlsOrder = []string{
	"public",
	"protected",
	"private",
	"abstract",
	"default",
	"static",
	"sealed",
	"non-sealed",
	"final",
	"transient",
	"volatile",
	"synchronized",
	"native",
	"strictfp",
}

// Rule checks modifier order. The module has no properties.
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
	if node.Kind() != "modifiers" {
		return nil
	}

	// Comments may sit between modifiers; they are not part of the order.
	var mods []cst.Node
	for _, c := range node.Children() {
		if !c.IsComment() {
			mods = append(mods, c)
		}
	}
	if len(mods) == 0 {
		return nil
	}

	if d, ok := r.checkJLSOrder(ctx, node, mods); ok {
		return []rules.Diagnostic{d}
	}
	return nil
}

// checkJLSOrder walks the modifiers from the first non-annotation and
// verifies each keyword's JLS rank is non-decreasing, reporting the first
// offender. An annotation after a keyword modifier is also an offense
// unless it annotates the declared type rather than the declaration.
func (r *Rule) checkJLSOrder(ctx *rules.Context, modifiersNode cst.Node, mods []cst.Node) (rules.Diagnostic, bool) {
	i := 0
	for i < len(mods) && isAnnotation(mods[i]) {
		i++
	}
	if i == len(mods) {
		return rules.Diagnostic{}, false // annotations only
	}

	rank := 0
	for ; i < len(mods); i++ {
		mod := mods[i]
		if isAnnotation(mod) {
			if isTypeAnnotation(mod) {
				break
			}
			return rules.NewDiagnostic(
				"annotationOrder",
				fmt.Sprintf("'%s' annotation modifier does not precede non-annotation modifiers.", mod.Text()),
				mod.Range(),
			).WithFix(r.reorderFix(ctx, modifiersNode)), true
		}

		text := mod.Text()
		for rank < len(jlsOrder) && jlsOrder[rank] != text {
			rank++
		}
		if rank == len(jlsOrder) {
			return rules.NewDiagnostic(
				"modifierOrder",
				fmt.Sprintf("'%s' modifier out of order with the JLS suggestions.", text),
				mod.Range(),
			).WithFix(r.reorderFix(ctx, modifiersNode)), true
		}
	}
	return rules.Diagnostic{}, false
}

// reorderFix rewrites the whole modifiers range: annotations first in their
// original relative order, then keywords sorted by JLS rank.
func (r *Rule) reorderFix(ctx *rules.Context, modifiersNode cst.Node) *rules.Fix {
	var annotations, keywords []string
	for _, c := range modifiersNode.Children() {
		if c.IsComment() {
			continue
		}
		if isAnnotation(c) {
			annotations = append(annotations, c.Text())
		} else {
			keywords = append(keywords, c.Text())
		}
	}

	slices.SortStableFunc(keywords, func(a, b string) int {
		return jlsRank(a) - jlsRank(b)
	})

	ordered := strings.Join(append(annotations, keywords...), " ")
	return rules.SafeEdit(rules.Replacement(ordered, modifiersNode.Range()))
}

func jlsRank(keyword string) int {
	if i := slices.Index(jlsOrder, keyword); i >= 0 {
		return i
	}
	return len(jlsOrder)
}

func isAnnotation(node cst.Node) bool {
	switch node.Kind() {
	case "marker_annotation", "annotation":
		return true
	default:
		return false
	}
}

// isTypeAnnotation reports whether an annotation inside a modifiers list
// annotates the declared type (legal in any position) rather than the
// declaration itself. Disambiguated by the declaring construct's kind and,
// for methods, a non-void return type.
func isTypeAnnotation(annotation cst.Node) bool {
	modifiers, ok := annotation.Parent()
	if !ok {
		return false
	}
	decl, ok := modifiers.Parent()
	if !ok {
		return false
	}

	switch decl.Kind() {
	case "field_declaration",
		"local_variable_declaration",
		"formal_parameter",
		"catch_formal_parameter",
		"constructor_declaration":
		return true
	case "method_declaration":
		typeNode, ok := decl.ChildByFieldName("type")
		return ok && typeNode.Kind() != "void_type"
	default:
		return false
	}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
