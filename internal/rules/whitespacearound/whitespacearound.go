// Package whitespacearound implements the WhitespaceAround checkstyle
// module: operators and block braces must be surrounded by whitespace.
package whitespacearound

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "WhitespaceAround"

var relevantKinds = []string{
	"binary_expression",
	"assignment_expression",
	"ternary_expression",
	"enhanced_for_statement",
	"method_declaration",
	"constructor_declaration",
	"lambda_expression",
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
	"while_statement",
	"do_statement",
	"for_statement",
	"catch_clause",
}

// Rule checks that tokens are surrounded by whitespace.
//
// Properties (all booleans, default false unless noted):
//   - allowEmptyMethods, allowEmptyConstructors, allowEmptyLambdas,
//     allowEmptyTypes, allowEmptyLoops, allowEmptyCatches: suppress the
//     check on the opening brace of an empty body.
//   - ignoreEnhancedForColon (default true): skip the ':' of enhanced for.
type Rule struct {
	allowEmptyMethods      bool
	allowEmptyConstructors bool
	allowEmptyLambdas      bool
	allowEmptyTypes        bool
	allowEmptyLoops        bool
	allowEmptyCatches      bool
	ignoreEnhancedForColon bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		allowEmptyMethods:      props.Bool("allowEmptyMethods", false),
		allowEmptyConstructors: props.Bool("allowEmptyConstructors", false),
		allowEmptyLambdas:      props.Bool("allowEmptyLambdas", false),
		allowEmptyTypes:        props.Bool("allowEmptyTypes", false),
		allowEmptyLoops:        props.Bool("allowEmptyLoops", false),
		allowEmptyCatches:      props.Bool("allowEmptyCatches", false),
		ignoreEnhancedForColon: props.Bool("ignoreEnhancedForColon", true),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case "binary_expression", "assignment_expression":
		if op, ok := node.ChildByFieldName("operator"); ok {
			return r.checkToken(ctx, op)
		}
		// assignment_expression exposes the operator as an anonymous token
		// in some grammar versions; fall back to scanning children.
		for _, c := range node.Children() {
			if !c.IsNamed() {
				return r.checkToken(ctx, c)
			}
		}
		return nil

	case "ternary_expression":
		var diags []rules.Diagnostic
		if q, ok := node.ChildOfKind("?"); ok {
			diags = append(diags, r.checkToken(ctx, q)...)
		}
		if c, ok := node.ChildOfKind(":"); ok {
			diags = append(diags, r.checkToken(ctx, c)...)
		}
		return diags

	case "enhanced_for_statement":
		if r.ignoreEnhancedForColon {
			return nil
		}
		if colon, ok := node.ChildOfKind(":"); ok {
			return r.checkToken(ctx, colon)
		}
		return nil

	default:
		return r.checkBody(ctx, node)
	}
}

// checkToken verifies the bytes on both sides of a token are whitespace and
// emits safe single-space insertions where they are not.
func (r *Rule) checkToken(ctx *rules.Context, token cst.Node) []rules.Diagnostic {
	var diags []rules.Diagnostic
	tokenRange := token.Range()
	source := ctx.Source()

	if tokenRange.Start > 0 && !whitespaceBefore(source, tokenRange.Start) {
		diags = append(diags, rules.NewDiagnostic(
			"ws.notPreceded",
			fmt.Sprintf("'%s' is not preceded with whitespace.", token.Text()),
			tokenRange,
		).WithFix(rules.SafeEdit(rules.Insertion(" ", tokenRange.Start))))
	}
	if tokenRange.End < uint32(len(source)) && !whitespaceAfter(source, tokenRange.End) {
		diags = append(diags, rules.NewDiagnostic(
			"ws.notFollowed",
			fmt.Sprintf("'%s' is not followed by whitespace.", token.Text()),
			tokenRange,
		).WithFix(rules.SafeEdit(rules.Insertion(" ", tokenRange.End))))
	}
	return diags
}

// checkBody locates the declaration's block body and checks its braces.
func (r *Rule) checkBody(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	body, ok := node.ChildByFieldName("body")
	if !ok || body.Kind() != "block" && !isTypeBody(body.Kind()) {
		return nil
	}

	open, hasOpen := body.ChildOfKind("{")
	closing, hasClose := body.ChildOfKind("}")
	if !hasOpen || !hasClose {
		return nil
	}

	empty := interiorBlank(ctx.Source(), open.Range().End, closing.Range().Start)
	if empty && r.allowEmpty(node.Kind()) {
		return nil
	}

	var diags []rules.Diagnostic
	source := ctx.Source()
	openRange := open.Range()

	if openRange.Start > 0 && !whitespaceBefore(source, openRange.Start) {
		diags = append(diags, rules.NewDiagnostic(
			"ws.notPreceded",
			"'{' is not preceded with whitespace.",
			openRange,
		).WithFix(rules.SafeEdit(rules.Insertion(" ", openRange.Start))))
	}
	if !whitespaceAfter(source, openRange.End) {
		diags = append(diags, rules.NewDiagnostic(
			"ws.notFollowed",
			"'{' is not followed by whitespace.",
			openRange,
		).WithFix(rules.SafeEdit(rules.Insertion(" ", openRange.End))))
	}
	if !empty && !whitespaceBefore(source, closing.Range().Start) {
		diags = append(diags, rules.NewDiagnostic(
			"ws.notPreceded",
			"'}' is not preceded with whitespace.",
			closing.Range(),
		).WithFix(rules.SafeEdit(rules.Insertion(" ", closing.Range().Start))))
	}
	return diags
}

func (r *Rule) allowEmpty(declKind string) bool {
	switch declKind {
	case "method_declaration":
		return r.allowEmptyMethods
	case "constructor_declaration":
		return r.allowEmptyConstructors
	case "lambda_expression":
		return r.allowEmptyLambdas
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return r.allowEmptyTypes
	case "while_statement", "do_statement", "for_statement":
		return r.allowEmptyLoops
	case "catch_clause":
		return r.allowEmptyCatches
	default:
		return false
	}
}

func isTypeBody(kind string) bool {
	switch kind {
	case "class_body", "interface_body", "enum_body", "annotation_type_body":
		return true
	default:
		return false
	}
}

// interiorBlank reports whether the range between braces holds nothing but
// whitespace.
func interiorBlank(source []byte, start, end uint32) bool {
	for _, b := range source[start:end] {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}
	return true
}

func whitespaceBefore(source []byte, offset uint32) bool {
	r, _ := utf8.DecodeLastRune(source[:offset])
	return unicode.IsSpace(r)
}

func whitespaceAfter(source []byte, offset uint32) bool {
	r, _ := utf8.DecodeRune(source[offset:])
	return unicode.IsSpace(r)
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
