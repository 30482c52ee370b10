// Package whitespaceafter implements the WhitespaceAfter checkstyle module:
// selected tokens must be followed by whitespace.
package whitespaceafter

import (
	"fmt"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "WhitespaceAfter"

var relevantKinds = []string{
	",",
	";",
	"cast_expression",
	"if_statement",
	"while_statement",
	"do_statement",
	"for_statement",
	"enhanced_for_statement",
}

// Rule checks that tokens are followed by whitespace.
//
// Properties:
//   - tokens: comma-separated subset of COMMA, SEMI, TYPECAST, LITERAL_IF,
//     LITERAL_ELSE, LITERAL_WHILE, LITERAL_DO, LITERAL_FOR, DO_WHILE
//     (default "COMMA, SEMI").
type Rule struct {
	tokens map[string]bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	rule := &Rule{tokens: make(map[string]bool)}
	for _, token := range props.Tokens("tokens", []string{"COMMA", "SEMI"}) {
		rule.tokens[token] = true
	}
	return rule
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	switch node.Kind() {
	case ",":
		if r.tokens["COMMA"] && !commaExempt(ctx.Source(), node.Range().End) {
			return []rules.Diagnostic{notFollowed(node)}
		}
	case ";":
		if r.tokens["SEMI"] && !semicolonExempt(ctx.Source(), node.Range().End) {
			return []rules.Diagnostic{notFollowed(node)}
		}
	case "cast_expression":
		if !r.tokens["TYPECAST"] {
			return nil
		}
		if rparen, ok := node.ChildOfKind(")"); ok &&
			!followedByWhitespace(ctx.Source(), rparen.Range().End) {
			return []rules.Diagnostic{notFollowed(rparen)}
		}
	case "if_statement":
		var diags []rules.Diagnostic
		diags = append(diags, r.checkKeyword(ctx, node, "if", "LITERAL_IF")...)
		diags = append(diags, r.checkKeyword(ctx, node, "else", "LITERAL_ELSE")...)
		return diags
	case "while_statement":
		return r.checkKeyword(ctx, node, "while", "LITERAL_WHILE")
	case "do_statement":
		var diags []rules.Diagnostic
		diags = append(diags, r.checkKeyword(ctx, node, "do", "LITERAL_DO")...)
		diags = append(diags, r.checkKeyword(ctx, node, "while", "DO_WHILE")...)
		return diags
	case "for_statement", "enhanced_for_statement":
		return r.checkKeyword(ctx, node, "for", "LITERAL_FOR")
	}
	return nil
}

func (r *Rule) checkKeyword(ctx *rules.Context, node cst.Node, keyword, token string) []rules.Diagnostic {
	if !r.tokens[token] {
		return nil
	}
	kw, ok := node.ChildOfKind(keyword)
	if !ok || followedByWhitespace(ctx.Source(), kw.Range().End) {
		return nil
	}
	return []rules.Diagnostic{notFollowed(kw)}
}

func notFollowed(token cst.Node) rules.Diagnostic {
	return rules.NewDiagnostic(
		"ws.notFollowed",
		fmt.Sprintf("'%s' is not followed by whitespace.", token.Text()),
		token.Range(),
	).WithFix(rules.SafeEdit(rules.Insertion(" ", token.Range().End)))
}

func followedByWhitespace(source []byte, offset uint32) bool {
	if offset >= uint32(len(source)) {
		return true
	}
	switch source[offset] {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// commaExempt allows a comma flush against a closing bracket.
func commaExempt(source []byte, offset uint32) bool {
	if followedByWhitespace(source, offset) {
		return true
	}
	switch source[offset] {
	case ')', ']', '}':
		return true
	default:
		return false
	}
}

// semicolonExempt allows end-of-line, end-of-file, for-loop closers, and
// empty for-clause parts.
func semicolonExempt(source []byte, offset uint32) bool {
	if offset >= uint32(len(source)) {
		return true
	}
	switch source[offset] {
	case ' ', '\t', '\n', '\r', ')', ';':
		return true
	default:
		return false
	}
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
