// Package emptycatchblock implements the EmptyCatchBlock checkstyle module.
package emptycatchblock

import (
	"regexp"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// ModuleName is the checkstyle module name.
const ModuleName = "EmptyCatchBlock"

var relevantKinds = []string{"catch_clause"}

// Rule flags catch blocks holding no statements.
//
// Properties:
//   - exceptionVariableName (regex, default "^$"): an exception variable
//     matching the pattern suppresses the violation (e.g. "expected|ignore").
//   - commentFormat (regex, default ".*"): the first line of the first
//     comment in the block suppresses the violation when it matches.
type Rule struct {
	exceptionVariableName *regexp.Regexp
	commentFormat         *regexp.Regexp
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{
		exceptionVariableName: props.Regexp("exceptionVariableName", "^$"),
		commentFormat:         props.Regexp("commentFormat", ".*"),
	}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "catch_clause" {
		return nil
	}
	block, ok := node.ChildByFieldName("body")
	if !ok || !isEmptyCatch(block) {
		return nil
	}

	if r.exceptionVariableName.MatchString(exceptionVariable(node)) {
		return nil
	}
	if comment := firstCommentLine(block); comment != "" && r.commentFormat.MatchString(comment) {
		return nil
	}

	return []rules.Diagnostic{rules.NewDiagnostic(
		"catchBlockEmpty",
		"Empty catch block.",
		block.Range(),
	)}
}

// isEmptyCatch reports whether the block holds no statements (comments do
// not count).
func isEmptyCatch(block cst.Node) bool {
	for _, c := range block.Children() {
		switch c.Kind() {
		case "{", "}", "line_comment", "block_comment", "ERROR":
		default:
			return false
		}
	}
	return true
}

// exceptionVariable returns the catch parameter's variable name.
func exceptionVariable(catchClause cst.Node) string {
	param, ok := catchClause.ChildOfKind("catch_formal_parameter")
	if !ok {
		return ""
	}
	if ident, ok := param.ChildOfKind("identifier"); ok {
		return ident.Text()
	}
	return ""
}

// firstCommentLine extracts the first non-empty content line of the first
// comment inside the block, stripped of comment markers.
func firstCommentLine(block cst.Node) string {
	for _, c := range block.Children() {
		switch c.Kind() {
		case "line_comment":
			return strings.TrimPrefix(c.Text(), "//")
		case "block_comment":
			content := strings.TrimPrefix(c.Text(), "/*")
			content = strings.TrimSuffix(content, "*/")
			for _, line := range strings.Split(content, "\n") {
				if line != "" {
					return line
				}
			}
			return content
		}
	}
	return ""
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
