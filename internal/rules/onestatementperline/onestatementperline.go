// Package onestatementperline implements the OneStatementPerLine checkstyle
// module.
package onestatementperline

import (
	"bytes"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "OneStatementPerLine"

var relevantKinds = []string{"block", "class_body", "constructor_body"}

// statementKinds are the node kinds that count as statements of a block.
var statementKinds = map[string]struct{}{
	"local_variable_declaration":   {},
	"field_declaration":            {},
	"expression_statement":         {},
	"if_statement":                 {},
	"for_statement":                {},
	"enhanced_for_statement":       {},
	"while_statement":              {},
	"do_statement":                 {},
	"try_statement":                {},
	"try_with_resources_statement": {},
	"switch_expression":            {},
	"return_statement":             {},
	"throw_statement":              {},
	"break_statement":              {},
	"continue_statement":           {},
	"assert_statement":             {},
	"synchronized_statement":       {},
	"labeled_statement":            {},
	"yield_statement":              {},
}

// Rule flags a second statement starting on the line where the previous one
// ended. The fix moves the offending statement to its own line, reusing the
// previous statement's indentation.
type Rule struct{}

// New constructs the rule. The treatTryResourcesAsStatement property of the
// canonical module is accepted and ignored; resource specifications are
// never counted as statements here.
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
	case "block", "class_body", "constructor_body":
	default:
		return nil
	}

	sm := ctx.SourceMap()
	source := ctx.Source()
	var diags []rules.Diagnostic

	prevLine := -1
	for _, child := range node.NamedChildren() {
		if _, isStatement := statementKinds[child.Kind()]; !isStatement {
			continue
		}
		start := child.Range().Start
		line := sm.LineOf(start)
		if line == prevLine {
			gapStart := afterPrevSemicolon(source, start)
			indent := lineIndent(source, sm.LineStart(line))
			diags = append(diags, rules.NewDiagnostic(
				"multipleStatements",
				"Only one statement per line allowed.",
				child.Range(),
			).WithFix(rules.SafeEdit(rules.Replacement(
				"\n"+indent, span.New(gapStart, start),
			))))
		}
		prevLine = line
	}
	return diags
}

// afterPrevSemicolon finds the offset just past the semicolon preceding the
// statement, bounding the gap the fix rewrites.
func afterPrevSemicolon(source []byte, pos uint32) uint32 {
	if i := bytes.LastIndexByte(source[:pos], ';'); i >= 0 {
		return uint32(i + 1)
	}
	return pos
}

// lineIndent returns the leading whitespace of the line starting at offset.
func lineIndent(source []byte, lineStart uint32) string {
	end := lineStart
	for end < uint32(len(source)) && (source[end] == ' ' || source[end] == '\t') {
		end++
	}
	return string(source[lineStart:end])
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
