// Package linelength implements the LineLength checkstyle module.
package linelength

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/span"
)

// ModuleName is the checkstyle module name.
const ModuleName = "LineLength"

var relevantKinds = []string{"program"}

// Rule flags lines longer than the limit, counting Unicode scalar values
// rather than bytes.
//
// Properties:
//   - max (default 80): the character limit.
//   - ignorePattern: lines matching the regex are exempt (e.g. "^import").
type Rule struct {
	max           int
	ignorePattern *regexp.Regexp
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	rule := &Rule{max: props.Int("max", 80)}
	if pattern, ok := props["ignorePattern"]; ok && pattern != "" {
		// A malformed pattern falls back to matching nothing.
		rule.ignorePattern = props.Regexp("ignorePattern", "^$")
	}
	return rule
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule. The diagnostic range starts at the first
// character past the limit.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "program" {
		return nil
	}

	sm := ctx.SourceMap()
	var diags []rules.Diagnostic
	for line := 1; line <= sm.LineCount(); line++ {
		text := sm.Line(line)
		length := utf8.RuneCountInString(text)
		if length <= r.max {
			continue
		}
		if r.ignorePattern != nil && r.ignorePattern.MatchString(text) {
			continue
		}

		// Byte offset of the character at position max within the line.
		overflow := 0
		for count := 0; overflow < len(text); count++ {
			if count == r.max {
				break
			}
			_, size := utf8.DecodeRuneInString(text[overflow:])
			overflow += size
		}

		start := sm.LineStart(line) + uint32(overflow)
		diags = append(diags, rules.NewDiagnostic(
			"maxLineLen",
			fmt.Sprintf("Line is longer than %d characters (found %d).", r.max, length),
			span.New(start, sm.LineEnd(line)),
		))
	}
	return diags
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
