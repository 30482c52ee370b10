package methodlength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

func check(t *testing.T, source string, props rules.Properties) []rules.Diagnostic {
	t.Helper()
	tree, err := cst.Parse([]byte(source))
	require.NoError(t, err)
	defer tree.Close()

	ctx := rules.NewContext("Test.java", []byte(source))
	rule := New(props)

	var diags []rules.Diagnostic
	for node := range tree.Walk() {
		diags = append(diags, rule.Check(ctx, node)...)
	}
	return diags
}

// methodOfLines builds a method whose total line count is 2+n: signature,
// n body lines, closing brace.
func methodOfLines(n int) string {
	var b strings.Builder
	b.WriteString("class F {\n    void work() {\n")
	for range n {
		b.WriteString("        step();\n")
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

func TestUnderLimitClean(t *testing.T) {
	assert.Empty(t, check(t, methodOfLines(5), nil))
}

func TestOverLimit(t *testing.T) {
	diags := check(t, methodOfLines(10), rules.Properties{"max": "5"})
	require.Len(t, diags, 1)
	assert.Equal(t, "Method work length is 12 lines (max allowed is 5).", diags[0].Message)
}

func TestCountEmptyFalse(t *testing.T) {
	source := "class F {\n    void work() {\n        a();\n\n        // note\n        b();\n    }\n}\n"
	// 6 lines total; 4 when blanks and comment lines are skipped.
	assert.Len(t, check(t, source, rules.Properties{"max": "5"}), 1)
	assert.Empty(t, check(t, source,
		rules.Properties{"max": "5", "countEmpty": "false"}))
}

func TestConstructorCounted(t *testing.T) {
	source := "class F {\n    F() {\n        a();\n        b();\n        c();\n    }\n}\n"
	diags := check(t, source, rules.Properties{"max": "3"})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Method F length is 5 lines")
}
