package localvariablename

import (
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

func TestValidLocalName(t *testing.T) {
	assert.Empty(t, check(t, "class F { void m() { int rowCount = 0; use(rowCount); } }", nil))
}

func TestInvalidLocalName(t *testing.T) {
	diags := check(t, "class F { void m() { int Row_Count = 0; use(Row_Count); } }", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'Row_Count'")
}

func TestFinalLocalSkipped(t *testing.T) {
	assert.Empty(t, check(t, "class F { void m() { final int Bad = 0; use(Bad); } }", nil))
}

func TestOneCharInForLoop(t *testing.T) {
	// 'I' fails lowerCamelCase but is a single char in a for header.
	source := "class F { void m() { for (int I = 0; I < 3; I++) { use(I); } } }"
	assert.Len(t, check(t, source, nil), 1)
	assert.Empty(t, check(t, source,
		rules.Properties{"allowOneCharVarInForLoop": "true"}))
}
