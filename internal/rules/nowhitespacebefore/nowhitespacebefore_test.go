package nowhitespacebefore

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

func TestSemicolonPrecededBySpace(t *testing.T) {
	diags := check(t, "class Foo { int x = 1 ; }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "';' is preceded with whitespace.", diags[0].Message)

	require.NotNil(t, diags[0].Fix)
	edit := diags[0].Fix.Edits[0]
	assert.True(t, edit.IsDeletion())
	assert.Equal(t, uint32(21), edit.Range.Start)
	assert.Equal(t, uint32(22), edit.Range.End)
}

func TestCommaPrecededBySpace(t *testing.T) {
	diags := check(t, "class Foo { int[] a = {1 , 2}; }", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "','")
}

func TestPostfixIncrement(t *testing.T) {
	diags := check(t, "class Foo { void m() { int i = 0; i ++; } }", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'++'")
}

func TestCleanSourceNoDiagnostics(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { void m() { int i = 0; i++; } }", nil))
}

func TestAllowLineBreaks(t *testing.T) {
	source := "class Foo { int x = 1\n    ; }"
	assert.NotEmpty(t, check(t, source, nil))
	assert.Empty(t, check(t, source, rules.Properties{"allowLineBreaks": "true"}))
}
