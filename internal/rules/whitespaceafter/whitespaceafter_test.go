package whitespaceafter

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

func TestCommaWithoutSpace(t *testing.T) {
	diags := check(t, "class Foo { int[] a = {1,2}; }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "',' is not followed by whitespace.", diags[0].Message)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, rules.ApplicabilitySafe, diags[0].Fix.Applicability)
}

func TestCommaWithSpaceClean(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { int[] a = {1, 2}; }", nil))
}

func TestCommaBeforeClosingBracketExempt(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { void m(int a,int[] b) {} }",
		rules.Properties{"tokens": "SEMI"}))
	assert.Empty(t, check(t, "class Foo { int[] a = {1, 2,}; }", nil))
}

func TestSemicolonAtLineEndExempt(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { int x = 1;\n}", nil))
	assert.Empty(t, check(t, "package foo;", nil))
}

func TestForLoopSemicolon(t *testing.T) {
	diags := check(t, "class Foo { void m() { for (int i = 0;i < 10; i++) { use(i); } } }", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "';'")
}

func TestEmptyForPartsExempt(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { void m() { for (;;) { spin(); } } }", nil))
}

func TestTypecastToken(t *testing.T) {
	source := "class Foo { int m(long v) { return (int)v; } }"
	assert.Empty(t, check(t, source, nil), "TYPECAST not in default tokens")

	diags := check(t, source, rules.Properties{"tokens": "TYPECAST"})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "')'")
}

func TestKeywordTokens(t *testing.T) {
	source := "class Foo { void m(boolean b) { if(b) { run(); } } }"
	diags := check(t, source, rules.Properties{"tokens": "LITERAL_IF"})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'if'")
}
