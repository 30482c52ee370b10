package stringliteralequality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/fixer"
	"github.com/wharflab/jstyle/internal/rules"
)

func check(t *testing.T, source string) []rules.Diagnostic {
	t.Helper()
	tree, err := cst.Parse([]byte(source))
	require.NoError(t, err)
	defer tree.Close()

	ctx := rules.NewContext("Test.java", []byte(source))
	rule := New(nil)

	var diags []rules.Diagnostic
	for node := range tree.Walk() {
		diags = append(diags, rule.Check(ctx, node)...)
	}
	return diags
}

func TestLiteralComparison(t *testing.T) {
	diags := check(t, `class F { boolean m(String s) { return s == "x"; } }`)
	require.Len(t, diags, 1)
	assert.Equal(t, "Literal Strings should be compared using equals(), not '=='.",
		diags[0].Message)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, rules.ApplicabilityUnsafe, diags[0].Fix.Applicability)
}

func TestFixRewritesToEquals(t *testing.T) {
	source := `class F { boolean m(String s) { return s == "x"; } }`
	diags := check(t, source)
	require.Len(t, diags, 1)

	result := fixer.Apply([]byte(source), diags, fixer.Policy{Unsafe: true})
	assert.Equal(t, `class F { boolean m(String s) { return "x".equals(s); } }`,
		string(result.Source))
}

func TestNotEqualsFix(t *testing.T) {
	source := `class F { boolean m(String s) { return "x" != s; } }`
	diags := check(t, source)
	require.Len(t, diags, 1)

	result := fixer.Apply([]byte(source), diags, fixer.Policy{Unsafe: true})
	assert.Equal(t, `class F { boolean m(String s) { return !"x".equals(s); } }`,
		string(result.Source))
}

func TestSafePolicyLeavesUnsafeFix(t *testing.T) {
	source := `class F { boolean m(String s) { return s == "x"; } }`
	result := fixer.Apply([]byte(source), check(t, source), fixer.Policy{})
	assert.Equal(t, source, string(result.Source))
}

func TestEqualsCallClean(t *testing.T) {
	assert.Empty(t, check(t, `class F { boolean m(String s) { return "x".equals(s); } }`))
}

func TestNumericComparisonClean(t *testing.T) {
	assert.Empty(t, check(t, "class F { boolean m(int x) { return x == 1; } }"))
}

func TestConcatenationFlaggedWithoutFix(t *testing.T) {
	diags := check(t, `class F { boolean m(String s, String t) { return (s + "x") == t; } }`)
	require.Len(t, diags, 1)
	assert.Nil(t, diags[0].Fix, "concatenation has no mechanical rewrite")
}
