package filetabcharacter

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

func TestNoTabsClean(t *testing.T) {
	assert.Empty(t, check(t, "class Foo {\n    int x;\n}\n", nil))
}

func TestFirstTabOnly(t *testing.T) {
	diags := check(t, "class Foo {\n\tint x;\n\tint y;\n}\n", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "first instance")
	assert.Equal(t, uint32(12), diags[0].Range.Start)
	assert.Nil(t, diags[0].Fix)
}

func TestEachLine(t *testing.T) {
	diags := check(t, "class Foo {\n\tint x;\n\tint y;\n}\n",
		rules.Properties{"eachLine": "true"})
	require.Len(t, diags, 2)
	assert.Equal(t, "Line contains a tab character.", diags[0].Message)
}
