package parametername

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

func TestValidParameterName(t *testing.T) {
	assert.Empty(t, check(t, "class F { void m(int rowCount) {} }", nil))
}

func TestInvalidParameterName(t *testing.T) {
	diags := check(t, "class F { void m(int RowCount) {} }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Name 'RowCount' must match pattern '^[a-z][a-zA-Z0-9]*$'.",
		diags[0].Message)
}

func TestVarargsParameter(t *testing.T) {
	diags := check(t, "class F { void m(String... Parts) {} }", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "'Parts'")
}

func TestIgnoreOverridden(t *testing.T) {
	source := "class F { @Override public void m(int BadName) {} }"
	assert.Len(t, check(t, source, nil), 1)
	assert.Empty(t, check(t, source, rules.Properties{"ignoreOverridden": "true"}))
}

func TestConstructorParametersChecked(t *testing.T) {
	assert.Len(t, check(t, "class F { F(int Bad) {} }", nil), 1)
}
