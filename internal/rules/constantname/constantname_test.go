package constantname

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

func TestValidConstantNames(t *testing.T) {
	assert.Empty(t, check(t, "class F { static final int MAX_VALUE = 1; static final int K = 2; }", nil))
}

func TestInvalidConstantName(t *testing.T) {
	diags := check(t, "class F { static final int maxValue = 1; }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Name 'maxValue' must match pattern '^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$'.",
		diags[0].Message)
}

func TestNonConstantFieldIgnored(t *testing.T) {
	assert.Empty(t, check(t, "class F { static int counter; final int limit = 1; }", nil))
}

func TestInterfaceFieldsAreConstants(t *testing.T) {
	diags := check(t, "interface F { int maxValue = 1; }", nil)
	require.Len(t, diags, 1)
}
