package avoidnestedblocks

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

func TestNestedBlockFlagged(t *testing.T) {
	diags := check(t, "class F { void m() { { int x = 1; use(x); } } }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Avoid nested blocks.", diags[0].Message)
}

func TestMethodBodyClean(t *testing.T) {
	assert.Empty(t, check(t, "class F { void m() { int x = 1; use(x); } }", nil))
}

func TestSwitchCaseBlock(t *testing.T) {
	source := `
class F {
    void m(int x) {
        switch (x) {
            case 1: { handle(); }
                break;
            default: break;
        }
    }
}`
	assert.NotEmpty(t, check(t, source, nil))
}

func TestAllowInSwitchCaseOnlyStatement(t *testing.T) {
	source := `
class F {
    void m(int x) {
        switch (x) {
            case 1: { handle(); break; }
            default: break;
        }
    }
}`
	assert.Empty(t, check(t, source, rules.Properties{"allowInSwitchCase": "true"}))
	assert.NotEmpty(t, check(t, source, nil))
}
