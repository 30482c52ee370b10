package needbraces

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

func TestIfWithoutBraces(t *testing.T) {
	diags := check(t, "class F { void m(boolean cond) { if (cond) doIt(); } }", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "'if' construct must use '{}'s.", diags[0].Message)
	assert.Nil(t, diags[0].Fix, "no safe fix for brace insertion")
}

func TestIfWithBracesClean(t *testing.T) {
	assert.Empty(t, check(t, "class F { void m(boolean cond) { if (cond) { doIt(); } } }", nil))
}

func TestElseWithoutBraces(t *testing.T) {
	source := "class F { void m(boolean c) { if (c) { a(); } else b(); } }"
	diags := check(t, source, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "'else' construct must use '{}'s.", diags[0].Message)
}

func TestElseIfChainClean(t *testing.T) {
	source := "class F { void m(int x) { if (x == 1) { a(); } else if (x == 2) { b(); } else { c(); } } }"
	assert.Empty(t, check(t, source, nil))
}

func TestLoops(t *testing.T) {
	diags := check(t, `
class F {
    void m(int[] a) {
        while (ready()) step();
        for (int i = 0; i < 3; i++) step();
        for (int x : a) use(x);
        do step(); while (ready());
    }
}`, nil)
	require.Len(t, diags, 4)
	assert.Equal(t, "'while' construct must use '{}'s.", diags[0].Message)
	assert.Equal(t, "'for' construct must use '{}'s.", diags[1].Message)
	assert.Equal(t, "'for' construct must use '{}'s.", diags[2].Message)
	assert.Equal(t, "'do' construct must use '{}'s.", diags[3].Message)
}

func TestAllowSingleLineStatement(t *testing.T) {
	source := "class F { void m(boolean c) { if (c) doIt(); } }"
	assert.Empty(t, check(t, source, rules.Properties{"allowSingleLineStatement": "true"}))

	multiline := "class F { void m(boolean c) {\n    if (c)\n        doIt();\n} }"
	assert.Len(t, check(t, multiline, rules.Properties{"allowSingleLineStatement": "true"}), 1)
}

func TestAllowEmptyLoopBody(t *testing.T) {
	source := "class F { void m() { while (poll()); } }"
	assert.Len(t, check(t, source, nil), 1)
	assert.Empty(t, check(t, source, rules.Properties{"allowEmptyLoopBody": "true"}))
}
