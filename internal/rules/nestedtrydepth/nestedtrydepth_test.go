package nestedtrydepth

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

const doublyNested = `
class F {
    void m() {
        try {
            try {
                try {
                    work();
                } catch (Exception e) { log(e); }
            } catch (Exception e) { log(e); }
        } catch (Exception e) { log(e); }
    }
}`

func TestSingleTryClean(t *testing.T) {
	source := "class F { void m() { try { work(); } catch (Exception e) { log(e); } } }"
	assert.Empty(t, check(t, source, nil))
}

func TestAtLimitClean(t *testing.T) {
	source := `
class F {
    void m() {
        try {
            try {
                work();
            } catch (Exception e) { log(e); }
        } catch (Exception e) { log(e); }
    }
}`
	assert.Empty(t, check(t, source, nil))
}

func TestBeyondLimit(t *testing.T) {
	diags := check(t, doublyNested, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Nested try depth is 2 (max allowed is 1).", diags[0].Message)
}

func TestConfiguredMax(t *testing.T) {
	assert.Empty(t, check(t, doublyNested, rules.Properties{"max": "2"}))
	assert.Len(t, check(t, doublyNested, rules.Properties{"max": "0"}), 2)
}
