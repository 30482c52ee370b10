package emptycatchblock

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

const emptyCatch = "class F { void m() { try { work(); } catch (Exception e) {} } }"

func TestEmptyCatchDefault(t *testing.T) {
	diags := check(t, emptyCatch, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Empty catch block.", diags[0].Message)
	assert.Nil(t, diags[0].Fix)
}

func TestNonEmptyCatchClean(t *testing.T) {
	source := "class F { void m() { try { work(); } catch (Exception e) { log(e); } } }"
	assert.Empty(t, check(t, source, nil))
}

func TestExceptionVariableNameSuppresses(t *testing.T) {
	source := "class F { void m() { try { work(); } catch (Exception ignored) {} } }"
	assert.NotEmpty(t, check(t, source, nil))
	assert.Empty(t, check(t, source,
		rules.Properties{"exceptionVariableName": "expected|ignored"}))
}

func TestCommentFormatSuppresses(t *testing.T) {
	source := "class F { void m() { try { work(); } catch (Exception e) { // expected\n } } }"
	assert.Empty(t, check(t, source,
		rules.Properties{"commentFormat": ".*expected.*"}))

	unrelated := "class F { void m() { try { work(); } catch (Exception e) { // nope\n } } }"
	assert.NotEmpty(t, check(t, unrelated,
		rules.Properties{"commentFormat": ".*expected.*"}))
}

func TestDefaultCommentFormatAllowsAnyComment(t *testing.T) {
	source := "class F { void m() { try { work(); } catch (Exception e) { /* fine */ } } }"
	assert.Empty(t, check(t, source, nil))
}
