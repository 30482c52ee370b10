package modifierorder

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

func TestCorrectOrderClean(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { public static final int K = 1; }"))
	assert.Empty(t, check(t, "class Foo { public static final void test() {} }"))
}

func TestFinalBeforeStatic(t *testing.T) {
	diags := check(t, "class F { final static public int K = 1; }")
	require.Len(t, diags, 1)
	assert.Equal(t, "'static' modifier out of order with the JLS suggestions.", diags[0].Message)
	require.NotNil(t, diags[0].Fix)
	assert.Equal(t, rules.ApplicabilitySafe, diags[0].Fix.Applicability)
}

func TestFixReordersModifiers(t *testing.T) {
	source := []byte("class F { final static public int K = 1; }")
	diags := check(t, string(source))
	require.Len(t, diags, 1)

	result := fixer.Apply(source, diags, fixer.Policy{})
	assert.Equal(t, "class F { public static final int K = 1; }", string(result.Source))
}

func TestAnnotationFirstClean(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { @Override public void test() {} }"))
}

func TestAnnotationAfterKeyword(t *testing.T) {
	diags := check(t, "class Foo { public @Deprecated void test() {} }")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "does not precede non-annotation modifiers")
}

func TestAnnotationFixPreservesAnnotationOrder(t *testing.T) {
	source := []byte("class Foo { public @Deprecated void test() {} }")
	diags := check(t, string(source))
	require.Len(t, diags, 1)

	result := fixer.Apply(source, diags, fixer.Policy{})
	assert.Equal(t, "class Foo { @Deprecated public void test() {} }", string(result.Source))
}

func TestTypeAnnotationOnFieldAllowed(t *testing.T) {
	source := `
@interface NonNull {}
class Foo {
    private final @NonNull Object ref = null;
}`
	assert.Empty(t, check(t, source))
}

func TestTypeAnnotationOnNonVoidMethodAllowed(t *testing.T) {
	source := `
@interface NonNull {}
class Foo {
    public @NonNull Object get() { return this; }
}`
	assert.Empty(t, check(t, source))
}

func TestAnnotationOnVoidMethodFlagged(t *testing.T) {
	source := `
@interface Traced {}
class Foo {
    public @Traced void run() {}
}`
	assert.Len(t, check(t, source), 1)
}

func TestAnnotationsOnlyClean(t *testing.T) {
	assert.Empty(t, check(t, "class Foo { @Deprecated @SuppressWarnings(\"all\") void m() {} }"))
}
