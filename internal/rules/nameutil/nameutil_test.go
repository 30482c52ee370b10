package nameutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

func parse(t *testing.T, source string) *cst.Tree {
	t.Helper()
	tree, err := cst.Parse([]byte(source))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func findFirst(tree *cst.Tree, kind string) (cst.Node, bool) {
	for node := range tree.Walk() {
		if node.Kind() == kind {
			return node, true
		}
	}
	return cst.Node{}, false
}

func TestFormatPropertyFallsBack(t *testing.T) {
	f := FormatProperty(rules.Properties{"format": "(["}, "^[a-z]+$")
	assert.Equal(t, "^[a-z]+$", f.Source)
	assert.True(t, f.Pattern.MatchString("abc"))

	custom := FormatProperty(rules.Properties{"format": "^[A-Z]+$"}, "^[a-z]+$")
	assert.Equal(t, "^[A-Z]+$", custom.Source)
	assert.Equal(t, "Name 'x' must match pattern '^[A-Z]+$'.", custom.Message("x"))
}

func TestFieldClass(t *testing.T) {
	tree := parse(t, "class F { private static final int K = 1; }")
	field, ok := findFirst(tree, "field_declaration")
	require.True(t, ok)

	isStatic, isFinal := FieldClass(field)
	assert.True(t, isStatic)
	assert.True(t, isFinal)

	tree2 := parse(t, "class F { int k; }")
	field2, ok := findFirst(tree2, "field_declaration")
	require.True(t, ok)
	isStatic, isFinal = FieldClass(field2)
	assert.False(t, isStatic)
	assert.False(t, isFinal)
}

func TestDeclaratorNames(t *testing.T) {
	tree := parse(t, "class F { int a, b, c; }")
	field, ok := findFirst(tree, "field_declaration")
	require.True(t, ok)

	names := DeclaratorNames(field)
	require.Len(t, names, 3)
	assert.Equal(t, "a", names[0].Text())
	assert.Equal(t, "c", names[2].Text())
}

func TestAccessFilter(t *testing.T) {
	tree := parse(t, "class F { private int x; }")
	field, _ := findFirst(tree, "field_declaration")

	all := AccessProperty(nil)
	assert.True(t, all.Applies(field))

	noPrivate := AccessProperty(rules.Properties{"applyToPrivate": "false"})
	assert.False(t, noPrivate.Applies(field))
}

func TestInterfaceMembersImplicitlyPublic(t *testing.T) {
	tree := parse(t, "interface F { void m(); }")
	method, ok := findFirst(tree, "method_declaration")
	require.True(t, ok)

	assert.True(t, InInterface(method))
	onlyPublic := AccessFilter{Public: true}
	assert.True(t, onlyPublic.Applies(method))
}

func TestHasAnnotation(t *testing.T) {
	tree := parse(t, "class F { @Override public void m() {} @java.lang.Override public void n() {} }")
	var methods []cst.Node
	for node := range tree.Walk() {
		if node.Kind() == "method_declaration" {
			methods = append(methods, node)
		}
	}
	require.Len(t, methods, 2)
	assert.True(t, HasAnnotation(methods[0], "Override"))
	assert.True(t, HasAnnotation(methods[1], "Override"), "fully qualified form matches")
	assert.False(t, HasAnnotation(methods[0], "Deprecated"))
}

func TestEnclosingTypeName(t *testing.T) {
	tree := parse(t, "class Outer { class Inner { void m() {} } }")
	method, ok := findFirst(tree, "method_declaration")
	require.True(t, ok)

	name, ok := EnclosingTypeName(method)
	require.True(t, ok)
	assert.Equal(t, "Inner", name)
}
