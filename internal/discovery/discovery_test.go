package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("class X {}\n"), 0o644))
}

func TestExpandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.java"))
	writeFile(t, filepath.Join(dir, "sub", "B.java"))
	writeFile(t, filepath.Join(dir, "sub", "notes.txt"))

	files, err := Expand([]string{dir}, Options{})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "A.java"), files[0])
	assert.Equal(t, filepath.Join(dir, "sub", "B.java"), files[1])
}

func TestExpandExplicitFileKeptVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weird.txt")
	writeFile(t, path)

	files, err := Expand([]string{path}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestExpandExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.java"))
	writeFile(t, filepath.Join(dir, "generated", "B.java"))

	files, err := Expand([]string{dir}, Options{ExcludePatterns: []string{"generated/**"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "A.java")}, files)
}

func TestExpandDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	writeFile(t, path)

	files, err := Expand([]string{path, path}, Options{})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestExpandMissingPath(t *testing.T) {
	_, err := Expand([]string{filepath.Join(t.TempDir(), "absent")}, Options{})
	assert.Error(t, err)
}

func TestIsJavaFile(t *testing.T) {
	assert.True(t, IsJavaFile("Foo.java"))
	assert.True(t, IsJavaFile("FOO.JAVA"))
	assert.False(t, IsJavaFile("Foo.kt"))
}
