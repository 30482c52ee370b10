// Package importutil carries the import-declaration scanning shared by the
// import rules (UnusedImports, RedundantImport).
package importutil

import (
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/span"
)

// Import describes one import declaration.
type Import struct {
	// Path is the dotted import path without the "import" keyword,
	// "static", or the trailing ".*".
	Path string

	// SimpleName is the last path segment; empty for wildcard imports.
	SimpleName string

	// Static marks a static import.
	Static bool

	// Wildcard marks an on-demand import (trailing ".*").
	Wildcard bool

	// Range covers the whole import declaration including the semicolon.
	Range span.Range
}

// DeletionRange extends the import's range over the trailing newline so a
// deletion fix removes the whole line.
func (i Import) DeletionRange(source []byte) span.Range {
	end := i.Range.End
	if end < uint32(len(source)) && source[end] == '\r' {
		end++
	}
	if end < uint32(len(source)) && source[end] == '\n' {
		end++
	}
	return span.New(i.Range.Start, end)
}

// Collect gathers the import declarations of a compilation unit in document
// order. The node must be the program root.
func Collect(root cst.Node) []Import {
	var imports []Import
	for _, decl := range root.NamedChildren() {
		if decl.Kind() != "import_declaration" {
			continue
		}

		imp := Import{Range: decl.Range()}
		for _, c := range decl.Children() {
			switch c.Kind() {
			case "static":
				imp.Static = true
			case "asterisk":
				imp.Wildcard = true
			case "identifier", "scoped_identifier":
				imp.Path = c.Text()
			}
		}
		if imp.Path == "" {
			continue
		}
		if !imp.Wildcard {
			if i := strings.LastIndexByte(imp.Path, '.'); i >= 0 {
				imp.SimpleName = imp.Path[i+1:]
			} else {
				imp.SimpleName = imp.Path
			}
		}
		imports = append(imports, imp)
	}
	return imports
}

// PackageName returns the compilation unit's package, or "" for the default
// package.
func PackageName(root cst.Node) string {
	for _, decl := range root.NamedChildren() {
		if decl.Kind() == "package_declaration" {
			for _, c := range decl.Children() {
				switch c.Kind() {
				case "identifier", "scoped_identifier":
					return c.Text()
				}
			}
		}
	}
	return ""
}
