// Package discovery expands CLI path arguments to the Java files to lint.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches Java source files under a directory argument.
const DefaultPattern = "**/*.java"

// Options configures file discovery behavior.
type Options struct {
	// Pattern is the doublestar glob applied inside directory arguments
	// (default: DefaultPattern).
	Pattern string

	// ExcludePatterns are globs removed from the results, matched against
	// the slash-separated path relative to the walked directory.
	ExcludePatterns []string
}

// Expand resolves each argument: files are taken as-is, directories are
// walked for files matching the pattern. Results are deduplicated and
// sorted so downstream output is deterministic regardless of argument
// order.
func Expand(args []string, opts Options) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, dup := seen[path]; !dup {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			ok, err := doublestar.Match(pattern, rel)
			if err != nil || !ok {
				return err
			}
			for _, exclude := range opts.ExcludePatterns {
				if excluded, _ := doublestar.Match(exclude, rel); excluded {
					return nil
				}
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsJavaFile reports whether a path has the .java extension.
func IsJavaFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".java")
}
