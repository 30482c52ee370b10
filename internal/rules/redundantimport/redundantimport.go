// Package redundantimport implements the RedundantImport checkstyle module:
// duplicate imports, imports from java.lang, and imports from the file's
// own package are redundant.
package redundantimport

import (
	"fmt"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/importutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "RedundantImport"

var relevantKinds = []string{"program"}

// Rule reports redundant imports with a safe line-deletion fix. The module
// has no properties.
type Rule struct{}

// New constructs the rule.
func New(rules.Properties) *Rule {
	return &Rule{}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "program" {
		return nil
	}

	pkg := importutil.PackageName(node)
	seen := make(map[string]struct{})
	var diags []rules.Diagnostic

	flag := func(imp importutil.Import, kind, message string) {
		diags = append(diags, rules.NewDiagnostic(kind, message, imp.Range).
			WithFix(rules.SafeEdit(rules.Deletion(imp.DeletionRange(ctx.Source())))))
	}

	for _, imp := range importutil.Collect(node) {
		key := imp.Path
		if imp.Static {
			key = "static " + key
		}
		if imp.Wildcard {
			key += ".*"
		}

		if _, dup := seen[key]; dup {
			flag(imp, "importDuplicate", fmt.Sprintf("Duplicate import to line - %s.", imp.Path))
			continue
		}
		seen[key] = struct{}{}

		if imp.Static {
			continue
		}
		if strings.HasPrefix(imp.Path, "java.lang.") &&
			!strings.Contains(imp.Path[len("java.lang."):], ".") {
			flag(imp, "importLang", fmt.Sprintf("Redundant import from the java.lang package - %s.", imp.Path))
			continue
		}
		if pkg != "" && packageOf(imp) == pkg {
			flag(imp, "importSamePackage", fmt.Sprintf("Redundant import from the same package - %s.", imp.Path))
		}
	}
	return diags
}

func packageOf(imp importutil.Import) string {
	if imp.Wildcard {
		return imp.Path
	}
	if i := strings.LastIndexByte(imp.Path, '.'); i >= 0 {
		return imp.Path[:i]
	}
	return ""
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
