// Package unusedimports implements the UnusedImports checkstyle module.
package unusedimports

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
	"github.com/wharflab/jstyle/internal/rules/importutil"
)

// ModuleName is the checkstyle module name.
const ModuleName = "UnusedImports"

var relevantKinds = []string{"program"}

// javadocWord matches identifier-shaped tokens in doc comments, catching
// {@link Foo}, @see Foo and plain type mentions alike.
var javadocWord = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Rule reports imports whose simple name is never referenced. Wildcard
// imports cannot be verified without type resolution and are skipped.
//
// Properties:
//   - processJavadoc (default true): type references inside doc comments
//     count as usage.
type Rule struct {
	processJavadoc bool
}

// New constructs the rule from module properties.
func New(props rules.Properties) *Rule {
	return &Rule{processJavadoc: props.Bool("processJavadoc", true)}
}

// Name implements rules.Rule.
func (r *Rule) Name() string { return ModuleName }

// RelevantKinds implements rules.Rule.
func (r *Rule) RelevantKinds() []string { return relevantKinds }

// Check implements rules.Rule. The rule anchors on the program root and
// performs its own traversal; import usage is a whole-file property.
func (r *Rule) Check(ctx *rules.Context, node cst.Node) []rules.Diagnostic {
	if node.Kind() != "program" {
		return nil
	}

	imports := importutil.Collect(node)
	if len(imports) == 0 {
		return nil
	}
	usages := r.collectUsages(node)

	var diags []rules.Diagnostic
	for _, imp := range imports {
		if imp.Wildcard {
			continue
		}
		if _, used := usages[imp.SimpleName]; used {
			continue
		}
		diags = append(diags, rules.NewDiagnostic(
			"unusedImport",
			fmt.Sprintf("Unused import - %s.", imp.Path),
			imp.Range,
		).WithFix(rules.SafeEdit(rules.Deletion(imp.DeletionRange(ctx.Source())))))
	}
	return diags
}

// collectUsages gathers every identifier referenced outside the import
// declarations themselves, optionally including doc-comment words.
func (r *Rule) collectUsages(root cst.Node) map[string]struct{} {
	usages := make(map[string]struct{})
	var walk func(n cst.Node, inImport bool)
	walk = func(n cst.Node, inImport bool) {
		kind := n.Kind()
		if kind == "import_declaration" {
			inImport = true
		}
		switch kind {
		case "identifier", "type_identifier":
			if !inImport {
				usages[n.Text()] = struct{}{}
			}
		case "block_comment":
			if r.processJavadoc && strings.HasPrefix(n.Text(), "/**") {
				for _, word := range javadocWord.FindAllString(n.Text(), -1) {
					usages[word] = struct{}{}
				}
			}
		}
		for _, c := range n.NamedChildren() {
			walk(c, inImport)
		}
	}
	walk(root, false)
	return usages
}

func init() {
	rules.Register(ModuleName, func(props rules.Properties) rules.Rule {
		return New(props)
	})
}
