// Package rules defines the rule contract, the diagnostic/fix model, and the
// module-name registry the configuration layer instantiates rules through.
//
// A rule is an emitter of diagnostics over CST nodes. The runner walks the
// tree once in pre-order and dispatches every node to each rule whose
// relevance filter matches the node's kind. Check functions are pure: no
// shared-state mutation, deterministic output, and identical diagnostics
// whether dispatched per-node or run manually over the whole tree.
package rules

import (
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/sourcemap"
)

// Context carries the per-file state shared by all rules during a run.
// It is read-only for rules; the source and tree are never mutated while
// checks execute.
type Context struct {
	// File is the path of the file under check, used only for reporting.
	File string

	source []byte
	sm     *sourcemap.SourceMap
}

// NewContext creates a check context for one file.
func NewContext(file string, source []byte) *Context {
	return &Context{File: file, source: source, sm: sourcemap.New(source)}
}

// Source returns the raw source bytes. Rules must not modify them.
func (c *Context) Source() []byte {
	return c.source
}

// SourceMap returns the shared line index so rules avoid rebuilding it.
func (c *Context) SourceMap() *sourcemap.SourceMap {
	return c.sm
}

// Rule is the interface every lint rule implements.
type Rule interface {
	// Name returns the checkstyle module name (e.g. "WhitespaceAround").
	Name() string

	// RelevantKinds lists the CST node kinds the rule wants dispatched.
	// Nil or empty means every node. Relevance is a dispatch optimization,
	// never a correctness constraint.
	RelevantKinds() []string

	// Check inspects one node and returns any diagnostics anchored to it.
	Check(ctx *Context, node cst.Node) []Diagnostic
}
