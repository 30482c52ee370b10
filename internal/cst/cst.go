// Package cst wraps the tree-sitter Java grammar in the node vocabulary the
// rule engine speaks.
//
// This package is the only place where tree-sitter types appear; rules see
// just [Node] and its accessors. Nodes are lightweight copyable values that
// carry the shared source alongside the raw tree handle so text accessors
// stay safe. The tree owns all node storage: a Node must not be retained
// past the [Tree] it came from.
package cst

import (
	"errors"
	"iter"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/wharflab/jstyle/internal/span"
)

// ErrParse indicates the Java grammar rejected the source.
var ErrParse = errors.New("cst: source failed to parse")

var javaLanguage = sitter.NewLanguage(tree_sitter_java.Language())

// Tree is a parsed Java compilation unit together with its source.
type Tree struct {
	inner  *sitter.Tree
	source []byte
}

// Parse parses Java source. It returns ErrParse when the grammar could not
// produce an error-free tree; per the engine contract such files yield no
// diagnostics.
func Parse(source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(javaLanguage); err != nil {
		return nil, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, ErrParse
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, ErrParse
	}
	return &Tree{inner: tree, source: source}, nil
}

// Close releases the tree's native storage. Nodes obtained from the tree are
// invalid afterwards.
func (t *Tree) Close() {
	t.inner.Close()
}

// Source returns the source the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.source
}

// Root returns the root node (kind "program").
func (t *Tree) Root() Node {
	return Node{inner: t.inner.RootNode(), source: t.source}
}

// Walk yields every node of the tree exactly once in pre-order document
// order. The iteration is single-pass; callers that need to revisit nodes
// cache them.
func (t *Tree) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		cursor := t.inner.Walk()
		defer cursor.Close()
		for {
			if !yield(Node{inner: cursor.Node(), source: t.source}) {
				return
			}
			if cursor.GotoFirstChild() {
				continue
			}
			for !cursor.GotoNextSibling() {
				if !cursor.GotoParent() {
					return
				}
			}
		}
	}
}

// Node is a handle into the parse tree. The zero value is invalid; use the
// ok result of navigation methods before touching a returned node.
type Node struct {
	inner  *sitter.Node
	source []byte
}

// IsZero reports whether the node is the invalid zero value.
func (n Node) IsZero() bool {
	return n.inner == nil
}

// Kind returns the grammar's node kind string (e.g. "binary_expression").
func (n Node) Kind() string {
	return n.inner.Kind()
}

// Range returns the node's byte range in the source.
func (n Node) Range() span.Range {
	return span.New(uint32(n.inner.StartByte()), uint32(n.inner.EndByte()))
}

// Text returns the source text covered by the node.
func (n Node) Text() string {
	return n.inner.Utf8Text(n.source)
}

// IsNamed reports whether the node is a named grammar node rather than an
// anonymous token.
func (n Node) IsNamed() bool {
	return n.inner.IsNamed()
}

// Parent returns the parent node, if any.
func (n Node) Parent() (Node, bool) {
	p := n.inner.Parent()
	if p == nil {
		return Node{}, false
	}
	return Node{inner: p, source: n.source}, true
}

// Children returns all children, tokens included, in document order.
func (n Node) Children() []Node {
	count := n.inner.ChildCount()
	children := make([]Node, 0, count)
	for i := uint(0); i < count; i++ {
		children = append(children, Node{inner: n.inner.Child(i), source: n.source})
	}
	return children
}

// NamedChildren returns the named children in document order.
func (n Node) NamedChildren() []Node {
	count := n.inner.NamedChildCount()
	children := make([]Node, 0, count)
	for i := uint(0); i < count; i++ {
		children = append(children, Node{inner: n.inner.NamedChild(i), source: n.source})
	}
	return children
}

// ChildByFieldName looks up a child by its grammar field name (e.g. "body").
func (n Node) ChildByFieldName(name string) (Node, bool) {
	c := n.inner.ChildByFieldName(name)
	if c == nil {
		return Node{}, false
	}
	return Node{inner: c, source: n.source}, true
}

// NextNamedSibling returns the following named sibling, if any.
func (n Node) NextNamedSibling() (Node, bool) {
	s := n.inner.NextNamedSibling()
	if s == nil {
		return Node{}, false
	}
	return Node{inner: s, source: n.source}, true
}

// FindChild returns the first child (tokens included) satisfying the
// predicate.
func (n Node) FindChild(pred func(Node) bool) (Node, bool) {
	for _, c := range n.Children() {
		if pred(c) {
			return c, true
		}
	}
	return Node{}, false
}

// ChildOfKind returns the first child token or node of the given kind.
func (n Node) ChildOfKind(kind string) (Node, bool) {
	return n.FindChild(func(c Node) bool { return c.Kind() == kind })
}

// IsComment reports whether the node is a line or block comment.
func (n Node) IsComment() bool {
	k := n.Kind()
	return k == "line_comment" || k == "block_comment"
}
