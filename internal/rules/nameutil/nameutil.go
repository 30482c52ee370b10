// Package nameutil carries the format/access-scope machinery shared by the
// naming rules (TypeName, MethodName, MemberName, ...).
package nameutil

import (
	"fmt"
	"regexp"

	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/rules"
)

// Format is a compiled name pattern together with its source string for
// error messages.
type Format struct {
	Pattern *regexp.Regexp
	Source  string
}

// FormatProperty reads the conventional `format` property, falling back to
// the rule's documented default on a missing or malformed pattern.
func FormatProperty(props rules.Properties, def string) Format {
	source := props.String("format", def)
	re, err := regexp.Compile(source)
	if err != nil {
		source = def
		re = regexp.MustCompile(def)
	}
	return Format{Pattern: re, Source: source}
}

// Message renders checkstyle's canonical name-pattern message.
func (f Format) Message(name string) string {
	return fmt.Sprintf("Name '%s' must match pattern '%s'.", name, f.Source)
}

// AccessFilter selects which member visibilities a rule applies to, from the
// applyToPublic/Protected/Package/Private properties (all default true).
type AccessFilter struct {
	Public    bool
	Protected bool
	Package   bool
	Private   bool
}

// AccessProperty reads the applyTo* properties.
func AccessProperty(props rules.Properties) AccessFilter {
	return AccessFilter{
		Public:    props.Bool("applyToPublic", true),
		Protected: props.Bool("applyToProtected", true),
		Package:   props.Bool("applyToPackage", true),
		Private:   props.Bool("applyToPrivate", true),
	}
}

// Applies reports whether a declaration with the given modifiers falls in
// scope. Interface members without an explicit modifier are implicitly
// public.
func (f AccessFilter) Applies(decl cst.Node) bool {
	mods, _ := decl.ChildOfKind("modifiers")
	public := HasModifier(mods, "public")
	protected := HasModifier(mods, "protected")
	private := HasModifier(mods, "private")

	if !public && !private && !protected && InInterface(decl) {
		public = true
	}
	pkg := !public && !protected && !private

	return (f.Public && public) ||
		(f.Protected && protected) ||
		(f.Package && pkg) ||
		(f.Private && private)
}

// HasModifier reports whether a modifiers node contains the keyword.
// A zero-value node (declaration without modifiers) has none.
func HasModifier(modifiers cst.Node, keyword string) bool {
	if modifiers.IsZero() {
		return false
	}
	for _, c := range modifiers.Children() {
		if c.Kind() == keyword {
			return true
		}
	}
	return false
}

// InInterface reports whether the declaration sits directly in an interface
// body rather than a class or enum body.
func InInterface(node cst.Node) bool {
	current, ok := node.Parent()
	for ok {
		switch current.Kind() {
		case "interface_body", "annotation_type_body":
			return true
		case "class_body", "enum_body", "record_declaration":
			return false
		}
		current, ok = current.Parent()
	}
	return false
}

// HasAnnotation reports whether a declaration's modifiers carry an
// annotation whose simple name matches (e.g. "Override", matching both
// @Override and @java.lang.Override).
func HasAnnotation(decl cst.Node, simpleName string) bool {
	mods, ok := decl.ChildOfKind("modifiers")
	if !ok {
		return false
	}
	for _, c := range mods.Children() {
		switch c.Kind() {
		case "marker_annotation", "annotation":
			if annotationSimpleName(c) == simpleName {
				return true
			}
		}
	}
	return false
}

// annotationSimpleName returns the last identifier of the annotation's name.
func annotationSimpleName(annotation cst.Node) string {
	name, ok := annotation.ChildByFieldName("name")
	if !ok {
		return ""
	}
	for name.Kind() == "scoped_identifier" {
		next, ok := name.ChildByFieldName("name")
		if !ok {
			break
		}
		name = next
	}
	return name.Text()
}

// FieldClass reports whether a field or variable declaration carries the
// static and final modifiers.
func FieldClass(decl cst.Node) (isStatic, isFinal bool) {
	mods, ok := decl.ChildOfKind("modifiers")
	if !ok {
		return false, false
	}
	return HasModifier(mods, "static"), HasModifier(mods, "final")
}

// DeclaratorNames returns the name nodes of every variable_declarator child
// of a field or local variable declaration.
func DeclaratorNames(decl cst.Node) []cst.Node {
	var names []cst.Node
	for _, c := range decl.NamedChildren() {
		if c.Kind() != "variable_declarator" {
			continue
		}
		if name, ok := c.ChildByFieldName("name"); ok {
			names = append(names, name)
		}
	}
	return names
}

// EnclosingTypeName returns the simple name of the nearest enclosing class
// or enum declaration.
func EnclosingTypeName(node cst.Node) (string, bool) {
	current, ok := node.Parent()
	for ok {
		kind := current.Kind()
		if kind == "class_body" || kind == "enum_body" {
			decl, ok := current.Parent()
			if ok && (decl.Kind() == "class_declaration" || decl.Kind() == "enum_declaration") {
				if name, ok := decl.ChildByFieldName("name"); ok {
					return name.Text(), true
				}
			}
		}
		current, ok = current.Parent()
	}
	return "", false
}
