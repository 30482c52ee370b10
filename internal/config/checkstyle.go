package config

import (
	"encoding/xml"
	"os"
)

// Property is a <property name=... value=.../> element of a checkstyle
// module.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Module is a <module name=...> element: a rule or a container of rules.
// The format is DTD-backed but validation is advisory; any well-formed XML
// matching this shape is accepted, and unknown modules or properties pass
// through untouched for forward compatibility.
type Module struct {
	Name       string     `xml:"name,attr"`
	Properties []Property `xml:"property"`
	Modules    []Module   `xml:"module"`
}

// Property returns a property value by name.
func (m *Module) Property(name string) (string, bool) {
	for _, p := range m.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// PropertyMap returns the module's properties as a map.
func (m *Module) PropertyMap() map[string]string {
	props := make(map[string]string, len(m.Properties))
	for _, p := range m.Properties {
		props[p.Name] = p.Value
	}
	return props
}

// Checkstyle is a parsed checkstyle.xml document. The root module is
// conventionally named "Checker"; it holds file-level modules plus one
// "TreeWalker" container whose children are the CST-walking rules.
type Checkstyle struct {
	Module
}

// ParseCheckstyle parses checkstyle XML content.
func ParseCheckstyle(content []byte) (*Checkstyle, error) {
	var root Module
	if err := xml.Unmarshal(content, &root); err != nil {
		return nil, newError(KindXML, err)
	}
	return &Checkstyle{Module: root}, nil
}

// LoadCheckstyle reads and parses a checkstyle.xml file.
func LoadCheckstyle(path string) (*Checkstyle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindIO, err)
	}
	return ParseCheckstyle(content)
}

// TreeWalker returns the TreeWalker container module, if present.
func (c *Checkstyle) TreeWalker() (*Module, bool) {
	for i := range c.Modules {
		if c.Modules[i].Name == "TreeWalker" {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

// Rules returns the rule modules in XML declaration order: the TreeWalker's
// children followed by file-level modules declared outside it. File-level
// modules are authored against the same rule contract, so downstream layers
// treat both uniformly.
func (c *Checkstyle) Rules() []Module {
	var rules []Module
	if tw, ok := c.TreeWalker(); ok {
		rules = append(rules, tw.Modules...)
	}
	for _, m := range c.Modules {
		if m.Name != "TreeWalker" {
			rules = append(rules, m)
		}
	}
	return rules
}
