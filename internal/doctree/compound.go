// Package doctree builds the namespace/class hierarchy described by a Doxygen
// XML directory and prepares it for rendering.
//
// Building happens in two phases. Every compound and member id from index.xml
// is registered first; the [Registrar] is then sealed into a read-only [Index]
// and only after that are compound documents parsed, so cross references in
// descriptions always resolve against a complete id set.
package doctree

import (
	"strings"
)

// Separator joins the segments of a qualified C++ name.
const Separator = "::"

// Base is one entry of a compound's base class list.
type Base struct {
	Visibility string
	Name       string
}

// Compound is a namespace, class, struct, union or typedef. A compound whose
// Kind is empty is a placeholder for a path segment that was never documented
// on its own.
type Compound struct {
	Name       string
	Path       []string
	FullName   string
	RefID      string
	Kind       string
	Visibility string
	Language   string

	Brief    string
	Detailed string
	Bases    []Base

	// Proto is the one-line Markdown prototype, Signature the same text
	// without formatting.
	Proto     string
	Signature string

	Members []*Member

	// Filled by Tree.Filter.
	FilteredMembers  []*Member
	FilteredChildren []*Compound

	children []*Compound
	byName   map[string]*Compound
}

func newCompound(path []string) *Compound {
	c := &Compound{
		Path:     path,
		FullName: strings.Join(path, Separator),
		byName:   make(map[string]*Compound),
	}
	if len(path) > 0 {
		c.Name = path[len(path)-1]
	}
	return c
}

// Children returns the direct children in insertion order.
func (c *Compound) Children() []*Compound {
	return c.children
}

// Child returns the direct child named name, or nil.
func (c *Compound) Child(name string) *Compound {
	return c.byName[name]
}

// IsPlaceholder reports whether the compound was only created as part of a
// longer path.
func (c *Compound) IsPlaceholder() bool {
	return c.Kind == ""
}

// Find walks path below c. With create set, missing segments are added as
// placeholders.
func (c *Compound) Find(path []string, create bool) *Compound {
	node := c
	for i, name := range path {
		next := node.Child(name)
		if next == nil {
			if !create {
				return nil
			}
			p := make([]string, 0, len(c.Path)+i+1)
			p = append(p, c.Path...)
			p = append(p, path[:i+1]...)
			next = newCompound(p)
			node.byName[name] = next
			node.children = append(node.children, next)
		}
		node = next
	}
	return node
}

// Walk calls fn for c and every descendant, parents first, ignoring filters.
func (c *Compound) Walk(fn func(*Compound)) {
	fn(c)
	for _, child := range c.Children() {
		child.Walk(fn)
	}
}

// SplitName splits a qualified name on "::", leaving separators inside
// template argument lists alone.
func SplitName(name string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 && strings.HasPrefix(name[i:], Separator) {
				parts = append(parts, name[start:i])
				start = i + len(Separator)
				i++
			}
		}
	}
	return append(parts, name[start:])
}

// Member is a function, variable, friend or other declaration owned by one
// compound.
type Member struct {
	Name       string
	RefID      string
	Kind       string
	Visibility string
	Section    string

	Brief    string
	Detailed string

	Proto     string
	Signature string
}
