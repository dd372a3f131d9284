package doctree

// Filter projects every compound onto the configured sections and kinds.
// Members are grouped by section and children by kind; groups are emitted in
// the order given and anything not listed is dropped. Relative order inside a
// group is kept.
func (t *Tree) Filter(sections, kinds []string) {
	t.Root.Walk(func(c *Compound) {
		c.FilteredMembers = partition(c.Members, func(m *Member) string { return m.Section }, sections)
		c.FilteredChildren = partition(c.children, func(c *Compound) string { return c.Kind }, kinds)
	})
}

// Compounds returns the filtered compounds depth first, parents before their
// children. The root itself is not included.
func (t *Tree) Compounds() []*Compound {
	var all []*Compound
	var visit func(*Compound)
	visit = func(c *Compound) {
		for _, child := range c.FilteredChildren {
			all = append(all, child)
			visit(child)
		}
	}
	visit(t.Root)
	return all
}

func partition[T any](items []T, key func(T) string, order []string) []T {
	groups := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	var out []T
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, groups[k]...)
	}
	return out
}
