package doctree

import (
	"context"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/agentflare-ai/doxygen2md/internal/doxygen"
	"github.com/agentflare-ai/doxygen2md/internal/markup"
)

// Source provides the documents of one Doxygen XML directory.
type Source interface {
	Index(ctx context.Context) (*doxygen.Index, error)
	Compound(refid string) (*doxygen.CompoundDef, error)
}

// Options control how the tree is parsed and projected.
type Options struct {
	// Language tags fenced code blocks.
	Language string
	// MemberSections lists the member sections to keep, in output order.
	MemberSections []string
	// CompoundKinds lists the child compound kinds to keep, in output order.
	CompoundKinds []string
}

// documentKinds are index entries describing files and pages rather than C++
// scopes.
var documentKinds = map[string]bool{
	"file":    true,
	"dir":     true,
	"page":    true,
	"group":   true,
	"example": true,
}

// Tree is the result of Build.
type Tree struct {
	Root  *Compound
	Index *Index
}

type entry struct {
	refid string
	node  *Compound
}

// Build loads the index from src, builds the compound hierarchy, parses every
// compound document and applies the filters from opts.
func Build(ctx context.Context, src Source, opts Options) (*Tree, error) {
	idx, err := src.Index(ctx)
	if err != nil {
		return nil, errors.Errorf("loading index: %w", err)
	}

	root := newCompound(nil)
	reg := NewRegistrar()
	var entries []entry

	for _, ic := range idx.Compounds {
		if documentKinds[ic.Kind] {
			slogctx.Debug(ctx, "skipping document compound", "name", ic.Name, "kind", ic.Kind)
			continue
		}
		node := root.Find(SplitName(ic.Name), true)
		node.RefID = ic.RefID
		node.Kind = ic.Kind
		if err := reg.RegisterCompound(node); err != nil {
			return nil, errors.Errorf("registering %s: %w", ic.Name, err)
		}
		for _, im := range ic.Members {
			m := &Member{Name: im.Name, RefID: im.RefID, Kind: im.Kind}
			if err := reg.RegisterMember(m); err != nil {
				return nil, errors.Errorf("registering %s%s%s: %w", ic.Name, Separator, im.Name, err)
			}
			node.Members = append(node.Members, m)
		}
		entries = append(entries, entry{refid: ic.RefID, node: node})
	}

	index := reg.Seal()
	slogctx.Debug(ctx, "registered reference ids", "ids", index.IDs(), "compounds", len(entries))

	p := &parser{
		index:    index,
		renderer: markup.Renderer{Language: opts.Language, Links: index},
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}
		def, err := src.Compound(e.refid)
		if err != nil {
			return nil, errors.Errorf("loading compound %s: %w", e.refid, err)
		}
		if err := p.compound(ctx, e.node, def); err != nil {
			return nil, err
		}
	}

	tree := &Tree{Root: root, Index: index}
	tree.Filter(opts.MemberSections, opts.CompoundKinds)
	return tree, nil
}

// find returns the compound with the given qualified name, or nil.
func (t *Tree) find(name string) *Compound {
	return t.Root.Find(SplitName(name), false)
}
