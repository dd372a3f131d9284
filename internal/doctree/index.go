package doctree

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrSealed is returned when registering after Seal.
var ErrSealed = errors.Base("doctree: registrar is sealed")

// DuplicateIDError reports a reference id registered twice.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("doctree: duplicate reference id %q", e.ID)
}

// DanglingReferenceError reports a member that appears in a compound document
// but was never registered from the index.
type DanglingReferenceError struct {
	ID       string
	Compound string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("doctree: %s: member %q is not in the index", e.Compound, e.ID)
}

// Registrar collects reference ids during the first build phase.
type Registrar struct {
	compounds map[string]*Compound
	members   map[string]*Member
	sealed    bool
}

func NewRegistrar() *Registrar {
	return &Registrar{
		compounds: make(map[string]*Compound),
		members:   make(map[string]*Member),
	}
}

func (r *Registrar) claim(id string) error {
	if r.sealed {
		return errors.WithStack(ErrSealed)
	}
	if _, ok := r.compounds[id]; ok {
		return errors.WithStack(&DuplicateIDError{ID: id})
	}
	if _, ok := r.members[id]; ok {
		return errors.WithStack(&DuplicateIDError{ID: id})
	}
	return nil
}

// RegisterCompound records c under its RefID.
func (r *Registrar) RegisterCompound(c *Compound) error {
	if err := r.claim(c.RefID); err != nil {
		return err
	}
	r.compounds[c.RefID] = c
	return nil
}

// RegisterMember records m under its RefID.
func (r *Registrar) RegisterMember(m *Member) error {
	if err := r.claim(m.RefID); err != nil {
		return err
	}
	r.members[m.RefID] = m
	return nil
}

// Seal ends registration and hands the ids over to a read-only Index.
func (r *Registrar) Seal() *Index {
	r.sealed = true
	return &Index{compounds: r.compounds, members: r.members}
}

// Index resolves reference ids to compounds and members. It never changes
// after Seal.
type Index struct {
	compounds map[string]*Compound
	members   map[string]*Member
}

func (x *Index) Compound(id string) (*Compound, bool) {
	c, ok := x.compounds[id]
	return c, ok
}

func (x *Index) Member(id string) (*Member, bool) {
	m, ok := x.members[id]
	return m, ok
}

// Anchor returns the in-page anchor for id. Compounds and members are
// anchored by their reference id.
func (x *Index) Anchor(id string) (string, bool) {
	if _, ok := x.compounds[id]; ok {
		return id, true
	}
	if _, ok := x.members[id]; ok {
		return id, true
	}
	return "", false
}

// IDs returns the number of registered ids.
func (x *Index) IDs() int {
	return len(x.compounds) + len(x.members)
}
