package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"A", []string{"A"}},
		{"A::B::C", []string{"A", "B", "C"}},
		{"ns::Map< std::string, int >", []string{"ns", "Map< std::string, int >"}},
		{"ns::Outer< a::B >::Inner", []string{"ns", "Outer< a::B >", "Inner"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitName(tt.name), tt.name)
	}
}

func TestFindCreatesPath(t *testing.T) {
	root := newCompound(nil)
	c := root.Find([]string{"A", "B", "C"}, true)
	require.NotNil(t, c)
	assert.Equal(t, []string{"A", "B", "C"}, c.Path)
	assert.Equal(t, "A::B::C", c.FullName)
	assert.Equal(t, "C", c.Name)

	b := root.Child("A").Child("B")
	require.NotNil(t, b)
	assert.Equal(t, []string{"A", "B"}, b.Path)
	assert.True(t, b.IsPlaceholder())
	assert.Same(t, c, b.Child("C"))

	assert.Same(t, c, root.Find([]string{"A", "B", "C"}, false))
	assert.Nil(t, root.Find([]string{"A", "X"}, false))
}

func TestFindKeepsInsertionOrder(t *testing.T) {
	root := newCompound(nil)
	root.Find([]string{"ns", "Zeta"}, true)
	root.Find([]string{"ns", "Alpha"}, true)
	root.Find([]string{"ns", "Zeta"}, true)

	var names []string
	for _, c := range root.Child("ns").Children() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Zeta", "Alpha"}, names)
}

func TestRegistrar(t *testing.T) {
	reg := NewRegistrar()
	c := &Compound{RefID: "classfoo"}
	m := &Member{RefID: "classfoo_1a1"}
	require.NoError(t, reg.RegisterCompound(c))
	require.NoError(t, reg.RegisterMember(m))

	err := reg.RegisterMember(&Member{RefID: "classfoo"})
	var dup *DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "classfoo", dup.ID)

	idx := reg.Seal()
	assert.Equal(t, 2, idx.IDs())

	got, ok := idx.Compound("classfoo")
	require.True(t, ok)
	assert.Same(t, c, got)
	gotMember, ok := idx.Member("classfoo_1a1")
	require.True(t, ok)
	assert.Same(t, m, gotMember)

	anchor, ok := idx.Anchor("classfoo_1a1")
	assert.True(t, ok)
	assert.Equal(t, "classfoo_1a1", anchor)
	_, ok = idx.Anchor("missing")
	assert.False(t, ok)

	err = reg.RegisterCompound(&Compound{RefID: "late"})
	assert.True(t, errors.Is(err, ErrSealed))
	_, ok = idx.Compound("late")
	assert.False(t, ok)
}
