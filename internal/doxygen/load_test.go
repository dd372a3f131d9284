package doxygen

import (
	"context"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/doxygen2md/internal/markup"
	"github.com/agentflare-ai/doxygen2md/internal/testutil"
)

func fixtureDir(t *testing.T) *Dir {
	return NewDir(testutil.ArchiveFS(t, testutil.Fixture("postgres.txtar")))
}

func TestDirIndex(t *testing.T) {
	idx, err := fixtureDir(t).Index(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.9.1", idx.Version)
	require.Len(t, idx.Compounds, 7)

	conn := idx.Compounds[0]
	assert.Equal(t, "classdb_1_1postgres_1_1_connection", conn.RefID)
	assert.Equal(t, "class", conn.Kind)
	assert.Equal(t, "db::postgres::Connection", conn.Name)
	require.Len(t, conn.Members, 10)
	assert.Equal(t, IndexMember{RefID: "classdb_1_1postgres_1_1_connection_1a05", Kind: "function", Name: "Count"}, conn.Members[4])

	assert.Equal(t, "file", idx.Compounds[6].Kind)
}

func TestDirCompound(t *testing.T) {
	def, err := fixtureDir(t).Compound("classdb_1_1postgres_1_1_connection")
	require.NoError(t, err)
	assert.Equal(t, "db::postgres::Connection", def.Name)
	assert.Equal(t, "C++", def.Language)
	require.Len(t, def.Bases, 1)
	assert.Equal(t, "Noncopyable", def.Bases[0].Name)

	var kinds []string
	for _, s := range def.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []string{"friend", "public-attrib", "public-func", "private-func", "private-attrib"}, kinds)

	execute := def.Sections[2].Members[5]
	assert.Equal(t, "execute", execute.Name)
	assert.True(t, Flag(execute.Inline))
	require.NotNil(t, execute.TemplateParams)
	require.Len(t, execute.TemplateParams.Params, 1)
	assert.Equal(t, "Args", execute.TemplateParams.Params[0].Name())
	require.Len(t, execute.Params, 2)
	assert.Equal(t, "sql", execute.Params[0].Name())
	typ, err := markup.Renderer{}.RenderTrimmed(execute.Params[0].Type.Node)
	require.NoError(t, err)
	assert.Equal(t, "const char *", typ)
}

func TestDirCompoundMissing(t *testing.T) {
	_, err := fixtureDir(t).Compound("classnope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening classnope.xml")
}

func TestDirIndexCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fixtureDir(t).Index(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarkupMixedContent(t *testing.T) {
	var v struct {
		Type Markup `xml:"type"`
	}
	src := `<m><type>const <ref refid="classfoo" kindref="compound">Foo</ref> &amp;</type></m>`
	require.NoError(t, xml.Unmarshal([]byte(src), &v))

	n := v.Type.Node
	assert.Equal(t, markup.KindContainer, n.Kind())
	require.Len(t, n.Children, 3)
	assert.Equal(t, markup.TextNode("const "), n.Children[0])
	assert.Equal(t, "ref", n.Children[1].Tag)
	assert.Equal(t, "classfoo", n.Children[1].Attr("refid"))
	assert.Equal(t, []markup.Node{markup.TextNode("Foo")}, n.Children[1].Children)
	assert.Equal(t, markup.TextNode(" &"), n.Children[2])
	md, err := markup.Renderer{}.Render(n)
	require.NoError(t, err)
	assert.Equal(t, "const [`Foo`](#classfoo) &", md)
}

func TestParamNameFallsBackToDefName(t *testing.T) {
	assert.Equal(t, "b", Param{DefName: "b"}.Name())
	assert.Equal(t, "a", Param{DeclName: "a", DefName: "b"}.Name())
	assert.Equal(t, "", Param{}.Name())
}
