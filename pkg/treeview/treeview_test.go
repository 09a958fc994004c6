package treeview

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNodes() []markup.Node {
	return []markup.Node{
		markup.El("svg", markup.Attrs(markup.Set(markup.Key("width"), markup.Literal("100"))),
			markup.Void("circle", markup.Set(markup.Key("r"), markup.Computed("5"))),
			markup.El("g", nil, markup.Text("hi")),
			markup.DoLabeled("for i in 0..3", nil),
		),
		nil,
		(*markup.Element)(nil),
		markup.Expr(42),
	}
}

func TestTree(t *testing.T) {
	root := Tree(sampleNodes())

	assert.Equal(t, "", root.Text)
	require.Len(t, root.Children, 2, "nil nodes are skipped")

	svg := root.Children[0]
	assert.Equal(t, "<svg width=100>", svg.Text)
	require.Len(t, svg.Children, 3)
	assert.Equal(t, `<circle r="5"/>`, svg.Children[0].Text)
	assert.Empty(t, svg.Children[0].Children)
	assert.Equal(t, "<g>", svg.Children[1].Text)
	assert.Equal(t, []pterm.TreeNode{{Text: `"hi"`}}, svg.Children[1].Children)
	assert.Equal(t, "@ for i in 0..3", svg.Children[2].Text)

	assert.Equal(t, "{42}", root.Children[1].Text)
}

func TestTruncate(t *testing.T) {
	short := "abc"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("é", MaxLabel+10)
	got := truncate(long)
	assert.Equal(t, MaxLabel, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var sb strings.Builder
	require.NoError(t, Render(&sb, sampleNodes()))

	out := sb.String()
	for _, want := range []string{"<svg width=100>", `<circle r="5"/>`, "<g>", `"hi"`, "@ for i in 0..3", "{42}"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "<svg"), strings.Index(out, "<circle"))
}

func TestEntries(t *testing.T) {
	entries := Entries(sampleNodes())
	require.Len(t, entries, 2)
	assert.Equal(t, "<svg width=100>", entries[0].Label)
	require.Len(t, entries[0].Children, 3)
	assert.Nil(t, entries[0].Children[0].Children)
	assert.Equal(t, []Entry{{Label: `"hi"`}}, entries[0].Children[1].Children)

	assert.Equal(t, []Entry{}, Entries(nil))
}

func TestJSON(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, JSON(&sb, []markup.Node{markup.El("g", nil, markup.Void("rect"))}))
	assert.JSONEq(t, `[{"label":"<g>","children":[{"label":"<rect/>"}]}]`, sb.String())
}
