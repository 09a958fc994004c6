package xmlsource

import (
	"testing"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/rasviitanen/svgmacro/pkg/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderXML(t *testing.T, src string, scope *syntax.Scope) string {
	t.Helper()
	nodes, err := Parse(src, scope)
	require.NoError(t, err)
	out, err := markup.String(nodes...)
	require.NoError(t, err)
	return out
}

func TestParse(t *testing.T) {
	scope := syntax.NewScope(map[string]any{
		"r":     5,
		"title": "Chart",
		"style": map[string]any{"fill": "red"},
		"icon":  markup.Void("circle"),
	})

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "self-closing and container",
			src:      `<svg width="100"><circle cx="20"/><g></g></svg>`,
			expected: `<svg width="100"><circle cx="20"/><g/></svg>`,
		},
		{
			name:     "namespaced attributes",
			src:      `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`,
			expected: `<svg xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`,
		},
		{
			name:     "prefixed tag",
			src:      `<svg:rect svg:x="1"/>`,
			expected: `<svg:rect svg:x="1"/>`,
		},
		{
			name:     "placeholders",
			src:      `<circle r="{r}" fill="{ style.fill }"><title>{title}</title></circle>`,
			expected: `<circle r="5" fill="red"><title>Chart</title></circle>`,
		},
		{
			name:     "spaces inside braces",
			src:      `<text x="{ r }">{ title }</text>`,
			expected: `<text x="5">Chart</text>`,
		},
		{
			name:     "node placeholder is spliced",
			src:      `<g>{icon}</g>`,
			expected: `<g><circle/></g>`,
		},
		{
			name:     "text that is not a placeholder",
			src:      `<text>{a} and {b}</text>`,
			expected: `<text>{a} and {b}</text>`,
		},
		{
			name:     "entities are re-escaped",
			src:      `<text title="a &quot;b&quot; &amp; c">x &lt; y &amp;&amp; z</text>`,
			expected: `<text title="a &quot;b&quot; &amp; c">x &lt; y &amp;&amp; z</text>`,
		},
		{
			name:     "comments and processing instructions dropped",
			src:      "<?xml version=\"1.0\"?>\n<!-- top -->\n<svg><!-- inner --></svg>\n",
			expected: `<svg></svg>`,
		},
		{
			name:     "inner whitespace kept",
			src:      "<svg>\n  <g/>\n</svg>",
			expected: "<svg>\n  <g/>\n</svg>",
		},
		{
			name:     "cdata kept",
			src:      `<style><![CDATA[a > b {}]]></style>`,
			expected: `<style><![CDATA[a > b {}]]></style>`,
		},
		{
			name:     "several roots",
			src:      `<a/> <b/>`,
			expected: `<a/><b/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderXML(t, tt.src, scope))
		})
	}
}

func TestParseStructure(t *testing.T) {
	nodes, err := Parse(`<use xlink:href="#a" width="1"/>`, nil)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	el, ok := nodes[0].(*markup.Element)
	require.True(t, ok)
	assert.True(t, el.SelfClosing)
	require.Len(t, el.Attrs, 2)
	assert.Equal(t, markup.NS("xlink", "href"), el.Attrs[0].Key)
	assert.Equal(t, markup.Literal(`"#a"`), el.Attrs[0].Value)
	assert.Equal(t, markup.Key("width"), el.Attrs[1].Key)
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := Parse(`<svg><g></svg>`, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrXMLParse))
	})

	t.Run("undefined placeholder", func(t *testing.T) {
		_, err := Parse(`<circle r="{radius}"/>`, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUndefined))
		assert.Equal(t, "radius", errors.GetErrorDetails(err)["name"])
	})
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		in   string
		name string
		ok   bool
	}{
		{"{a}", "a", true},
		{" {a.b_c} ", "a.b_c", true},
		{"{a1}", "a1", true},
		{"{}", "", false},
		{"{1a}", "", false},
		{"{a b}", "", false},
		{"{a.}", "", false},
		{"a}", "", false},
		{"{a} x", "", false},
	}

	for _, tt := range tests {
		name, ok := placeholder(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.name, name, tt.in)
	}
}
