package markup_test

import (
	"io"
	"strings"
	"testing"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, nodes ...markup.Node) string {
	t.Helper()
	out, err := markup.String(nodes...)
	require.NoError(t, err)
	return out
}

func lit(name, text string) markup.Attr {
	return markup.Set(markup.Key(name), markup.Literal(text))
}

func TestRenderScenarios(t *testing.T) {
	width := 200

	tests := []struct {
		name     string
		nodes    []markup.Node
		expected string
	}{
		{
			name:     "flat",
			nodes:    []markup.Node{markup.El("svg", nil)},
			expected: "<svg></svg>",
		},
		{
			name: "deep",
			nodes: []markup.Node{
				markup.El("svg", nil, markup.El("g", nil, markup.El("g", nil))),
			},
			expected: "<svg><g><g></g></g></svg>",
		},
		{
			name: "literal attributes keep authored quotes",
			nodes: []markup.Node{
				markup.El("svg", markup.Attrs(lit("width", `"200"`), lit("height", `"200"`)),
					markup.El("g", nil),
				),
			},
			expected: `<svg width="200" height="200"><g></g></svg>`,
		},
		{
			name: "self-closing sibling next to empty container",
			nodes: []markup.Node{
				markup.El("svg", nil, markup.Void("circle"), markup.El("g", nil)),
			},
			expected: "<svg><circle/><g></g></svg>",
		},
		{
			name: "computed attribute values are quoted",
			nodes: []markup.Node{
				markup.El("svg", markup.Attrs(markup.Set(markup.Key("width"), markup.Show(width))),
					markup.Void("circle", markup.Set(markup.Key("width"), markup.Show(width))),
				),
			},
			expected: `<svg width="200"><circle width="200"/></svg>`,
		},
		{
			name: "text content",
			nodes: []markup.Node{
				markup.El("svg", nil, markup.El("g", nil, markup.Text("Hello"))),
			},
			expected: "<svg><g>Hello</g></svg>",
		},
		{
			name: "computed content is not quoted",
			nodes: []markup.Node{
				markup.El("svg", markup.Attrs(markup.Set(markup.Key("width"), markup.Show(width))),
					markup.Void("circle", markup.Set(markup.Key("width"), markup.Show(width))),
					markup.Expr(width),
				),
			},
			expected: `<svg width="200"><circle width="200"/>200</svg>`,
		},
		{
			name: "dashed keys",
			nodes: []markup.Node{
				markup.El("text", markup.Attrs(
					lit("x", `"0"`),
					lit("y", `"35"`),
					lit("fill", `"red"`),
					markup.Set(markup.Dash("font", "family"), markup.Literal(`"Verdana"`)),
					markup.Set(markup.Dash("font", "size"), markup.Literal(`"35"`)),
				), markup.Text("Hello, out there")),
			},
			expected: `<text x="0" y="35" fill="red" font-family="Verdana" font-size="35">Hello, out there</text>`,
		},
		{
			name: "namespaced keys",
			nodes: []markup.Node{
				markup.Void("use",
					markup.Set(markup.NS("xlink", "href"), markup.Literal(`"#dot"`)),
					markup.Set(markup.NS("xml", "space"), markup.Computed("preserve")),
				),
			},
			expected: `<use xlink:href="#dot" xml:space="preserve"/>`,
		},
		{
			name:     "dynamic tag self-closing",
			nodes:    []markup.Node{markup.DynVoid(markup.Computed("circle"))},
			expected: "<circle/>",
		},
		{
			name: "dynamic tag with attributes",
			nodes: []markup.Node{
				markup.DynVoid(markup.Computed("circle"), lit("cx", `"20"`), lit("cy", `"20"`)),
			},
			expected: `<circle cx="20" cy="20"/>`,
		},
		{
			name: "dynamic tag container closes with the same name",
			nodes: []markup.Node{
				markup.DynEl(markup.Computed("g"), nil, markup.Void("circle")),
			},
			expected: "<g><circle/></g>",
		},
		{
			name: "raw attribute",
			nodes: []markup.Node{
				markup.DynVoid(markup.Computed("circle"),
					markup.RawAttr(markup.Computed(`cx="20"`)),
					lit("cy", `"20"`),
				),
			},
			expected: `<circle cx="20" cy="20"/>`,
		},
		{
			name: "dynamic key with literal value",
			nodes: []markup.Node{
				markup.Void("circle", markup.Set(markup.DynKey(markup.Computed("cx")), markup.Literal(`"20"`))),
			},
			expected: `<circle cx="20"/>`,
		},
		{
			name: "dynamic key with computed value",
			nodes: []markup.Node{
				markup.Void("circle", markup.Set(markup.DynKey(markup.Computed("cx")), markup.Computed("20"))),
			},
			expected: `<circle cx="20"/>`,
		},
		{
			name:     "raw markup content passes through",
			nodes:    []markup.Node{markup.Raw(`<svg><circle row="100"></circle></svg>`)},
			expected: `<svg><circle row="100"></circle></svg>`,
		},
		{
			name:     "empty sequence renders nothing",
			nodes:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(t, tt.nodes...))
		})
	}
}

func TestAttributesKeepOrderAndDuplicates(t *testing.T) {
	out := render(t, markup.Void("rect",
		lit("y", `"1"`),
		lit("x", `"2"`),
		lit("y", `"3"`),
	))
	assert.Equal(t, `<rect y="1" x="2" y="3"/>`, out)
}

func TestLiteralAttributeWithoutQuotes(t *testing.T) {
	out := render(t, markup.Void("rect", lit("width", "10")))
	assert.Equal(t, `<rect width=10/>`, out)
}

func TestNoEscaping(t *testing.T) {
	payload := `a<b & "c">`
	out := render(t,
		markup.El("text", markup.Attrs(markup.Set(markup.Key("data"), markup.Computed(payload))),
			markup.Expr(payload),
			markup.Text(payload),
		),
	)
	assert.Equal(t, `<text data="`+payload+`">`+payload+payload+`</text>`, out)
}

func TestElementWithoutAttributesHasNoTrailingSpace(t *testing.T) {
	assert.Equal(t, "<circle/>", render(t, markup.Void("circle")))
	assert.Equal(t, "<g></g>", render(t, markup.El("g", markup.Attrs())))
}

func TestSelfClosingIgnoresChildren(t *testing.T) {
	el := &markup.Element{
		Tag:         markup.StaticTag("circle"),
		Children:    []markup.Node{markup.Text("ignored")},
		SelfClosing: true,
	}
	assert.Equal(t, "<circle/>", render(t, el))
}

func TestRenderSkipsNilNodes(t *testing.T) {
	assert.Equal(t, "<a></a>", render(t, nil, markup.El("a", nil), nil))

	var missing *markup.Element
	assert.Equal(t, "<a><b/></a>", render(t, markup.El("a", nil, missing, markup.Void("b"))))
	assert.Equal(t, "", markup.Describe(missing))
}

func TestShow(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "red", "red"},
		{"int", 42, "42"},
		{"float", 2.5, "2.5"},
		{"stringer", markup.ComputedValue, "computed"},
		{"nil pointer", (*int)(nil), "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := markup.Show(tt.value)
			assert.True(t, v.IsComputed())
			assert.Equal(t, tt.expected, v.Text)
		})
	}
}

func TestStringReturnsPartialOutputOnError(t *testing.T) {
	boom := errors.New(errors.ErrInternal, "boom")
	out, err := markup.String(
		markup.Void("a"),
		markup.Do(func(w io.Writer) error { return boom }),
		markup.Void("b"),
	)
	require.Error(t, err)
	assert.Equal(t, "<a/>", out)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestRenderStreamsIntoExistingContent(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\"?>")
	require.NoError(t, markup.Render(&sb, markup.El("svg", nil)))
	assert.Equal(t, "<?xml version=\"1.0\"?><svg></svg>", sb.String())
}
