package syntax

import (
	"testing"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElement(t *testing.T) {
	doc, err := Parse("test", `svg(width=100 xlink:href="#a" stroke-dash-array={d} {extra} {k}=-1)[ "hi" {name} ]`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	el, ok := doc.Nodes[0].(*Element)
	require.True(t, ok)
	assert.Equal(t, "svg", el.Tag.Name)
	assert.False(t, el.SelfClosing)
	require.Len(t, el.Attrs, 5)

	assert.Equal(t, KeyRef{Kind: markup.StaticKey, Name: "width"}, el.Attrs[0].Key)
	assert.Equal(t, "100", el.Attrs[0].Value.Literal)

	assert.Equal(t, KeyRef{Kind: markup.NamespacedKey, Name: "xlink", Sub: "href"}, el.Attrs[1].Key)
	assert.Equal(t, `"#a"`, el.Attrs[1].Value.Literal)

	assert.Equal(t, markup.DashedKey, el.Attrs[2].Key.Kind)
	assert.Equal(t, "stroke", el.Attrs[2].Key.Name)
	assert.Equal(t, "dash-array", el.Attrs[2].Key.Sub)
	require.NotNil(t, el.Attrs[2].Value.Expr)
	assert.Equal(t, []string{"d"}, el.Attrs[2].Value.Expr.Path)

	assert.True(t, el.Attrs[3].Raw)
	assert.Equal(t, "extra", el.Attrs[3].Value.Expr.Text)

	assert.Equal(t, markup.DynamicKey, el.Attrs[4].Key.Kind)
	assert.Equal(t, "k", el.Attrs[4].Key.Expr.Text)
	assert.Equal(t, "-1", el.Attrs[4].Value.Literal)

	require.Len(t, el.Children, 2)
	assert.Equal(t, &Text{Pos: Pos{1, 70}, Value: "hi"}, el.Children[0])
	interp, ok := el.Children[1].(*Interp)
	require.True(t, ok)
	assert.Equal(t, "name", interp.Expr.Text)
}

func TestParseElementForms(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		selfClosing bool
		attrs       int
		children    int
	}{
		{"attributes only", "circle(r=1)", true, 1, 0},
		{"empty attributes", "br()", true, 0, 0},
		{"body only", "g[ a() ]", false, 0, 1},
		{"empty body", "g[]", false, 0, 0},
		{"both", "g(id=x)[ a() b() ]", false, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("test", tt.src)
			require.NoError(t, err)
			require.Len(t, doc.Nodes, 1)
			el := doc.Nodes[0].(*Element)
			assert.Equal(t, tt.selfClosing, el.SelfClosing)
			assert.Len(t, el.Attrs, tt.attrs)
			assert.Len(t, el.Children, tt.children)
		})
	}
}

func TestParseDynamicTag(t *testing.T) {
	doc, err := Parse("test", `{shape}(r=1) {label}`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)

	el, ok := doc.Nodes[0].(*Element)
	require.True(t, ok)
	require.NotNil(t, el.Tag.Expr)
	assert.Equal(t, "shape", el.Tag.Expr.Text)

	_, ok = doc.Nodes[1].(*Interp)
	assert.True(t, ok, "a brace not followed by ( or [ is content")
}

func TestParseDirectives(t *testing.T) {
	doc, err := Parse("test", `
@for i in 0..n [ g() ];
@for item in data.items [ {item} ];
@if !hidden [ "a" ] else [ "b" ];
@if on [ "c" ];
@footer;
@header();
`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 6)

	rng := doc.Nodes[0].(*For)
	assert.Equal(t, "i", rng.Var)
	assert.Equal(t, NumberExpr, rng.From.Kind)
	require.NotNil(t, rng.To)
	assert.Equal(t, "n", rng.To.Text)
	assert.Len(t, rng.Body, 1)
	assert.Equal(t, Pos{2, 1}, rng.Position())

	each := doc.Nodes[1].(*For)
	assert.Nil(t, each.To)
	assert.Equal(t, []string{"data", "items"}, each.From.Path)

	neg := doc.Nodes[2].(*If)
	assert.True(t, neg.Negate)
	assert.Len(t, neg.Then, 1)
	assert.Len(t, neg.Else, 1)

	plain := doc.Nodes[3].(*If)
	assert.False(t, plain.Negate)
	assert.Nil(t, plain.Else)

	assert.Equal(t, "footer", doc.Nodes[4].(*Call).Name)
	assert.Equal(t, "header", doc.Nodes[5].(*Call).Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		msg    string
		line   int
		column int
	}{
		{"bare tag", "g", `unexpected "end of file", expecting ( or [ after tag`, 1, 2},
		{"unclosed body", "g[ a() ", `unexpected "end of file", expecting ]`, 1, 8},
		{"stray bracket", "g[] ]", `unexpected "]", expecting element, string, { or @`, 1, 5},
		{"missing value", "g(a=)", `unexpected ")", expecting attribute value`, 1, 5},
		{"missing equals", "g(a 1)", `unexpected number 1, expecting =`, 1, 5},
		{"missing semicolon", "@for i in 0..2 [ ]", `unexpected "end of file", expecting ;`, 1, 19},
		{"missing in", "@for i of x [ ];", "unexpected identifier of, expecting in", 1, 8},
		{"unclosed brace", "g[ {x ]", `unexpected "]", expecting }`, 1, 7},
		{"bad dashed key", "g(a-=1)", `unexpected "=", expecting identifier`, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", tt.src)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSyntax))
			assert.Contains(t, err.Error(), tt.msg)

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.line, details["line"], "line")
			assert.Equal(t, tt.column, details["column"], "column")
		})
	}
}
