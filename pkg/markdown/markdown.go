// Package markdown converts Markdown to XHTML content nodes, for text
// blocks placed in an SVG document through <foreignObject>.
package markdown

import (
	"bytes"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// XHTMLNamespace is the namespace declared on the wrapper of a
// foreignObject body.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Converter turns Markdown into XHTML. Raw HTML in the source is omitted
// so that the result stays well-formed XML.
type Converter struct {
	md goldmark.Markdown
}

// New returns a converter with GitHub Flavored Markdown enabled.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithXHTML()),
		),
	}
}

var defaultConverter = New()

// Convert converts src with the default converter.
func Convert(src []byte) (markup.Node, error) {
	return defaultConverter.Convert(src)
}

// ForeignObject converts src with the default converter and wraps it for
// inclusion in an SVG document.
func ForeignObject(src []byte, attrs ...markup.Attr) (markup.Node, error) {
	return defaultConverter.ForeignObject(src, attrs...)
}

// Convert returns the XHTML for src as literal content.
func (c *Converter) Convert(src []byte) (markup.Node, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to convert markdown")
	}
	return markup.Raw(buf.String()), nil
}

// ForeignObject returns
//
//	<foreignObject attrs...><div xmlns="http://www.w3.org/1999/xhtml">...</div></foreignObject>
//
// with the converted src as the body of the div.
func (c *Converter) ForeignObject(src []byte, attrs ...markup.Attr) (markup.Node, error) {
	body, err := c.Convert(src)
	if err != nil {
		return nil, err
	}
	div := markup.El("div", markup.Attrs(
		markup.Set(markup.Key("xmlns"), markup.Literal(`"`+XHTMLNamespace+`"`)),
	), body)
	return markup.El("foreignObject", attrs, div), nil
}
