// Package xmlsource reads plain XML or SVG text as a document source.
//
// The input is parsed with etree and converted to markup nodes, so an
// existing SVG file can be rendered, inspected or mixed with host data
// without rewriting it in the macro syntax. An attribute value or a text
// node consisting of {name} is replaced by the variable of that name.
package xmlsource

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/rasviitanen/svgmacro/pkg/syntax"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// Parse converts src to markup nodes. Element names and attribute keys
// keep their prefixes; an element without any child token is
// self-closing. Comments, directives and processing instructions are
// dropped, as is whitespace between top-level nodes. Entities in the
// input are decoded by the parser and re-escaped on output. A nil scope
// is an empty one.
func Parse(src string, scope *syntax.Scope) ([]markup.Node, error) {
	if scope == nil {
		scope = syntax.NewScope(nil)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromString(src); err != nil {
		return nil, errors.Wrap(err, errors.ErrXMLParse, "failed to parse XML source")
	}

	var nodes []markup.Node
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && cd.IsWhitespace() {
			continue
		}
		converted, err := convert(tok, scope)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, converted...)
	}

	logger := logging.GetLogger("xmlsource")
	logger.Trace().Int("nodes", len(nodes)).Msg("Converted XML source")
	return nodes, nil
}

func convert(tok etree.Token, scope *syntax.Scope) ([]markup.Node, error) {
	switch t := tok.(type) {
	case *etree.Element:
		el, err := convertElement(t, scope)
		if err != nil {
			return nil, err
		}
		return []markup.Node{el}, nil
	case *etree.CharData:
		if t.IsCData() {
			return []markup.Node{markup.Raw("<![CDATA[" + t.Data + "]]>")}, nil
		}
		if name, ok := placeholder(t.Data); ok {
			v, err := resolve(name, scope)
			if err != nil {
				return nil, err
			}
			return syntax.Splice(v), nil
		}
		return []markup.Node{markup.Text(textEscaper.Replace(t.Data))}, nil
	default:
		// comments, directives and processing instructions
		return nil, nil
	}
}

func convertElement(e *etree.Element, scope *syntax.Scope) (*markup.Element, error) {
	el := &markup.Element{
		Tag:         markup.StaticTag(e.FullTag()),
		SelfClosing: len(e.Child) == 0,
	}

	for _, a := range e.Attr {
		key := markup.Key(a.Key)
		if a.Space != "" {
			key = markup.NS(a.Space, a.Key)
		}

		if name, ok := placeholder(a.Value); ok {
			v, err := resolve(name, scope)
			if err != nil {
				return nil, err
			}
			el.Attrs = append(el.Attrs, markup.Set(key, markup.Computed(syntax.Show(v))))
			continue
		}
		el.Attrs = append(el.Attrs, markup.Set(key, markup.Literal(`"`+attrEscaper.Replace(a.Value)+`"`)))
	}

	for _, child := range e.Child {
		converted, err := convert(child, scope)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, converted...)
	}
	return el, nil
}

// placeholder reports whether s, ignoring whitespace around and inside
// the braces, is a single {name} or {dotted.name} reference.
func placeholder(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || s[0] != '{' || s[len(s)-1] != '}' {
		return "", false
	}
	name := strings.TrimSpace(s[1 : len(s)-1])
	for _, part := range strings.Split(name, ".") {
		if !isIdent(part) {
			return "", false
		}
	}
	return name, true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func resolve(name string, scope *syntax.Scope) (any, error) {
	v, ok := scope.Lookup(strings.Split(name, "."))
	if !ok {
		return nil, errors.Newf(errors.ErrUndefined, "undefined: %s", name).WithDetail("name", name)
	}
	return v, nil
}
