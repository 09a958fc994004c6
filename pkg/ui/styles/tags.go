package styles

import (
	"strings"

	"github.com/beevik/etree"
)

// NoFormat is a tag whose content only appears in plain output
const NoFormat = "no-format"

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape protects s from being read as tags by Expand
func Escape(s string) string {
	return escaper.Replace(s)
}

// Expand replaces style tags in text by their styled content. Unknown
// tags keep their content unstyled. With plain set every tag is removed
// and <no-format> content is kept; otherwise <no-format> content is
// dropped. Text that does not parse as tagged markup is returned as is.
func Expand(text string, styles StyleMap, plain bool) string {
	if text == "" || !strings.ContainsAny(text, "<&") {
		return text
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<root>" + text + "</root>"); err != nil {
		return text
	}
	root := doc.SelectElement("root")
	if root == nil {
		return text
	}

	var sb strings.Builder
	expandChildren(&sb, root, styles, plain)
	return sb.String()
}

// Strip removes all tags, keeping <no-format> content
func Strip(text string) string {
	return Expand(text, nil, true)
}

func expandChildren(sb *strings.Builder, el *etree.Element, styles StyleMap, plain bool) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == NoFormat {
				if plain {
					expandChildren(sb, t, styles, plain)
				}
				continue
			}

			var inner strings.Builder
			expandChildren(&inner, t, styles, plain)
			style, ok := styles[t.Tag]
			if plain || !ok {
				sb.WriteString(inner.String())
				continue
			}
			sb.WriteString(style.Render(inner.String()))
		}
	}
}
