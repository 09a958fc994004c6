package markup

import "fmt"

// El returns a container element. With no children it renders as <tag></tag>.
func El(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: StaticTag(tag), Attrs: attrs, Children: children}
}

// Void returns a self-closing element.
func Void(tag string, attrs ...Attr) *Element {
	return &Element{Tag: StaticTag(tag), Attrs: attrs, SelfClosing: true}
}

// DynEl is El with a computed or literal tag name.
func DynEl(tag Value, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: DynamicTag(tag), Attrs: attrs, Children: children}
}

// DynVoid is Void with a computed or literal tag name.
func DynVoid(tag Value, attrs ...Attr) *Element {
	return &Element{Tag: DynamicTag(tag), Attrs: attrs, SelfClosing: true}
}

// Text returns literal content.
func Text(s string) Content {
	return Content{Value: Literal(s)}
}

// Raw is Text under a name that reads better for pre-built markup.
func Raw(markup string) Content {
	return Content{Value: Literal(markup)}
}

// Expr returns computed content holding Show(v).
func Expr(v any) Content {
	return Content{Value: Show(v)}
}

// Do returns an escape node running fn.
func Do(fn EscapeFunc) Escape {
	return Escape{Fn: fn}
}

// DoLabeled returns an escape node running fn with a descriptive label.
func DoLabeled(label string, fn EscapeFunc) Escape {
	return Escape{Label: label, Fn: fn}
}

// Describe returns a one-line summary of n, used by tree dumps and logs.
func Describe(n Node) string {
	switch t := n.(type) {
	case *Element:
		if t == nil {
			return ""
		}
		tag := t.Tag.Text()
		if t.Tag.Dynamic {
			tag = "{" + tag + "}"
		}
		if t.SelfClosing {
			return "<" + tag + FormatAttrs(t.Attrs) + "/>"
		}
		return "<" + tag + FormatAttrs(t.Attrs) + ">"
	case Content:
		if t.Value.IsComputed() {
			return fmt.Sprintf("{%s}", t.Value.Text)
		}
		return fmt.Sprintf("%q", t.Value.Text)
	case Escape:
		if t.Label != "" {
			return "@ " + t.Label
		}
		return "@"
	default:
		return fmt.Sprintf("%T", n)
	}
}
