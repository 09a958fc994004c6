package markup

import "io"

// Tag is the name of an element, fixed or computed.
type Tag struct {
	Name    string
	Dynamic bool
	Value   Value
}

// StaticTag returns a fixed element name.
func StaticTag(name string) Tag {
	return Tag{Name: name}
}

// DynamicTag returns an element name taken from v at render time.
func DynamicTag(v Value) Tag {
	return Tag{Dynamic: true, Value: v}
}

// Text returns the tag name as written in the output.
func (t Tag) Text() string {
	if t.Dynamic {
		return t.Value.Text
	}
	return t.Name
}

// Node is an entry in a markup tree. The set of node types is closed:
// *Element, Content and Escape.
type Node interface {
	// Render writes the node to w.
	Render(w io.Writer) error
	node()
}

// Element is a tagged node. When SelfClosing is set, Children is ignored
// and the element renders as <tag .../>. Otherwise it renders as a
// container, <tag ...></tag> when there are no children.
type Element struct {
	Tag         Tag
	Attrs       []Attr
	Children    []Node
	SelfClosing bool
}

// Content writes its value with no surrounding tag or quotes.
type Content struct {
	Value Value
}

// EscapeFunc is host logic run in the middle of a render. It receives the
// writer of the enclosing render and may call Render on it any number of
// times before returning.
type EscapeFunc func(w io.Writer) error

// Escape hands control to host code at its position in the tree.
// Label is only descriptive, it is never rendered.
type Escape struct {
	Label string
	Fn    EscapeFunc
}

func (*Element) node() {}
func (Content) node()  {}
func (Escape) node()   {}

var (
	_ Node = (*Element)(nil)
	_ Node = Content{}
	_ Node = Escape{}
)
