package markup

import (
	"io"
	"strings"

	"github.com/rasviitanen/svgmacro/pkg/errors"
)

// Render writes nodes to w in order, with no enclosing element. It stops
// at the first failed write; output already written is left in place.
func Render(w io.Writer, nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := n.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// String renders nodes into a new buffer and returns the text.
func String(nodes ...Node) (string, error) {
	var sb strings.Builder
	err := Render(&sb, nodes...)
	return sb.String(), err
}

// Render writes the element, its attributes and its children. A nil
// element writes nothing.
func (e *Element) Render(w io.Writer) error {
	if e == nil {
		return nil
	}
	// Resolved once so open and close always agree.
	tag := e.Tag.Text()

	if err := write(w, "<", tag); err != nil {
		return err
	}
	if err := writeAttrs(w, e.Attrs); err != nil {
		return err
	}
	if e.SelfClosing {
		return write(w, "/>")
	}
	if err := write(w, ">"); err != nil {
		return err
	}
	if err := Render(w, e.Children...); err != nil {
		return err
	}
	return write(w, "</", tag, ">")
}

// Render writes the content value verbatim.
func (c Content) Render(w io.Writer) error {
	return write(w, c.Value.Text)
}

// Render runs the escape callback against w. Errors from the callback,
// including those of nested renders, are returned unchanged.
func (e Escape) Render(w io.Writer) error {
	if e.Fn == nil {
		return nil
	}
	return e.Fn(w)
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return errors.Wrap(err, errors.ErrSinkWrite, "failed to write markup").
				WithDetail("text", p)
		}
	}
	return nil
}
