package syntax

import (
	"fmt"
	"io"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
)

// Lower turns doc into markup nodes bound to scope.
//
// Expressions outside directives are evaluated immediately. @for and @if
// become escape nodes: their conditions and bodies are evaluated each time
// the node renders, so a body sees the loop variable of its iteration.
// A nil scope is an empty one.
func Lower(doc *Document, scope *Scope) ([]markup.Node, error) {
	if scope == nil {
		scope = NewScope(nil)
	}
	l := &lowerer{file: doc.Name}
	return l.nodes(doc.Nodes, scope)
}

type lowerer struct {
	file string
}

func (l *lowerer) nodes(ns []Node, s *Scope) ([]markup.Node, error) {
	out := make([]markup.Node, 0, len(ns))
	for _, n := range ns {
		lowered, err := l.node(n, s)
		if err != nil {
			return nil, err
		}
		out = append(out, lowered...)
	}
	return out, nil
}

func (l *lowerer) node(n Node, s *Scope) ([]markup.Node, error) {
	switch t := n.(type) {
	case *Element:
		el, err := l.element(t, s)
		if err != nil {
			return nil, err
		}
		return []markup.Node{el}, nil
	case *Text:
		return []markup.Node{markup.Text(t.Value)}, nil
	case *Interp:
		v, err := eval(t.Expr, s, l.file)
		if err != nil {
			return nil, err
		}
		return Splice(v), nil
	case *For:
		return []markup.Node{l.forEscape(t, s)}, nil
	case *If:
		return []markup.Node{l.ifEscape(t, s)}, nil
	case *Call:
		fn, ok := s.Escape(t.Name)
		if !ok {
			return nil, positionError(errors.ErrUndefined, l.file, t.Pos, "undefined escape: %s", t.Name).
				WithDetail("name", t.Name)
		}
		return []markup.Node{markup.DoLabeled(t.Name, fn)}, nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unsupported node type %T", n)
	}
}

// Splice returns the nodes held by v, or computed content holding
// Show(v) when v is not markup. A nil element splices to nothing.
func Splice(v any) []markup.Node {
	switch x := v.(type) {
	case *markup.Element:
		if x == nil {
			return nil
		}
		return []markup.Node{x}
	case markup.Node:
		return []markup.Node{x}
	case []markup.Node:
		return x
	default:
		return []markup.Node{markup.Content{Value: markup.Computed(Show(v))}}
	}
}

func (l *lowerer) element(t *Element, s *Scope) (*markup.Element, error) {
	el := &markup.Element{SelfClosing: t.SelfClosing}

	if t.Tag.Expr != nil {
		v, err := eval(t.Tag.Expr, s, l.file)
		if err != nil {
			return nil, err
		}
		el.Tag = markup.DynamicTag(markup.Computed(Show(v)))
	} else {
		el.Tag = markup.StaticTag(t.Tag.Name)
	}

	for _, a := range t.Attrs {
		attr, err := l.attr(a, s)
		if err != nil {
			return nil, err
		}
		el.Attrs = append(el.Attrs, attr)
	}

	if !t.SelfClosing {
		children, err := l.nodes(t.Children, s)
		if err != nil {
			return nil, err
		}
		el.Children = children
	}
	return el, nil
}

func (l *lowerer) attr(a Attr, s *Scope) (markup.Attr, error) {
	if a.Raw {
		v, err := eval(a.Value.Expr, s, l.file)
		if err != nil {
			return markup.Attr{}, err
		}
		return markup.RawAttr(markup.Computed(Show(v))), nil
	}

	var key markup.AttrKey
	switch a.Key.Kind {
	case markup.NamespacedKey:
		key = markup.NS(a.Key.Name, a.Key.Sub)
	case markup.DashedKey:
		key = markup.Dash(a.Key.Name, a.Key.Sub)
	case markup.DynamicKey:
		v, err := eval(a.Key.Expr, s, l.file)
		if err != nil {
			return markup.Attr{}, err
		}
		key = markup.DynKey(markup.Computed(Show(v)))
	default:
		key = markup.Key(a.Key.Name)
	}

	if a.Value.Expr == nil {
		return markup.Set(key, markup.Literal(a.Value.Literal)), nil
	}
	v, err := eval(a.Value.Expr, s, l.file)
	if err != nil {
		return markup.Attr{}, err
	}
	return markup.Set(key, markup.Computed(Show(v))), nil
}

func (l *lowerer) forEscape(t *For, s *Scope) markup.Escape {
	label := fmt.Sprintf("for %s in %s", t.Var, t.From.Text)
	if t.To != nil {
		label += ".." + t.To.Text
	}

	return markup.DoLabeled(label, func(w io.Writer) error {
		return l.each(t, s, func(v any) error {
			body, err := l.nodes(t.Body, s.Child().Set(t.Var, v))
			if err != nil {
				return err
			}
			return markup.Render(w, body...)
		})
	})
}

// each runs fn once per loop value, as each value is produced.
func (l *lowerer) each(t *For, s *Scope, fn func(any) error) error {
	from, err := eval(t.From, s, l.file)
	if err != nil {
		return err
	}

	if t.To == nil {
		ok, err := iterate(from, fn)
		if !ok {
			return positionError(errors.ErrType, l.file, t.From.Pos, "cannot range over %s (%T)", t.From.Text, from)
		}
		return err
	}

	to, err := eval(t.To, s, l.file)
	if err != nil {
		return err
	}
	lo, ok := toInt(from)
	if !ok {
		return boundError(l.file, t.From, from)
	}
	hi, ok := toInt(to)
	if !ok {
		return boundError(l.file, t.To, to)
	}
	return count(lo, hi, fn)
}

func boundError(file string, e *Expr, v any) error {
	return positionError(errors.ErrType, file, e.Pos, "range bound %s is not an integer between -%d and %d (%v)", e.Text, maxInt, maxInt, v)
}

func (l *lowerer) ifEscape(t *If, s *Scope) markup.Escape {
	label := "if " + t.Cond.Text
	if t.Negate {
		label = "if !" + t.Cond.Text
	}

	return markup.DoLabeled(label, func(w io.Writer) error {
		v, err := eval(t.Cond, s, l.file)
		if err != nil {
			return err
		}
		branch := t.Then
		if truthy(v) == t.Negate {
			branch = t.Else
		}
		body, err := l.nodes(branch, s)
		if err != nil {
			return err
		}
		return markup.Render(w, body...)
	})
}
