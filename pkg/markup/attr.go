package markup

import (
	"io"
	"strings"
)

// KeyKind selects how an attribute key is spelled.
type KeyKind uint8

const (
	// StaticKey is a plain name such as width.
	StaticKey KeyKind = iota
	// NamespacedKey is name:sub, e.g. xlink:href.
	NamespacedKey
	// DashedKey is name-sub, e.g. font-family.
	DashedKey
	// DynamicKey takes its text from a Value at render time.
	DynamicKey
)

// AttrKey is the left side of an attribute.
type AttrKey struct {
	Kind  KeyKind
	Name  string
	Sub   string
	Value Value
}

// Key returns a static attribute key.
func Key(name string) AttrKey {
	return AttrKey{Kind: StaticKey, Name: name}
}

// NS returns a namespaced key rendered as name:sub.
func NS(name, sub string) AttrKey {
	return AttrKey{Kind: NamespacedKey, Name: name, Sub: sub}
}

// Dash returns a dashed key rendered as name-sub.
func Dash(name, sub string) AttrKey {
	return AttrKey{Kind: DashedKey, Name: name, Sub: sub}
}

// DynKey returns a key whose text is the given value, used verbatim.
func DynKey(v Value) AttrKey {
	return AttrKey{Kind: DynamicKey, Value: v}
}

// Text returns the key as it appears in the output. Keys are never quoted.
func (k AttrKey) Text() string {
	switch k.Kind {
	case NamespacedKey:
		return k.Name + ":" + k.Sub
	case DashedKey:
		return k.Name + "-" + k.Sub
	case DynamicKey:
		return k.Value.Text
	default:
		return k.Name
	}
}

// Attr is one attribute of an element.
//
// A Raw attribute has no key: its value text is written after a single
// space, as is, so it can carry a whole pre-formatted key="value" pair.
type Attr struct {
	Key   AttrKey
	Value Value
	Raw   bool
}

// Set pairs a key with a value.
func Set(key AttrKey, value Value) Attr {
	return Attr{Key: key, Value: value}
}

// RawAttr returns an attribute that writes v.Text verbatim.
func RawAttr(v Value) Attr {
	return Attr{Value: v, Raw: true}
}

// Attrs collects attributes for the element builders.
func Attrs(attrs ...Attr) []Attr {
	return attrs
}

// Text returns the formatted attribute including its leading space.
func (a Attr) Text() string {
	if a.Raw {
		return " " + a.Value.Text
	}
	return " " + a.Key.Text() + "=" + a.Value.attrText()
}

// FormatAttrs returns the attribute clause for attrs in declaration order.
// An empty list formats as the empty string.
func FormatAttrs(attrs []Attr) string {
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteString(a.Text())
	}
	return sb.String()
}

func writeAttrs(w io.Writer, attrs []Attr) error {
	for _, a := range attrs {
		if err := write(w, a.Text()); err != nil {
			return err
		}
	}
	return nil
}
