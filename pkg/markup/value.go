package markup

import "fmt"

// ValueKind tells how a Value was authored.
type ValueKind uint8

const (
	// LiteralValue is text taken verbatim from the source.
	LiteralValue ValueKind = iota
	// ComputedValue is the string form of an evaluated host expression.
	ComputedValue
)

// String returns the string representation of the kind
func (k ValueKind) String() string {
	switch k {
	case LiteralValue:
		return "literal"
	case ComputedValue:
		return "computed"
	default:
		return "unknown"
	}
}

// Value is a piece of text to emit, either literal or computed.
type Value struct {
	Kind ValueKind
	Text string
}

// Literal returns a value that is always emitted exactly as given.
func Literal(text string) Value {
	return Value{Kind: LiteralValue, Text: text}
}

// Computed returns a value holding an already stringified host expression.
func Computed(text string) Value {
	return Value{Kind: ComputedValue, Text: text}
}

// Show returns v as a computed value: strings as is, Stringers through
// String, nil as the empty string and anything else through fmt.Sprint.
func Show(v any) Value {
	switch x := v.(type) {
	case nil:
		return Computed("")
	case string:
		return Computed(x)
	case fmt.Stringer:
		return Computed(x.String())
	}
	return Computed(fmt.Sprint(v))
}

// IsComputed reports whether the value came from a host expression.
func (v Value) IsComputed() bool {
	return v.Kind == ComputedValue
}

// String returns the value text without any quoting.
func (v Value) String() string {
	return v.Text
}

// attrText returns the text used on the right side of an attribute.
func (v Value) attrText() string {
	if v.Kind == ComputedValue {
		return `"` + v.Text + `"`
	}
	return v.Text
}
