package syntax

import "github.com/rasviitanen/svgmacro/pkg/markup"

// Document is a parsed source file.
type Document struct {
	Name  string
	Nodes []Node
}

// Node is a node of the syntax tree.
type Node interface {
	Position() Pos
	node()
}

// ExprKind is the form of an expression.
type ExprKind int

const (
	// NumberExpr is a number literal.
	NumberExpr ExprKind = iota
	// StringExpr is a string literal.
	StringExpr
	// PathExpr is a variable reference, possibly dotted.
	PathExpr
)

// Expr is a host expression written between braces or in a directive.
type Expr struct {
	Pos  Pos
	Kind ExprKind
	Text string   // source text
	Path []string // for PathExpr
	Str  string   // decoded value for StringExpr
}

// TagRef names an element, either directly or through an expression.
type TagRef struct {
	Name string
	Expr *Expr
}

// KeyRef is the left side of an attribute. Kind follows markup.KeyKind;
// for DashedKey, Sub holds every part after the first joined with dashes.
type KeyRef struct {
	Kind markup.KeyKind
	Name string
	Sub  string
	Expr *Expr
}

// ValueRef is the right side of an attribute: either source text taken
// as is or an expression.
type ValueRef struct {
	Literal string
	Expr    *Expr
}

// Attr is one entry of an attribute list. When Raw is set, only Value.Expr
// is used.
type Attr struct {
	Pos   Pos
	Key   KeyRef
	Value ValueRef
	Raw   bool
}

// Element is tag(attrs)[children]. SelfClosing is set when the body in
// brackets was omitted.
type Element struct {
	Pos         Pos
	Tag         TagRef
	Attrs       []Attr
	Children    []Node
	SelfClosing bool
}

// Text is a quoted string in content position.
type Text struct {
	Pos   Pos
	Value string
}

// Interp is an expression in content position.
type Interp struct {
	Pos  Pos
	Expr *Expr
}

// For repeats Body for each value of an iteration.
// With To set it iterates the integers From up to, not including, To.
type For struct {
	Pos  Pos
	Var  string
	From *Expr
	To   *Expr
	Body []Node
}

// If renders Then or Else depending on Cond.
type If struct {
	Pos    Pos
	Negate bool
	Cond   *Expr
	Then   []Node
	Else   []Node
}

// Call hands control to a named escape from the scope.
type Call struct {
	Pos  Pos
	Name string
}

func (n *Element) Position() Pos { return n.Pos }
func (n *Text) Position() Pos    { return n.Pos }
func (n *Interp) Position() Pos  { return n.Pos }
func (n *For) Position() Pos     { return n.Pos }
func (n *If) Position() Pos      { return n.Pos }
func (n *Call) Position() Pos    { return n.Pos }

func (*Element) node() {}
func (*Text) node()    {}
func (*Interp) node()  {}
func (*For) node()     {}
func (*If) node()      {}
func (*Call) node()    {}
