package syntax

import (
	"strings"

	"github.com/rasviitanen/svgmacro/pkg/markup"
)

type parser struct {
	name string
	toks []token
	i    int
}

// Parse parses src and returns its syntax tree. name is used in error
// messages only.
func Parse(name, src string) (*Document, error) {
	toks, err := lex(name, src)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, toks: toks}
	nodes, err := p.parseNodes(tokenEOF)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Nodes: nodes}, nil
}

func (p *parser) peek() token {
	return p.toks[p.i]
}

func (p *parser) next() token {
	tok := p.toks[p.i]
	if tok.typ != tokenEOF {
		p.i++
	}
	return tok
}

func (p *parser) errorf(pos Pos, format string, args ...interface{}) error {
	return syntaxErrorf(p.name, pos, format, args...)
}

func (p *parser) unexpected(tok token, want string) error {
	return p.errorf(tok.pos, "unexpected %s, expecting %s", tok, want)
}

func (p *parser) expect(typ tokenType) (token, error) {
	tok := p.next()
	if tok.typ != typ {
		return tok, p.unexpected(tok, typ.String())
	}
	return tok, nil
}

func (p *parser) expectKeyword(word string) error {
	tok := p.next()
	if tok.typ != tokenIdent || tok.txt != word {
		return p.unexpected(tok, word)
	}
	return nil
}

// parseNodes parses nodes up to the end token, which is consumed.
func (p *parser) parseNodes(end tokenType) ([]Node, error) {
	var nodes []Node
	for {
		tok := p.peek()
		if tok.typ == end {
			p.next()
			return nodes, nil
		}
		if tok.typ == tokenEOF {
			return nil, p.unexpected(tok, end.String())
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) parseNode() (Node, error) {
	tok := p.next()
	switch tok.typ {
	case tokenString:
		return &Text{Pos: tok.pos, Value: tok.val}, nil
	case tokenLBrace:
		expr, err := p.parseBraced()
		if err != nil {
			return nil, err
		}
		if t := p.peek().typ; t == tokenLParen || t == tokenLBracket {
			return p.parseElement(tok.pos, TagRef{Expr: expr})
		}
		return &Interp{Pos: tok.pos, Expr: expr}, nil
	case tokenIdent:
		return p.parseElement(tok.pos, TagRef{Name: tok.txt})
	case tokenAt:
		return p.parseDirective(tok.pos)
	default:
		return nil, p.unexpected(tok, "element, string, { or @")
	}
}

func (p *parser) parseElement(pos Pos, tag TagRef) (Node, error) {
	el := &Element{Pos: pos, Tag: tag}
	hasAttrs := false
	if p.peek().typ == tokenLParen {
		p.next()
		attrs, err := p.parseAttrs()
		if err != nil {
			return nil, err
		}
		el.Attrs = attrs
		hasAttrs = true
	}
	if p.peek().typ == tokenLBracket {
		p.next()
		children, err := p.parseNodes(tokenRBracket)
		if err != nil {
			return nil, err
		}
		el.Children = children
		return el, nil
	}
	if !hasAttrs {
		return nil, p.unexpected(p.peek(), "( or [ after tag")
	}
	el.SelfClosing = true
	return el, nil
}

// parseAttrs parses attributes up to and including the closing parenthesis.
func (p *parser) parseAttrs() ([]Attr, error) {
	var attrs []Attr
	for {
		tok := p.next()
		switch tok.typ {
		case tokenRParen:
			return attrs, nil
		case tokenLBrace:
			expr, err := p.parseBraced()
			if err != nil {
				return nil, err
			}
			if p.peek().typ != tokenAssign {
				attrs = append(attrs, Attr{Pos: tok.pos, Raw: true, Value: ValueRef{Expr: expr}})
				continue
			}
			p.next()
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, Attr{Pos: tok.pos, Key: KeyRef{Kind: markup.DynamicKey, Expr: expr}, Value: value})
		case tokenIdent:
			key, err := p.parseKey(tok)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokenAssign); err != nil {
				return nil, err
			}
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, Attr{Pos: tok.pos, Key: key, Value: value})
		default:
			return nil, p.unexpected(tok, "attribute or )")
		}
	}
}

func (p *parser) parseKey(first token) (KeyRef, error) {
	switch p.peek().typ {
	case tokenColon:
		p.next()
		sub, err := p.expect(tokenIdent)
		if err != nil {
			return KeyRef{}, err
		}
		return KeyRef{Kind: markup.NamespacedKey, Name: first.txt, Sub: sub.txt}, nil
	case tokenDash:
		var parts []string
		for p.peek().typ == tokenDash {
			p.next()
			part, err := p.expect(tokenIdent)
			if err != nil {
				return KeyRef{}, err
			}
			parts = append(parts, part.txt)
		}
		return KeyRef{Kind: markup.DashedKey, Name: first.txt, Sub: strings.Join(parts, "-")}, nil
	default:
		return KeyRef{Kind: markup.StaticKey, Name: first.txt}, nil
	}
}

func (p *parser) parseValue() (ValueRef, error) {
	tok := p.next()
	switch tok.typ {
	case tokenString, tokenNumber, tokenIdent:
		return ValueRef{Literal: tok.txt}, nil
	case tokenDash:
		num, err := p.expect(tokenNumber)
		if err != nil {
			return ValueRef{}, err
		}
		return ValueRef{Literal: "-" + num.txt}, nil
	case tokenLBrace:
		expr, err := p.parseBraced()
		if err != nil {
			return ValueRef{}, err
		}
		return ValueRef{Expr: expr}, nil
	default:
		return ValueRef{}, p.unexpected(tok, "attribute value")
	}
}

// parseBraced parses the expression after an opening brace and the
// closing brace.
func (p *parser) parseBraced() (*Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenRBrace); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *parser) parseExpr() (*Expr, error) {
	tok := p.next()
	switch tok.typ {
	case tokenNumber:
		return &Expr{Pos: tok.pos, Kind: NumberExpr, Text: tok.txt}, nil
	case tokenDash:
		num, err := p.expect(tokenNumber)
		if err != nil {
			return nil, err
		}
		return &Expr{Pos: tok.pos, Kind: NumberExpr, Text: "-" + num.txt}, nil
	case tokenString:
		return &Expr{Pos: tok.pos, Kind: StringExpr, Text: tok.txt, Str: tok.val}, nil
	case tokenIdent:
		path := []string{tok.txt}
		for p.peek().typ == tokenPeriod {
			p.next()
			part, err := p.expect(tokenIdent)
			if err != nil {
				return nil, err
			}
			path = append(path, part.txt)
		}
		return &Expr{Pos: tok.pos, Kind: PathExpr, Text: strings.Join(path, "."), Path: path}, nil
	default:
		return nil, p.unexpected(tok, "expression")
	}
}

func (p *parser) parseDirective(pos Pos) (Node, error) {
	tok, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}

	var n Node
	switch tok.txt {
	case "for":
		n, err = p.parseFor(pos)
	case "if":
		n, err = p.parseIf(pos)
	default:
		// name() is accepted as a call with no arguments
		if p.peek().typ == tokenLParen {
			p.next()
			if _, err := p.expect(tokenRParen); err != nil {
				return nil, err
			}
		}
		n = &Call{Pos: pos, Name: tok.txt}
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseBody() ([]Node, error) {
	if _, err := p.expect(tokenLBracket); err != nil {
		return nil, err
	}
	return p.parseNodes(tokenRBracket)
}

func (p *parser) parseFor(pos Pos) (Node, error) {
	v, err := p.expect(tokenIdent)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	n := &For{Pos: pos, Var: v.txt, From: from}
	if p.peek().typ == tokenRange {
		p.next()
		if n.To, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if n.Body, err = p.parseBody(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseIf(pos Pos) (Node, error) {
	n := &If{Pos: pos}
	if p.peek().typ == tokenNot {
		p.next()
		n.Negate = true
	}
	var err error
	if n.Cond, err = p.parseExpr(); err != nil {
		return nil, err
	}
	if n.Then, err = p.parseBody(); err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.typ == tokenIdent && tok.txt == "else" {
		p.next()
		if n.Else, err = p.parseBody(); err != nil {
			return nil, err
		}
	}
	return n, nil
}
