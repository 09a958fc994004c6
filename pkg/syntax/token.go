package syntax

import "fmt"

// Pos is a 1-based line and column in a source file.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type tokenType int

const (
	tokenIdent    tokenType = iota // circle
	tokenNumber                    // 20, 1.5, 10px, 50%
	tokenString                    // "abc"
	tokenLParen                    // (
	tokenRParen                    // )
	tokenLBracket                  // [
	tokenRBracket                  // ]
	tokenLBrace                    // {
	tokenRBrace                    // }
	tokenAssign                    // =
	tokenColon                     // :
	tokenDash                      // -
	tokenPeriod                    // .
	tokenRange                     // ..
	tokenNot                       // !
	tokenSemicolon                 // ;
	tokenAt                        // @
	tokenEOF
)

var tokenNames = map[tokenType]string{
	tokenIdent:     "identifier",
	tokenNumber:    "number",
	tokenString:    "string",
	tokenLParen:    "(",
	tokenRParen:    ")",
	tokenLBracket:  "[",
	tokenRBracket:  "]",
	tokenLBrace:    "{",
	tokenRBrace:    "}",
	tokenAssign:    "=",
	tokenColon:     ":",
	tokenDash:      "-",
	tokenPeriod:    ".",
	tokenRange:     "..",
	tokenNot:       "!",
	tokenSemicolon: ";",
	tokenAt:        "@",
	tokenEOF:       "end of file",
}

func (tt tokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// token is one lexeme. txt is the source text, val the decoded value of
// a string token without its quotes.
type token struct {
	typ tokenType
	pos Pos
	txt string
	val string
}

func (tok token) String() string {
	switch tok.typ {
	case tokenIdent, tokenNumber, tokenString:
		return fmt.Sprintf("%s %s", tok.typ, tok.txt)
	default:
		return fmt.Sprintf("%q", tok.typ.String())
	}
}
