package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rasviitanen/svgmacro/pkg/errors"
)

// lexer holds the state of the scanner.
type lexer struct {
	name   string  // file name used in errors
	src    string  // remaining text to scan
	line   int     // current line, starting at 1
	column int     // current column, starting at 1
	tokens []token // scanned tokens, ending with tokenEOF
}

// lex scans src completely and returns its tokens.
func lex(name, src string) ([]token, error) {
	l := &lexer{name: name, src: src, line: 1, column: 1}
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) pos() Pos {
	return Pos{Line: l.line, Column: l.column}
}

func (l *lexer) errorf(pos Pos, format string, args ...interface{}) error {
	return syntaxErrorf(l.name, pos, format, args...)
}

// advance consumes n bytes, keeping line and column up to date.
func (l *lexer) advance(n int) {
	for _, r := range l.src[:n] {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.src = l.src[n:]
}

func (l *lexer) emit(typ tokenType, pos Pos, length int) {
	l.tokens = append(l.tokens, token{typ: typ, pos: pos, txt: l.src[:length]})
	l.advance(length)
}

func (l *lexer) scan() error {
	for {
		l.skipSpaceAndComments()
		pos := l.pos()
		if len(l.src) == 0 {
			l.tokens = append(l.tokens, token{typ: tokenEOF, pos: pos})
			return nil
		}

		c := l.src[0]
		switch c {
		case '(':
			l.emit(tokenLParen, pos, 1)
		case ')':
			l.emit(tokenRParen, pos, 1)
		case '[':
			l.emit(tokenLBracket, pos, 1)
		case ']':
			l.emit(tokenRBracket, pos, 1)
		case '{':
			l.emit(tokenLBrace, pos, 1)
		case '}':
			l.emit(tokenRBrace, pos, 1)
		case '=':
			l.emit(tokenAssign, pos, 1)
		case ':':
			l.emit(tokenColon, pos, 1)
		case '-':
			l.emit(tokenDash, pos, 1)
		case '!':
			l.emit(tokenNot, pos, 1)
		case ';':
			l.emit(tokenSemicolon, pos, 1)
		case '@':
			l.emit(tokenAt, pos, 1)
		case '.':
			if strings.HasPrefix(l.src, "..") {
				l.emit(tokenRange, pos, 2)
			} else {
				l.emit(tokenPeriod, pos, 1)
			}
		case '"':
			if err := l.lexString(pos); err != nil {
				return err
			}
		default:
			switch {
			case c >= '0' && c <= '9':
				l.lexNumber(pos)
			default:
				r, size := utf8.DecodeRuneInString(l.src)
				if r == utf8.RuneError && size == 1 {
					return l.errorf(pos, "invalid UTF-8 encoding")
				}
				if !isIdentStart(r) {
					return l.errorf(pos, "unexpected character %q", r)
				}
				l.lexIdentifier(pos)
			}
		}
	}
}

func (l *lexer) skipSpaceAndComments() {
	for len(l.src) > 0 {
		switch c := l.src[0]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance(1)
		case strings.HasPrefix(l.src, "//"):
			n := strings.IndexByte(l.src, '\n')
			if n < 0 {
				n = len(l.src)
			}
			l.advance(n)
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) lexIdentifier(pos Pos) {
	n := 0
	for n < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[n:])
		if !isIdentPart(r) {
			break
		}
		n += size
	}
	l.emit(tokenIdent, pos, n)
}

// lexNumber scans digits with an optional fraction and an optional unit
// suffix such as px or %. A period followed by another period ends the
// number so that 0..5 scans as a range.
func (l *lexer) lexNumber(pos Pos) {
	n := digits(l.src, 0)
	if n+1 < len(l.src) && l.src[n] == '.' && l.src[n+1] >= '0' && l.src[n+1] <= '9' {
		n = digits(l.src, n+1)
	}
	if n < len(l.src) && l.src[n] == '%' {
		n++
	} else {
		for n < len(l.src) {
			c := l.src[n]
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
				break
			}
			n++
		}
	}
	l.emit(tokenNumber, pos, n)
}

func digits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// lexString scans an interpreted string. The token text keeps the quotes
// as written, the decoded value is stored in val.
func (l *lexer) lexString(pos Pos) error {
	var sb strings.Builder
	i := 1
	for {
		if i >= len(l.src) {
			return l.errorf(pos, "string not terminated")
		}
		c := l.src[i]
		switch c {
		case '"':
			l.tokens = append(l.tokens, token{typ: tokenString, pos: pos, txt: l.src[:i+1], val: sb.String()})
			l.advance(i + 1)
			return nil
		case '\\':
			if i+1 >= len(l.src) {
				return l.errorf(pos, "string not terminated")
			}
			switch e := l.src[i+1]; e {
			case '"', '\\':
				sb.WriteByte(e)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				// Report the position of the backslash itself.
				l.advance(i)
				return l.errorf(l.pos(), "unknown escape sequence \\%c", e)
			}
			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}
}

func syntaxErrorf(name string, pos Pos, format string, args ...interface{}) error {
	return positionError(errors.ErrSyntax, name, pos, format, args...)
}

// positionError builds an error whose message starts with file:line:column
// and whose details carry the same location.
func positionError(code errors.ErrorCode, name string, pos Pos, format string, args ...interface{}) *errors.MarkupError {
	return errors.Newf(code, "%s:%s: "+format, append([]interface{}{name, pos}, args...)...).
		WithDetails(map[string]interface{}{
			"file":   name,
			"line":   pos.Line,
			"column": pos.Column,
		})
}
