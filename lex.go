package nimkalc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts source text into a sequence of tokens, ending with an
// Eof token. It makes a single forward pass over the characters. Named
// constants are folded into Float tokens here, and identifiers are resolved
// against the function table, so an unknown name is reported at lex time
// rather than later.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: src, col: 1}
	// A token per few characters is a reasonable first guess.
	toks := make([]Token, 0, len(src)/2+1)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == Eof {
			return toks, nil
		}
	}
}

type lexer struct {
	src string
	// pos is the byte offset of the next rune.
	pos int
	// col is the 1-based rune position of the next rune, for error messages.
	col int
}

// punct maps single-character punctuation to its token kind.
var punct = map[rune]TokenKind{
	'(': LeftParen,
	')': RightParen,
	'-': Minus,
	'+': Plus,
	'*': Mul,
	'/': Div,
	'%': Modulo,
	'^': Exp,
	',': Comma,
}

// peek decodes the next rune without consuming it. The size is 0 at the end
// of the input.
func (l *lexer) peek() (rune, int) {
	if l.pos >= len(l.src) {
		return 0, 0
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, sz
}

func (l *lexer) advance(sz int) {
	l.pos += sz
	l.col++
}

func (l *lexer) next() (Token, error) {
	for {
		r, sz := l.peek()
		if sz == 0 {
			return Token{Kind: Eof}, nil
		}
		switch r {
		case ' ', '\t', '\r', '\n':
			l.advance(sz)
			continue
		}
		if kind, ok := punct[r]; ok {
			l.advance(sz)
			return Token{Kind: kind, Lexeme: string(r)}, nil
		}
		switch {
		case '0' <= r && r <= '9':
			return l.scanNumber(), nil
		case r == '_', unicode.IsLetter(r):
			return l.scanIdent()
		}
		return Token{}, &LexError{Char: r, Col: l.col}
	}
}

// scanNumber scans a numeric literal: digits, at most one decimal point, and
// at most one exponent marker followed by at most one sign. A second point or
// marker simply ends the literal; whether the text denotes a value is decided
// when the parser converts it.
func (l *lexer) scanNumber() Token {
	start := l.pos
	var dot, exp bool
	for {
		r, sz := l.peek()
		switch {
		case '0' <= r && r <= '9':
			l.advance(sz)
		case r == '.' && !dot && !exp:
			dot = true
			l.advance(sz)
		case (r == 'e' || r == 'E') && !exp:
			exp = true
			l.advance(sz)
			if s, ssz := l.peek(); s == '+' || s == '-' {
				l.advance(ssz)
			}
		default:
			kind := Int
			if dot || exp {
				kind = Float
			}
			return Token{Kind: kind, Lexeme: l.src[start:l.pos]}
		}
	}
}

// scanIdent scans an identifier and resolves it, case-insensitively, as a
// named constant or a built-in function name.
func (l *lexer) scanIdent() (Token, error) {
	start, col := l.pos, l.col
	for {
		r, sz := l.peek()
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.advance(sz)
			continue
		}
		break
	}
	text := l.src[start:l.pos]
	name := strings.ToLower(text)
	if c, ok := constants[name]; ok {
		return Token{Kind: Float, Lexeme: formatFloat(c)}, nil
	}
	if _, ok := builtins[name]; ok {
		return Token{Kind: Ident, Lexeme: text}, nil
	}
	return Token{}, &NameError{Name: text, Col: col}
}
