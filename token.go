package nimkalc

// A Token is a single lexical unit of an expression. Tokens are immutable
// once created: the lexer produces them, the parser consumes them, and the
// operator tokens embedded in Unary and Binary nodes are copies kept for
// diagnostic printing.
type Token struct {
	// Kind is the lexical category of the token.
	Kind TokenKind
	// Lexeme is the exact source substring the token was derived from. For a
	// named constant (pi, e, ...) it is the canonical decimal literal the
	// constant folds to.
	Lexeme string
}

// TokenKind is the lexical category of a token.
type TokenKind int

const (
	// Int is a whole-number literal.
	Int TokenKind = iota
	// Float is a fractional or scientific-notation literal, or a folded
	// named constant.
	Float
	// Plus is the + operator.
	Plus
	// Minus is the - operator.
	Minus
	// Div is the / operator.
	Div
	// Exp is the ^ operator.
	Exp
	// Modulo is the % operator.
	Modulo
	// Mul is the * operator.
	Mul
	// LeftParen is an open parenthesis.
	LeftParen
	// RightParen is a close parenthesis.
	RightParen
	// Ident is a built-in function name.
	Ident
	// Comma separates function call arguments.
	Comma
	// Eof marks the end of the token sequence.
	Eof
)

var tokenKindNames = [...]string{
	Int:        "Int",
	Float:      "Float",
	Plus:       "Plus",
	Minus:      "Minus",
	Div:        "Div",
	Exp:        "Exp",
	Modulo:     "Modulo",
	Mul:        "Mul",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Ident:      "Ident",
	Comma:      "Comma",
	Eof:        "Eof",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		panic("nimkalc: invalid token kind")
	}
	return tokenKindNames[k]
}

// String returns the canonical textual representation of the token,
// Token(<kind>, '<lexeme>').
func (t Token) String() string {
	return "Token(" + t.Kind.String() + ", '" + t.Lexeme + "')"
}
