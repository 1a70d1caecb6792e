package nimkalc

import (
	"errors"
	"strconv"
	"strings"
)

// Grammar, from loosest to tightest binding:
//
//	expression     := additive
//	additive       := multiplicative (('+' | '-') multiplicative)*
//	multiplicative := power (('*' | '/' | '%') power)*
//	power          := unary ('^' power)?
//	unary          := ('-' | '+') unary | call
//	call           := primary ('(' expression (',' expression)* ')')?
//	primary        := INT | FLOAT | IDENT | '(' expression ')'
//
// Note that unary operators bind tighter than '^', so -2^2 is (-2)^2. This
// follows conventional calculator behavior and is kept deliberately.

// maxDepth bounds expression nesting so that adversarial input produces a
// DepthError instead of exhausting the stack.
const maxDepth = 512

// Parse consumes a token sequence and builds the expression tree. The whole
// sequence must form a single expression: any token other than Eof left over
// after parsing is a syntax error, not silently dropped.
func Parse(toks []Token) (Node, error) {
	p := parser{toks: toks}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != Eof {
		return nil, &UnexpectedTokenError{Tok: tok, Want: "end of input"}
	}
	return n, nil
}

type parser struct {
	toks  []Token
	pos   int
	depth int
}

// peek returns the next token without consuming it. A sequence that ends
// without an Eof token behaves as if one were appended.
func (p *parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Kind: Eof}
	}
	return p.toks[p.pos]
}

// advance consumes and returns the next token.
func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *parser) expression() (Node, error) {
	return p.additive()
}

func (p *parser) additive() (Node, error) {
	n, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != Plus && tok.Kind != Minus {
			return n, nil
		}
		p.advance()
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		n = &BinaryExpr{Left: n, Op: tok, Right: rhs}
	}
}

func (p *parser) multiplicative() (Node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != Mul && tok.Kind != Div && tok.Kind != Modulo {
			return n, nil
		}
		p.advance()
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		n = &BinaryExpr{Left: n, Op: tok, Right: rhs}
	}
}

// power parses right-associative exponentiation: 2^3^2 is 2^(3^2).
func (p *parser) power() (Node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.Kind != Exp {
		return n, nil
	}
	p.advance()
	rhs, err := p.power()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: n, Op: tok, Right: rhs}, nil
}

func (p *parser) unary() (Node, error) {
	// Every recursion cycle in the grammar passes through unary, so this is
	// the one place the nesting limit needs checking.
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, &DepthError{Limit: maxDepth}
	}
	tok := p.peek()
	if tok.Kind == Plus || tok.Kind == Minus {
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: tok, Operand: operand}, nil
	}
	return p.call()
}

// call parses a primary and, if an argument list follows, a function call.
// The callee must be an identifier and the argument count must match the
// function table; both are checked here, never at evaluation time. A bare
// identifier with no argument list is likewise rejected so that an IdentExpr
// can only ever appear as a callee.
func (p *parser) call() (Node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	id, isIdent := n.(*IdentExpr)
	if p.peek().Kind != LeftParen {
		if isIdent {
			return nil, &UnexpectedTokenError{Tok: p.peek(), Want: "'(' after " + id.Name}
		}
		return n, nil
	}
	if !isIdent {
		return nil, &CalleeError{Callee: n.String()}
	}
	p.advance()
	var args []Node
	if p.peek().Kind != RightParen {
		for {
			a, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().Kind != Comma {
				break
			}
			p.advance()
		}
	}
	if tok := p.peek(); tok.Kind != RightParen {
		return nil, &UnexpectedTokenError{Tok: tok, Want: "')'"}
	}
	p.advance()
	fn, ok := builtins[id.Name]
	if !ok {
		// The lexer only emits Ident tokens for known function names.
		panic("nimkalc: unknown function " + strconv.Quote(id.Name) + " past the lexer")
	}
	if len(args) != fn.arity {
		return nil, &CallError{Func: id.Name, Want: fn.arity, Got: len(args)}
	}
	return &CallExpr{Callee: id, Args: args}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case Int, Float:
		p.advance()
		return numberNode(tok)
	case Ident:
		p.advance()
		return &IdentExpr{Name: strings.ToLower(tok.Lexeme)}, nil
	case LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if end := p.peek(); end.Kind != RightParen {
			return nil, &UnexpectedTokenError{Tok: end, Want: "')'"}
		}
		p.advance()
		return &GroupingExpr{Inner: inner}, nil
	}
	return nil, &UnexpectedTokenError{Tok: tok, Want: "an expression"}
}

// numberNode converts a numeric token into a leaf node. The lexer accepts
// shapes like "2e" without checking that they denote a value, so the
// conversion can still fail here. Overflowing literals saturate to infinity
// rather than failing.
func numberNode(tok Token) (Node, error) {
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &NumberError{Lexeme: tok.Lexeme}
	}
	if tok.Kind == Int && isIntegral(v) {
		return &IntegerLit{Value: v}, nil
	}
	return &FloatLit{Value: v}, nil
}
