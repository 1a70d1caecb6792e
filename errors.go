package nimkalc

import "strconv"

// InputError is an error raised while turning source text into an AST. Every
// lexical and syntax error implements InputError; none are produced once
// evaluation begins.
type InputError interface {
	error
	inputError()
}

// EvalError is an arithmetic or domain error raised while reducing an AST.
type EvalError interface {
	error
	evalError()
}

// LexError indicates a character the lexer does not understand.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the 1-based rune position of the character in the source.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.QuoteRune(err.Char))
}

// NameError indicates an identifier that names neither a constant nor a
// built-in function. It is raised at lex time.
type NameError struct {
	// Name is the unknown identifier.
	Name string
	// Col is the 1-based rune position of the start of the identifier.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

// UnexpectedTokenError indicates a token the parser could not use where it
// occurred: a malformed primary, an unmatched parenthesis, input left over
// after a complete expression, or an Eof token where more input was required.
type UnexpectedTokenError struct {
	// Tok is the offending token.
	Tok Token
	// Want describes what the parser required instead, e.g. "an expression"
	// or "')'". Empty when no single expectation applies.
	Want string
}

func (err *UnexpectedTokenError) Error() string {
	if err.Tok.Kind == Eof {
		if err.Want == "" {
			return "unexpected end of input"
		}
		return "unexpected end of input: expecting " + err.Want
	}
	if err.Want == "" {
		return "unexpected token " + strconv.Quote(err.Tok.Lexeme)
	}
	return "unexpected token " + strconv.Quote(err.Tok.Lexeme) + ": expecting " + err.Want
}

// NumberError indicates a numeric literal the lexer accepted but that does
// not denote a value, e.g. a dangling exponent marker.
type NumberError struct {
	// Lexeme is the malformed literal.
	Lexeme string
}

func (err *NumberError) Error() string {
	return "malformed number " + strconv.Quote(err.Lexeme)
}

// CallError indicates a function call with the wrong number of arguments.
// Arity is checked at parse time, before any evaluation.
type CallError struct {
	// Func is the name of the called function.
	Func string
	// Want and Got are the expected and actual argument counts.
	Want, Got int
}

func (err *CallError) Error() string {
	return "wrong number of arguments for " + err.Func +
		": expecting " + strconv.Itoa(err.Want) + ", got " + strconv.Itoa(err.Got)
}

// CalleeError indicates a call whose callee is not an identifier, e.g.
// "2(3)" or "(sin)(0)".
type CalleeError struct {
	// Callee is the canonical representation of the non-identifier callee.
	Callee string
}

func (err *CalleeError) Error() string {
	return "cannot call a non-identifier: " + err.Callee
}

// DepthError indicates an expression nested more deeply than the parser
// allows. It exists to turn stack exhaustion on adversarial input into an
// ordinary syntax error.
type DepthError struct {
	// Limit is the nesting limit that was exceeded.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression nested more than " + strconv.Itoa(err.Limit) + " levels deep"
}

// DivisionError indicates a division or modulo with a zero right operand.
type DivisionError struct {
	// Op is the operator, "/" or "%".
	Op string
}

func (err *DivisionError) Error() string {
	if err.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

// OperandError indicates a modulo whose operand reduced to a Float.
type OperandError struct {
	// X is the non-integer operand value.
	X float64
}

func (err *OperandError) Error() string {
	return "integer required for modulo, got " + formatFloat(err.X)
}

// DomainError indicates a function argument outside the function's domain.
type DomainError struct {
	// Func is the function name.
	Func string
	// X is the out-of-domain argument value.
	X float64
}

func (err *DomainError) Error() string {
	return formatFloat(err.X) + " outside domain of " + err.Func
}

func (*LexError) inputError()             {}
func (*NameError) inputError()            {}
func (*UnexpectedTokenError) inputError() {}
func (*NumberError) inputError()          {}
func (*CallError) inputError()            {}
func (*CalleeError) inputError()          {}
func (*DepthError) inputError()           {}

func (*DivisionError) evalError() {}
func (*OperandError) evalError()  {}
func (*DomainError) evalError()   {}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*CalleeError)(nil)
	_ InputError = (*DepthError)(nil)
	_ EvalError  = (*DivisionError)(nil)
	_ EvalError  = (*OperandError)(nil)
	_ EvalError  = (*DomainError)(nil)
)
