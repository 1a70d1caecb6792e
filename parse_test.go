package nimkalc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nocturn9x/nimkalc"
)

// mustParse tokenizes and parses src, failing the test on any error.
func mustParse(t *testing.T, src string) nimkalc.Node {
	t.Helper()
	toks, err := nimkalc.Tokenize(src)
	if err != nil {
		t.Fatalf("%q failed to tokenize: %v", src, err)
	}
	n, err := nimkalc.Parse(toks)
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	return n
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"int", "2", "Integer(2)"},
		{"float", "2.5", "Float(2.5)"},
		{"sci", "1e3", "Float(1000)"},
		{"add", "2+3", "Binary(Integer(2), Plus, Integer(3))"},
		{"sub", "2-3", "Binary(Integer(2), Minus, Integer(3))"},
		{"mul", "2*3", "Binary(Integer(2), Mul, Integer(3))"},
		{"div", "2/3", "Binary(Integer(2), Div, Integer(3))"},
		{"mod", "7%2", "Binary(Integer(7), Modulo, Integer(2))"},
		{"pow", "2^3", "Binary(Integer(2), Exp, Integer(3))"},
		// left associativity
		{"add-assoc", "1-2-3", "Binary(Binary(Integer(1), Minus, Integer(2)), Minus, Integer(3))"},
		{"mul-assoc", "8/4/2", "Binary(Binary(Integer(8), Div, Integer(4)), Div, Integer(2))"},
		// precedence
		{"prec", "1+2*3", "Binary(Integer(1), Plus, Binary(Integer(2), Mul, Integer(3)))"},
		{"prec-mod", "1+6%4", "Binary(Integer(1), Plus, Binary(Integer(6), Modulo, Integer(4)))"},
		{"prec-pow", "2*3^4", "Binary(Integer(2), Mul, Binary(Integer(3), Exp, Integer(4)))"},
		// exponentiation is right-associative
		{"pow-assoc", "2^3^2", "Binary(Integer(2), Exp, Binary(Integer(3), Exp, Integer(2)))"},
		// unary binds tighter than ^, so -2^2 is (-2)^2
		{"neg-pow", "-2^2", "Binary(Unary(Minus, Integer(2)), Exp, Integer(2))"},
		{"pow-neg", "2^-2", "Binary(Integer(2), Exp, Unary(Minus, Integer(2)))"},
		{"unary-stack", "-+2", "Unary(Minus, Unary(Plus, Integer(2)))"},
		// grouping resets precedence
		{"group", "(1+2)*3", "Binary(Grouping(Binary(Integer(1), Plus, Integer(2))), Mul, Integer(3))"},
		{"group-nested", "((2))", "Grouping(Grouping(Integer(2)))"},
		// calls
		{"call", "sin(0)", "Call(sin, Integer(0))"},
		{"call-upper", "SIN(0)", "Call(sin, Integer(0))"},
		{"call-two", "log(8,2)", "Call(log, Integer(8), Integer(2))"},
		{"call-expr", "hypot(1+2, 3)", "Call(hypot, Binary(Integer(1), Plus, Integer(2)), Integer(3))"},
		{"call-nested", "sqrt(sqrt(16))", "Call(sqrt, Call(sqrt, Integer(16)))"},
		{"call-in-term", "2*cos(0)", "Binary(Integer(2), Mul, Call(cos, Integer(0)))"},
		// constants are literals by parse time
		{"const", "pi", "Float(3.141592653589793)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := mustParse(t, c.src)
			if got := n.String(); got != c.want {
				t.Errorf("parsing %q: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"trailing-num", "2 2"},
		{"call-of-group", "(1)(2)"},
		{"trailing-close", "1+2)"},
		{"unmatched-open", "(2"},
		{"unmatched-call", "sin(1"},
		{"trailing-op", "2+"},
		{"leading-op", "*2"},
		{"empty", ""},
		{"empty-group", "()"},
		{"dangling-exponent", "2e"},
		{"bare-ident", "sin"},
		{"ident-no-parens", "sin 0"},
		{"comma-outside-call", "(1,2)"},
		{"empty-arg", "log(1,)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := nimkalc.Tokenize(c.src)
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			_, err = nimkalc.Parse(toks)
			if err == nil {
				t.Fatalf("parsing %q gave no error", c.src)
			}
			var in nimkalc.InputError
			if !errors.As(err, &in) {
				t.Errorf("parsing %q: error %v is not an InputError", c.src, err)
			}
		})
	}
}

func TestParseTrailingInput(t *testing.T) {
	// Leftover tokens after a complete expression are an error, not silently
	// dropped.
	toks, err := nimkalc.Tokenize("2 2")
	if err != nil {
		t.Fatal(err)
	}
	_, err = nimkalc.Parse(toks)
	var ute *nimkalc.UnexpectedTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("parsing \"2 2\": error %v is not an UnexpectedTokenError", err)
	}
	if ute.Tok.Kind != nimkalc.Int || ute.Tok.Lexeme != "2" {
		t.Errorf("wrong offending token: %v", ute.Tok)
	}
}

func TestParseArity(t *testing.T) {
	cases := []struct {
		src       string
		fn        string
		want, got int
	}{
		{"sin(1,2)", "sin", 1, 2},
		{"log(2)", "log", 2, 1},
		{"hypot(1)", "hypot", 2, 1},
		{"sqrt()", "sqrt", 1, 0},
	}
	for _, c := range cases {
		toks, err := nimkalc.Tokenize(c.src)
		if err != nil {
			t.Fatalf("%q failed to tokenize: %v", c.src, err)
		}
		_, err = nimkalc.Parse(toks)
		var ce *nimkalc.CallError
		if !errors.As(err, &ce) {
			t.Errorf("parsing %q: error %v is not a CallError", c.src, err)
			continue
		}
		if ce.Func != c.fn || ce.Want != c.want || ce.Got != c.got {
			t.Errorf("parsing %q: want %s %d/%d, got %s %d/%d", c.src, c.fn, c.want, c.got, ce.Func, ce.Want, ce.Got)
		}
	}
}

func TestParseNonIdentifierCallee(t *testing.T) {
	for _, src := range []string{"2(3)", "2.5(3)"} {
		toks, err := nimkalc.Tokenize(src)
		if err != nil {
			t.Fatalf("%q failed to tokenize: %v", src, err)
		}
		_, err = nimkalc.Parse(toks)
		var ce *nimkalc.CalleeError
		if !errors.As(err, &ce) {
			t.Errorf("parsing %q: error %v is not a CalleeError", src, err)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	cases := []string{
		strings.Repeat("(", 10000) + "1" + strings.Repeat(")", 10000),
		strings.Repeat("-", 10000) + "1",
		strings.Repeat("sqrt(", 10000) + "1" + strings.Repeat(")", 10000),
	}
	for _, src := range cases {
		toks, err := nimkalc.Tokenize(src)
		if err != nil {
			t.Fatal(err)
		}
		_, err = nimkalc.Parse(toks)
		var de *nimkalc.DepthError
		if !errors.As(err, &de) {
			t.Errorf("deeply nested input: error %v is not a DepthError", err)
		}
	}
}

func TestParseEmptyTokens(t *testing.T) {
	// A missing Eof behaves as if one were appended.
	if _, err := nimkalc.Parse(nil); err == nil {
		t.Error("parsing no tokens gave no error")
	}
	n, err := nimkalc.Parse([]nimkalc.Token{{Kind: nimkalc.Int, Lexeme: "3"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != "Integer(3)" {
		t.Errorf("want Integer(3), got %s", got)
	}
}

func TestStringDeterministic(t *testing.T) {
	n := mustParse(t, "1 + sin(2*pi)^3 * -4")
	first := n.String()
	for i := 0; i < 3; i++ {
		if got := n.String(); got != first {
			t.Fatalf("representation changed between calls: %s then %s", first, got)
		}
	}
	// Evaluation must not mutate the tree either.
	if _, err := nimkalc.Evaluate(n); err != nil {
		t.Fatal(err)
	}
	if got := n.String(); got != first {
		t.Errorf("evaluation mutated the tree: %s then %s", first, got)
	}
}
