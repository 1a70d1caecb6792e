package nimkalc_test

import (
	"testing"

	"github.com/nocturn9x/nimkalc"
)

func FuzzParse(f *testing.F) {
	f.Add("2+2")
	f.Add("-2^2")
	f.Add("sin(0)")
	f.Add("log(8, 2)")
	f.Add("2 2")
	f.Add("((((1))))")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := nimkalc.Tokenize(s)
		if err != nil {
			return
		}
		ast, err := nimkalc.Parse(toks)
		if err != nil {
			return
		}
		// Whatever parses has a stable canonical representation.
		if first, again := ast.String(), ast.String(); first != again {
			t.Errorf("parsing %q: representation changed: %s then %s", s, first, again)
		}
	})
}
