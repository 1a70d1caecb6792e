package nimkalc

import (
	"math"
	"sort"
)

// builtin describes one entry of the function table: how many arguments the
// function takes, an optional domain guard run before dispatch, and the
// underlying operation. The table is data so that adding or auditing a
// function is a one-line change.
type builtin struct {
	arity  int
	domain func(args []float64) error
	impl   func(args []float64) float64
}

var builtins = map[string]builtin{
	"sin":     {1, nil, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":     {1, nil, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":     {1, nil, func(a []float64) float64 { return math.Tan(a[0]) }},
	"sinh":    {1, nil, func(a []float64) float64 { return math.Sinh(a[0]) }},
	"cosh":    {1, nil, func(a []float64) float64 { return math.Cosh(a[0]) }},
	"tanh":    {1, nil, func(a []float64) float64 { return math.Tanh(a[0]) }},
	"arcsin":  {1, nil, func(a []float64) float64 { return math.Asin(a[0]) }},
	"arccos":  {1, nil, func(a []float64) float64 { return math.Acos(a[0]) }},
	"arctan":  {1, nil, func(a []float64) float64 { return math.Atan(a[0]) }},
	"arcsinh": {1, nil, func(a []float64) float64 { return math.Asinh(a[0]) }},
	"arccosh": {1, nil, func(a []float64) float64 { return math.Acosh(a[0]) }},
	"arctanh": {1, nil, func(a []float64) float64 { return math.Atanh(a[0]) }},
	"sqrt":    {1, nonNegative("sqrt"), func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"cbrt":    {1, nil, func(a []float64) float64 { return math.Cbrt(a[0]) }},
	"ln":      {1, nonZero("ln"), func(a []float64) float64 { return math.Log(a[0]) }},
	"log10":   {1, nonZero("log10"), func(a []float64) float64 { return math.Log10(a[0]) }},
	"log2":    {1, nonZero("log2"), func(a []float64) float64 { return math.Log2(a[0]) }},
	"log":     {2, nonZero("log"), func(a []float64) float64 { return math.Log(a[0]) / math.Log(a[1]) }},
	"hypot":   {2, nil, func(a []float64) float64 { return math.Hypot(a[0], a[1]) }},
}

// constants maps the named constants the lexer folds into Float tokens.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"inf": math.Inf(1),
	"nan": math.NaN(),
	"phi": math.Phi,
}

// nonNegative guards functions undefined for negative arguments.
func nonNegative(fn string) func([]float64) error {
	return func(args []float64) error {
		if args[0] < 0 {
			return &DomainError{Func: fn, X: args[0]}
		}
		return nil
	}
}

// nonZero guards logarithms, which are rejected at exactly 0. Negative
// arguments are not guarded; they produce NaN like the underlying float
// functions.
func nonZero(fn string) func([]float64) error {
	return func(args []float64) error {
		if args[0] == 0 {
			return &DomainError{Func: fn, X: args[0]}
		}
		return nil
	}
}

// Functions returns the names of the built-in functions in sorted order.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Constants returns the names of the built-in constants in sorted order.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for k := range constants {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
