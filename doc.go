// Package nimkalc implements a small expression-language front end: it turns
// a string containing a mathematical expression into a numeric result.
//
// The pipeline has three independent stages. Tokenize performs lexical
// analysis, Parse builds an abstract syntax tree by recursive descent, and
// Evaluate walks the tree and reduces it to a single Integer or Float leaf.
// Run chains all three. Each stage is a pure function with no shared state,
// so independent invocations are safe to run concurrently.
//
// Numbers are stored as float64 throughout. Whether a result displays as an
// integer or a float is decided after every operation: a value that converts
// to int64 and back unchanged is an integer, anything else is a float. That
// single rule also drives the integer-only operand check of the % operator.
//
// Named constants (pi, e, tau, inf, nan, phi) are folded into literals during
// lexing, and function names are validated against a fixed table, so a typo
// is reported before parsing ever starts. Function arity is checked during
// parsing, so a call like sin(1, 2) never reaches evaluation.
package nimkalc
