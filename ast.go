package nimkalc

import (
	"strconv"
	"strings"
)

// A Node is a node in the abstract syntax tree of an expression. The set of
// implementations is closed: IntegerLit, FloatLit, UnaryExpr, BinaryExpr,
// GroupingExpr, IdentExpr and CallExpr. Every node owns its children
// outright; trees are never shared and never cyclic.
type Node interface {
	// String returns the canonical textual representation of the subtree.
	// The representation is deterministic: repeated calls on an unchanged
	// node yield identical strings.
	String() string

	repr(b *strings.Builder)
}

// IntegerLit is a whole-number literal or result. The value is stored as a
// float64 like every other number; the variant governs display and the
// integer-only operand check of %, not storage width. An IntegerLit's value
// always round-trips through int64 exactly.
type IntegerLit struct {
	Value float64
}

// FloatLit is a fractional literal or result.
type FloatLit struct {
	Value float64
}

// UnaryExpr is a prefix + or - applied to an operand.
type UnaryExpr struct {
	// Op is a copy of the operator token, kept for diagnostic printing.
	Op      Token
	Operand Node
}

// BinaryExpr is an infix arithmetic operation.
type BinaryExpr struct {
	Left  Node
	Op    Token
	Right Node
}

// GroupingExpr is a parenthesized expression. It overrides precedence during
// parsing and has no effect on evaluation.
type GroupingExpr struct {
	Inner Node
}

// IdentExpr is a bare identifier naming a built-in function. It is only
// meaningful as the callee of a CallExpr; the parser guarantees it appears
// nowhere else.
type IdentExpr struct {
	Name string
}

// CallExpr is a function invocation. The parser guarantees Callee is an
// IdentExpr naming a built-in function called with the right number of
// arguments.
type CallExpr struct {
	Callee Node
	Args   []Node
}

func (n *IntegerLit) repr(b *strings.Builder) {
	b.WriteString("Integer(")
	b.WriteString(strconv.FormatInt(int64(n.Value), 10))
	b.WriteByte(')')
}

func (n *FloatLit) repr(b *strings.Builder) {
	b.WriteString("Float(")
	b.WriteString(formatFloat(n.Value))
	b.WriteByte(')')
}

func (n *UnaryExpr) repr(b *strings.Builder) {
	b.WriteString("Unary(")
	b.WriteString(n.Op.Kind.String())
	b.WriteString(", ")
	n.Operand.repr(b)
	b.WriteByte(')')
}

func (n *BinaryExpr) repr(b *strings.Builder) {
	b.WriteString("Binary(")
	n.Left.repr(b)
	b.WriteString(", ")
	b.WriteString(n.Op.Kind.String())
	b.WriteString(", ")
	n.Right.repr(b)
	b.WriteByte(')')
}

func (n *GroupingExpr) repr(b *strings.Builder) {
	b.WriteString("Grouping(")
	n.Inner.repr(b)
	b.WriteByte(')')
}

func (n *IdentExpr) repr(b *strings.Builder) {
	b.WriteString("Identifier(")
	b.WriteString(n.Name)
	b.WriteByte(')')
}

func (n *CallExpr) repr(b *strings.Builder) {
	b.WriteString("Call(")
	if id, ok := n.Callee.(*IdentExpr); ok {
		b.WriteString(id.Name)
	} else {
		// Shouldn't happen: the parser rejects non-identifier callees.
		n.Callee.repr(b)
	}
	for _, a := range n.Args {
		b.WriteString(", ")
		a.repr(b)
	}
	b.WriteByte(')')
}

func (n *IntegerLit) String() string   { return stringify(n) }
func (n *FloatLit) String() string     { return stringify(n) }
func (n *UnaryExpr) String() string    { return stringify(n) }
func (n *BinaryExpr) String() string   { return stringify(n) }
func (n *GroupingExpr) String() string { return stringify(n) }
func (n *IdentExpr) String() string    { return stringify(n) }
func (n *CallExpr) String() string     { return stringify(n) }

func stringify(n Node) string {
	var b strings.Builder
	n.repr(&b)
	return b.String()
}

// formatFloat renders a float64 using Go's default shortest round-trip
// formatting.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
