package nimkalc

import (
	"math"
	"strconv"
)

// Evaluate reduces an expression tree to a single IntegerLit or FloatLit
// leaf. It walks the tree depth first and never mutates a node: the result is
// always a newly allocated leaf, and evaluating an already reduced leaf
// returns an equal copy. Binary operands are reduced right before left, and
// call arguments left to right.
//
// Evaluate is pure; it is safe to evaluate distinct trees from multiple
// goroutines.
func Evaluate(n Node) (Node, error) {
	switch n := n.(type) {
	case *IntegerLit:
		return &IntegerLit{Value: n.Value}, nil
	case *FloatLit:
		return &FloatLit{Value: n.Value}, nil
	case *UnaryExpr:
		operand, err := Evaluate(n.Operand)
		if err != nil {
			return nil, err
		}
		return applyUnary(n.Op, operand), nil
	case *BinaryExpr:
		right, err := Evaluate(n.Right)
		if err != nil {
			return nil, err
		}
		left, err := Evaluate(n.Left)
		if err != nil {
			return nil, err
		}
		return applyBinary(n.Op, left, right)
	case *GroupingExpr:
		return Evaluate(n.Inner)
	case *CallExpr:
		return applyCall(n)
	case *IdentExpr:
		// The parser only ever places identifiers as callees.
		panic("nimkalc: bare identifier " + strconv.Quote(n.Name) + " reached evaluation")
	}
	panic("nimkalc: unknown node " + n.String())
}

// Run is a convenience that chains Tokenize, Parse and Evaluate. A single
// error from any stage aborts the whole run.
func Run(src string) (Node, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	ast, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return Evaluate(ast)
}

func applyUnary(op Token, operand Node) Node {
	v, integer := numValue(operand)
	switch op.Kind {
	case Plus:
		// Unary plus is the identity.
		return operand
	case Minus:
		if integer {
			return &IntegerLit{Value: -v}
		}
		return &FloatLit{Value: -v}
	}
	panic("nimkalc: invalid unary operator " + op.String())
}

func applyBinary(op Token, left, right Node) (Node, error) {
	l, lint := numValue(left)
	r, rint := numValue(right)
	switch op.Kind {
	case Plus:
		return retag(l + r), nil
	case Minus:
		return retag(l - r), nil
	case Mul:
		return retag(l * r), nil
	case Div:
		if r == 0 {
			return nil, &DivisionError{Op: "/"}
		}
		return retag(l / r), nil
	case Modulo:
		if r == 0 {
			return nil, &DivisionError{Op: "%"}
		}
		if !lint {
			return nil, &OperandError{X: l}
		}
		if !rint {
			return nil, &OperandError{X: r}
		}
		return &IntegerLit{Value: float64(int64(l) % int64(r))}, nil
	case Exp:
		return retag(math.Pow(l, r)), nil
	}
	panic("nimkalc: invalid binary operator " + op.String())
}

func applyCall(n *CallExpr) (Node, error) {
	id, ok := n.Callee.(*IdentExpr)
	if !ok {
		panic("nimkalc: call of non-identifier " + n.Callee.String())
	}
	fn, ok := builtins[id.Name]
	if !ok {
		panic("nimkalc: call of unknown function " + strconv.Quote(id.Name))
	}
	if len(n.Args) != fn.arity {
		panic("nimkalc: call of " + id.Name + " with " + strconv.Itoa(len(n.Args)) + " arguments reached evaluation")
	}
	args := make([]float64, len(n.Args))
	for i, a := range n.Args {
		v, err := Evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i], _ = numValue(v)
	}
	if fn.domain != nil {
		if err := fn.domain(args); err != nil {
			return nil, err
		}
	}
	return retag(fn.impl(args)), nil
}

// numValue extracts the value and kind tag of a reduced leaf.
func numValue(n Node) (v float64, integer bool) {
	switch n := n.(type) {
	case *IntegerLit:
		return n.Value, true
	case *FloatLit:
		return n.Value, false
	}
	panic("nimkalc: operand " + n.String() + " did not reduce to a number")
}

// retag applies the numeric-kind inference rule: a result is an Integer
// exactly when the float64 value converts to int64 and back unchanged. The
// rule is re-applied after every reduction; it is never inherited from the
// operands.
func retag(v float64) Node {
	if isIntegral(v) {
		return &IntegerLit{Value: v}
	}
	return &FloatLit{Value: v}
}

func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v != math.Trunc(v) {
		return false
	}
	// int64 holds every integral float64 in [-2^63, 2^63).
	const limit = float64(1 << 63)
	return -limit <= v && v < limit
}
