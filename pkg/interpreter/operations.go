package interpreter

import (
	"math/big"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/runtime"
)

// applyBinaryOperator dispatches on the operator and the runtime kinds of
// both operands. The operand kind set is closed, so every combination is
// either handled here or a type mismatch; there is no open-ended dispatch.
func applyBinaryOperator(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	switch n.Op {
	case ast.OpAdd:
		return evaluateAdd(n, left, right)
	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem:
		return evaluateArithmetic(n, left, right)
	case ast.OpEq:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.OpNeq:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte:
		return evaluateComparison(n, left, right)
	case ast.OpAnd, ast.OpOr:
		return evaluateLogical(n, left, right)
	default:
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
}

// evaluateAdd sums integers and concatenates when either side is a string;
// a string/integer mix renders the integer as decimal text first.
func evaluateAdd(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.IntegerValue:
		switch r := right.(type) {
		case runtime.IntegerValue:
			return runtime.IntegerValue{Val: new(big.Int).Add(l.Val, r.Val)}, nil
		case runtime.StringValue:
			return runtime.StringValue{Val: l.Val.String() + r.Val}, nil
		}
	case runtime.StringValue:
		switch r := right.(type) {
		case runtime.StringValue:
			return runtime.StringValue{Val: l.Val + r.Val}, nil
		case runtime.IntegerValue:
			return runtime.StringValue{Val: l.Val + r.Val.String()}, nil
		}
	}
	return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
}

func evaluateArithmetic(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	l, ok := left.(runtime.IntegerValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	r, ok := right.(runtime.IntegerValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	switch n.Op {
	case ast.OpSub:
		return runtime.IntegerValue{Val: new(big.Int).Sub(l.Val, r.Val)}, nil
	case ast.OpMul:
		return runtime.IntegerValue{Val: new(big.Int).Mul(l.Val, r.Val)}, nil
	case ast.OpDiv:
		if r.Val.Sign() == 0 {
			return nil, newDivisionByZero(n.Op, n.Span())
		}
		// Quo truncates toward zero, so quotient and remainder satisfy
		// l == r*quo + rem with rem taking the sign of l.
		return runtime.IntegerValue{Val: new(big.Int).Quo(l.Val, r.Val)}, nil
	case ast.OpRem:
		if r.Val.Sign() == 0 {
			return nil, newDivisionByZero(n.Op, n.Span())
		}
		return runtime.IntegerValue{Val: new(big.Int).Rem(l.Val, r.Val)}, nil
	default:
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
}

func evaluateComparison(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	l, ok := left.(runtime.IntegerValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	r, ok := right.(runtime.IntegerValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	cmp := l.Val.Cmp(r.Val)
	switch n.Op {
	case ast.OpLt:
		return runtime.BoolValue{Val: cmp < 0}, nil
	case ast.OpGt:
		return runtime.BoolValue{Val: cmp > 0}, nil
	case ast.OpLte:
		return runtime.BoolValue{Val: cmp <= 0}, nil
	case ast.OpGte:
		return runtime.BoolValue{Val: cmp >= 0}, nil
	default:
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
}

// evaluateLogical requires booleans on both sides. Operands were already
// evaluated eagerly by the caller; there is no short-circuit.
func evaluateLogical(n *ast.Binary, left, right runtime.Value) (runtime.Value, error) {
	l, ok := left.(runtime.BoolValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	r, ok := right.(runtime.BoolValue)
	if !ok {
		return nil, newBinaryTypeMismatch(n.Op, left, right, n.Span())
	}
	if n.Op == ast.OpAnd {
		return runtime.BoolValue{Val: l.Val && r.Val}, nil
	}
	return runtime.BoolValue{Val: l.Val || r.Val}, nil
}
