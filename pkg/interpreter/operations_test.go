package interpreter

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/runtime"
)

func apply(t *testing.T, op ast.Operator, left, right runtime.Value) (runtime.Value, error) {
	t.Helper()
	return applyBinaryOperator(&ast.Binary{Op: op}, left, right)
}

func applyOK(t *testing.T, op ast.Operator, left, right runtime.Value) runtime.Value {
	t.Helper()
	value, err := apply(t, op, left, right)
	require.NoError(t, err)
	return value
}

func num(n int64) runtime.Value   { return runtime.IntegerValue{Val: big.NewInt(n)} }
func text(s string) runtime.Value { return runtime.StringValue{Val: s} }
func truth(b bool) runtime.Value  { return runtime.BoolValue{Val: b} }

func TestAdd(t *testing.T) {
	assertInt(t, applyOK(t, ast.OpAdd, num(1), num(2)), 3)
	assert.Equal(t, text("ab"), applyOK(t, ast.OpAdd, text("a"), text("b")))
	assert.Equal(t, text("a1"), applyOK(t, ast.OpAdd, text("a"), num(1)))
	assert.Equal(t, text("1a"), applyOK(t, ast.OpAdd, num(1), text("a")))
	assert.Equal(t, text("n-3"), applyOK(t, ast.OpAdd, text("n"), num(-3)))
}

func TestAddTypeMismatch(t *testing.T) {
	_, err := apply(t, ast.OpAdd, truth(true), num(1))
	rtErr := requireKind(t, err, ErrTypeMismatch)
	assert.Equal(t, "operator + cannot be applied to bool and integer", rtErr.Message)

	_, err = apply(t, ast.OpAdd, num(1), truth(false))
	requireKind(t, err, ErrTypeMismatch)

	pair := &runtime.TupleValue{First: num(1), Second: num(2)}
	_, err = apply(t, ast.OpAdd, pair, pair)
	requireKind(t, err, ErrTypeMismatch)
}

func TestArithmeticRequiresIntegers(t *testing.T) {
	for _, op := range []ast.Operator{ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem} {
		_, err := apply(t, op, text("a"), num(1))
		requireKind(t, err, ErrTypeMismatch)
		_, err = apply(t, op, num(1), truth(true))
		requireKind(t, err, ErrTypeMismatch)
	}
}

func TestArithmetic(t *testing.T) {
	assertInt(t, applyOK(t, ast.OpSub, num(2), num(4)), -2)
	assertInt(t, applyOK(t, ast.OpMul, num(2), num(4)), 8)
	assertInt(t, applyOK(t, ast.OpDiv, num(4), num(2)), 2)
	assertInt(t, applyOK(t, ast.OpRem, num(6), num(4)), 2)
}

func TestDivRemTruncateTowardZero(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2},
		{9, 3}, {1, 5}, {-1, 5}, {0, 3},
	}
	for _, tc := range cases {
		quo := applyOK(t, ast.OpDiv, num(tc.a), num(tc.b)).(runtime.IntegerValue)
		rem := applyOK(t, ast.OpRem, num(tc.a), num(tc.b)).(runtime.IntegerValue)

		// a == b*quo + rem, with rem taking the sign of a.
		recombined := new(big.Int).Add(new(big.Int).Mul(big.NewInt(tc.b), quo.Val), rem.Val)
		assert.Zero(t, recombined.Cmp(big.NewInt(tc.a)), "a=%d b=%d quo=%s rem=%s", tc.a, tc.b, quo.Val, rem.Val)
		if rem.Val.Sign() != 0 {
			wantSign := 1
			if tc.a < 0 {
				wantSign = -1
			}
			assert.Equal(t, wantSign, rem.Val.Sign(), "a=%d b=%d", tc.a, tc.b)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := apply(t, ast.OpDiv, num(1), num(0))
	rtErr := requireKind(t, err, ErrDivisionByZero)
	assert.Equal(t, "integer division by zero", rtErr.Message)

	_, err = apply(t, ast.OpRem, num(1), num(0))
	rtErr = requireKind(t, err, ErrDivisionByZero)
	assert.Equal(t, "integer remainder by zero", rtErr.Message)
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, truth(true), applyOK(t, ast.OpLt, num(3), num(5)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpLt, num(6), num(4)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpGt, num(6), num(4)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpGt, num(3), num(5)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpLte, num(6), num(6)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpLte, num(6), num(5)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpGte, num(6), num(5)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpGte, num(5), num(6)))
}

func TestComparisonsRequireIntegers(t *testing.T) {
	for _, op := range []ast.Operator{ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte} {
		_, err := apply(t, op, text("a"), text("b"))
		requireKind(t, err, ErrTypeMismatch)
	}
}

func TestEquality(t *testing.T) {
	assert.Equal(t, truth(true), applyOK(t, ast.OpEq, num(6), num(6)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpEq, num(6), num(5)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpNeq, num(6), num(6)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpNeq, num(6), num(5)))

	pairA := &runtime.TupleValue{First: num(1), Second: text("x")}
	pairB := &runtime.TupleValue{First: num(1), Second: text("x")}
	assert.Equal(t, truth(true), applyOK(t, ast.OpEq, pairA, pairB))
}

func TestEqualityAcrossKindsIsNotAnError(t *testing.T) {
	assert.Equal(t, truth(false), applyOK(t, ast.OpEq, num(1), truth(true)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpNeq, num(1), text("1")))
}

func TestLogical(t *testing.T) {
	assert.Equal(t, truth(true), applyOK(t, ast.OpAnd, truth(true), truth(true)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpAnd, truth(true), truth(false)))
	assert.Equal(t, truth(true), applyOK(t, ast.OpOr, truth(true), truth(false)))
	assert.Equal(t, truth(false), applyOK(t, ast.OpOr, truth(false), truth(false)))
}

func TestLogicalRequiresBooleans(t *testing.T) {
	_, err := apply(t, ast.OpAnd, truth(false), num(1))
	rtErr := requireKind(t, err, ErrTypeMismatch)
	assert.Equal(t, "operator && cannot be applied to bool and integer", rtErr.Message)

	_, err = apply(t, ast.OpOr, num(0), truth(true))
	requireKind(t, err, ErrTypeMismatch)
}
