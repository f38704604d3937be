package runtime

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"rinha/interpreter-go/pkg/ast"
)

func intValue(n int64) Value  { return IntegerValue{Val: big.NewInt(n)} }
func strValue(s string) Value { return StringValue{Val: s} }

func TestFormat(t *testing.T) {
	closure := &ClosureValue{Fn: &ast.Function{}, Env: NewEnvironment()}

	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"integer", intValue(42), "42"},
		{"negative integer", intValue(-7), "-7"},
		{"bool true", BoolValue{Val: true}, "true"},
		{"bool false", BoolValue{Val: false}, "false"},
		{"string raw", strValue("hello"), "hello"},
		{"tuple", &TupleValue{First: intValue(1), Second: BoolValue{Val: false}}, "(1, false)"},
		{
			"nested tuple",
			&TupleValue{
				First:  &TupleValue{First: intValue(1), Second: intValue(2)},
				Second: strValue("x"),
			},
			"((1, 2), x)",
		},
		{"closure is opaque", closure, "<#closure>"},
		{"tuple holding closure", &TupleValue{First: closure, Second: intValue(0)}, "(<#closure>, 0)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.value))
		})
	}
}

func TestFormatBigInteger(t *testing.T) {
	val, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	if !ok {
		t.Fatal("SetString failed")
	}
	assert.Equal(t, "340282366920938463463374607431768211456", Format(IntegerValue{Val: val}))
}

func TestEqualSameKind(t *testing.T) {
	assert.True(t, Equal(intValue(3), intValue(3)))
	assert.False(t, Equal(intValue(3), intValue(4)))
	assert.True(t, Equal(strValue("a"), strValue("a")))
	assert.False(t, Equal(strValue("a"), strValue("b")))
	assert.True(t, Equal(BoolValue{Val: true}, BoolValue{Val: true}))
	assert.False(t, Equal(BoolValue{Val: true}, BoolValue{Val: false}))
}

func TestEqualTupleRecursive(t *testing.T) {
	left := &TupleValue{First: intValue(1), Second: &TupleValue{First: strValue("x"), Second: BoolValue{Val: true}}}
	same := &TupleValue{First: intValue(1), Second: &TupleValue{First: strValue("x"), Second: BoolValue{Val: true}}}
	diff := &TupleValue{First: intValue(1), Second: &TupleValue{First: strValue("y"), Second: BoolValue{Val: true}}}

	assert.True(t, Equal(left, same))
	assert.False(t, Equal(left, diff))
}

func TestEqualAcrossKindsIsDefinedFalse(t *testing.T) {
	assert.False(t, Equal(intValue(1), BoolValue{Val: true}))
	assert.False(t, Equal(strValue("1"), intValue(1)))
	assert.False(t, Equal(&TupleValue{First: intValue(1), Second: intValue(2)}, intValue(1)))
}

func TestEqualClosureByIdentity(t *testing.T) {
	fn := &ast.Function{}
	env := NewEnvironment()
	a := &ClosureValue{Fn: fn, Env: env}
	b := &ClosureValue{Fn: fn, Env: env}

	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, b))
}
