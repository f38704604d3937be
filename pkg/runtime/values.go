// Package runtime holds the values produced by evaluation and the lexical
// environments they close over. Values are immutable once constructed;
// tuples and closures hold shared references to their components.
package runtime

import (
	"fmt"
	"math/big"
	"strings"

	"rinha/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBool
	KindString
	KindTuple
	KindClosure
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	case KindClosure:
		return "closure"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type IntegerValue struct {
	Val *big.Int
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// TupleValue is a pair. Components are shared, not copied.
type TupleValue struct {
	First  Value
	Second Value
}

func (v *TupleValue) Kind() Kind { return KindTuple }

// ClosureValue pairs a function literal with the environment it was defined
// in. The environment stays alive for as long as the closure does.
type ClosureValue struct {
	Fn  *ast.Function
	Env *Environment
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

// closureToken is the opaque rendering of function values. The body is never
// shown.
const closureToken = "<#closure>"

// Format renders a value the way print does: integers in decimal, booleans
// as true/false, strings as their raw text, tuples parenthesized and
// comma-joined, closures as an opaque token.
func Format(v Value) string {
	switch val := v.(type) {
	case IntegerValue:
		return val.Val.String()
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case StringValue:
		return val.Val
	case *TupleValue:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(Format(val.First))
		b.WriteString(", ")
		b.WriteString(Format(val.Second))
		b.WriteByte(')')
		return b.String()
	case *ClosureValue:
		return closureToken
	default:
		return fmt.Sprintf("<unknown %T>", v)
	}
}

// Equal reports structural equality. Values of different kinds are never
// equal (a defined inequality, not an error); tuples compare recursively;
// closures compare by identity.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case IntegerValue:
		right := b.(IntegerValue)
		return left.Val.Cmp(right.Val) == 0
	case BoolValue:
		return left.Val == b.(BoolValue).Val
	case StringValue:
		return left.Val == b.(StringValue).Val
	case *TupleValue:
		right := b.(*TupleValue)
		return Equal(left.First, right.First) && Equal(left.Second, right.Second)
	case *ClosureValue:
		return left == b.(*ClosureValue)
	default:
		return false
	}
}
