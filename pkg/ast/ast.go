// Package ast defines the in-memory representation of a rinha program. The
// tree is produced by pkg/driver from a pre-parsed JSON document and is
// read-only thereafter; spans are carried for diagnostics only.
package ast

import "math/big"

// Span records where a node came from in the original source. Start and End
// are byte offsets; Line and Column are populated when the producing parser
// emitted them.
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
	File   string
}

// Node is the shared behaviour for all AST nodes.
type Node interface {
	Span() Span
}

type baseNode struct {
	span Span
}

func (n *baseNode) Span() Span        { return n.span }
func (n *baseNode) setSpan(span Span) { n.span = span }

// File is the top-level program wrapper.
type File struct {
	baseNode
	Name       string
	Expression Node
}

// Parameter is a named binder used by Function parameters and Let names.
type Parameter struct {
	Text string
	Loc  Span
}

// Var references a binding by name.
type Var struct {
	baseNode
	Text string
}

// Function is a lambda literal. Evaluating it captures the defining
// environment; the body is only evaluated on call.
type Function struct {
	baseNode
	Parameters []Parameter
	Body       Node
}

// Call applies a callee to zero or more arguments.
type Call struct {
	baseNode
	Callee    Node
	Arguments []Node
}

// Let binds a name for the duration of Next.
type Let struct {
	baseNode
	Name  Parameter
	Value Node
	Next  Node
}

// If selects exactly one branch based on a boolean condition.
type If struct {
	baseNode
	Condition Node
	Then      Node
	Otherwise Node
}

// Binary applies Op to LHS and RHS. Both operands are always evaluated,
// left before right.
type Binary struct {
	baseNode
	Op  Operator
	LHS Node
	RHS Node
}

// Str is a string literal.
type Str struct {
	baseNode
	Value string
}

// Int is an integer literal. Values are arbitrary precision.
type Int struct {
	baseNode
	Value *big.Int
}

// Bool is a boolean literal.
type Bool struct {
	baseNode
	Value bool
}

// Tuple constructs a pair.
type Tuple struct {
	baseNode
	First  Node
	Second Node
}

// First projects the first component of a tuple.
type First struct {
	baseNode
	Value Node
}

// Second projects the second component of a tuple.
type Second struct {
	baseNode
	Value Node
}

// Print evaluates its operand, writes its rendering to standard output, and
// yields the operand's value.
type Print struct {
	baseNode
	Value Node
}
