package interpreter

import (
	"fmt"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/runtime"
)

// RuntimeErrorKind tags the runtime failure taxonomy. The language has no
// exception construct, so none of these are recoverable within the evaluated
// program; the first one raised terminates the run.
type RuntimeErrorKind string

const (
	ErrUnboundVariable RuntimeErrorKind = "unbound variable"
	ErrTypeMismatch    RuntimeErrorKind = "type mismatch"
	ErrArityMismatch   RuntimeErrorKind = "arity mismatch"
	ErrDivisionByZero  RuntimeErrorKind = "division by zero"
	ErrNotCallable     RuntimeErrorKind = "not callable"
	ErrNotIndexable    RuntimeErrorKind = "not indexable"
	ErrRecursionLimit  RuntimeErrorKind = "recursion limit exceeded"
)

// RuntimeError is a runtime failure with enough context for a one-line
// diagnostic: the kind, a human-readable message, and the span of the node
// that raised it.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Message string
	Span    ast.Span
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newUnboundVariable(node *ast.Var) error {
	return &RuntimeError{
		Kind:    ErrUnboundVariable,
		Message: fmt.Sprintf("%q is not defined", node.Text),
		Span:    node.Span(),
	}
}

func newBinaryTypeMismatch(op ast.Operator, left, right runtime.Value, span ast.Span) error {
	return &RuntimeError{
		Kind:    ErrTypeMismatch,
		Message: fmt.Sprintf("operator %s cannot be applied to %s and %s", op.Symbol(), left.Kind(), right.Kind()),
		Span:    span,
	}
}

func newConditionTypeMismatch(found runtime.Value, span ast.Span) error {
	return &RuntimeError{
		Kind:    ErrTypeMismatch,
		Message: fmt.Sprintf("if condition must be a bool, found %s", found.Kind()),
		Span:    span,
	}
}

func newArityMismatch(expected, actual int, span ast.Span) error {
	noun := "arguments"
	if expected == 1 {
		noun = "argument"
	}
	return &RuntimeError{
		Kind:    ErrArityMismatch,
		Message: fmt.Sprintf("function expects %d %s, got %d", expected, noun, actual),
		Span:    span,
	}
}

func newDivisionByZero(op ast.Operator, span ast.Span) error {
	message := "integer division by zero"
	if op == ast.OpRem {
		message = "integer remainder by zero"
	}
	return &RuntimeError{
		Kind:    ErrDivisionByZero,
		Message: message,
		Span:    span,
	}
}

func newNotCallable(found runtime.Value, span ast.Span) error {
	return &RuntimeError{
		Kind:    ErrNotCallable,
		Message: fmt.Sprintf("cannot call a value of kind %s", found.Kind()),
		Span:    span,
	}
}

func newNotIndexable(projection string, found runtime.Value, span ast.Span) error {
	return &RuntimeError{
		Kind:    ErrNotIndexable,
		Message: fmt.Sprintf("%s expects a tuple, found %s", projection, found.Kind()),
		Span:    span,
	}
}

func newRecursionLimit(limit int, span ast.Span) error {
	return &RuntimeError{
		Kind:    ErrRecursionLimit,
		Message: fmt.Sprintf("call depth exceeded the configured limit of %d", limit),
		Span:    span,
	}
}
