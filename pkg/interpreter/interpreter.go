package interpreter

import (
	"fmt"
	"io"
	"os"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/runtime"
)

// DefaultMaxDepth bounds language-level call depth. The evaluator is
// recursive-descent, so every language call consumes a handful of native
// frames; the guard turns what would be a native stack overflow into a clean
// runtime error. Raise it with Options.MaxDepth for deeper workloads.
const DefaultMaxDepth = 200000

// Options configures an Interpreter.
type Options struct {
	// MaxDepth is the language call-depth limit. Zero means DefaultMaxDepth.
	MaxDepth int
	// Stdout receives print output. Nil means os.Stdout.
	Stdout io.Writer
}

// Interpreter evaluates a loaded program tree. Evaluation is single-threaded
// and synchronous; an Interpreter must not be shared across goroutines.
type Interpreter struct {
	stdout   io.Writer
	maxDepth int
	depth    int
}

// New returns an interpreter with default options.
func New() *Interpreter {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Interpreter {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Interpreter{stdout: stdout, maxDepth: maxDepth}
}

// Run evaluates the program against a fresh root environment and returns the
// value of its top-level expression. The first runtime error aborts the whole
// run; nothing is recovered mid-tree.
func (i *Interpreter) Run(file *ast.File) (runtime.Value, error) {
	i.depth = 0
	return i.evaluateExpression(file.Expression, runtime.NewEnvironment())
}

func (i *Interpreter) evaluateExpression(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Int:
		return runtime.IntegerValue{Val: n.Value}, nil

	case *ast.Str:
		return runtime.StringValue{Val: n.Value}, nil

	case *ast.Bool:
		return runtime.BoolValue{Val: n.Value}, nil

	case *ast.Var:
		value, ok := env.Get(n.Text)
		if !ok {
			return nil, newUnboundVariable(n)
		}
		return value, nil

	case *ast.Function:
		// Lexical capture by reference; the body is not evaluated here.
		return &runtime.ClosureValue{Fn: n, Env: env}, nil

	case *ast.Let:
		return i.evaluateLet(n, env)

	case *ast.If:
		condition, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return nil, err
		}
		test, ok := condition.(runtime.BoolValue)
		if !ok {
			return nil, newConditionTypeMismatch(condition, n.Condition.Span())
		}
		if test.Val {
			return i.evaluateExpression(n.Then, env)
		}
		return i.evaluateExpression(n.Otherwise, env)

	case *ast.Binary:
		left, err := i.evaluateExpression(n.LHS, env)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.RHS, env)
		if err != nil {
			return nil, err
		}
		return applyBinaryOperator(n, left, right)

	case *ast.Call:
		return i.evaluateCall(n, env)

	case *ast.Tuple:
		first, err := i.evaluateExpression(n.First, env)
		if err != nil {
			return nil, err
		}
		second, err := i.evaluateExpression(n.Second, env)
		if err != nil {
			return nil, err
		}
		return &runtime.TupleValue{First: first, Second: second}, nil

	case *ast.First:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		tuple, ok := value.(*runtime.TupleValue)
		if !ok {
			return nil, newNotIndexable("first", value, n.Span())
		}
		return tuple.First, nil

	case *ast.Second:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		tuple, ok := value.(*runtime.TupleValue)
		if !ok {
			return nil, newNotIndexable("second", value, n.Span())
		}
		return tuple.Second, nil

	case *ast.Print:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(i.stdout, runtime.Format(value))
		// print is value-transparent: it yields the evaluated operand.
		return value, nil

	case *ast.File:
		return i.evaluateExpression(n.Expression, env)

	case nil:
		return nil, fmt.Errorf("cannot evaluate a nil node")

	default:
		return nil, fmt.Errorf("unsupported node %T", node)
	}
}

// evaluateLet binds a name for the duration of the let body. When the bound
// value is a function literal the closure is built inside the frame that
// will hold its own binding, so the function can call itself by name without
// a fixpoint construct.
func (i *Interpreter) evaluateLet(n *ast.Let, env *runtime.Environment) (runtime.Value, error) {
	if fn, ok := n.Value.(*ast.Function); ok {
		frame := env.NewChild()
		frame.Define(n.Name.Text, &runtime.ClosureValue{Fn: fn, Env: frame})
		return i.evaluateExpression(n.Next, frame)
	}

	value, err := i.evaluateExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	frame := env.NewChild()
	frame.Define(n.Name.Text, value)
	return i.evaluateExpression(n.Next, frame)
}

func (i *Interpreter) evaluateCall(n *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(n.Callee, env)
	if err != nil {
		return nil, err
	}
	closure, ok := callee.(*runtime.ClosureValue)
	if !ok {
		return nil, newNotCallable(callee, n.Span())
	}

	arguments := make([]runtime.Value, 0, len(n.Arguments))
	for _, argNode := range n.Arguments {
		arg, err := i.evaluateExpression(argNode, env)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	if len(arguments) != len(closure.Fn.Parameters) {
		return nil, newArityMismatch(len(closure.Fn.Parameters), len(arguments), n.Span())
	}

	if i.depth >= i.maxDepth {
		return nil, newRecursionLimit(i.maxDepth, n.Span())
	}
	i.depth++
	defer func() { i.depth-- }()

	// Parameters extend the closure's captured environment, not the call
	// site's.
	frame := closure.Env.NewChild()
	for idx, param := range closure.Fn.Parameters {
		frame.Define(param.Text, arguments[idx])
	}
	return i.evaluateExpression(closure.Fn.Body, frame)
}
