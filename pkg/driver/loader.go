package driver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"rinha/interpreter-go/pkg/ast"
)

// LoadError marks a program that could not be loaded: structurally invalid
// JSON, an unknown node kind, or a missing required field. Load errors are
// reported before evaluation begins and are always fatal.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid program: %v", e.Err)
	}
	return fmt.Sprintf("invalid program %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the AST document at path.
func Load(path string) (*ast.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open program: %w", err)
	}
	defer f.Close()
	file, err := Decode(f)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, err
	}
	return file, nil
}

// Decode reads one AST document from r. Numbers are decoded as json.Number
// so integer literals survive at full precision.
func Decode(r io.Reader) (*ast.File, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("parse JSON: %w", err)}
	}
	file, err := decodeFile(doc)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return file, nil
}

func decodeFile(doc map[string]any) (*ast.File, error) {
	exprRaw, ok := doc["expression"]
	if !ok {
		return nil, fmt.Errorf("document is missing the expression field")
	}
	expr, err := decodeNode(exprRaw)
	if err != nil {
		return nil, err
	}
	file := &ast.File{Expression: expr}
	if name, ok := doc["name"].(string); ok {
		file.Name = name
	}
	ast.SetSpan(file, decodeSpan(doc["location"]))
	return file, nil
}

func decodeNode(raw any) (ast.Node, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a node object, found %T", raw)
	}
	kind, _ := node["kind"].(string)
	decoded, err := decodeNodeKind(node, kind)
	if err != nil {
		return nil, err
	}
	ast.SetSpan(decoded, decodeSpan(node["location"]))
	return decoded, nil
}

func decodeNodeKind(node map[string]any, kind string) (ast.Node, error) {
	switch kind {
	case "Int":
		value, err := decodeBigInt(node, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Int{Value: value}, nil
	case "Str":
		value, err := stringField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Str{Value: value}, nil
	case "Bool":
		value, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("Bool: value must be a boolean, found %T", node["value"])
		}
		return &ast.Bool{Value: value}, nil
	case "Var":
		text, err := stringField(node, kind, "text")
		if err != nil {
			return nil, err
		}
		return &ast.Var{Text: text}, nil
	case "Function":
		params, err := decodeParameters(node["parameters"])
		if err != nil {
			return nil, fmt.Errorf("Function: %w", err)
		}
		body, err := nodeField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Function{Parameters: params, Body: body}, nil
	case "Call":
		callee, err := nodeField(node, kind, "callee")
		if err != nil {
			return nil, err
		}
		argsRaw, ok := node["arguments"].([]any)
		if !ok {
			return nil, fmt.Errorf("Call: arguments must be an array, found %T", node["arguments"])
		}
		args := make([]ast.Node, 0, len(argsRaw))
		for idx, argRaw := range argsRaw {
			arg, err := decodeNode(argRaw)
			if err != nil {
				return nil, fmt.Errorf("Call argument %d: %w", idx, err)
			}
			args = append(args, arg)
		}
		return &ast.Call{Callee: callee, Arguments: args}, nil
	case "Let":
		name, err := decodeParameter(node["name"])
		if err != nil {
			return nil, fmt.Errorf("Let name: %w", err)
		}
		value, err := nodeField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		next, err := nodeField(node, kind, "next")
		if err != nil {
			return nil, err
		}
		return &ast.Let{Name: name, Value: value, Next: next}, nil
	case "If":
		condition, err := nodeField(node, kind, "condition")
		if err != nil {
			return nil, err
		}
		then, err := nodeField(node, kind, "then")
		if err != nil {
			return nil, err
		}
		otherwise, err := nodeField(node, kind, "otherwise")
		if err != nil {
			return nil, err
		}
		return &ast.If{Condition: condition, Then: then, Otherwise: otherwise}, nil
	case "Binary":
		opText, err := stringField(node, kind, "op")
		if err != nil {
			return nil, err
		}
		op := ast.Operator(opText)
		if !op.Valid() {
			return nil, fmt.Errorf("Binary: unknown operator %q", opText)
		}
		lhs, err := nodeField(node, kind, "lhs")
		if err != nil {
			return nil, err
		}
		rhs, err := nodeField(node, kind, "rhs")
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: op, LHS: lhs, RHS: rhs}, nil
	case "Tuple":
		first, err := nodeField(node, kind, "first")
		if err != nil {
			return nil, err
		}
		second, err := nodeField(node, kind, "second")
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{First: first, Second: second}, nil
	case "First":
		value, err := nodeField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.First{Value: value}, nil
	case "Second":
		value, err := nodeField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Second{Value: value}, nil
	case "Print":
		value, err := nodeField(node, kind, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Print{Value: value}, nil
	case "":
		return nil, fmt.Errorf("node is missing the kind field")
	default:
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
}

func nodeField(node map[string]any, kind, key string) (ast.Node, error) {
	raw, ok := node[key]
	if !ok {
		return nil, fmt.Errorf("%s: missing required field %q", kind, key)
	}
	child, err := decodeNode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kind, key, err)
	}
	return child, nil
}

func stringField(node map[string]any, kind, key string) (string, error) {
	value, ok := node[key].(string)
	if !ok {
		return "", fmt.Errorf("%s: field %q must be a string, found %T", kind, key, node[key])
	}
	return value, nil
}

func decodeParameters(raw any) ([]ast.Parameter, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("parameters must be an array, found %T", raw)
	}
	params := make([]ast.Parameter, 0, len(list))
	for idx, entry := range list {
		param, err := decodeParameter(entry)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", idx, err)
		}
		params = append(params, param)
	}
	return params, nil
}

func decodeParameter(raw any) (ast.Parameter, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return ast.Parameter{}, fmt.Errorf("expected a parameter object, found %T", raw)
	}
	text, ok := obj["text"].(string)
	if !ok {
		return ast.Parameter{}, fmt.Errorf("parameter text must be a string, found %T", obj["text"])
	}
	return ast.Parameter{Text: text, Loc: decodeSpan(obj["location"])}, nil
}

func decodeBigInt(node map[string]any, key string) (*big.Int, error) {
	switch v := node[key].(type) {
	case json.Number:
		if value, ok := new(big.Int).SetString(v.String(), 10); ok {
			return value, nil
		}
		return nil, fmt.Errorf("Int: value %q is not an integer", v.String())
	case string:
		if value, ok := new(big.Int).SetString(v, 10); ok {
			return value, nil
		}
		return nil, fmt.Errorf("Int: value %q is not an integer", v)
	case nil:
		return nil, fmt.Errorf("Int: missing required field %q", key)
	default:
		return nil, fmt.Errorf("Int: field %q must be a number, found %T", key, v)
	}
}

// decodeSpan tolerates absent or partial locations; diagnostics degrade to
// offsets or nothing rather than failing the load.
func decodeSpan(raw any) ast.Span {
	obj, ok := raw.(map[string]any)
	if !ok {
		return ast.ZeroSpan()
	}
	span := ast.Span{
		Start:  intField(obj, "start"),
		End:    intField(obj, "end"),
		Line:   intField(obj, "line"),
		Column: intField(obj, "column"),
	}
	if file, ok := obj["filename"].(string); ok {
		span.File = file
	}
	return span
}

// intField expects json.Number values because Decode always sets UseNumber;
// anything else reads as zero.
func intField(obj map[string]any, key string) int {
	if v, ok := obj[key].(json.Number); ok {
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}
