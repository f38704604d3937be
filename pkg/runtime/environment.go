package runtime

// Environment is one frame of the lexical scope chain. Bindings are installed
// when the frame is built and never mutated once evaluation can see the
// frame, so frames can be aliased freely by closures without locking. A frame
// lives for as long as any closure or child frame references it; Go's
// garbage collector provides the shared-ownership lifetime.
type Environment struct {
	parent   *Environment
	bindings map[string]Value
}

// NewEnvironment returns an empty root frame.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// NewChild returns a fresh frame chained to the receiver. The receiver is
// not modified.
func (e *Environment) NewChild() *Environment {
	return &Environment{parent: e, bindings: make(map[string]Value)}
}

// Define installs a binding in this frame. Defining a name that exists in an
// outer frame shadows it; defining it again in the same frame is only done
// during frame construction (function calls bind all parameters at once).
func (e *Environment) Define(name string, value Value) {
	e.bindings[name] = value
}

// Get resolves a name by walking the chain from innermost to outermost,
// returning the first binding found.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if value, ok := env.bindings[name]; ok {
			return value, true
		}
	}
	return nil, false
}
