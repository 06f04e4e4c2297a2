package evaluator

// binding pairs a stored value with whether it may be reassigned.
type binding struct {
	value   Value
	mutable bool
}

// Environment is a scoped set of variable bindings with parent-chained
// lookup for lexical scoping. Function literals capture the Environment
// active at their definition site, producing closures.
type Environment struct {
	store map[string]binding
	outer *Environment
}

// NewEnvironment creates a top-level environment with no parent scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]binding)}
}

// NewEnclosedEnvironment creates a child scope whose parent is outer —
// used for function call frames. Blocks do not open a scope of their own.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up a variable by name, traversing parent scopes outward.
func (e *Environment) Get(name string) (Value, bool) {
	b, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return b.value, ok
}

// Define creates a new binding in this scope, per let (mutable=true) or
// const (mutable=false).
func (e *Environment) Define(name string, val Value, mutable bool) {
	e.store[name] = binding{value: val, mutable: mutable}
}

// Assign reassigns an existing binding, searching outward through parent
// scopes to find where name was defined. It reports ok=false if name is
// unbound anywhere in the chain, and constViolation=true if name was
// bound with const — callers turn either into the appropriate Error.
func (e *Environment) Assign(name string, val Value) (ok bool, constViolation bool) {
	if b, present := e.store[name]; present {
		if !b.mutable {
			return false, true
		}
		e.store[name] = binding{value: val, mutable: true}
		return true, false
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false, false
}
