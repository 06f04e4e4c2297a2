// Package stdlib supplies supplemental builtin functions beyond the core
// language primitives that live in pkg/evaluator itself (len, first, last,
// rest, push, puts, gets, type, int, str, sumarr, zip, exit). Those core
// names are part of the language's own data model and need no registry;
// the functions here are library-style conveniences layered on top, so
// they are registered into the shared evaluator.Builtins map the same
// way a consumer program would add its own.
package stdlib

import (
	"github.com/thomasrohde/monkeylang/pkg/evaluator"
)

// Fn represents a supplemental stdlib function.
type Fn struct {
	Name string
	Fn   evaluator.BuiltinFunction
}

// Registry holds registered stdlib functions before they are installed.
type Registry struct {
	fns map[string]*Fn
}

// NewRegistry creates a new empty stdlib registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]*Fn)}
}

// Register adds a stdlib function to the registry.
func (r *Registry) Register(fn Fn) {
	r.fns[fn.Name] = &fn
}

// Get retrieves a stdlib function by name.
func (r *Registry) Get(name string) *Fn {
	return r.fns[name]
}

// All returns all registered stdlib functions.
func (r *Registry) All() map[string]*Fn {
	return r.fns
}

// RegisterDefaults adds every supplemental builtin this package defines.
func RegisterDefaults(r *Registry) {
	r.Register(Fn{Name: "keys", Fn: stdlibKeys})
	r.Register(Fn{Name: "values", Fn: stdlibValues})
	r.Register(Fn{Name: "merge", Fn: stdlibMerge})
	r.Register(Fn{Name: "entries", Fn: stdlibEntries})
	r.Register(Fn{Name: "max", Fn: stdlibMax})
	r.Register(Fn{Name: "min", Fn: stdlibMin})
	r.Register(Fn{Name: "contains", Fn: stdlibContains})
	r.Register(Fn{Name: "help", Fn: stdlibHelp})
}

// Install copies every function registered in r into dst (normally
// evaluator.Builtins), so programs can call them by name just like the
// core builtins. See pkg/runtime for where this is wired in.
func Install(r *Registry, dst map[string]*evaluator.Builtin) {
	for name, fn := range r.All() {
		dst[name] = &evaluator.Builtin{Name: name, Fn: fn.Fn}
	}
}
