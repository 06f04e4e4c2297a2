// Package runtime wires together the lexer, parser, evaluator, and
// standard library into the single entry point the CLI and embedders use
// to run Monkey source.
package runtime

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/monkeylang/pkg/diagnostics"
	"github.com/thomasrohde/monkeylang/pkg/evaluator"
	"github.com/thomasrohde/monkeylang/pkg/parser"
	"github.com/thomasrohde/monkeylang/pkg/stdlib"
)

// Runtime holds the registration state for a configured program
// environment. The zero value is not usable; construct one with New.
type Runtime struct {
	skipStdlib bool
	extra      []stdlib.Fn
}

// Option configures a Runtime built by New.
type Option func(*Runtime)

// WithoutStdlib skips registering the supplemental pkg/stdlib builtins,
// leaving only the core language builtins from pkg/evaluator.
func WithoutStdlib() Option {
	return func(rt *Runtime) {
		rt.skipStdlib = true
	}
}

// WithBuiltin registers (or overrides) a single builtin by name.
func WithBuiltin(name string, fn evaluator.BuiltinFunction) Option {
	return func(rt *Runtime) {
		rt.extra = append(rt.extra, stdlib.Fn{Name: name, Fn: fn})
	}
}

// New builds a Runtime and, as a side effect, installs every supplemental
// pkg/stdlib builtin (unless WithoutStdlib is given) plus any WithBuiltin
// entries into the shared evaluator.Builtins registry, so programs
// evaluated afterward can call them by name. The core language builtins
// are already in that registry from pkg/evaluator's package init.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}

	if !rt.skipStdlib {
		reg := stdlib.NewRegistry()
		stdlib.RegisterDefaults(reg)
		stdlib.Install(reg, evaluator.Builtins)
	}
	for _, fn := range rt.extra {
		evaluator.Builtins[fn.Name] = &evaluator.Builtin{Name: fn.Name, Fn: fn.Fn}
	}
	return rt
}

// FreshEnv returns a new, empty top-level environment. Each call to Run
// uses a fresh one internally; FreshEnv is exposed so a REPL can keep
// reusing the same environment across lines.
func (rt *Runtime) FreshEnv() *evaluator.Environment {
	return evaluator.NewEnvironment()
}

// Run parses and evaluates source in a fresh environment, returning the
// resulting value. If parsing fails, diags is non-empty and value is nil.
func (rt *Runtime) Run(source, filename string) (evaluator.Value, []diagnostics.Diagnostic) {
	return rt.RunIn(source, filename, rt.FreshEnv())
}

// RunIn parses and evaluates source against env, so callers (a REPL, most
// notably) can thread bindings across successive calls.
func (rt *Runtime) RunIn(source, filename string, env *evaluator.Environment) (evaluator.Value, []diagnostics.Diagnostic) {
	program, diags := parser.Parse(source, filename)
	if len(diags) > 0 {
		return nil, diags
	}
	return evaluator.Eval(program, env), nil
}

// Check parses source without evaluating it, returning any diagnostics.
func (rt *Runtime) Check(source, filename string) []diagnostics.Diagnostic {
	_, diags := parser.Parse(source, filename)
	return diags
}

// DiagnosticError wraps a batch of diagnostics as a single error, for
// callers that want Go error-handling idioms around a parse failure.
type DiagnosticError struct {
	Diagnostics []diagnostics.Diagnostic
}

func (e *DiagnosticError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = fmt.Sprintf("%s: %s", d.Code, d.Message)
	}
	return strings.Join(msgs, "; ")
}
