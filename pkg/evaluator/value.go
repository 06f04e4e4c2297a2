// Package evaluator implements the Monkey language tree-walking evaluator.
package evaluator

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/thomasrohde/monkeylang/pkg/ast"
)

// ValueType names a runtime value's dynamic type, used in error messages
// and the type() builtin.
type ValueType string

const (
	IntegerType     ValueType = "Integer"
	FloatType       ValueType = "Float"
	BooleanType     ValueType = "Boolean"
	StringType      ValueType = "String"
	NullType        ValueType = "Null"
	ArrayType       ValueType = "Array"
	HashType        ValueType = "Hash"
	FunctionType    ValueType = "Function"
	BuiltinType     ValueType = "Builtin"
	ReturnType      ValueType = "ReturnValue"
	ErrorType       ValueType = "Error"
)

// Value is the interface for all Monkey runtime values.
// The sealed marker method restricts implementations to this package.
type Value interface {
	Type() ValueType
	Inspect() string
	value() // sealed marker
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return IntegerType }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) value()          {}

// Float is a 64-bit floating point value.
type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FloatType }
func (f *Float) Inspect() string { return formatFloat(f.Value) }
func (f *Float) value()          {}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Boolean is a true/false value.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) value()          {}

// String is a text value.
type String struct {
	Value string
}

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }
func (s *String) value()          {}

// Null is the absence of a value.
type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Inspect() string { return "null" }
func (n *Null) value()          {}

// Array is an ordered, mutable-in-place sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Type() ValueType { return ArrayType }
func (a *Array) Inspect() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.Inspect()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
func (a *Array) value() {}

// HashKey is the comparable key derived from a hashable Value.
// Only Integer, Float, Boolean, and String values are hashable.
type HashKey struct {
	Type  ValueType
	Value uint64
}

// Hashable is implemented by values that may be used as Hash keys.
type Hashable interface {
	Value
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (f *Float) HashKey() HashKey {
	h := fnv.New64a()
	fmt.Fprintf(h, "%g", f.Value)
	return HashKey{Type: f.Type(), Value: h.Sum64()}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair keeps the original key value alongside its mapped value, so
// Inspect() can print the source key form rather than the opaque HashKey.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash is an associative container keyed by Integer, Float, Boolean, or
// String values. Order preserves first-insertion order, mirroring
// ast.HashLiteral.Order, so Inspect() renders keys the way they were
// written rather than in Go's randomized map order.
type Hash struct {
	Pairs map[HashKey]HashPair
	Order []HashKey
}

func (h *Hash) Type() ValueType { return HashType }
func (h *Hash) Inspect() string {
	pairs := make([]string, 0, len(h.Order))
	for _, key := range h.Order {
		pair := h.Pairs[key]
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
func (h *Hash) value() {}

// Function is a closure: it carries its parameter list, its body, and the
// environment active at the point of its definition.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
	Name       string
}

func (f *Function) Type() ValueType { return FunctionType }

// Inspect reconstructs the function's canonical fn(params) { body } form
// from its AST, so it prints identically whether it reaches the caller
// through puts/str or through the REPL/CLI's value echo.
func (f *Function) Inspect() string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	return fmt.Sprintf("fn(%s) { %s }", strings.Join(params, ", "), f.Body.String())
}
func (f *Function) value() {}

// BuiltinFunction is the signature every stdlib builtin implements.
type BuiltinFunction func(args ...Value) Value

// Builtin wraps a host-implemented standard library function so it can
// flow through the value model like any user-defined Function.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ValueType { return BuiltinType }
func (b *Builtin) Inspect() string { return fmt.Sprintf("builtin function: %s", b.Name) }
func (b *Builtin) value()          {}

// ReturnValue wraps the value being returned from a BlockStatement so Eval
// can unwind nested blocks without unwinding past a function call boundary.
// It is transient: it must never be stored inside an Array, Hash, or as a
// let-bound value — it is unwrapped the moment it crosses a call boundary.
type ReturnValue struct {
	Value Value
}

func (rv *ReturnValue) Type() ValueType { return ReturnType }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }
func (rv *ReturnValue) value()          {}

// Error is a first-class runtime error value, per the language's error
// model: it is not a Go error, it is a Value that propagates through
// blocks, calls, and container literals exactly like ReturnValue, short-
// circuiting further evaluation until something inspects or reports it.
type Error struct {
	Message string
}

func (e *Error) Type() ValueType { return ErrorType }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }
func (e *Error) value()          {}

// NewError formats an Error value, mirroring fmt.Errorf's verb handling.
func NewError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// IsError reports whether v is an *Error.
func IsError(v Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(*Error)
	return ok
}

// Truthiness returns the boolean interpretation of a value.
// null and false are falsy; every other value, including 0 and "", is
// truthy (per the language's truthiness rule — only nil and false fail
// the `if` test).
func Truthiness(v Value) bool {
	switch val := v.(type) {
	case *Null:
		return false
	case *Boolean:
		return val.Value
	default:
		return true
	}
}

// DeepEqual compares two values for == semantics: Integer and Float
// compare numerically against each other, Boolean/String compare by
// value, and any other pairing (including Array/Hash/Function) compares
// by identity, which for distinct instances is always false.
func DeepEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	default:
		return a == b
	}
}
