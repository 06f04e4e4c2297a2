package evaluator

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// Builtins holds every builtin function reachable by name from a Monkey
// program, keyed by the name a program calls it with. The core set below
// is wired in at package init; pkg/stdlib adds supplemental entries to
// this same map during runtime construction (see pkg/runtime).
var Builtins = map[string]*Builtin{}

func registerBuiltin(name string, fn BuiltinFunction) {
	Builtins[name] = &Builtin{Name: name, Fn: fn}
}

func init() {
	registerBuiltin("len", builtinLen)
	registerBuiltin("first", builtinFirst)
	registerBuiltin("last", builtinLast)
	registerBuiltin("rest", builtinRest)
	registerBuiltin("push", builtinPush)
	registerBuiltin("puts", builtinPuts)
	registerBuiltin("gets", builtinGets)
	registerBuiltin("type", builtinType)
	registerBuiltin("int", builtinInt)
	registerBuiltin("str", builtinStr)
	registerBuiltin("sumarr", builtinSumarr)
	registerBuiltin("zip", builtinZip)
	registerBuiltin("exit", builtinExit)
}

func typeError(name string, got Value) *Error {
	return NewError("argument to `%s` not supported, got %s", name, got.Type())
}

func builtinLen(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return typeError("len", args[0])
	}
}

func builtinFirst(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return typeError("first", args[0])
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return sharedNull
}

func builtinLast(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return typeError("last", args[0])
	}
	if n := len(arr.Elements); n > 0 {
		return arr.Elements[n-1]
	}
	return sharedNull
}

func builtinRest(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return typeError("rest", args[0])
	}
	length := len(arr.Elements)
	if length == 0 {
		return sharedNull
	}
	rest := make([]Value, length-1)
	copy(rest, arr.Elements[1:length])
	return &Array{Elements: rest}
}

func builtinPush(args ...Value) Value {
	if len(args) != 2 {
		return NewError("wrong number of arguments: expected=2, got=%d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return typeError("push", args[0])
	}
	newElements := make([]Value, len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements[len(arr.Elements)] = args[1]
	return &Array{Elements: newElements}
}

// builtinPuts writes each argument's display form on its own line, one
// print call per argument.
func builtinPuts(args ...Value) Value {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return sharedNull
}

// builtinGets reads a single line from stdin, without the trailing
// newline. At EOF it returns null.
func builtinGets(args ...Value) Value {
	if len(args) != 0 {
		return NewError("wrong number of arguments: expected=0, got=%d", len(args))
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return sharedNull
	}
	return &String{Value: scanner.Text()}
}

func builtinType(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	return &String{Value: string(args[0].Type())}
}

// builtinInt converts a String or Float to an Integer, truncating floats
// toward zero. Non-numeric strings yield an Error.
func builtinInt(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	switch arg := args[0].(type) {
	case *Integer:
		return arg
	case *Float:
		return &Integer{Value: int64(arg.Value)}
	case *String:
		n, err := strconv.ParseInt(arg.Value, 10, 64)
		if err != nil {
			return NewError("argument to `int` not supported, got %s", arg.Type())
		}
		return &Integer{Value: n}
	default:
		return typeError("int", args[0])
	}
}

func builtinStr(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	return &String{Value: args[0].Inspect()}
}

// builtinSumarr sums an Array of Integer/Float elements, promoting to
// Float the moment any element is a Float.
func builtinSumarr(args ...Value) Value {
	if len(args) != 1 {
		return NewError("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return typeError("sumarr", args[0])
	}
	var isum int64
	var fsum float64
	isFloat := false
	for _, el := range arr.Elements {
		switch v := el.(type) {
		case *Integer:
			isum += v.Value
			fsum += float64(v.Value)
		case *Float:
			isFloat = true
			fsum += v.Value
		default:
			return typeError("sumarr", el)
		}
	}
	if isFloat {
		return &Float{Value: fsum}
	}
	return &Integer{Value: isum}
}

// builtinZip pairs up elements of two arrays positionally, truncating to
// the shorter one, producing an Array of two-element Arrays.
func builtinZip(args ...Value) Value {
	if len(args) != 2 {
		return NewError("wrong number of arguments: expected=2, got=%d", len(args))
	}
	a, ok := args[0].(*Array)
	if !ok {
		return typeError("zip", args[0])
	}
	b, ok := args[1].(*Array)
	if !ok {
		return typeError("zip", args[1])
	}
	n := len(a.Elements)
	if len(b.Elements) < n {
		n = len(b.Elements)
	}
	pairs := make([]Value, n)
	for i := 0; i < n; i++ {
		pairs[i] = &Array{Elements: []Value{a.Elements[i], b.Elements[i]}}
	}
	return &Array{Elements: pairs}
}

// builtinExit terminates the host process immediately with the given
// exit code (0 if no argument is given).
func builtinExit(args ...Value) Value {
	code := 0
	if len(args) == 1 {
		i, ok := args[0].(*Integer)
		if !ok {
			return typeError("exit", args[0])
		}
		code = int(i.Value)
	} else if len(args) > 1 {
		return NewError("wrong number of arguments: expected=0 or 1, got=%d", len(args))
	}
	os.Exit(code)
	return sharedNull
}
