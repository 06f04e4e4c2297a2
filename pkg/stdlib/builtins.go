package stdlib

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/monkeylang/pkg/evaluator"
	"github.com/thomasrohde/monkeylang/pkg/help"
)

func stdlibErr(format string, args ...interface{}) *evaluator.Error {
	return evaluator.NewError(format, args...)
}

// keys(hash) → Array of the hash's keys, in no particular order.
func stdlibKeys(args ...evaluator.Value) evaluator.Value {
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=1, got=%d", len(args))
	}
	h, ok := args[0].(*evaluator.Hash)
	if !ok {
		return stdlibErr("argument to `keys` not supported, got %s", args[0].Type())
	}
	out := make([]evaluator.Value, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		out = append(out, pair.Key)
	}
	return &evaluator.Array{Elements: out}
}

// values(hash) → Array of the hash's values, in no particular order.
func stdlibValues(args ...evaluator.Value) evaluator.Value {
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=1, got=%d", len(args))
	}
	h, ok := args[0].(*evaluator.Hash)
	if !ok {
		return stdlibErr("argument to `values` not supported, got %s", args[0].Type())
	}
	out := make([]evaluator.Value, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		out = append(out, pair.Value)
	}
	return &evaluator.Array{Elements: out}
}

// merge(a, b) → a new Hash with a's pairs overlaid by b's (b wins on key
// collisions).
func stdlibMerge(args ...evaluator.Value) evaluator.Value {
	if len(args) != 2 {
		return stdlibErr("wrong number of arguments: expected=2, got=%d", len(args))
	}
	a, aok := args[0].(*evaluator.Hash)
	b, bok := args[1].(*evaluator.Hash)
	if !aok || !bok {
		return stdlibErr("arguments to `merge` must both be Hash")
	}
	merged := make(map[evaluator.HashKey]evaluator.HashPair, len(a.Pairs)+len(b.Pairs))
	order := make([]evaluator.HashKey, 0, len(a.Order)+len(b.Order))
	for _, k := range a.Order {
		merged[k] = a.Pairs[k]
		order = append(order, k)
	}
	for _, k := range b.Order {
		if _, seen := merged[k]; !seen {
			order = append(order, k)
		}
		merged[k] = b.Pairs[k]
	}
	return &evaluator.Hash{Pairs: merged, Order: order}
}

// entries(hash) → Array of [key, value] two-element Arrays.
func stdlibEntries(args ...evaluator.Value) evaluator.Value {
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=1, got=%d", len(args))
	}
	h, ok := args[0].(*evaluator.Hash)
	if !ok {
		return stdlibErr("argument to `entries` not supported, got %s", args[0].Type())
	}
	out := make([]evaluator.Value, 0, len(h.Pairs))
	for _, pair := range h.Pairs {
		out = append(out, &evaluator.Array{Elements: []evaluator.Value{pair.Key, pair.Value}})
	}
	return &evaluator.Array{Elements: out}
}

func numericValue(v evaluator.Value) (float64, bool) {
	switch n := v.(type) {
	case *evaluator.Integer:
		return float64(n.Value), true
	case *evaluator.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// max(array) → the largest element of a non-empty numeric Array,
// preserving Integer/Float as the winning element's own type.
func stdlibMax(args ...evaluator.Value) evaluator.Value {
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*evaluator.Array)
	if !ok {
		return stdlibErr("argument to `max` not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return stdlibErr("max: array must not be empty")
	}
	best := arr.Elements[0]
	bestVal, ok := numericValue(best)
	if !ok {
		return stdlibErr("argument to `max` not supported, got %s", best.Type())
	}
	for _, el := range arr.Elements[1:] {
		v, ok := numericValue(el)
		if !ok {
			return stdlibErr("argument to `max` not supported, got %s", el.Type())
		}
		if v > bestVal {
			bestVal = v
			best = el
		}
	}
	return best
}

// min(array) → the smallest element of a non-empty numeric Array.
func stdlibMin(args ...evaluator.Value) evaluator.Value {
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=1, got=%d", len(args))
	}
	arr, ok := args[0].(*evaluator.Array)
	if !ok {
		return stdlibErr("argument to `min` not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return stdlibErr("min: array must not be empty")
	}
	best := arr.Elements[0]
	bestVal, ok := numericValue(best)
	if !ok {
		return stdlibErr("argument to `min` not supported, got %s", best.Type())
	}
	for _, el := range arr.Elements[1:] {
		v, ok := numericValue(el)
		if !ok {
			return stdlibErr("argument to `min` not supported, got %s", el.Type())
		}
		if v < bestVal {
			bestVal = v
			best = el
		}
	}
	return best
}

// contains(in, value) → whether value is a substring of a String, an
// element of an Array (by DeepEqual), or a key of a Hash.
func stdlibContains(args ...evaluator.Value) evaluator.Value {
	if len(args) != 2 {
		return stdlibErr("wrong number of arguments: expected=2, got=%d", len(args))
	}
	in, value := args[0], args[1]

	switch v := in.(type) {
	case *evaluator.String:
		s, ok := value.(*evaluator.String)
		if !ok {
			return stdlibErr("second argument to `contains` on a String must be a String")
		}
		return nativeBoolValue(strings.Contains(v.Value, s.Value))

	case *evaluator.Array:
		for _, el := range v.Elements {
			if evaluator.DeepEqual(el, value) {
				return nativeBoolValue(true)
			}
		}
		return nativeBoolValue(false)

	case *evaluator.Hash:
		hashable, ok := value.(evaluator.Hashable)
		if !ok {
			return nativeBoolValue(false)
		}
		_, found := v.Pairs[hashable.HashKey()]
		return nativeBoolValue(found)

	default:
		return stdlibErr("argument to `contains` not supported, got %s", in.Type())
	}
}

func nativeBoolValue(b bool) evaluator.Value {
	return &evaluator.Boolean{Value: b}
}

// help(topic?) → writes the quick-reference text, or a single topic's
// detail text when called with a String argument, and returns Null.
func stdlibHelp(args ...evaluator.Value) evaluator.Value {
	if len(args) == 0 {
		fmt.Print(help.QUICKREF)
		return &evaluator.Null{}
	}
	if len(args) != 1 {
		return stdlibErr("wrong number of arguments: expected=0 or 1, got=%d", len(args))
	}
	topic, ok := args[0].(*evaluator.String)
	if !ok {
		return stdlibErr("argument to `help` not supported, got %s", args[0].Type())
	}
	_, content, err := help.MatchTopic(topic.Value)
	if err != nil {
		return stdlibErr("%s", err.Error())
	}
	fmt.Println(content)
	return &evaluator.Null{}
}
