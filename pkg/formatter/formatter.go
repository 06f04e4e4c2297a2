// Package formatter renders Monkey runtime values back to readable text,
// choosing an inline or multi-line layout for Array and Hash the same way
// the parser's own AST nodes would have been written by hand.
package formatter

import (
	"fmt"
	"strings"

	"github.com/thomasrohde/monkeylang/pkg/evaluator"
)

const indent = "  "
const inlineWidth = 72

// Format renders v as a Monkey expression, falling back to v.Inspect() for
// anything that has no richer layout (Integer, Float, Boolean, String,
// Null, Builtin).
func Format(v evaluator.Value) string {
	return formatValue(v, 0)
}

func formatValue(v evaluator.Value, depth int) string {
	switch val := v.(type) {
	case *evaluator.Array:
		return formatArray(val, depth)
	case *evaluator.Hash:
		return formatHash(val, depth)
	case *evaluator.Function:
		return formatFunction(val)
	default:
		return v.Inspect()
	}
}

func formatFunction(f *evaluator.Function) string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return fmt.Sprintf("fn(%s) { %s }", strings.Join(params, ", "), f.Body.String())
}

func formatArray(a *evaluator.Array, depth int) string {
	if len(a.Elements) == 0 {
		return "[]"
	}

	inlineParts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		inlineParts[i] = formatValue(e, depth+1)
	}
	inline := "[" + strings.Join(inlineParts, ", ") + "]"
	if len(inline) <= inlineWidth {
		return inline
	}

	inner := strings.Repeat(indent, depth+1)
	outer := strings.Repeat(indent, depth)
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = inner + formatValue(e, depth+1)
	}
	return "[\n" + strings.Join(parts, ",\n") + "\n" + outer + "]"
}

// formatHash renders pairs in Hash.Order, the same insertion order
// Inspect() uses, so a value prints identically through puts/str and
// through the REPL/CLI.
func formatHash(h *evaluator.Hash, depth int) string {
	if len(h.Order) == 0 {
		return "{}"
	}

	pairs := make([]evaluator.HashPair, 0, len(h.Order))
	for _, key := range h.Order {
		pairs = append(pairs, h.Pairs[key])
	}

	inlineParts := make([]string, len(pairs))
	for i, p := range pairs {
		inlineParts[i] = fmt.Sprintf("%s: %s", p.Key.Inspect(), formatValue(p.Value, depth+1))
	}
	inline := "{" + strings.Join(inlineParts, ", ") + "}"
	if len(inline) <= inlineWidth {
		return inline
	}

	inner := strings.Repeat(indent, depth+1)
	outer := strings.Repeat(indent, depth)
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s%s: %s", inner, p.Key.Inspect(), formatValue(p.Value, depth+1))
	}
	return "{\n" + strings.Join(parts, ",\n") + "\n" + outer + "}"
}
