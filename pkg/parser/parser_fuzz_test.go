package parser_test

import (
	"testing"

	"github.com/thomasrohde/monkeylang/pkg/parser"
)

// FuzzParse feeds random inputs to the parser to catch panics.
// The parser should never panic — it should return diagnostics for invalid input.
func FuzzParse(f *testing.F) {
	seeds := []string{
		`let x = 5;`,
		`const pi = 3.14;`,
		`return x;`,
		`fn(x, y) { x + y; }`,
		`if (x < y) { x } else { y }`,
		`while (x < 3) { x = x + 1; }`,
		`"hello\nworld"`,
		`[1, 2, 3][0]`,
		`{"a": 1, "b": 2}`,
		`add(1, 2 * 3)`,
		`let add = fn(a, b) { return a + b; }; add(1, 2)`,
		`!true`,
		`-5 * 3`,
		``,
		`   `,
		`let x =`,
		`return`,
		`fn( { }`,
		`[1, 2`,
		`"unterminated`,
		`{1: 2,`,
		`x = = 5`,
		`((()))`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// parser.Parse should never panic, regardless of input.
		// It may return diagnostics or a nil program, but should not crash.
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("parser.Parse panicked on input %q: %v", input, r)
				}
			}()
			parser.Parse(input, "fuzz.monkey")
		}()
	})
}
