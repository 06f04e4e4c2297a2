// Package help holds the reference text shown by the help() builtin and
// the CLI's `monkey help` subcommand.
package help

import (
	"fmt"
	"strings"
)

// QUICKREF is the top-level summary shown by `help()` with no argument.
const QUICKREF = `Monkey v0.5 quick reference

Topics: syntax, types, operators, functions, builtins, errors, examples
Call help("topic") for details on one of the topics above.

  let x = 5;          mutable binding
  const pi = 3.14;     immutable binding
  fn(a, b) { a + b }  function literal (closure)
  if (x) { .. } else { .. }
  while (x < 10) { x = x + 1; }
`

// Topics maps each topic name to its detailed help text.
var Topics = map[string]string{
	"syntax": `Syntax
  Statements are newline- or semicolon-separated.
  let binds mutably, const binds immutably:
    let x = 1;
    const y = 2;
  Blocks are brace-delimited: { stmt; stmt; }
  if/else and while take parenthesized conditions:
    if (x > 0) { x } else { -x }
    while (x < 10) { x = x + 1; }`,
	"types": `Types
  Integer   64-bit signed whole number: 5, -3
  Float     64-bit floating point: 3.14, 0.5
  Boolean   true, false
  String    "text", escapes: \" \\ \n \t
  Null      the absence of a value
  Array     [1, 2, 3]
  Hash      {"a": 1, "b": 2} — keys: Integer, Float, Boolean, or String
  Function  fn(x, y) { x + y }`,
	"operators": `Operators
  Arithmetic: + - * / % (Integer/Float, promotes to Float when mixed)
  String:     + concatenates two Strings
  Comparison: < > == != (== and != also compare Integer/Float numerically)
  Boolean:    == != only
  Unary:      - (negate), ! (invert truthiness)
  Index:      arr[i], hash[key], str[i]
  Assignment: x = expr reassigns an existing let binding`,
	"functions": `Functions
  fn(params) { body } evaluates to a Function value that closes over
  the environment where it was defined.
    let adder = fn(x) { fn(y) { x + y } };
    let add5 = adder(5);
    add5(3); // 8
  Calling with the wrong number of arguments is a runtime error.`,
	"builtins": `Builtins
  len(x)        length of a String or Array
  first(arr)    first element, or null if empty
  last(arr)     last element, or null if empty
  rest(arr)     all but the first element, or null if empty
  push(arr, v)  new Array with v appended
  puts(..)      print each argument's display form, one per line
  gets()        read one line from stdin, or null at EOF
  type(v)       the name of v's runtime type
  int(v)        convert a String or Float to Integer
  str(v)        v's display form as a String
  sumarr(arr)   sum of a numeric Array
  zip(a, b)     pairwise-zip two Arrays, truncated to the shorter
  exit(code)    terminate the process
  help(topic?)  this reference`,
	"errors": `Errors
  Errors are first-class values, not exceptions: once produced they
  short-circuit evaluation of the current block, call, or container
  literal and surface as the expression's result.
  Common messages:
    identifier not found: <name>
    not a function: <type>
    wrong number of arguments: expected=<n>, got=<m>
    unknown operator: <op><type> / <left> <op> <right>
    type mismatch: <left> <op> <right>
    division by zero
    cannot reassign to const: <name>
    unusable as hash key: <type>
    index operator not supported: <type>`,
	"examples": `Examples
  let fibonacci = fn(n) {
    if (n < 2) { n } else { fibonacci(n - 1) + fibonacci(n - 2) }
  };
  fibonacci(10);

  let map = fn(arr, f) {
    let iter = fn(arr, acc) {
      if (len(arr) == 0) { acc } else { iter(rest(arr), push(acc, f(first(arr)))) }
    };
    iter(arr, []);
  };
  map([1, 2, 3], fn(x) { x * 2 });`,
}

// TopicList is Topics' keys in a fixed, documentation-friendly order.
var TopicList = []string{"syntax", "types", "operators", "functions", "builtins", "errors", "examples"}

// MatchTopic resolves a (possibly abbreviated) topic name against Topics,
// matching an exact name first and otherwise the unique topic it
// prefixes. It returns an error if name matches nothing, or matches more
// than one topic ambiguously.
func MatchTopic(name string) (string, string, error) {
	if content, ok := Topics[name]; ok {
		return name, content, nil
	}

	var match string
	for _, topic := range TopicList {
		if strings.HasPrefix(topic, name) {
			if match != "" {
				return "", "", fmt.Errorf("ambiguous help topic %q (matches %q and %q)", name, match, topic)
			}
			match = topic
		}
	}
	if match == "" {
		return "", "", fmt.Errorf("no help topic matches %q", name)
	}
	return match, Topics[match], nil
}
