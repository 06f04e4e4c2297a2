// Command monkey is the Monkey language CLI: a REPL, a file runner, a
// syntax checker, and a help viewer.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomasrohde/monkeylang/pkg/diagnostics"
	"github.com/thomasrohde/monkeylang/pkg/evaluator"
	"github.com/thomasrohde/monkeylang/pkg/formatter"
	"github.com/thomasrohde/monkeylang/pkg/help"
	"github.com/thomasrohde/monkeylang/pkg/runtime"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(nil))
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "help", "--help", "-h":
		os.Exit(cmdHelp(os.Args[2:]))
	default:
		if !strings.HasPrefix(cmd, "-") {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func cmdRun(args []string) int {
	var file string
	pretty := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(args[i], "-") {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey run <file> [--pretty]")
		return 1
	}

	source, filename, exitCode := readSource(file, pretty)
	if exitCode != 0 {
		return exitCode
	}

	rt := runtime.New()
	value, diags := rt.Run(source, filename)
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diags, pretty))
		return 2
	}

	if value != nil {
		if errVal, ok := value.(*evaluator.Error); ok {
			fmt.Fprintln(os.Stderr, errVal.Inspect())
			return 3
		}
		fmt.Println(formatter.Format(value))
	}
	return 0
}

func cmdCheck(args []string) int {
	var file string
	pretty := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(args[i], "-") {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: monkey check <file> [--pretty]")
		return 1
	}

	source, filename, exitCode := readSource(file, pretty)
	if exitCode != 0 {
		return exitCode
	}

	rt := runtime.New()
	diags := rt.Check(source, filename)
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diags, pretty))
		return 2
	}

	if pretty {
		fmt.Println("No errors found.")
	} else {
		fmt.Println("[]")
	}
	return 0
}

const replPrompt = ">> "

func cmdRepl(args []string) int {
	fmt.Println("Monkey REPL. Type help() for a quick reference, or exit(0) to quit.")

	rt := runtime.New()
	env := rt.FreshEnv()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(replPrompt)
		if !scanner.Scan() {
			fmt.Println()
			return 0
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		value, diags := rt.RunIn(line, "<repl>", env)
		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Println("parser error: " + d.Message)
			}
			continue
		}
		if value != nil {
			fmt.Println(formatter.Format(value))
		}
	}
}

func cmdHelp(args []string) int {
	topic := ""
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			topic = arg
		}
	}

	if topic == "" {
		fmt.Print(help.QUICKREF)
		return 0
	}

	_, content, err := help.MatchTopic(topic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\navailable topics: %s\n", err, strings.Join(help.TopicList, ", "))
		return 1
	}
	fmt.Println(content)
	return 0
}

func readSource(file string, pretty bool) (string, string, int) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading stdin: %s\n", err)
			return "", "", 1
		}
		return string(data), "<stdin>", 0
	}

	source, err := os.ReadFile(file)
	if err != nil {
		diag := diagnostics.MakeDiag(diagnostics.ELex, fmt.Sprintf("cannot read file: %s", file), nil, "")
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics([]diagnostics.Diagnostic{diag}, pretty))
		return "", "", 1
	}
	return string(source), file, 0
}
