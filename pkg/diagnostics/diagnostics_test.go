package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/thomasrohde/monkeylang/pkg/ast"
	"github.com/thomasrohde/monkeylang/pkg/diagnostics"
)

func TestMakeDiag(t *testing.T) {
	span := &ast.Span{File: "test.monkey", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 5}
	d := diagnostics.MakeDiag(diagnostics.EParse, "unexpected token", span, "check syntax")

	if d.Code != diagnostics.EParse {
		t.Errorf("got Code = %q, want %q", d.Code, diagnostics.EParse)
	}
	if d.Message != "unexpected token" {
		t.Errorf("got Message = %q, want %q", d.Message, "unexpected token")
	}
}

func TestFormatDiagnosticPretty(t *testing.T) {
	span := &ast.Span{File: "test.monkey", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 10}
	d := diagnostics.MakeDiag(diagnostics.EParse, "unexpected token RBRACE", span, "did you forget a closing brace?")

	out := diagnostics.FormatDiagnostic(d, true)
	if !strings.Contains(out, "error[E_PARSE]") {
		t.Errorf("expected error code in output, got: %s", out)
	}
	if !strings.Contains(out, "test.monkey:3:5") {
		t.Errorf("expected location in output, got: %s", out)
	}
	if !strings.Contains(out, "hint:") {
		t.Errorf("expected hint in output, got: %s", out)
	}
}

func TestFormatDiagnosticWithoutSpan(t *testing.T) {
	d := diagnostics.MakeDiag(diagnostics.ELex, "illegal character", nil, "")
	out := diagnostics.FormatDiagnostic(d, true)
	if !strings.Contains(out, "<unknown>") {
		t.Errorf("expected <unknown> location placeholder, got: %s", out)
	}
}

func TestFormatDiagnosticJSON(t *testing.T) {
	d := diagnostics.MakeDiag(diagnostics.ELex, "bad token", nil, "")
	out := diagnostics.FormatDiagnostic(d, false)
	if !strings.Contains(out, `"code":"E_LEX"`) {
		t.Errorf("expected JSON code in output, got: %s", out)
	}
}

func TestFormatDiagnosticsJoinsMultiple(t *testing.T) {
	diags := []diagnostics.Diagnostic{
		diagnostics.MakeDiag(diagnostics.ELex, "first", nil, ""),
		diagnostics.MakeDiag(diagnostics.EParse, "second", nil, ""),
	}
	out := diagnostics.FormatDiagnostics(diags, true)
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("expected both messages in output, got: %s", out)
	}
}

func TestFormatDiagnosticsJSON(t *testing.T) {
	diags := []diagnostics.Diagnostic{
		diagnostics.MakeDiag(diagnostics.EParse, "bad", nil, ""),
	}
	out := diagnostics.FormatDiagnostics(diags, false)
	if !strings.Contains(out, `"code":"E_PARSE"`) {
		t.Errorf("expected JSON array in output, got: %s", out)
	}
}
