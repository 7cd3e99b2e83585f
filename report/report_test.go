package report

import (
	"errors"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	Init("silent")
	os.Exit(m.Run())
}

func TestKindOfCode(t *testing.T) {
	tests := []struct {
		code int
		kind int
	}{
		{CodeBadChar, LexicalError},
		{CodeUnterminated, LexicalError},
		{CodeUnexpectedToken, SyntaxError},
		{CodeUnexpectedEOF, SyntaxError},
		{CodeUndeclared, SemanticError},
		{CodeRedeclared, SemanticError},
		{CodeTypeMismatch, SemanticError},
		{CodeArityOrRange, SemanticError},
		{CodeUnused, SemanticError},
		{CodeUnsupported, TranslationError},
		{CodeDepthExceeded, TranslationError},
	}

	for i, tt := range tests {
		if kind := KindOfCode(tt.code); kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%d, got=%d", i, tt.kind, kind)
		}
	}
}

func TestNewSpanOver(t *testing.T) {
	start := &TextSpan{StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 7}
	end := &TextSpan{StartLine: 3, StartCol: 0, EndLine: 3, EndCol: 12}

	over := NewSpanOver(start, end)
	expected := TextSpan{StartLine: 1, StartCol: 4, EndLine: 3, EndCol: 12}

	if *over != expected {
		t.Fatalf("span wrong. expected=%+v, got=%+v", expected, *over)
	}
}

func TestErrorAndWarningCounts(t *testing.T) {
	Reset()

	ReportDiagnostic(&Diagnostic{
		Code:      CodeUnused,
		Message:   "variable `x` is never used",
		Path:      "test.gcl",
		IsWarning: true,
	})

	if AnyErrors() || !ShouldProceed() {
		t.Fatalf("warnings must not count as errors")
	}

	ReportDiagnostic(&Diagnostic{
		Code:    CodeTypeMismatch,
		Message: "expected type `int` but found `bool`",
		Path:    "test.gcl",
	})

	if ErrorCount() != 1 || ShouldProceed() {
		t.Fatalf("error count wrong. expected=1, got=%d", ErrorCount())
	}

	diags := Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("diagnostic count wrong. expected=2, got=%d", len(diags))
	}

	if !diags[0].IsWarning || diags[0].Kind != SemanticError {
		t.Fatalf("warning diagnostic wrong: %+v", diags[0])
	}

	if diags[1].IsWarning || diags[1].Kind != SemanticError {
		t.Fatalf("error diagnostic wrong: %+v", diags[1])
	}
}

func TestReset(t *testing.T) {
	Reset()

	ReportDiagnostic(&Diagnostic{Code: CodeUndeclared, Message: "undeclared variable: `x`", Path: "test.gcl"})
	Reset()

	if AnyErrors() || len(Diagnostics()) != 0 {
		t.Fatalf("reset did not clear the reporter")
	}

	if LogLevel() != LogLevelSilent {
		t.Fatalf("reset must preserve the log level")
	}
}

// raiseAndCatch panics with the given value inside a frame guarded by
// CatchErrors, mirroring how pipeline stages raise local errors.
func raiseAndCatch(path string, x interface{}) {
	defer CatchErrors(path)
	panic(x)
}

func TestCatchErrors(t *testing.T) {
	Reset()

	span := &TextSpan{StartLine: 0, StartCol: 2, EndLine: 0, EndCol: 3}
	raiseAndCatch("a.gcl", Raise(CodeBadChar, span, "bad character: `%s`", "$"))

	diags := Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("diagnostic count wrong. expected=1, got=%d", len(diags))
	}

	d := diags[0]
	if d.Code != CodeBadChar || d.Kind != LexicalError {
		t.Fatalf("diagnostic code wrong: %+v", d)
	}

	if d.Message != "bad character: `$`" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}

	if d.Path != "a.gcl" || d.Span != span {
		t.Fatalf("local error context not attached: %+v", d)
	}
}

func TestCatchErrorsDiagnosticPassthrough(t *testing.T) {
	Reset()

	raiseAndCatch("b.gcl", &Diagnostic{
		Code:     CodeUnexpectedToken,
		Message:  "unexpected token: `:=`",
		Path:     "a.gcl",
		Expected: []string{"`ident`"},
	})

	diags := Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("diagnostic count wrong. expected=1, got=%d", len(diags))
	}

	// A full diagnostic already names its file; the catch path must not
	// overwrite it.
	if diags[0].Path != "a.gcl" {
		t.Fatalf("path wrong. expected=%q, got=%q", "a.gcl", diags[0].Path)
	}

	if len(diags[0].Expected) != 1 || diags[0].Expected[0] != "`ident`" {
		t.Fatalf("expected token list lost: %+v", diags[0])
	}
}

func TestCatchErrorsStdError(t *testing.T) {
	Reset()

	raiseAndCatch("c.gcl", errors.New("unable to open source file"))

	if ErrorCount() != 1 {
		t.Fatalf("error count wrong. expected=1, got=%d", ErrorCount())
	}

	if len(Diagnostics()) != 0 {
		t.Fatalf("standard errors must not become diagnostics")
	}
}

func TestInitLevels(t *testing.T) {
	defer Init("silent")

	tests := []struct {
		name  string
		level int
	}{
		{"silent", LogLevelSilent},
		{"error", LogLevelError},
		{"warning", LogLevelWarning},
		{"verbose", LogLevelVerbose},
		{"bogus", LogLevelVerbose},
	}

	for i, tt := range tests {
		Init(tt.name)
		if LogLevel() != tt.level {
			t.Fatalf("tests[%d] - log level wrong. expected=%d, got=%d", i, tt.level, LogLevel())
		}
	}
}
