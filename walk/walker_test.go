package walk

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"gcl/ast"
	"gcl/report"
	"gcl/syntax"
	"gcl/typing"
)

func TestMain(m *testing.M) {
	report.Init("silent")
	os.Exit(m.Run())
}

// analyze parses and walks a source string, failing the test if the source
// does not even parse.  Semantic diagnostics are left for the caller.
func analyze(t *testing.T, src string) (*ast.Block, *Walker) {
	t.Helper()

	report.Reset()

	root := syntax.NewParser("test.gcl", bufio.NewReader(strings.NewReader(src))).Parse()
	if root == nil {
		t.Fatalf("parse failed for source: %s", src)
	}

	w := NewWalker("test.gcl")
	w.WalkProgram(root)

	return root, w
}

// errorCodes filters the reported diagnostics down to error codes, in report
// order.
func errorCodes() []int {
	var codes []int
	for _, d := range report.Diagnostics() {
		if !d.IsWarning {
			codes = append(codes, d.Code)
		}
	}

	return codes
}

func warningCount() int {
	n := 0
	for _, d := range report.Diagnostics() {
		if d.IsWarning {
			n++
		}
	}

	return n
}

func TestValidPrograms(t *testing.T) {
	tests := []string{
		"{ int x; x := 5; print x }",
		"{ bool b; b := true and false; if b --> skip [] not b --> skip fi }",
		"{ int x; x := 1; { int x; x := 2; print x }; print x }",
		"{ function[..2] f; f := 1, 2, 3; print f.0 }",
		"{ function[..0] f; f := 42; print f.0 }",
		"{ function[..1] f; f := f[0:1](1:2); print f }",
		`{ print "a" + "b" }`,
		`{ bool b; b := "x" == "y"; print b }`,
		"{ int n; n := 0; while n < 3 --> n := n + 1 end; print n }",
		"{ int x; x := -x; print x * x - 1 }",
		"{ bool b; b := 1 <> 2; print b or false }",
	}

	for i, src := range tests {
		analyze(t, src)

		if report.AnyErrors() {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, report.Diagnostics())
		}
	}
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		src           string
		expectedCodes []int
	}{
		{"{ int y; y := z + 1 }", []int{report.CodeUndeclared}},
		{"{ int x; bool x; x := 1 }", []int{report.CodeRedeclared}},
		{"{ int x; x := true }", []int{report.CodeTypeMismatch}},
		{"{ int x; x := 1 + true }", []int{report.CodeTypeMismatch}},
		{"{ if 1 --> skip fi }", []int{report.CodeTypeMismatch}},
		{"{ while 5 --> skip end }", []int{report.CodeTypeMismatch}},
		{"{ function[..2] f; f := 1, 2 }", []int{report.CodeArityOrRange}},
		{"{ function[..0] f; f := 1, 2 }", []int{report.CodeArityOrRange}},
		{"{ function[..1] f; f := 1, true }", []int{report.CodeTypeMismatch}},
		{"{ function[..1] f; f := f[0:true] }", []int{report.CodeTypeMismatch}},
		{"{ int x; x := x.1 }", []int{report.CodeTypeMismatch}},
		{"{ bool b; b := 1 == true }", []int{report.CodeTypeMismatch}},
		{`{ print "a" + 1 }`, []int{report.CodeTypeMismatch}},
		{"{ int x; x := 99999999999999999999 }", []int{report.CodeArityOrRange}},
		{"{ int x; x := y + z }", []int{report.CodeUndeclared, report.CodeUndeclared}},
		{"{ bool a; a := true; a := not 1 }", []int{report.CodeTypeMismatch}},
	}

	for i, tt := range tests {
		analyze(t, tt.src)

		codes := errorCodes()
		if len(codes) != len(tt.expectedCodes) {
			t.Fatalf("tests[%d] - error count wrong. expected=%d, got=%d (%v)",
				i, len(tt.expectedCodes), len(codes), report.Diagnostics())
		}

		for j, code := range codes {
			if code != tt.expectedCodes[j] {
				t.Fatalf("tests[%d] - error %d code wrong. expected=%d, got=%d",
					i, j, tt.expectedCodes[j], code)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		src             string
		expectedMessage string
	}{
		{"{ int y; y := z }", "undefined symbol: `z`"},
		{"{ int x; int x; x := 1 }", "multiple symbols named `x` declared in the same block"},
		{"{ int x; x := true }", "cannot assign a value of type `bool` to `x` of type `int`"},
		{"{ function[..2] f; f := 1, 2 }", "`f` has type `function[..2]` and needs 3 elements but the literal has 2"},
		{"{ if 1 --> skip fi }", "guard condition must be of type `bool` but found `int`"},
		{"{ int x; x := x.1 }", "value of type `int` is not a function"},
		{`{ bool b; b := "a" == 1 }`, "cannot compare `string` to `int`"},
	}

	for i, tt := range tests {
		analyze(t, tt.src)

		codes := errorCodes()
		if len(codes) == 0 {
			t.Fatalf("tests[%d] - expected an error, got none", i)
		}

		found := false
		for _, d := range report.Diagnostics() {
			if d.Message == tt.expectedMessage {
				found = true
				break
			}
		}

		if !found {
			t.Fatalf("tests[%d] - message %q not reported. got=%v", i, tt.expectedMessage, report.Diagnostics())
		}
	}
}

func TestUnusedWarnings(t *testing.T) {
	tests := []struct {
		src              string
		expectedWarnings int
	}{
		// Writing a variable does not use it; only reads do.
		{"{ int x; x := 1 }", 1},
		{"{ int x; x := 1; print x }", 0},
		{"{ int x, y; x := y }", 1},
		{"{ int x; { int x; x := 1; print x }; x := 2 }", 1},
		{"{ bool b; skip }", 1},
		{"{ function[..1] f; print f.0 }", 0},
	}

	for i, tt := range tests {
		analyze(t, tt.src)

		if report.AnyErrors() {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, report.Diagnostics())
		}

		if n := warningCount(); n != tt.expectedWarnings {
			t.Fatalf("tests[%d] - warning count wrong. expected=%d, got=%d",
				i, tt.expectedWarnings, n)
		}

		for _, d := range report.Diagnostics() {
			if d.IsWarning && d.Code != report.CodeUnused {
				t.Fatalf("tests[%d] - warning code wrong. expected=%d, got=%d",
					i, report.CodeUnused, d.Code)
			}
		}
	}
}

func TestWarningsDoNotBlockTranslation(t *testing.T) {
	analyze(t, "{ int x; x := 1 }")

	if report.AnyErrors() {
		t.Fatalf("unexpected errors: %v", report.Diagnostics())
	}

	if !report.ShouldProceed() {
		t.Fatalf("warnings alone should not stop the pipeline")
	}
}

func TestSymbolSlots(t *testing.T) {
	_, w := analyze(t, `{
	int a;
	bool b;

	a := 1;
	{
		int c;
		c := a;
		print c
	};
	print b
}`)

	if report.AnyErrors() {
		t.Fatalf("unexpected errors: %v", report.Diagnostics())
	}

	syms := w.Symbols()
	if len(syms) != 3 {
		t.Fatalf("symbol count wrong. expected=%d, got=%d", 3, len(syms))
	}

	expected := []struct {
		name string
		slot int
		repr string
	}{
		{"a", 0, "int"},
		{"b", 1, "bool"},
		{"c", 2, "int"},
	}

	for i, tt := range expected {
		if syms[i].Name != tt.name {
			t.Fatalf("symbols[%d] - name wrong. expected=%q, got=%q", i, tt.name, syms[i].Name)
		}

		if syms[i].Slot != tt.slot {
			t.Fatalf("symbols[%d] - slot wrong. expected=%d, got=%d", i, tt.slot, syms[i].Slot)
		}

		if repr := syms[i].Type.Repr(); repr != tt.repr {
			t.Fatalf("symbols[%d] - type wrong. expected=%q, got=%q", i, tt.repr, repr)
		}
	}
}

func TestShadowingGetsFreshSlot(t *testing.T) {
	root, w := analyze(t, "{ int x; { int x; x := 1; print x }; x := 2; print x }")

	if report.AnyErrors() {
		t.Fatalf("unexpected errors: %v", report.Diagnostics())
	}

	syms := w.Symbols()
	if len(syms) != 2 {
		t.Fatalf("symbol count wrong. expected=%d, got=%d", 2, len(syms))
	}

	if syms[0].Slot == syms[1].Slot {
		t.Fatalf("shadowing symbol reuses slot %d", syms[0].Slot)
	}

	// The inner assignment resolves to the inner symbol, the outer to the
	// outer one.
	inner := root.Stmts[0].(*ast.Block).Stmts[0].(*ast.Assignment)
	outer := root.Stmts[1].(*ast.Assignment)

	if inner.LHSVar.Sym != syms[1] {
		t.Fatalf("inner assignment bound to the wrong symbol: %q slot %d",
			inner.LHSVar.Sym.Name, inner.LHSVar.Sym.Slot)
	}

	if outer.LHSVar.Sym != syms[0] {
		t.Fatalf("outer assignment bound to the wrong symbol: %q slot %d",
			outer.LHSVar.Sym.Name, outer.LHSVar.Sym.Slot)
	}
}

func TestTypeAnnotations(t *testing.T) {
	root, _ := analyze(t, `{
	int x;
	function[..1] f;

	x := 1 + 2 * 3;
	f := 1, 2;
	print "a" + "b";
	print f.0 == x
}`)

	if report.AnyErrors() {
		t.Fatalf("unexpected errors: %v", report.Diagnostics())
	}

	asgnX := root.Stmts[0].(*ast.Assignment)
	if !typing.Equals(asgnX.RHSExpr.Type(), typing.PrimInt) {
		t.Fatalf("arithmetic type wrong. expected=%q, got=%q", "int", asgnX.RHSExpr.Type().Repr())
	}

	asgnF := root.Stmts[1].(*ast.Assignment)
	if lt, ok := asgnF.RHSExpr.Type().(typing.FuncLitType); !ok || lt.Length != 2 {
		t.Fatalf("literal type wrong. expected=function of length 2, got=%q", asgnF.RHSExpr.Type().Repr())
	}

	concat := root.Stmts[2].(*ast.PrintStmt)
	if !typing.Equals(concat.Expr.Type(), typing.PrimString) {
		t.Fatalf("concat type wrong. expected=%q, got=%q", "string", concat.Expr.Type().Repr())
	}

	cmp := root.Stmts[3].(*ast.PrintStmt)
	if !typing.Equals(cmp.Expr.Type(), typing.PrimBool) {
		t.Fatalf("comparison type wrong. expected=%q, got=%q", "bool", cmp.Expr.Type().Repr())
	}

	apply := cmp.Expr.(*ast.BinaryOp).Lhs.(*ast.Apply)
	if !typing.Equals(apply.Type(), typing.PrimInt) {
		t.Fatalf("application type wrong. expected=%q, got=%q", "int", apply.Type().Repr())
	}
}

func TestOneErrorPerMistake(t *testing.T) {
	// The undeclared variable is reported once; the operations over the
	// resulting unknown type must stay silent.
	analyze(t, "{ int x; x := y * 2 + 1; print x }")

	codes := errorCodes()
	if len(codes) != 1 {
		t.Fatalf("error count wrong. expected=%d, got=%d (%v)", 1, len(codes), report.Diagnostics())
	}

	if codes[0] != report.CodeUndeclared {
		t.Fatalf("error code wrong. expected=%d, got=%d", report.CodeUndeclared, codes[0])
	}
}

func TestDeclarationsBindWholeBlock(t *testing.T) {
	// Declarations are visible to every instruction of their block, and a
	// redeclaration keeps the first symbol for later use.
	analyze(t, "{ int x; bool x; x := 1; print x }")

	codes := errorCodes()
	if len(codes) != 1 || codes[0] != report.CodeRedeclared {
		t.Fatalf("expected just the redeclaration error, got %v", report.Diagnostics())
	}
}
