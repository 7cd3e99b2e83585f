package build

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gcl/mods"
	"gcl/report"
)

func TestMain(m *testing.M) {
	report.Init("silent")
	os.Exit(m.Run())
}

// writeSource drops a GCL source file into a fresh temporary directory and
// returns its path.
func writeSource(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.gcl")
	if err := ioutil.WriteFile(path, []byte(src), 0666); err != nil {
		t.Fatalf("unable to write source file: %s", err.Error())
	}

	return path
}

func TestNewCompilerValidation(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewCompiler(filepath.Join(dir, "main.txt"), mods.Default()); err == nil {
		t.Fatalf("expected a wrong extension error")
	} else if !strings.Contains(err.Error(), "is not a GCL source file") {
		t.Fatalf("extension error wrong. got=%q", err.Error())
	}

	if _, err := NewCompiler(filepath.Join(dir, "missing.gcl"), mods.Default()); err == nil {
		t.Fatalf("expected a missing file error")
	} else if !strings.Contains(err.Error(), "unable to find source file") {
		t.Fatalf("missing file error wrong. got=%q", err.Error())
	}

	dirAsSrc := filepath.Join(dir, "odd.gcl")
	if err := os.Mkdir(dirAsSrc, 0777); err != nil {
		t.Fatalf("unable to create directory: %s", err.Error())
	}

	if _, err := NewCompiler(dirAsSrc, mods.Default()); err == nil {
		t.Fatalf("expected a directory error")
	} else if !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("directory error wrong. got=%q", err.Error())
	}
}

func TestCompileAndRun(t *testing.T) {
	report.Reset()

	path := writeSource(t, "{ print 6 * 7 }")

	c, err := NewCompiler(path, mods.Default())
	if err != nil {
		t.Fatalf("compiler creation failed: %s", err.Error())
	}

	output, ok := c.Run(0)
	if !ok {
		t.Fatalf("run failed: %v", report.Diagnostics())
	}

	if len(output) != 1 || output[0] != "42" {
		t.Fatalf("output wrong. expected=[42], got=%v", output)
	}

	if c.Root() == nil || c.Formula() == nil {
		t.Fatalf("pipeline state missing after a successful run")
	}
}

func TestRunRespectsStepBudget(t *testing.T) {
	report.Reset()

	path := writeSource(t, "{ print 6 * 7 }")

	c, err := NewCompiler(path, mods.Default())
	if err != nil {
		t.Fatalf("compiler creation failed: %s", err.Error())
	}

	if output, ok := c.Run(5); ok {
		t.Fatalf("expected the step budget to run out, got %v", output)
	}

	if !report.AnyErrors() {
		t.Fatalf("expected the budget failure to be reported")
	}
}

func TestParseFailureStopsPipeline(t *testing.T) {
	report.Reset()

	path := writeSource(t, "{ x := }")

	c, err := NewCompiler(path, mods.Default())
	if err != nil {
		t.Fatalf("compiler creation failed: %s", err.Error())
	}

	if c.Parse() {
		t.Fatalf("expected parsing to fail")
	}

	if c.Root() != nil {
		t.Fatalf("expected no tree after a failed parse")
	}

	diags := report.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != report.SyntaxError {
		t.Fatalf("expected one syntax diagnostic, got %v", diags)
	}

	if diags[0].Path != path {
		t.Fatalf("diagnostic path wrong. expected=%q, got=%q", path, diags[0].Path)
	}
}

func TestAnalyzeFailureStopsPipeline(t *testing.T) {
	report.Reset()

	path := writeSource(t, "{ x := 1 }")

	c, err := NewCompiler(path, mods.Default())
	if err != nil {
		t.Fatalf("compiler creation failed: %s", err.Error())
	}

	if c.Analyze() {
		t.Fatalf("expected analysis to fail")
	}

	if c.Translate() {
		t.Fatalf("expected translation to fail after failed analysis")
	}

	found := false
	for _, d := range report.Diagnostics() {
		if d.Code == report.CodeUndeclared {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected an undeclared symbol diagnostic, got %v", report.Diagnostics())
	}
}

func TestCompilerReuse(t *testing.T) {
	report.Reset()

	path := writeSource(t, "{ int n; n := 2; print n + n }")

	c, err := NewCompiler(path, mods.Default())
	if err != nil {
		t.Fatalf("compiler creation failed: %s", err.Error())
	}

	for i := 0; i < 2; i++ {
		report.Reset()

		output, ok := c.Run(0)
		if !ok {
			t.Fatalf("run %d failed: %v", i, report.Diagnostics())
		}

		if len(output) != 1 || output[0] != "4" {
			t.Fatalf("run %d output wrong. expected=[4], got=%v", i, output)
		}
	}
}
