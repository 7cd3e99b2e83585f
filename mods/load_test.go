package mods

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gcl/common"
	"gcl/report"
)

func TestMain(m *testing.M) {
	report.Init("silent")
	os.Exit(m.Run())
}

// writeProjectFile drops a gcl.toml with the given contents into dir.
func writeProjectFile(t *testing.T, dir, contents string) {
	t.Helper()

	if err := ioutil.WriteFile(filepath.Join(dir, common.ProjectFileName), []byte(contents), 0666); err != nil {
		t.Fatalf("unable to write project file: %s", err.Error())
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `
[project]
name = "demo"
version = "1.2.3"
gclc-version = ">= 0.1.0"

[translate]
output = "expanded"
max-depth = 64
max-steps = 1000
`)

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %s", err.Error())
	}

	if proj.Name != "demo" {
		t.Fatalf("name wrong. expected=%q, got=%q", "demo", proj.Name)
	}

	if proj.ProjectRoot != dir {
		t.Fatalf("project root wrong. expected=%q, got=%q", dir, proj.ProjectRoot)
	}

	if proj.Version.String() != "1.2.3" {
		t.Fatalf("version wrong. expected=%q, got=%q", "1.2.3", proj.Version.String())
	}

	if proj.Output != OutputExpanded {
		t.Fatalf("output mode wrong. expected=%q, got=%q", OutputExpanded, proj.Output)
	}

	if proj.MaxDepth != 64 {
		t.Fatalf("max depth wrong. expected=%d, got=%d", 64, proj.MaxDepth)
	}

	if proj.MaxSteps != 1000 {
		t.Fatalf("max steps wrong. expected=%d, got=%d", 1000, proj.MaxSteps)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `
[project]
name = "bare"
version = "0.1.0"
`)

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %s", err.Error())
	}

	if proj.Output != OutputNamed {
		t.Fatalf("output mode wrong. expected=%q, got=%q", OutputNamed, proj.Output)
	}

	if proj.MaxDepth != common.DefaultMaxDepth {
		t.Fatalf("max depth wrong. expected=%d, got=%d", common.DefaultMaxDepth, proj.MaxDepth)
	}

	if proj.MaxSteps != common.DefaultMaxSteps {
		t.Fatalf("max steps wrong. expected=%d, got=%d", common.DefaultMaxSteps, proj.MaxSteps)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		contents        string
		expectedMessage string
	}{
		{"[project]\nversion = \"1.0.0\"", "missing project name"},
		{"[project]\nname = \"9bad\"\nversion = \"1.0.0\"", "`9bad` is not a valid project name"},
		{"[project]\nname = \"demo\"", "missing project version"},
		{"[project]\nname = \"demo\"\nversion = \"one\"", "`one` is not a valid semantic version"},
		{"[project]\nname = \"demo\"\nversion = \"1.0.0\"\ngclc-version = \"%%%\"",
			"`%%%` is not a valid version constraint"},
		{"[project]\nname = \"demo\"\nversion = \"1.0.0\"\n\n[translate]\noutput = \"fancy\"",
			"`fancy` is not a valid output mode"},
	}

	for i, tt := range tests {
		dir := t.TempDir()
		writeProjectFile(t, dir, tt.contents)

		_, err := Load(dir)
		if err == nil {
			t.Fatalf("tests[%d] - expected a load error, got none", i)
		}

		if err.Error() != tt.expectedMessage {
			t.Fatalf("tests[%d] - error message wrong. expected=%q, got=%q",
				i, tt.expectedMessage, err.Error())
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatalf("expected a load error for a missing project file")
	}

	if !strings.Contains(err.Error(), "unable to open project file") {
		t.Fatalf("error message wrong. got=%q", err.Error())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "= garbage =")

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected a load error for malformed TOML")
	}
}

func TestVersionConstraintMismatchIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `
[project]
name = "future"
version = "1.0.0"
gclc-version = ">= 99.0.0"
`)

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %s", err.Error())
	}

	if proj.Name != "future" {
		t.Fatalf("name wrong. expected=%q, got=%q", "future", proj.Name)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0777); err != nil {
		t.Fatalf("unable to create directories: %s", err.Error())
	}

	projDir := filepath.Join(root, "a")
	writeProjectFile(t, projDir, "[project]\nname = \"demo\"\nversion = \"0.1.0\"")

	dir, ok := Find(nested)
	if !ok {
		t.Fatalf("expected to find the project file from a nested directory")
	}

	if dir != projDir {
		t.Fatalf("found directory wrong. expected=%q, got=%q", projDir, dir)
	}

	// Finding from a file path searches from its directory.
	srcPath := filepath.Join(nested, "main.gcl")
	if err := ioutil.WriteFile(srcPath, []byte("{ skip }"), 0666); err != nil {
		t.Fatalf("unable to write source file: %s", err.Error())
	}

	dir, ok = Find(srcPath)
	if !ok || dir != projDir {
		t.Fatalf("find from file wrong. expected=%q, got=%q (ok=%t)", projDir, dir, ok)
	}

	if _, ok := Find(filepath.Join(root, "missing")); ok {
		t.Fatalf("expected find to fail for a nonexistent path")
	}
}

func TestLoadNearestFallsBackToDefaults(t *testing.T) {
	proj, err := LoadNearest(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %s", err.Error())
	}

	if proj.Name != "" || proj.Output != OutputNamed || proj.MaxDepth != common.DefaultMaxDepth {
		t.Fatalf("expected the default project, got %+v", proj)
	}
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()

	if err := InitProject("demo", dir); err != nil {
		t.Fatalf("init failed: %s", err.Error())
	}

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("load of initialized project failed: %s", err.Error())
	}

	if proj.Name != "demo" {
		t.Fatalf("name wrong. expected=%q, got=%q", "demo", proj.Name)
	}

	if proj.Version.String() != "0.1.0" {
		t.Fatalf("version wrong. expected=%q, got=%q", "0.1.0", proj.Version.String())
	}

	if err := InitProject("demo", dir); err == nil {
		t.Fatalf("expected re-initialization to fail")
	} else if err.Error() != "project file already exists" {
		t.Fatalf("error message wrong. got=%q", err.Error())
	}

	if err := InitProject("9bad", t.TempDir()); err == nil {
		t.Fatalf("expected an invalid name to fail")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		idstr    string
		expected bool
	}{
		{"", false},
		{"x", true},
		{"_x", true},
		{"demo_1", true},
		{"a-b", true},
		{"Big", true},
		{"9x", false},
		{"-x", false},
		{"a b", false},
		{"a.b", false},
	}

	for i, tt := range tests {
		if got := IsValidIdentifier(tt.idstr); got != tt.expected {
			t.Fatalf("tests[%d] - validity wrong for %q. expected=%t, got=%t",
				i, tt.idstr, tt.expected, got)
		}
	}
}
