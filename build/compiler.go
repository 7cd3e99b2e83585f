package build

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"gcl/ast"
	"gcl/common"
	"gcl/generate"
	"gcl/lambda"
	"gcl/mods"
	"gcl/reduce"
	"gcl/report"
	"gcl/syntax"
	"gcl/walk"
)

// Compiler drives the translation pipeline over a single source file.  The
// pipeline stages build on each other: lexing and parsing produce the AST,
// walking checks and annotates it, and generation turns it into a lambda
// formula.  Reduction is optional and only runs for `run` style invocations.
//
// A compiler may be reused for multiple runs over the same file (the watch
// loop does this); each stage clears the state of the stages after it.
type Compiler struct {
	// proj is the project configuration governing this run.
	proj *mods.GclProject

	// srcPath is the absolute path to the source file being translated.
	srcPath string

	// root is the program block produced by parsing.
	root *ast.Block

	// symbols is the program's variable table in declaration order.
	symbols []*common.Symbol

	// gen is the generator used for the most recent translation.  It is
	// retained so the initial state pair can be built to match the program's
	// variable slots.
	gen *generate.Generator

	// formula is the translated program transformer.
	formula lambda.Term
}

// NewCompiler creates a new compiler for the source file at the given
// relative path under the given project configuration.
func NewCompiler(srcRelPath string, proj *mods.GclProject) (*Compiler, error) {
	srcPath, err := filepath.Abs(srcRelPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving source path: %s", err.Error())
	}

	if filepath.Ext(srcPath) != common.SrcFileExtension {
		return nil, fmt.Errorf("`%s` is not a GCL source file", srcRelPath)
	}

	if finfo, err := os.Stat(srcPath); err != nil {
		return nil, fmt.Errorf("unable to find source file: %s", err.Error())
	} else if finfo.IsDir() {
		return nil, fmt.Errorf("`%s` is a directory", srcRelPath)
	}

	return &Compiler{proj: proj, srcPath: srcPath}, nil
}

// SrcPath returns the absolute path to the compiler's source file.
func (c *Compiler) SrcPath() string {
	return c.srcPath
}

// Project returns the project configuration governing this compiler.
func (c *Compiler) Project() *mods.GclProject {
	return c.proj
}

// Root returns the AST root of the most recent successful parse.
func (c *Compiler) Root() *ast.Block {
	return c.root
}

// Formula returns the most recently translated formula.
func (c *Compiler) Formula() lambda.Term {
	return c.formula
}

// -----------------------------------------------------------------------------

// Parse lexes and parses the source file, producing the program AST.  It
// returns whether parsing succeeded; all failures are reported as
// diagnostics.
func (c *Compiler) Parse() bool {
	c.root = nil
	start := time.Now()
	report.BeginPhase("Parsing")

	f, err := os.Open(c.srcPath)
	if err != nil {
		report.ReportStdError(fmt.Errorf("unable to open source file: %s", err.Error()))
		report.EndPhase(false)
		return false
	}
	defer f.Close()

	p := syntax.NewParser(c.srcPath, bufio.NewReader(f))
	c.root = p.Parse()

	ok := c.root != nil && report.ShouldProceed()
	report.EndPhase(ok)

	logrus.WithFields(logrus.Fields{
		"file":    filepath.Base(c.srcPath),
		"elapsed": time.Since(start),
	}).Debug("parsing finished")

	return ok
}

// Analyze parses the source file and then walks the AST, declaring symbols,
// checking types, and annotating the tree for translation.
func (c *Compiler) Analyze() bool {
	if !c.Parse() {
		return false
	}

	start := time.Now()
	report.BeginPhase("Checking")

	w := walk.NewWalker(c.srcPath)
	w.WalkProgram(c.root)
	c.symbols = w.Symbols()

	ok := report.ShouldProceed()
	report.EndPhase(ok)

	logrus.WithFields(logrus.Fields{
		"symbols": len(c.symbols),
		"elapsed": time.Since(start),
	}).Debug("checking finished")

	return ok
}

// Translate runs the full pipeline through formula generation.
func (c *Compiler) Translate() bool {
	if !c.Analyze() {
		return false
	}

	c.formula = nil
	start := time.Now()
	report.BeginPhase("Translating")

	c.gen = generate.NewGenerator(c.srcPath, c.symbols, c.proj.MaxDepth)
	c.formula = c.gen.Generate(c.root)

	ok := c.formula != nil && report.ShouldProceed()
	report.EndPhase(ok)

	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
	}).Debug("translation finished")

	return ok
}

// Run translates the source file and then reduces the formula applied to the
// program's initial state, returning the decoded output list.  The step
// budget bounds reduction; a budget of zero or less uses the project's.
func (c *Compiler) Run(maxSteps int) ([]string, bool) {
	if !c.Translate() {
		return nil, false
	}

	if maxSteps <= 0 {
		maxSteps = c.proj.MaxSteps
	}

	start := time.Now()
	report.BeginPhase("Reducing")

	r := reduce.NewReducer(maxSteps)
	result, err := r.Reduce(lambda.Apply(c.formula, c.gen.InitialPair()))
	if err != nil {
		report.EndPhase(false)
		report.ReportStdError(err)
		return nil, false
	}

	output, err := reduce.DecodeOutput(result)
	if err != nil {
		report.EndPhase(false)
		report.ReportStdError(err)
		return nil, false
	}

	report.EndPhase(true)

	logrus.WithFields(logrus.Fields{
		"steps":   r.Steps(),
		"elapsed": time.Since(start),
	}).Debug("reduction finished")

	return output, true
}
