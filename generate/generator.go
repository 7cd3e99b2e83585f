package generate

import (
	"github.com/sirupsen/logrus"

	"gcl/ast"
	"gcl/common"
	"gcl/lambda"
	"gcl/report"
	"gcl/typing"
)

// Generator converts a validated, annotated AST into a single lambda term: a
// transformer from a ⟨state, output⟩ pair to a ⟨state, output⟩ pair.
// Translation is fail-fast: it assumes a program with zero semantic errors,
// so anything outside the encoding set raises immediately and is caught at
// the Generate boundary.
type Generator struct {
	// The path to the source file being translated.
	path string

	// The program's symbols in declaration order.  Slots index the state;
	// the symbol types pick the initial cell values.
	symbols []*common.Symbol

	// The recursion depth limit and the depth remaining.  Translation stops
	// with DepthExceeded rather than overflowing on pathological nesting.
	maxDepth int
	depth    int
}

// NewGenerator creates a generator for the given source file over the symbol
// table the walker produced.
func NewGenerator(path string, symbols []*common.Symbol, maxDepth int) *Generator {
	return &Generator{path: path, symbols: symbols, maxDepth: maxDepth, depth: maxDepth}
}

// Generate translates a whole program.  The result is nil if a translation
// error was reported.
func (g *Generator) Generate(root *ast.Block) (formula lambda.Term) {
	defer report.CatchErrors(g.path)

	formula = g.genStmts(root.Stmts)

	logrus.WithFields(logrus.Fields{
		"path":  g.path,
		"slots": len(g.symbols),
	}).Trace("program translated")

	return
}

// InitialPair returns the ⟨state, output⟩ pair a translated program is meant
// to be applied to: every declared slot holds its type's default value (Int
// and function cells zero, Bool false) and the output list is empty.
func (g *Generator) InitialPair() lambda.Term {
	// The zero function already maps every slot to integer zero, so only the
	// non-integer slots need explicit cells.
	state := lambda.Term(lambda.ZeroFn)

	for _, sym := range g.symbols {
		switch t := sym.Type.(type) {
		case typing.PrimType:
			if t == typing.PrimBool {
				state = lambda.Apply(lambda.Update, lambda.Numeral(sym.Slot), lambda.False, state)
			}
		case typing.FuncType:
			state = lambda.Apply(lambda.Update, lambda.Numeral(sym.Slot), lambda.ZeroFn, state)
		}
	}

	return lambda.Pair(state, lambda.Nil)
}

// -----------------------------------------------------------------------------

func (g *Generator) descend(span *report.TextSpan) {
	g.depth--
	if g.depth <= 0 {
		panic(report.Raise(report.CodeDepthExceeded, span,
			"translation recursion exceeded %d levels", g.maxDepth))
	}
}

func (g *Generator) ascend() {
	g.depth++
}

func v(name string) *lambda.Var {
	return &lambda.Var{Name: name}
}
