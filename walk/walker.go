package walk

import (
	"fmt"

	"gcl/ast"
	"gcl/common"
	"gcl/report"
)

// Walker performs context analysis on a parsed program: it resolves every
// identifier against the scope-chained symbol table, checks the type rules,
// and annotates the AST for the translator.  Unlike the earlier stages, the
// walker never panics on erroneous input: diagnostics accumulate through the
// reporter so a single pass reports every name and type error the program
// contains.
type Walker struct {
	// The path to the source file being analyzed.
	path string

	// The stack of local scopes: one map per block currently being walked,
	// innermost last.  Lookups search from innermost to outermost.
	localScopes []map[string]*common.Symbol

	// The next free state slot.  Every declaration takes a fresh slot,
	// shadowing declarations included.
	nextSlot int

	// All symbols declared so far, in declaration order.
	symbols []*common.Symbol
}

// NewWalker creates a new walker for the given source file.
func NewWalker(path string) *Walker {
	return &Walker{path: path}
}

// WalkProgram walks a whole parsed program.  Callers decide whether to
// continue on to translation by consulting report.ShouldProceed.
func (w *Walker) WalkProgram(root *ast.Block) {
	w.walkBlock(root)
}

// Symbols returns every symbol the program declares, in declaration order.
// The translator uses this table to build the initial state.
func (w *Walker) Symbols() []*common.Symbol {
	return w.symbols
}

// -----------------------------------------------------------------------------

// lookup finds the symbol a name refers to, searching the enclosing scopes
// from innermost to outermost.  If the name is not declared, an error is
// reported and the resulting symbol is nil.
func (w *Walker) lookup(name string, span *report.TextSpan) *common.Symbol {
	for i := len(w.localScopes) - 1; i >= 0; i-- {
		if sym, ok := w.localScopes[i][name]; ok {
			return sym
		}
	}

	w.error(report.CodeUndeclared, span, "undefined symbol: `%s`", name)
	return nil
}

// defineLocal defines a new symbol in the innermost local scope, assigning it
// a fresh state slot.  It returns false without defining if the name is
// already declared in that scope.
func (w *Walker) defineLocal(sym *common.Symbol) bool {
	scope := w.localScopes[len(w.localScopes)-1]
	if _, ok := scope[sym.Name]; ok {
		w.error(report.CodeRedeclared, sym.DefSpan, "multiple symbols named `%s` declared in the same block", sym.Name)
		return false
	}

	sym.Slot = w.nextSlot
	w.nextSlot++

	scope[sym.Name] = sym
	w.symbols = append(w.symbols, sym)
	return true
}

// pushScope pushes a new local scope onto the scope stack.
func (w *Walker) pushScope() {
	w.localScopes = append(w.localScopes, make(map[string]*common.Symbol))
}

// popScope pops the innermost local scope off the scope stack.
func (w *Walker) popScope() {
	w.localScopes = w.localScopes[:len(w.localScopes)-1]
}

// -----------------------------------------------------------------------------

// error reports a semantic error over the given span.  The walk continues
// afterwards: later checks treat the erroneous node as having the unknown
// type so one mistake produces one diagnostic.
func (w *Walker) error(code int, span *report.TextSpan, msg string, args ...interface{}) {
	report.ReportDiagnostic(&report.Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(msg, args...),
		Span:    span,
		Path:    w.path,
	})
}

// warn reports a warning over the given span.
func (w *Walker) warn(code int, span *report.TextSpan, msg string, args ...interface{}) {
	report.ReportDiagnostic(&report.Diagnostic{
		Code:      code,
		Message:   fmt.Sprintf(msg, args...),
		Span:      span,
		Path:      w.path,
		IsWarning: true,
	})
}
