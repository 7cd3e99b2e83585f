package walk

import (
	"gcl/ast"
	"gcl/common"
	"gcl/report"
	"gcl/typing"
)

// walkBlock walks a block: its declarations bind symbols visible to every
// instruction of the block regardless of textual order, so all declarations
// are processed before any instruction is walked.
func (w *Walker) walkBlock(b *ast.Block) {
	w.pushScope()
	defer w.popScope()

	for _, decl := range b.Decls {
		w.walkVarDecl(decl)
	}

	for _, stmt := range b.Stmts {
		w.walkStmt(stmt)
	}

	// Warn about declared variables whose value is never read.  The walk of
	// the block's instructions is complete here, so usage flags are final.
	for _, decl := range b.Decls {
		for _, ident := range decl.Vars {
			if ident.Sym != nil && !ident.Sym.Used {
				w.warn(report.CodeUnused, ident.Sym.DefSpan, "variable `%s` is never used", ident.Sym.Name)
			}
		}
	}
}

func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	for _, ident := range vd.Vars {
		sym := &common.Symbol{
			Name:    ident.Name,
			DefSpan: ident.Span(),
			Type:    vd.DeclType,
		}

		// On redeclaration the first symbol wins and the duplicate
		// identifier is left unannotated.
		if w.defineLocal(sym) {
			ident.Sym = sym
			ident.SetType(sym.Type)
		}
	}
}

func (w *Walker) walkStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.Assignment:
		w.walkAssignment(v)
	case *ast.PrintStmt:
		w.walkExpr(v.Expr)
	case *ast.KeywordStmt:
		// `skip` has nothing to check.
	case *ast.IfTree:
		for _, cb := range v.CondBranches {
			w.walkGuard(cb.Condition)
			w.walkStmts(cb.Body)
		}
	case *ast.WhileLoop:
		w.walkGuard(v.Condition)
		w.walkStmts(v.Body)
	case *ast.Block:
		w.walkBlock(v)
	default:
		report.ReportICE("walk: unexpected statement node: %T", stmt)
	}
}

func (w *Walker) walkStmts(stmts []ast.ASTNode) {
	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

// walkGuard walks the condition of an `if` or `while` guard, which must be a
// boolean expression.
func (w *Walker) walkGuard(cond ast.ASTExpr) {
	condType := w.walkExpr(cond)
	w.mustBe(condType, typing.PrimBool, cond.Span(), "guard condition")
}

// walkAssignment checks an assignment: the right side must produce a value of
// the target's declared type.  Function variables accept two extra forms: a
// function literal whose length is the declared bound plus one, and a bare
// Int expression when the declared bound is zero.
func (w *Walker) walkAssignment(asgn *ast.Assignment) {
	sym := w.lookup(asgn.LHSVar.Name, asgn.LHSVar.Span())
	rhsType := w.walkExpr(asgn.RHSExpr)

	if sym == nil {
		return
	}

	asgn.LHSVar.Sym = sym
	asgn.LHSVar.SetType(sym.Type)

	if typing.Equals(sym.Type, rhsType) {
		return
	}

	if ft, ok := sym.Type.(typing.FuncType); ok {
		if lt, ok := rhsType.(typing.FuncLitType); ok {
			if lt.Length != ft.Upper+1 {
				w.error(report.CodeArityOrRange, asgn.Span(),
					"`%s` has type `%s` and needs %d elements but the literal has %d",
					sym.Name, ft.Repr(), ft.Upper+1, lt.Length)
			}

			return
		}

		if ft.Upper == 0 && typing.Equals(rhsType, typing.PrimInt) {
			return
		}
	}

	w.error(report.CodeTypeMismatch, asgn.Span(),
		"cannot assign a value of type `%s` to `%s` of type `%s`",
		rhsType.Repr(), sym.Name, sym.Type.Repr())
}
