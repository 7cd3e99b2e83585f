package generate

import (
	"gcl/ast"
	"gcl/lambda"
	"gcl/report"
	"gcl/typing"
)

// genStmts builds the transformer for an instruction sequence: the
// composition of the instruction transformers, applied left to right.  A
// nested block is just its own sequence; declarations bind slots and emit
// nothing.
func (g *Generator) genStmts(stmts []ast.ASTNode) lambda.Term {
	body := lambda.Term(v("p"))
	for _, stmt := range stmts {
		body = lambda.Apply(g.genStmt(stmt), body)
	}

	return lambda.Lam("p", body)
}

func (g *Generator) genStmt(stmt ast.ASTNode) lambda.Term {
	g.descend(stmt.Span())
	defer g.ascend()

	switch vn := stmt.(type) {
	case *ast.Assignment:
		return g.genAssignment(vn)
	case *ast.PrintStmt:
		return g.genPrint(vn)
	case *ast.KeywordStmt:
		// skip: the identity transformer.
		return lambda.Lam("p", v("p"))
	case *ast.IfTree:
		return g.genIfTree(vn)
	case *ast.WhileLoop:
		return g.genWhileLoop(vn)
	case *ast.Block:
		return g.genStmts(vn.Stmts)
	default:
		report.ReportICE("generate: unexpected statement node: %T", stmt)
		return nil
	}
}

// genAssignment writes a state cell:
// `λp.pair (update ⌜slot⌝ V (fst p)) (snd p)`.
func (g *Generator) genAssignment(asgn *ast.Assignment) lambda.Term {
	sym := asgn.LHSVar.Sym
	if sym == nil {
		report.ReportICE("generate: unresolved assignment target `%s`", asgn.LHSVar.Name)
	}

	state := lambda.Apply(lambda.Fst, v("p"))
	value := g.genExpr(asgn.RHSExpr, state)

	// A bare Int filling a one-cell function variable becomes that cell.
	if ft, ok := sym.Type.(typing.FuncType); ok && ft.Upper == 0 && typing.Equals(asgn.RHSExpr.Type(), typing.PrimInt) {
		value = lambda.Apply(lambda.Fnupd, lambda.ZeroFn, lambda.Int(0), value)
	}

	return lambda.Lam("p", lambda.Pair(
		lambda.Apply(lambda.Update, lambda.Numeral(sym.Slot), value, state),
		lambda.Apply(lambda.Snd, v("p")),
	))
}

// genPrint appends a tagged value to the output channel:
// `λp.pair (fst p) (snoc (snd p) (pair ⌜tag⌝ V))`.
func (g *Generator) genPrint(ps *ast.PrintStmt) lambda.Term {
	state := lambda.Apply(lambda.Fst, v("p"))
	value := g.genExpr(ps.Expr, state)

	var tagged lambda.Term
	switch t := ps.Expr.Type().(type) {
	case typing.PrimType:
		switch t {
		case typing.PrimInt:
			tagged = lambda.Pair(lambda.Numeral(lambda.TagInt), value)
		case typing.PrimBool:
			tagged = lambda.Pair(lambda.Numeral(lambda.TagBool), value)
		default:
			tagged = lambda.Pair(lambda.Numeral(lambda.TagString), value)
		}
	case typing.FuncType:
		tagged = lambda.Pair(lambda.Numeral(lambda.TagFunc), extensionOf(value, t.Upper))
	case typing.FuncLitType:
		tagged = lambda.Pair(lambda.Numeral(lambda.TagFunc), extensionOf(value, t.Length-1))
	default:
		panic(report.Raise(report.CodeUnsupported, ps.Span(),
			"cannot translate a print of type `%s`", typeRepr(ps.Expr.Type())))
	}

	return lambda.Lam("p", lambda.Pair(
		state,
		lambda.Apply(lambda.Snoc, lambda.Apply(lambda.Snd, v("p")), tagged),
	))
}

// extensionOf samples a function value at the indices 0..upper, giving the
// list of its cells.  The bound is static, so the samples unroll directly.
func extensionOf(fn lambda.Term, upper int) lambda.Term {
	list := lambda.Term(lambda.Nil)
	for i := upper; i >= 0; i-- {
		list = lambda.Apply(lambda.Cons, lambda.Apply(v("f"), lambda.Int(i)), list)
	}

	return lambda.Apply(lambda.Lam("f", list), fn)
}

// genIfTree tries the guards in textual order; the first true guard's body
// transformer runs.  With no true guard the program faults: the fallback
// applies the free `fault` variable, on which reduction gets stuck.
func (g *Generator) genIfTree(it *ast.IfTree) lambda.Term {
	result := lambda.Apply(lambda.Fault, v("p"))

	for i := len(it.CondBranches) - 1; i >= 0; i-- {
		cb := it.CondBranches[i]
		cond := g.genExpr(cb.Condition, lambda.Apply(lambda.Fst, v("p")))
		body := lambda.Apply(g.genStmts(cb.Body), v("p"))
		result = lambda.Apply(cond, body, result)
	}

	return lambda.Lam("p", result)
}

// genWhileLoop builds the loop through the fixed point combinator:
// `fix (λw.λp.G (w (T p)) p)`.  The guard re-evaluates against the state of
// each iteration; when it fails the pair passes through unchanged.
func (g *Generator) genWhileLoop(wl *ast.WhileLoop) lambda.Term {
	cond := g.genExpr(wl.Condition, lambda.Apply(lambda.Fst, v("p")))
	body := g.genStmts(wl.Body)

	return lambda.Apply(lambda.Fix, lambda.Lam("w", lambda.Lam("p",
		lambda.Apply(cond, lambda.Apply(v("w"), lambda.Apply(body, v("p"))), v("p")),
	)))
}

func typeRepr(dt typing.DataType) string {
	if typing.IsUnknown(dt) {
		return "<unknown>"
	}

	return dt.Repr()
}
