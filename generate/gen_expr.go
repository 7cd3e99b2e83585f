package generate

import (
	"strconv"

	"gcl/ast"
	"gcl/lambda"
	"gcl/report"
	"gcl/syntax"
	"gcl/typing"
)

// genExpr builds the value of an expression as a term over the given state
// term.  Variable reads index the state by slot; everything else maps onto
// the combinator library by the annotated types.
func (g *Generator) genExpr(expr ast.ASTExpr, state lambda.Term) lambda.Term {
	g.descend(expr.Span())
	defer g.ascend()

	switch vn := expr.(type) {
	case *ast.Literal:
		return g.genLiteral(vn)
	case *ast.Identifier:
		if vn.Sym == nil {
			report.ReportICE("generate: unresolved identifier `%s`", vn.Name)
		}

		return lambda.Apply(state, lambda.Numeral(vn.Sym.Slot))
	case *ast.UnaryOp:
		operand := g.genExpr(vn.Operand, state)
		if vn.Op.Kind == syntax.TOK_MINUS {
			return lambda.Apply(lambda.Neg, operand)
		}

		return lambda.Apply(lambda.Not, operand)
	case *ast.BinaryOp:
		return g.genBinaryOp(vn, state)
	case *ast.Apply:
		return lambda.Apply(g.genExpr(vn.Func, state), g.genExpr(vn.Index, state))
	case *ast.FuncModify:
		return lambda.Apply(lambda.Fnupd,
			g.genExpr(vn.Func, state), g.genExpr(vn.Index, state), g.genExpr(vn.Value, state))
	case *ast.FuncInit:
		return lambda.Apply(lambda.Fnupd,
			g.genExpr(vn.Func, state), g.genExpr(vn.Index, state), g.genExpr(vn.Value, state))
	default:
		report.ReportICE("generate: unexpected expression node: %T", expr)
		return nil
	}
}

func (g *Generator) genLiteral(lit *ast.Literal) lambda.Term {
	switch lit.Kind {
	case syntax.TOK_NUMLIT:
		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			report.ReportICE("generate: unchecked number literal `%s`", lit.Value)
		}

		return lambda.Int(n)
	case syntax.TOK_TRUE:
		return lambda.True
	case syntax.TOK_FALSE:
		return lambda.False
	case syntax.TOK_STRINGLIT:
		return lambda.Str(lit.Value)
	default:
		report.ReportICE("generate: unexpected literal kind: %d", lit.Kind)
		return nil
	}
}

func (g *Generator) genBinaryOp(bop *ast.BinaryOp, state lambda.Term) lambda.Term {
	if bop.Op.Kind == syntax.TOK_COMMA {
		return g.genFuncLit(bop, state)
	}

	lhs := g.genExpr(bop.Lhs, state)
	rhs := g.genExpr(bop.Rhs, state)

	switch bop.Op.Kind {
	case syntax.TOK_PLUS:
		if pt, ok := bop.Type().(typing.PrimType); ok && pt == typing.PrimString {
			return lambda.Apply(lambda.Append, lhs, rhs)
		}

		return lambda.Apply(lambda.ZAdd, lhs, rhs)
	case syntax.TOK_MINUS:
		return lambda.Apply(lambda.ZSub, lhs, rhs)
	case syntax.TOK_STAR:
		return lambda.Apply(lambda.ZMul, lhs, rhs)
	case syntax.TOK_LT:
		return lambda.Apply(lambda.ZLess, lhs, rhs)
	case syntax.TOK_GT:
		return lambda.Apply(lambda.ZLess, rhs, lhs)
	case syntax.TOK_LTEQ:
		return lambda.Apply(lambda.ZLeq, lhs, rhs)
	case syntax.TOK_GTEQ:
		return lambda.Apply(lambda.ZLeq, rhs, lhs)
	case syntax.TOK_EQ:
		return g.genEquality(bop, lhs, rhs)
	case syntax.TOK_NEQ:
		return lambda.Apply(lambda.Not, g.genEquality(bop, lhs, rhs))
	case syntax.TOK_AND:
		return lambda.Apply(lambda.And, lhs, rhs)
	case syntax.TOK_OR:
		return lambda.Apply(lambda.Or, lhs, rhs)
	default:
		report.ReportICE("generate: unexpected binary operator: `%s`", bop.Op.Name)
		return nil
	}
}

// genEquality picks the equality combinator for the operand type.  Function
// values have none: extensional equality is not encodable, so the construct
// is unsupported even though the analyzer accepts it.
func (g *Generator) genEquality(bop *ast.BinaryOp, lhs, rhs lambda.Term) lambda.Term {
	switch t := bop.Lhs.Type().(type) {
	case typing.PrimType:
		switch t {
		case typing.PrimInt:
			return lambda.Apply(lambda.ZEq, lhs, rhs)
		case typing.PrimBool:
			return lambda.Apply(lambda.BoolEq, lhs, rhs)
		default:
			return lambda.Apply(lambda.ListEq, lhs, rhs)
		}
	default:
		panic(report.Raise(report.CodeUnsupported, bop.Span(),
			"cannot translate equality over `%s` values", typeRepr(bop.Lhs.Type())))
	}
}

// genFuncLit builds a comma literal as updates over the zero function, index
// zero first.
func (g *Generator) genFuncLit(bop *ast.BinaryOp, state lambda.Term) lambda.Term {
	fn := lambda.Term(lambda.ZeroFn)
	for i, elem := range flattenComma(bop) {
		fn = lambda.Apply(lambda.Fnupd, fn, lambda.Int(i), g.genExpr(elem, state))
	}

	return fn
}

// flattenComma collects the elements of a comma tree left to right.
// Grouping parentheses leave no trace, so `(1, 2), 3` and `1, (2, 3)` both
// flatten to the same three elements.
func flattenComma(expr ast.ASTExpr) []ast.ASTExpr {
	if bop, ok := expr.(*ast.BinaryOp); ok && bop.Op.Kind == syntax.TOK_COMMA {
		return append(flattenComma(bop.Lhs), flattenComma(bop.Rhs)...)
	}

	return []ast.ASTExpr{expr}
}
