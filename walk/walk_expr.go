package walk

import (
	"strconv"

	"gcl/ast"
	"gcl/report"
	"gcl/syntax"
	"gcl/typing"
)

// walkExpr walks an expression, checks it, and returns its type.  The type is
// also stored on the node for the translator.  An expression that cannot be
// typed because of an earlier error gets the unknown type, which satisfies
// every later check so one mistake is reported exactly once.
func (w *Walker) walkExpr(expr ast.ASTExpr) typing.DataType {
	var dt typing.DataType

	switch v := expr.(type) {
	case *ast.Literal:
		dt = w.walkLiteral(v)
	case *ast.Identifier:
		dt = w.walkIdentifier(v)
	case *ast.UnaryOp:
		dt = w.walkUnaryOp(v)
	case *ast.BinaryOp:
		dt = w.walkBinaryOp(v)
	case *ast.Apply:
		dt = w.walkApply(v)
	case *ast.FuncModify:
		dt = w.walkFuncMutate(v.Func, v.Index, v.Value)
	case *ast.FuncInit:
		dt = w.walkFuncMutate(v.Func, v.Index, v.Value)
	default:
		report.ReportICE("walk: unexpected expression node: %T", expr)
	}

	expr.SetType(dt)
	return dt
}

func (w *Walker) walkLiteral(lit *ast.Literal) typing.DataType {
	switch lit.Kind {
	case syntax.TOK_NUMLIT:
		if _, err := strconv.Atoi(lit.Value); err != nil {
			w.error(report.CodeArityOrRange, lit.Span(), "number literal out of range: `%s`", lit.Value)
		}

		return typing.PrimInt
	case syntax.TOK_TRUE, syntax.TOK_FALSE:
		return typing.PrimBool
	case syntax.TOK_STRINGLIT:
		return typing.PrimString
	default:
		report.ReportICE("walk: unexpected literal kind: %d", lit.Kind)
		return nil
	}
}

func (w *Walker) walkIdentifier(id *ast.Identifier) typing.DataType {
	sym := w.lookup(id.Name, id.Span())
	if sym == nil {
		return typing.UnknownType{}
	}

	id.Sym = sym
	sym.Used = true
	return sym.Type
}

func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) typing.DataType {
	operandType := w.walkExpr(uop.Operand)

	switch uop.Op.Kind {
	case syntax.TOK_MINUS:
		w.mustBe(operandType, typing.PrimInt, uop.Operand.Span(), "operand of `-`")
		return typing.PrimInt
	case syntax.TOK_NOT:
		w.mustBe(operandType, typing.PrimBool, uop.Operand.Span(), "operand of `not`")
		return typing.PrimBool
	default:
		report.ReportICE("walk: unexpected unary operator: `%s`", uop.Op.Name)
		return nil
	}
}

func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) typing.DataType {
	lhsType := w.walkExpr(bop.Lhs)
	rhsType := w.walkExpr(bop.Rhs)
	operand := "operand of `" + bop.Op.Name + "`"

	switch bop.Op.Kind {
	case syntax.TOK_COMMA:
		return w.walkComma(bop, lhsType, rhsType)

	case syntax.TOK_PLUS:
		// `+` doubles as string concatenation.  The branch is picked by the
		// concrete operand types, so unknowns still default to arithmetic.
		if isString(lhsType) || isString(rhsType) {
			w.mustBe(lhsType, typing.PrimString, bop.Lhs.Span(), operand)
			w.mustBe(rhsType, typing.PrimString, bop.Rhs.Span(), operand)
			return typing.PrimString
		}

		w.mustBe(lhsType, typing.PrimInt, bop.Lhs.Span(), operand)
		w.mustBe(rhsType, typing.PrimInt, bop.Rhs.Span(), operand)
		return typing.PrimInt

	case syntax.TOK_MINUS, syntax.TOK_STAR:
		w.mustBe(lhsType, typing.PrimInt, bop.Lhs.Span(), operand)
		w.mustBe(rhsType, typing.PrimInt, bop.Rhs.Span(), operand)
		return typing.PrimInt

	case syntax.TOK_LT, syntax.TOK_GT, syntax.TOK_LTEQ, syntax.TOK_GTEQ:
		w.mustBe(lhsType, typing.PrimInt, bop.Lhs.Span(), operand)
		w.mustBe(rhsType, typing.PrimInt, bop.Rhs.Span(), operand)
		return typing.PrimBool

	case syntax.TOK_EQ, syntax.TOK_NEQ:
		// Any matching pair of types compares; the translator refuses the
		// function-typed cases it cannot encode.
		if !typing.Equals(lhsType, rhsType) {
			w.error(report.CodeTypeMismatch, bop.Span(),
				"cannot compare `%s` to `%s`", lhsType.Repr(), rhsType.Repr())
		}

		return typing.PrimBool

	case syntax.TOK_AND, syntax.TOK_OR:
		w.mustBe(lhsType, typing.PrimBool, bop.Lhs.Span(), operand)
		w.mustBe(rhsType, typing.PrimBool, bop.Rhs.Span(), operand)
		return typing.PrimBool

	default:
		report.ReportICE("walk: unexpected binary operator: `%s`", bop.Op.Name)
		return nil
	}
}

// walkComma types a comma expression: a function literal built from Int
// elements.  Joining onto an existing literal extends its length by one;
// declared function variables are not elements and cannot be extended.
func (w *Walker) walkComma(bop *ast.BinaryOp, lhsType, rhsType typing.DataType) typing.DataType {
	if typing.IsUnknown(lhsType) || typing.IsUnknown(rhsType) {
		return typing.UnknownType{}
	}

	lhsLit, lhsIsLit := lhsType.(typing.FuncLitType)
	rhsLit, rhsIsLit := rhsType.(typing.FuncLitType)

	switch {
	case lhsIsLit:
		if !w.mustBe(rhsType, typing.PrimInt, bop.Rhs.Span(), "function element") {
			return typing.UnknownType{}
		}

		return typing.FuncLitType{Length: lhsLit.Length + 1}
	case rhsIsLit:
		if !w.mustBe(lhsType, typing.PrimInt, bop.Lhs.Span(), "function element") {
			return typing.UnknownType{}
		}

		return typing.FuncLitType{Length: rhsLit.Length + 1}
	default:
		lhsOk := w.mustBe(lhsType, typing.PrimInt, bop.Lhs.Span(), "function element")
		rhsOk := w.mustBe(rhsType, typing.PrimInt, bop.Rhs.Span(), "function element")
		if !lhsOk || !rhsOk {
			return typing.UnknownType{}
		}

		return typing.FuncLitType{Length: 2}
	}
}

func (w *Walker) walkApply(app *ast.Apply) typing.DataType {
	funcType := w.walkExpr(app.Func)
	indexType := w.walkExpr(app.Index)

	w.mustBeFunction(funcType, app.Func.Span())
	w.mustBe(indexType, typing.PrimInt, app.Index.Span(), "function index")

	return typing.PrimInt
}

// walkFuncMutate checks the two function mutation forms, `f[i:v]` and
// `f(i:v)`.  Both produce a new function value of the base's type.
func (w *Walker) walkFuncMutate(fn, index, value ast.ASTExpr) typing.DataType {
	funcType := w.walkExpr(fn)
	indexType := w.walkExpr(index)
	valueType := w.walkExpr(value)

	ok := w.mustBeFunction(funcType, fn.Span())
	w.mustBe(indexType, typing.PrimInt, index.Span(), "function index")
	w.mustBe(valueType, typing.PrimInt, value.Span(), "function element")

	if !ok {
		return typing.UnknownType{}
	}

	return funcType
}

// -----------------------------------------------------------------------------

// mustBe reports a type mismatch unless the given type equals the expected
// type.  Unknown types always pass.
func (w *Walker) mustBe(dt, expected typing.DataType, span *report.TextSpan, what string) bool {
	if typing.Equals(dt, expected) {
		return true
	}

	w.error(report.CodeTypeMismatch, span, "%s must be of type `%s` but found `%s`", what, expected.Repr(), dt.Repr())
	return false
}

// mustBeFunction reports a type mismatch unless the given type is a function
// type.  Unknown types always pass.
func (w *Walker) mustBeFunction(dt typing.DataType, span *report.TextSpan) bool {
	if typing.IsUnknown(dt) || typing.IsFunction(dt) {
		return true
	}

	w.error(report.CodeTypeMismatch, span, "value of type `%s` is not a function", dt.Repr())
	return false
}

func isString(dt typing.DataType) bool {
	pt, ok := dt.(typing.PrimType)
	return ok && pt == typing.PrimString
}
