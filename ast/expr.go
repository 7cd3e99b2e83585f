package ast

import (
	"gcl/common"
	"gcl/report"
	"gcl/typing"
)

// ASTExpr is the interface for all expression nodes.  All expression nodes
// implement `ASTExpr`.
type ASTExpr interface {
	ASTNode

	// Type is the yielded type of the expression.
	Type() typing.DataType

	// SetType sets the type of the expression.
	SetType(typing.DataType)
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase

	typ typing.DataType
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

// NewExprBaseOver creates a new expression base spanning over two spans.
func NewExprBaseOver(start, end *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOver(start, end)}
}

func (eb *ExprBase) Type() typing.DataType {
	return eb.typ
}

func (eb *ExprBase) SetType(typ typing.DataType) {
	eb.typ = typ
}

// -----------------------------------------------------------------------------

// Oper is an operator used in the AST.
type Oper struct {
	// The token kind of the operator.
	Kind int

	// The name of the operator (eg. `+`).
	Name string

	// The span over which the operator occurs.
	Span *report.TextSpan
}

// BinaryOp represents a binary operator application.  Comma expressions are
// binary operator applications whose operator kind is `TOK_COMMA`.
type BinaryOp struct {
	ExprBase

	// The operator being applied.
	Op Oper

	// The operands of the operator.
	Lhs, Rhs ASTExpr
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ExprBase

	// The operator being applied.
	Op Oper

	// The operand of the operator.
	Operand ASTExpr
}

// -----------------------------------------------------------------------------

// Apply represents a function application expression (`f.i`).
type Apply struct {
	ExprBase

	// The function being applied.
	Func ASTExpr

	// The index the function is applied to.
	Index ASTExpr
}

// FuncModify represents a bracketed function modification (`f[i:v]`).
type FuncModify struct {
	ExprBase

	// The function being modified.
	Func ASTExpr

	// The index being modified.
	Index ASTExpr

	// The value stored at the index.
	Value ASTExpr
}

// FuncInit represents a parenthesized function modification (`f(i:v)`).  It
// yields the same updated function as `FuncModify` but is written with the
// initializer syntax.
type FuncInit struct {
	ExprBase

	// The function being modified.
	Func ASTExpr

	// The index being modified.
	Index ASTExpr

	// The value stored at the index.
	Value ASTExpr
}

// -----------------------------------------------------------------------------

// Identifier represents a named value.
type Identifier struct {
	ExprBase

	// The name of the identifier.
	Name string

	// The symbol the identifier refers to.  This is set by the walker.
	Sym *common.Symbol
}

// Literal represents a single literal value.
type Literal struct {
	ExprBase

	// The token kind of the literal.
	Kind int

	// The text value of the literal.
	Value string
}
