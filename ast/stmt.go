package ast

import "gcl/typing"

// VarDecl represents a variable declaration (`type a, b, c;`).
type VarDecl struct {
	ASTBase

	// The declared type shared by all the variables.
	DeclType typing.DataType

	// The variables being declared.
	Vars []*Identifier
}

// Assignment represents an assignment statement (`x := expr`).
type Assignment struct {
	ASTBase

	// The LHS variable being assigned to.
	LHSVar *Identifier

	// The RHS expression.
	RHSExpr ASTExpr
}

// PrintStmt represents a print statement.
type PrintStmt struct {
	ASTBase

	// The expression being printed.
	Expr ASTExpr
}

// -----------------------------------------------------------------------------

// KeywordStmt represents a single keyword statement (eg. `skip`).
type KeywordStmt struct {
	ASTBase

	// The token kind of the keyword.
	Kind int
}
