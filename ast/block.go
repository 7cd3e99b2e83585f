package ast

// Block represents a braced block: a list of declarations followed by a list
// of instruction statements.
type Block struct {
	ASTBase

	// The variable declarations of the block.
	Decls []*VarDecl

	// The instruction statements of the block.
	Stmts []ASTNode
}

// -----------------------------------------------------------------------------

// IfTree represents a guarded conditional (`if ... [] ... fi`).
type IfTree struct {
	ASTBase

	// The list of conditional branches which make up the conditional.
	CondBranches []CondBranch
}

// CondBranch represents a single guarded branch of a conditional.
type CondBranch struct {
	// The condition of the branch.
	Condition ASTExpr

	// The body of the branch.
	Body []ASTNode
}

// WhileLoop represents a while loop (`while cond --> body end`).
type WhileLoop struct {
	ASTBase

	// The condition of the loop.
	Condition ASTExpr

	// The body of the loop.
	Body []ASTNode
}
