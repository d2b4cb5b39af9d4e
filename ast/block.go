package ast

import "ember/common"

// Block represents a list of AST statements.
type Block struct {
	ASTBase

	// The statements of the block.
	Stmts []ASTNode
}

// -----------------------------------------------------------------------------

// IfStmt represents an if statement with an optional else branch.  The else
// branch may itself be another IfStmt to form an else-if chain.
type IfStmt struct {
	ASTBase

	// The condition of the statement.
	Cond ASTExpr

	// The body executed when the condition is true.
	Then ASTNode

	// The (optional) else branch.
	Else ASTNode
}

// WhileLoop represents a while loop.
type WhileLoop struct {
	ASTBase

	// The condition of the loop.
	Cond ASTExpr

	// The body of the loop.
	Body ASTNode
}

// DoWhileLoop represents a do-while loop: the body executes once before the
// condition is first tested.
type DoWhileLoop struct {
	ASTBase

	// The body of the loop.
	Body ASTNode

	// The condition of the loop.
	Cond ASTExpr
}

// ForLoop represents a counted loop: `for v = lo to hi [step s] { ... }`.
type ForLoop struct {
	ASTBase

	// The source name of the loop variable.
	VarName string

	// The symbol of the loop variable.  This is set by the walker.
	VarSym *common.Symbol

	// The lower and upper bounds of the loop.
	LowerBound, UpperBound ASTExpr

	// The step expression.  This is nil if and only if the source omitted the
	// `step` clause.
	Stepper ASTExpr

	// The body of the loop.
	Body ASTNode
}
