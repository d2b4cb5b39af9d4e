package ast

import "ember/common"

// VarDecl represents a variable declaration.
type VarDecl struct {
	ASTBase

	// The source name of the variable.
	Name string

	// Whether the variable was declared with `let` (read-only).
	Const bool

	// The symbol of the declared variable.  This is set by the walker for user
	// declarations and directly by passes that synthesize declarations.
	Sym *common.Symbol

	// The initializer of the variable.
	Initializer ASTExpr
}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	ASTBase

	// The expression being evaluated.
	Expr ASTExpr
}
