package ast

import (
	"ember/common"
	"ember/report"
)

// AppliedOperator represents an operator token together with the intrinsic
// operator method it resolved to.
type AppliedOperator struct {
	// The token kind of the operator.
	Kind int

	// The user-facing name of the operator (eg. `<=`).
	Name string

	// The span of the operator token.
	Span *report.TextSpan

	// The resolved operator method.  This is set by the walker for user
	// written operators and by the operator oracle for synthesized ones.
	Method *common.OperatorMethod
}

// -----------------------------------------------------------------------------

// Literal represents an integer or boolean literal.
type Literal struct {
	ExprBase

	// The constant value of the literal: an int64 or a bool.
	Value interface{}
}

// Identifier represents a reference to a named variable.
type Identifier struct {
	ExprBase

	// The source name of the identifier.
	Name string

	// The symbol the identifier resolved to.  This is set by the walker for
	// user written references and directly by passes that synthesize them.
	Sym *common.Symbol
}

// Assign represents an assignment expression.  Its value is the assigned
// value.
type Assign struct {
	ExprBase

	// The variable being assigned to.
	LHS *Identifier

	// The value being assigned.
	RHS ASTExpr
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ExprBase

	// The operator being applied.
	Op AppliedOperator

	// The operand.
	Operand ASTExpr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The operator being applied.
	Op AppliedOperator

	// The left and right operands.
	Lhs, Rhs ASTExpr
}
