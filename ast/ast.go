package ast

import (
	"ember/report"
	"ember/types"
)

// ASTNode is the abstract interface for all AST nodes.  After the walker has
// run, the AST is a bound tree: all identifiers carry symbols and all
// expressions carry types.  Nodes are treated as immutable values once bound;
// passes that transform the tree produce new nodes rather than mutating
// existing ones, so shared subtrees may be referenced from multiple parents.
type ASTNode interface {
	// The text span of the AST node.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// ASTExpr is the abstract interface for all expression nodes.
type ASTExpr interface {
	ASTNode

	// Type is the yielded type of the expression.
	Type() types.Type

	// SetType sets the type of the expression.
	SetType(types.Type)
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase

	typ types.Type
}

// NewExprBaseOn creates a new expression base with the given span.  The type
// is left unset: it is filled in by the walker or by the pass synthesizing the
// expression.
func NewExprBaseOn(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

// NewTypedExprBaseOn creates a new expression base with the given type and
// span.
func NewTypedExprBaseOn(typ types.Type, span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span), typ: typ}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ types.Type) {
	eb.typ = typ
}
