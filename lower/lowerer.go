package lower

import (
	"strconv"

	"ember/ast"
	"ember/common"
	"ember/report"
	"ember/syntax"
	"ember/types"
	"ember/walk"
)

// Lowerer is the construct responsible for rewriting a bound tree's structured
// control flow into labels and jumps.  A lowerer is created per invocation of
// Lower, runs to completion, and is discarded; it owns only the label counter.
type Lowerer struct {
	// labelCounter is a counter for the label names allocated during this
	// invocation.  It is incremented before each use, so the first label is
	// named Label1.
	labelCounter int
}

// NewLowerer creates a new lowerer.
func NewLowerer() *Lowerer {
	return &Lowerer{}
}

// Lower rewrites a bound statement into an equivalent flat block containing no
// structured control flow: only variable declarations, expression statements,
// labels, and jumps.  The input tree is not modified; shared subtrees may be
// referenced from both the input and the result.
func Lower(stmt ast.ASTNode) *ast.Block {
	return NewLowerer().Lower(stmt)
}

// Lower is the method form of the package-level Lower function.
func (l *Lowerer) Lower(stmt ast.ASTNode) *ast.Block {
	return l.flatten(l.rewriteStmt(stmt))
}

// -----------------------------------------------------------------------------

// newLabel allocates a fresh label symbol.  Label names are unique within one
// lowering invocation; consumers must treat them as opaque.
func (l *Lowerer) newLabel() *common.LabelSymbol {
	l.labelCounter++
	return &common.LabelSymbol{Name: "Label" + strconv.Itoa(l.labelCounter)}
}

// -----------------------------------------------------------------------------
// The helpers below construct the synthesized nodes the rewrites are built
// from.  Every synthesized node carries the span of the control flow statement
// it replaces so diagnostics on rewritten code still point at the source.

// synthIdent synthesizes a reference to the given symbol.
func (l *Lowerer) synthIdent(sym *common.Symbol, span *report.TextSpan) *ast.Identifier {
	return &ast.Identifier{
		ExprBase: ast.NewTypedExprBaseOn(sym.Type, span),
		Name:     sym.Name,
		Sym:      sym,
	}
}

// synthIntLit synthesizes an integer literal.
func (l *Lowerer) synthIntLit(value int64, span *report.TextSpan) *ast.Literal {
	return &ast.Literal{
		ExprBase: ast.NewTypedExprBaseOn(types.PrimTypeI64, span),
		Value:    value,
	}
}

// synthBinary synthesizes a binary operator application, resolving the
// operator against the operand types through the intrinsic operator oracle.
// The bound tree is well typed by contract, so a failed resolution here is a
// compiler bug, not a user error.
func (l *Lowerer) synthBinary(opKind int, lhs, rhs ast.ASTExpr, span *report.TextSpan) *ast.BinaryOp {
	method := walk.GetIntrinsicBinaryOperator(opKind, lhs.Type(), rhs.Type())
	if method == nil {
		report.ReportICE("lowering: no intrinsic %s operator for types (%s, %s)",
			syntax.TokenKindName(opKind), lhs.Type().Repr(), rhs.Type().Repr())
	}

	return &ast.BinaryOp{
		ExprBase: ast.NewTypedExprBaseOn(method.ReturnType, span),
		Op: ast.AppliedOperator{
			Kind:   opKind,
			Name:   syntax.TokenKindName(opKind),
			Span:   span,
			Method: method,
		},
		Lhs: lhs,
		Rhs: rhs,
	}
}

// synthAssign synthesizes an assignment statement to the given symbol.
func (l *Lowerer) synthAssign(sym *common.Symbol, value ast.ASTExpr, span *report.TextSpan) *ast.ExprStmt {
	return &ast.ExprStmt{
		ASTBase: ast.NewASTBaseOn(span),
		Expr: &ast.Assign{
			ExprBase: ast.NewTypedExprBaseOn(value.Type(), span),
			LHS:      l.synthIdent(sym, span),
			RHS:      value,
		},
	}
}

// synthLabel synthesizes a label marker statement.
func (l *Lowerer) synthLabel(label *common.LabelSymbol, span *report.TextSpan) *ast.LabelStmt {
	return &ast.LabelStmt{ASTBase: ast.NewASTBaseOn(span), Label: label}
}

// synthGoto synthesizes an unconditional jump.
func (l *Lowerer) synthGoto(label *common.LabelSymbol, span *report.TextSpan) *ast.Goto {
	return &ast.Goto{ASTBase: ast.NewASTBaseOn(span), Label: label}
}

// synthCondGoto synthesizes a conditional jump.
func (l *Lowerer) synthCondGoto(label *common.LabelSymbol, cond ast.ASTExpr, jumpIfTrue bool, span *report.TextSpan) *ast.CondGoto {
	return &ast.CondGoto{
		ASTBase:    ast.NewASTBaseOn(span),
		Label:      label,
		Cond:       cond,
		JumpIfTrue: jumpIfTrue,
	}
}
