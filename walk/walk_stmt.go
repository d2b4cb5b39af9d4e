package walk

import (
	"ember/ast"
	"ember/common"
	"ember/report"
	"ember/types"
)

// walkStmt walks a single statement.
func (w *Walker) walkStmt(stmt ast.ASTNode) {
	switch v := stmt.(type) {
	case *ast.Block:
		w.pushScope()
		for _, inner := range v.Stmts {
			w.walkStmt(inner)
		}
		w.popScope()
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.ExprStmt:
		w.walkExpr(v.Expr)
	case *ast.IfStmt:
		w.walkCond(v.Cond)
		w.walkStmt(v.Then)
		if v.Else != nil {
			w.walkStmt(v.Else)
		}
	case *ast.WhileLoop:
		w.walkCond(v.Cond)
		w.walkStmt(v.Body)
	case *ast.DoWhileLoop:
		w.walkStmt(v.Body)
		w.walkCond(v.Cond)
	case *ast.ForLoop:
		w.walkForLoop(v)
	default:
		report.ReportICE("walking not implemented for statement %T", stmt)
	}
}

// walkVarDecl walks a variable declaration and declares its symbol.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	w.walkExpr(vd.Initializer)

	vd.Sym = &common.Symbol{
		Name:     vd.Name,
		DefSpan:  vd.Span(),
		Type:     vd.Initializer.Type(),
		Constant: vd.Const,
	}
	w.declare(vd.Sym)
}

// walkForLoop walks a counted loop: the bounds and step must be integers and
// are evaluated outside the loop variable's scope.
func (w *Walker) walkForLoop(loop *ast.ForLoop) {
	w.walkIntExpr(loop.LowerBound)
	w.walkIntExpr(loop.UpperBound)
	if loop.Stepper != nil {
		w.walkIntExpr(loop.Stepper)
	}

	// The loop variable is mutable within the loop: the increment synthesized
	// during lowering assigns to it.
	w.pushScope()
	defer w.popScope()

	loop.VarSym = &common.Symbol{
		Name:    loop.VarName,
		DefSpan: loop.Span(),
		Type:    types.PrimTypeI64,
	}
	w.declare(loop.VarSym)

	w.walkStmt(loop.Body)
}

// walkCond walks a loop or branch condition and requires it to be boolean.
func (w *Walker) walkCond(cond ast.ASTExpr) {
	w.walkExpr(cond)

	if !types.Equals(cond.Type(), types.PrimTypeBool) {
		w.error(cond.Span(), "condition must be of type `bool`, not `%s`", cond.Type().Repr())
	}
}

// walkIntExpr walks an expression and requires it to be an integer.
func (w *Walker) walkIntExpr(expr ast.ASTExpr) {
	w.walkExpr(expr)

	if !types.Equals(expr.Type(), types.PrimTypeI64) {
		w.error(expr.Span(), "expression must be of type `i64`, not `%s`", expr.Type().Repr())
	}
}
