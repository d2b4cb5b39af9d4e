package walk

import (
	"ember/ast"
	"ember/report"
	"ember/types"
)

// walkExpr walks an expression, resolving names and operators and setting its
// type.
func (w *Walker) walkExpr(expr ast.ASTExpr) {
	switch v := expr.(type) {
	case *ast.Literal:
		switch v.Value.(type) {
		case int64:
			v.SetType(types.PrimTypeI64)
		case bool:
			v.SetType(types.PrimTypeBool)
		default:
			report.ReportICE("unknown literal value %v", v.Value)
		}
	case *ast.Identifier:
		v.Sym = w.lookup(v.Name, v.Span())
		v.Sym.Used = true
		v.SetType(v.Sym.Type)
	case *ast.Assign:
		w.walkAssign(v)
	case *ast.UnaryOp:
		w.walkExpr(v.Operand)

		method := GetIntrinsicUnaryOperator(v.Op.Kind, v.Operand.Type())
		if method == nil {
			w.error(v.Op.Span, "no definition of %s matches argument type (%s)",
				v.Op.Name, v.Operand.Type().Repr())
		}

		v.Op.Method = method
		v.SetType(method.ReturnType)
	case *ast.BinaryOp:
		w.walkExpr(v.Lhs)
		w.walkExpr(v.Rhs)

		method := GetIntrinsicBinaryOperator(v.Op.Kind, v.Lhs.Type(), v.Rhs.Type())
		if method == nil {
			w.error(v.Op.Span, "no definition of %s matches argument types (%s, %s)",
				v.Op.Name, v.Lhs.Type().Repr(), v.Rhs.Type().Repr())
		}

		v.Op.Method = method
		v.SetType(method.ReturnType)
	default:
		report.ReportICE("walking not implemented for expression %T", expr)
	}
}

// walkAssign walks an assignment expression.
func (w *Walker) walkAssign(assign *ast.Assign) {
	w.walkExpr(assign.RHS)
	w.walkExpr(assign.LHS)

	if assign.LHS.Sym.Constant {
		w.error(assign.LHS.Span(), "cannot assign to immutable variable `%s`", assign.LHS.Name)
	}

	if !types.Equals(assign.LHS.Type(), assign.RHS.Type()) {
		w.error(assign.Span(), "cannot assign value of type `%s` to variable of type `%s`",
			assign.RHS.Type().Repr(), assign.LHS.Type().Repr())
	}

	assign.SetType(assign.RHS.Type())
}
