package eval

import (
	"ember/ast"
	"ember/common"
	"ember/report"
)

// evalExpr evaluates an expression to an int64 or a bool.
func (e *Evaluator) evalExpr(expr ast.ASTExpr) (interface{}, error) {
	switch v := expr.(type) {
	case *ast.Literal:
		return v.Value, nil
	case *ast.Identifier:
		value, ok := e.env[v.Sym]
		if !ok {
			report.ReportICE("variable `%s` read before declaration", v.Name)
		}

		return value, nil
	case *ast.Assign:
		value, err := e.evalExpr(v.RHS)
		if err != nil {
			return nil, err
		}

		e.env[v.LHS.Sym] = value
		return value, nil
	case *ast.UnaryOp:
		return e.evalUnaryOp(v)
	case *ast.BinaryOp:
		return e.evalBinaryOp(v)
	default:
		report.ReportICE("evaluation not implemented for expression %T", expr)
		return nil, nil
	}
}

// evalBoolExpr evaluates an expression known to be of boolean type.
func (e *Evaluator) evalBoolExpr(expr ast.ASTExpr) (bool, error) {
	value, err := e.evalExpr(expr)
	if err != nil {
		return false, err
	}

	return value.(bool), nil
}

// evalIntExpr evaluates an expression known to be of integer type.
func (e *Evaluator) evalIntExpr(expr ast.ASTExpr) (int64, error) {
	value, err := e.evalExpr(expr)
	if err != nil {
		return 0, err
	}

	return value.(int64), nil
}

// -----------------------------------------------------------------------------

// evalUnaryOp evaluates a unary operator application.
func (e *Evaluator) evalUnaryOp(op *ast.UnaryOp) (interface{}, error) {
	operand, err := e.evalExpr(op.Operand)
	if err != nil {
		return nil, err
	}

	switch op.Op.Method.OpCode {
	case common.OCNeg:
		return -operand.(int64), nil
	case common.OCNot:
		return !operand.(bool), nil
	default:
		report.ReportICE("unknown unary op code %d", op.Op.Method.OpCode)
		return nil, nil
	}
}

// evalBinaryOp evaluates a binary operator application.  The logical
// operators short circuit: the right operand is not evaluated when the left
// operand decides the result.
func (e *Evaluator) evalBinaryOp(op *ast.BinaryOp) (interface{}, error) {
	lhs, err := e.evalExpr(op.Lhs)
	if err != nil {
		return nil, err
	}

	switch op.Op.Method.OpCode {
	case common.OCAnd:
		if !lhs.(bool) {
			return false, nil
		}

		return e.evalExpr(op.Rhs)
	case common.OCOr:
		if lhs.(bool) {
			return true, nil
		}

		return e.evalExpr(op.Rhs)
	}

	rhs, err := e.evalExpr(op.Rhs)
	if err != nil {
		return nil, err
	}

	switch op.Op.Method.OpCode {
	case common.OCAdd:
		return lhs.(int64) + rhs.(int64), nil
	case common.OCSub:
		return lhs.(int64) - rhs.(int64), nil
	case common.OCMul:
		return lhs.(int64) * rhs.(int64), nil
	case common.OCDiv:
		if rhs.(int64) == 0 {
			return nil, report.Raise(op.Span(), "integer division by zero")
		}

		return lhs.(int64) / rhs.(int64), nil
	case common.OCMod:
		if rhs.(int64) == 0 {
			return nil, report.Raise(op.Span(), "integer division by zero")
		}

		return lhs.(int64) % rhs.(int64), nil
	case common.OCEq:
		return lhs == rhs, nil
	case common.OCNEq:
		return lhs != rhs, nil
	case common.OCLt:
		return lhs.(int64) < rhs.(int64), nil
	case common.OCGt:
		return lhs.(int64) > rhs.(int64), nil
	case common.OCLtEq:
		return lhs.(int64) <= rhs.(int64), nil
	case common.OCGtEq:
		return lhs.(int64) >= rhs.(int64), nil
	default:
		report.ReportICE("unknown binary op code %d", op.Op.Method.OpCode)
		return nil, nil
	}
}
