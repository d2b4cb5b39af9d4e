package generate

import (
	"ember/ast"
	"ember/common"
	"ember/report"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression into the current basic block and returns
// its value.
func (g *Generator) genExpr(expr ast.ASTExpr) value.Value {
	switch v := expr.(type) {
	case *ast.Literal:
		switch val := v.Value.(type) {
		case int64:
			return constant.NewInt(lltypes.I64, val)
		case bool:
			return constant.NewBool(val)
		default:
			report.ReportICE("codegen: unknown literal value %v", v.Value)
			return nil
		}
	case *ast.Identifier:
		slot, ok := g.vars[v.Sym]
		if !ok {
			report.ReportICE("codegen: variable `%s` read before declaration", v.Name)
		}

		return g.block.NewLoad(g.convType(v.Sym.Type), slot)
	case *ast.Assign:
		result := g.genExpr(v.RHS)

		slot, ok := g.vars[v.LHS.Sym]
		if !ok {
			report.ReportICE("codegen: variable `%s` assigned before declaration", v.LHS.Name)
		}

		g.block.NewStore(result, slot)
		return result
	case *ast.UnaryOp:
		return g.genUnaryOp(v)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	default:
		report.ReportICE("codegen: unknown expression %T", expr)
		return nil
	}
}

// genUnaryOp generates a unary operator application.
func (g *Generator) genUnaryOp(op *ast.UnaryOp) value.Value {
	operand := g.genExpr(op.Operand)

	switch op.Op.Method.OpCode {
	case common.OCNeg:
		return g.block.NewSub(constant.NewInt(lltypes.I64, 0), operand)
	case common.OCNot:
		return g.block.NewXor(operand, constant.NewBool(true))
	default:
		report.ReportICE("codegen: unknown unary op code %d", op.Op.Method.OpCode)
		return nil
	}
}

// genBinaryOp generates a binary operator application.  The logical operators
// are emitted eagerly as bitwise i1 operations: both operands are always
// evaluated.  For the synthesized loop conditions, whose operands are
// effect-free, this is observationally equivalent to short circuiting; for
// user-written `&&`/`||` (in conditions, initializers, or expression
// statements) the right operand is evaluated even when the left operand
// decides the result.
func (g *Generator) genBinaryOp(op *ast.BinaryOp) value.Value {
	lhs := g.genExpr(op.Lhs)
	rhs := g.genExpr(op.Rhs)

	switch op.Op.Method.OpCode {
	case common.OCAdd:
		return g.block.NewAdd(lhs, rhs)
	case common.OCSub:
		return g.block.NewSub(lhs, rhs)
	case common.OCMul:
		return g.block.NewMul(lhs, rhs)
	case common.OCDiv:
		return g.block.NewSDiv(lhs, rhs)
	case common.OCMod:
		return g.block.NewSRem(lhs, rhs)
	case common.OCEq:
		return g.block.NewICmp(enum.IPredEQ, lhs, rhs)
	case common.OCNEq:
		return g.block.NewICmp(enum.IPredNE, lhs, rhs)
	case common.OCLt:
		return g.block.NewICmp(enum.IPredSLT, lhs, rhs)
	case common.OCGt:
		return g.block.NewICmp(enum.IPredSGT, lhs, rhs)
	case common.OCLtEq:
		return g.block.NewICmp(enum.IPredSLE, lhs, rhs)
	case common.OCGtEq:
		return g.block.NewICmp(enum.IPredSGE, lhs, rhs)
	case common.OCAnd:
		return g.block.NewAnd(lhs, rhs)
	case common.OCOr:
		return g.block.NewOr(lhs, rhs)
	default:
		report.ReportICE("codegen: unknown binary op code %d", op.Op.Method.OpCode)
		return nil
	}
}
