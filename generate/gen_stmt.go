package generate

import (
	"ember/ast"
	"ember/report"
	"ember/types"
)

// genStmt generates a single lowered statement into the current basic block.
func (g *Generator) genStmt(stmt ast.ASTNode) {
	// A statement directly following a branch and not introduced by a label is
	// unreachable; it still needs a block to be generated into.
	if g.block.Term != nil {
		if _, ok := stmt.(*ast.LabelStmt); !ok {
			g.block = g.fn.NewBlock("")
		}
	}

	switch v := stmt.(type) {
	case *ast.VarDecl:
		init := g.genExpr(v.Initializer)

		slot := g.block.NewAlloca(g.convType(v.Sym.Type))
		g.vars[v.Sym] = slot
		g.block.NewStore(init, slot)
	case *ast.ExprStmt:
		result := g.genExpr(v.Expr)

		// integer results feed the module's result slot
		if types.Equals(v.Expr.Type(), types.PrimTypeI64) {
			g.block.NewStore(result, g.retSlot)
		}
	case *ast.LabelStmt:
		next := g.labelBlock(v.Label)

		if g.block.Term == nil {
			g.block.NewBr(next)
		}

		g.block = next
	case *ast.Goto:
		g.block.NewBr(g.labelBlock(v.Label))
	case *ast.CondGoto:
		cond := g.genExpr(v.Cond)
		target := g.labelBlock(v.Label)
		fallthru := g.fn.NewBlock("")

		if v.JumpIfTrue {
			g.block.NewCondBr(cond, target, fallthru)
		} else {
			g.block.NewCondBr(cond, fallthru, target)
		}

		g.block = fallthru
	default:
		report.ReportICE("codegen: structured statement %T reached the backend", stmt)
	}
}
