package ast

import (
	"fmt"
	"strings"
)

// Repr returns the full textual representation of an AST subtree.  The
// rendering is stable for a given tree: two structurally identical trees with
// identically named symbols render identically, which makes it usable both
// for debug output and for comparing trees in tests.
func Repr(node ASTNode) string {
	sb := strings.Builder{}
	reprNode(&sb, node, 0)
	return sb.String()
}

func reprNode(sb *strings.Builder, node ASTNode, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch v := node.(type) {
	case *Block:
		sb.WriteString(prefix + "{\n")
		for _, stmt := range v.Stmts {
			reprNode(sb, stmt, indent+1)
		}
		sb.WriteString(prefix + "}\n")
	case *VarDecl:
		kw := "var"
		if v.Sym.Constant {
			kw = "let"
		}
		sb.WriteString(fmt.Sprintf("%s%s %s = %s\n", prefix, kw, v.Sym.Name, reprExpr(v.Initializer)))
	case *ExprStmt:
		sb.WriteString(prefix + reprExpr(v.Expr) + "\n")
	case *IfStmt:
		sb.WriteString(fmt.Sprintf("%sif %s\n", prefix, reprExpr(v.Cond)))
		reprNode(sb, v.Then, indent+1)
		if v.Else != nil {
			sb.WriteString(prefix + "else\n")
			reprNode(sb, v.Else, indent+1)
		}
	case *WhileLoop:
		sb.WriteString(fmt.Sprintf("%swhile %s\n", prefix, reprExpr(v.Cond)))
		reprNode(sb, v.Body, indent+1)
	case *DoWhileLoop:
		sb.WriteString(prefix + "do\n")
		reprNode(sb, v.Body, indent+1)
		sb.WriteString(fmt.Sprintf("%swhile %s\n", prefix, reprExpr(v.Cond)))
	case *ForLoop:
		if v.Stepper == nil {
			sb.WriteString(fmt.Sprintf("%sfor %s = %s to %s\n",
				prefix, v.VarName, reprExpr(v.LowerBound), reprExpr(v.UpperBound)))
		} else {
			sb.WriteString(fmt.Sprintf("%sfor %s = %s to %s step %s\n",
				prefix, v.VarName, reprExpr(v.LowerBound), reprExpr(v.UpperBound), reprExpr(v.Stepper)))
		}
		reprNode(sb, v.Body, indent+1)
	case *LabelStmt:
		sb.WriteString(fmt.Sprintf("%s%s:\n", prefix, v.Label.Name))
	case *Goto:
		sb.WriteString(fmt.Sprintf("%sgoto %s\n", prefix, v.Label.Name))
	case *CondGoto:
		onWord := "false"
		if v.JumpIfTrue {
			onWord = "true"
		}
		sb.WriteString(fmt.Sprintf("%sgoto %s if %s == %s\n", prefix, v.Label.Name, reprExpr(v.Cond), onWord))
	default:
		sb.WriteString(fmt.Sprintf("%s<unknown stmt %T>\n", prefix, node))
	}
}

func reprExpr(expr ASTExpr) string {
	switch v := expr.(type) {
	case *Literal:
		return fmt.Sprintf("%v", v.Value)
	case *Identifier:
		return v.Name
	case *Assign:
		return fmt.Sprintf("(%s = %s)", v.LHS.Name, reprExpr(v.RHS))
	case *UnaryOp:
		return fmt.Sprintf("(%s%s)", v.Op.Name, reprExpr(v.Operand))
	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", reprExpr(v.Lhs), v.Op.Name, reprExpr(v.Rhs))
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}
