// Package eval executes bound Ember trees.  Structured statements are
// executed recursively under the language's reference semantics; lowered
// blocks are executed as flat label-and-jump programs.  Running the same
// program both ways and comparing environments is how the lowering pass is
// validated.
package eval

import (
	"ember/ast"
	"ember/common"
	"ember/report"
)

// Evaluator executes statements over a variable environment.  Environments
// are keyed by symbol identity, so shadowed variables and compiler-synthesized
// temporaries never collide even when their names do.
type Evaluator struct {
	// env maps symbols to their current values: an int64 or a bool.
	env map[*common.Symbol]interface{}
}

// NewEvaluator creates a new evaluator with an empty environment.
func NewEvaluator() *Evaluator {
	return &Evaluator{env: make(map[*common.Symbol]interface{})}
}

// Bind sets the value of a symbol directly.  It is used to seed an
// environment before execution.
func (e *Evaluator) Bind(sym *common.Symbol, value interface{}) {
	e.env[sym] = value
}

// Value returns the current value of a symbol and whether it has one.
func (e *Evaluator) Value(sym *common.Symbol) (interface{}, bool) {
	value, ok := e.env[sym]
	return value, ok
}

// Execute executes a statement.  Blocks are executed as flat statement
// sequences with label-relative jumps: a block without labels or jumps (any
// structured program) degenerates to ordinary sequential execution.
func (e *Evaluator) Execute(stmt ast.ASTNode) error {
	return e.execStmt(stmt)
}

// -----------------------------------------------------------------------------

// execStmt executes a single statement under the reference semantics.
func (e *Evaluator) execStmt(stmt ast.ASTNode) error {
	switch v := stmt.(type) {
	case *ast.Block:
		return e.execBlock(v)
	case *ast.VarDecl:
		value, err := e.evalExpr(v.Initializer)
		if err != nil {
			return err
		}

		e.env[v.Sym] = value
		return nil
	case *ast.ExprStmt:
		_, err := e.evalExpr(v.Expr)
		return err
	case *ast.IfStmt:
		cond, err := e.evalBoolExpr(v.Cond)
		if err != nil {
			return err
		}

		if cond {
			return e.execStmt(v.Then)
		} else if v.Else != nil {
			return e.execStmt(v.Else)
		}

		return nil
	case *ast.WhileLoop:
		for {
			cond, err := e.evalBoolExpr(v.Cond)
			if err != nil {
				return err
			} else if !cond {
				return nil
			}

			if err := e.execStmt(v.Body); err != nil {
				return err
			}
		}
	case *ast.DoWhileLoop:
		for {
			if err := e.execStmt(v.Body); err != nil {
				return err
			}

			cond, err := e.evalBoolExpr(v.Cond)
			if err != nil {
				return err
			} else if !cond {
				return nil
			}
		}
	case *ast.ForLoop:
		return e.execForLoop(v)
	default:
		report.ReportICE("evaluation not implemented for statement %T", stmt)
		return nil
	}
}

// execForLoop executes a counted loop under the reference semantics: the
// bounds and the step each evaluate exactly once, in source order, before the
// first iteration.  A zero step yields zero iterations.
func (e *Evaluator) execForLoop(loop *ast.ForLoop) error {
	lo, err := e.evalIntExpr(loop.LowerBound)
	if err != nil {
		return err
	}

	hi, err := e.evalIntExpr(loop.UpperBound)
	if err != nil {
		return err
	}

	step := int64(1)
	if loop.Stepper != nil {
		if step, err = e.evalIntExpr(loop.Stepper); err != nil {
			return err
		}
	}

	for v := lo; (step > 0 && v <= hi) || (step < 0 && v >= hi); v += step {
		e.env[loop.VarSym] = v

		if err := e.execStmt(loop.Body); err != nil {
			return err
		}

		// the body may assign the loop variable
		v = e.env[loop.VarSym].(int64)
	}

	return nil
}

// execBlock executes a block as a flat statement sequence with jumps.  A
// label marks the position of the statement following it; an unconditional
// goto transfers control to its label; a conditional goto transfers control
// iff its condition evaluates to its jump-if-true flag.
func (e *Evaluator) execBlock(block *ast.Block) error {
	labelIndex := make(map[*common.LabelSymbol]int)
	for i, stmt := range block.Stmts {
		if label, ok := stmt.(*ast.LabelStmt); ok {
			labelIndex[label.Label] = i
		}
	}

	jumpTarget := func(label *common.LabelSymbol) int {
		target, ok := labelIndex[label]
		if !ok {
			report.ReportICE("jump to undefined label %s", label.Name)
		}

		return target
	}

	for pc := 0; pc < len(block.Stmts); {
		switch v := block.Stmts[pc].(type) {
		case *ast.LabelStmt:
			pc++
		case *ast.Goto:
			pc = jumpTarget(v.Label)
		case *ast.CondGoto:
			cond, err := e.evalBoolExpr(v.Cond)
			if err != nil {
				return err
			}

			if cond == v.JumpIfTrue {
				pc = jumpTarget(v.Label)
			} else {
				pc++
			}
		default:
			if err := e.execStmt(v); err != nil {
				return err
			}

			pc++
		}
	}

	return nil
}
