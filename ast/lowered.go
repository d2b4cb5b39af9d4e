package ast

import "ember/common"

// This file contains the statement kinds that only appear in lowered trees:
// the output of the lowering pass extends the statement universe with labels
// and jumps.  No structured control flow statement survives lowering.

// LabelStmt marks the position of the statement following it within a lowered
// block.
type LabelStmt struct {
	ASTBase

	// The label being defined.
	Label *common.LabelSymbol
}

// Goto represents an unconditional jump to a label.
type Goto struct {
	ASTBase

	// The target label.
	Label *common.LabelSymbol
}

// CondGoto represents a conditional jump: the condition is evaluated and the
// jump fires iff its truth value matches JumpIfTrue; otherwise execution falls
// through to the next statement.
type CondGoto struct {
	ASTBase

	// The target label.
	Label *common.LabelSymbol

	// The jump condition.  This is always of boolean type.
	Cond ASTExpr

	// Whether the jump fires on a true condition or on a false one.
	JumpIfTrue bool
}
