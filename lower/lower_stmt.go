package lower

import (
	"ember/ast"
	"ember/common"
	"ember/syntax"
	"ember/types"
)

// rewriteStmt rewrites a single statement, returning a replacement subtree in
// which no structured control flow node remains.  Statements with no statement
// children (declarations, expression statements, labels, and jumps) are
// returned unchanged: expressions are not themselves lowered.
func (l *Lowerer) rewriteStmt(stmt ast.ASTNode) ast.ASTNode {
	switch v := stmt.(type) {
	case *ast.Block:
		return l.rewriteBlock(v)
	case *ast.IfStmt:
		return l.rewriteIfStmt(v)
	case *ast.WhileLoop:
		return l.rewriteWhileLoop(v)
	case *ast.DoWhileLoop:
		return l.rewriteDoWhileLoop(v)
	case *ast.ForLoop:
		return l.rewriteForLoop(v)
	default:
		return stmt
	}
}

// rewriteBlock rewrites the children of a block.  If no child changed by
// reference, the original block is returned so unchanged subtrees stay shared.
func (l *Lowerer) rewriteBlock(block *ast.Block) ast.ASTNode {
	var newStmts []ast.ASTNode
	for i, stmt := range block.Stmts {
		rewritten := l.rewriteStmt(stmt)

		if newStmts == nil && rewritten != stmt {
			newStmts = make([]ast.ASTNode, i, len(block.Stmts))
			copy(newStmts, block.Stmts[:i])
		}

		if newStmts != nil {
			newStmts = append(newStmts, rewritten)
		}
	}

	if newStmts == nil {
		return block
	}

	return &ast.Block{
		ASTBase: ast.NewASTBaseOn(block.Span()),
		Stmts:   newStmts,
	}
}

// rewriteIfStmt rewrites an if statement.
//
// Without an else branch:
//
//	gotoFalse <cond>, end
//	<then>
//	end:
//
// With an else branch:
//
//	gotoFalse <cond>, else
//	<then>
//	goto end
//	else:
//	<else>
//	end:
func (l *Lowerer) rewriteIfStmt(stmt *ast.IfStmt) ast.ASTNode {
	span := stmt.Span()

	var block *ast.Block
	if stmt.Else == nil {
		endLabel := l.newLabel()

		block = &ast.Block{
			ASTBase: ast.NewASTBaseOn(span),
			Stmts: []ast.ASTNode{
				l.synthCondGoto(endLabel, stmt.Cond, false, span),
				stmt.Then,
				l.synthLabel(endLabel, span),
			},
		}
	} else {
		elseLabel := l.newLabel()
		endLabel := l.newLabel()

		block = &ast.Block{
			ASTBase: ast.NewASTBaseOn(span),
			Stmts: []ast.ASTNode{
				l.synthCondGoto(elseLabel, stmt.Cond, false, span),
				stmt.Then,
				l.synthGoto(endLabel, span),
				l.synthLabel(elseLabel, span),
				stmt.Else,
				l.synthLabel(endLabel, span),
			},
		}
	}

	// both branches may still contain structured control flow
	return l.rewriteStmt(block)
}

// rewriteWhileLoop rewrites a while loop into check-at-bottom form so the hot
// path pays a single conditional jump per iteration:
//
//	goto check
//	continue:
//	<body>
//	check:
//	gotoTrue <cond>, continue
func (l *Lowerer) rewriteWhileLoop(loop *ast.WhileLoop) ast.ASTNode {
	span := loop.Span()
	continueLabel := l.newLabel()
	checkLabel := l.newLabel()

	block := &ast.Block{
		ASTBase: ast.NewASTBaseOn(span),
		Stmts: []ast.ASTNode{
			l.synthGoto(checkLabel, span),
			l.synthLabel(continueLabel, span),
			loop.Body,
			l.synthLabel(checkLabel, span),
			l.synthCondGoto(continueLabel, loop.Cond, true, span),
		},
	}

	return l.rewriteStmt(block)
}

// rewriteDoWhileLoop rewrites a do-while loop.  The body executes once before
// the first condition test:
//
//	continue:
//	<body>
//	gotoTrue <cond>, continue
func (l *Lowerer) rewriteDoWhileLoop(loop *ast.DoWhileLoop) ast.ASTNode {
	span := loop.Span()
	continueLabel := l.newLabel()

	block := &ast.Block{
		ASTBase: ast.NewASTBaseOn(span),
		Stmts: []ast.ASTNode{
			l.synthLabel(continueLabel, span),
			loop.Body,
			l.synthCondGoto(continueLabel, loop.Cond, true, span),
		},
	}

	return l.rewriteStmt(block)
}

// rewriteForLoop rewrites a counted loop into a while loop over a freshly
// declared loop variable.  The bounds and the step evaluate exactly once, in
// source order, into the loop variable and fresh read-only symbols.
//
// Without a step clause:
//
//	{
//	    var v = <lo>
//	    let upperBound = <hi>
//	    while v <= upperBound {
//	        <body>
//	        v = v + 1
//	    }
//	}
//
// With a step clause the condition splits on the sign of the step so the same
// loop works ascending and descending.  A zero step fails both disjuncts and
// the body never executes:
//
//	{
//	    var v = <lo>
//	    let upperBound = <hi>
//	    let stepper = <step>
//	    while (stepper > 0 && v <= upperBound) || (stepper < 0 && v >= upperBound) {
//	        <body>
//	        v = v + stepper
//	    }
//	}
func (l *Lowerer) rewriteForLoop(loop *ast.ForLoop) ast.ASTNode {
	span := loop.Span()

	varDecl := &ast.VarDecl{
		ASTBase:     ast.NewASTBaseOn(span),
		Name:        loop.VarSym.Name,
		Sym:         loop.VarSym,
		Initializer: loop.LowerBound,
	}

	upperSym := &common.Symbol{
		Name:     "upperBound",
		Type:     types.PrimTypeI64,
		Constant: true,
	}
	upperDecl := &ast.VarDecl{
		ASTBase:     ast.NewASTBaseOn(span),
		Name:        upperSym.Name,
		Const:       true,
		Sym:         upperSym,
		Initializer: loop.UpperBound,
	}

	decls := []ast.ASTNode{varDecl, upperDecl}

	var cond ast.ASTExpr
	var increment ast.ASTExpr
	if loop.Stepper == nil {
		cond = l.synthBinary(syntax.TOK_LTEQ,
			l.synthIdent(loop.VarSym, span), l.synthIdent(upperSym, span), span)
		increment = l.synthIntLit(1, span)
	} else {
		stepSym := &common.Symbol{
			Name:     "stepper",
			Type:     types.PrimTypeI64,
			Constant: true,
		}
		decls = append(decls, &ast.VarDecl{
			ASTBase:     ast.NewASTBaseOn(span),
			Name:        stepSym.Name,
			Const:       true,
			Sym:         stepSym,
			Initializer: loop.Stepper,
		})

		// (stepper > 0 && v <= upperBound) || (stepper < 0 && v >= upperBound)
		// The conjunctions must short circuit: when the step has the wrong
		// sign for a disjunct, its bound comparison is never reached.
		ascending := l.synthBinary(syntax.TOK_AND,
			l.synthBinary(syntax.TOK_GT,
				l.synthIdent(stepSym, span), l.synthIntLit(0, span), span),
			l.synthBinary(syntax.TOK_LTEQ,
				l.synthIdent(loop.VarSym, span), l.synthIdent(upperSym, span), span),
			span)
		descending := l.synthBinary(syntax.TOK_AND,
			l.synthBinary(syntax.TOK_LT,
				l.synthIdent(stepSym, span), l.synthIntLit(0, span), span),
			l.synthBinary(syntax.TOK_GTEQ,
				l.synthIdent(loop.VarSym, span), l.synthIdent(upperSym, span), span),
			span)
		cond = l.synthBinary(syntax.TOK_OR, ascending, descending, span)

		increment = l.synthIdent(stepSym, span)
	}

	// The increment always uses +: for a descending loop the sign is carried
	// by the stepper value.
	incrStmt := l.synthAssign(loop.VarSym,
		l.synthBinary(syntax.TOK_PLUS, l.synthIdent(loop.VarSym, span), increment, span), span)

	whileLoop := &ast.WhileLoop{
		ASTBase: ast.NewASTBaseOn(span),
		Cond:    cond,
		Body: &ast.Block{
			ASTBase: ast.NewASTBaseOn(span),
			Stmts:   []ast.ASTNode{loop.Body, incrStmt},
		},
	}

	block := &ast.Block{
		ASTBase: ast.NewASTBaseOn(span),
		Stmts:   append(decls, whileLoop),
	}

	return l.rewriteStmt(block)
}
