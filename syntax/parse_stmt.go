package syntax

import (
	"ember/ast"
	"ember/report"
)

// parseStmt parses a single statement.
//
// stmt := var_decl | if_stmt | while_stmt | do_stmt | for_stmt | block | expr_stmt
func (p *Parser) parseStmt() ast.ASTNode {
	switch p.tok.Kind {
	case TOK_LET, TOK_VAR:
		return p.parseVarDecl()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileLoop()
	case TOK_DO:
		return p.parseDoWhileLoop()
	case TOK_FOR:
		return p.parseForLoop()
	case TOK_LBRACE:
		return p.parseBlock()
	default:
		expr := p.parseExpr()
		return &ast.ExprStmt{
			ASTBase: ast.NewASTBaseOn(expr.Span()),
			Expr:    expr,
		}
	}
}

// parseVarDecl parses a variable declaration.
//
// var_decl := ('var' | 'let') 'IDENT' '=' expr
func (p *Parser) parseVarDecl() ast.ASTNode {
	start := p.tok.Span
	isConst := p.tok.Kind == TOK_LET
	p.next()

	name := p.expect(TOK_IDENT)
	p.expect(TOK_ASSIGN)
	init := p.parseExpr()

	return &ast.VarDecl{
		ASTBase:     ast.NewASTBaseOver(start, init.Span()),
		Name:        name.Value,
		Const:       isConst,
		Initializer: init,
	}
}

// parseBlock parses a braced block of statements.
//
// block := '{' {stmt} '}'
func (p *Parser) parseBlock() *ast.Block {
	start := p.expect(TOK_LBRACE).Span

	var stmts []ast.ASTNode
	for p.tok.Kind != TOK_RBRACE && p.tok.Kind != TOK_EOF {
		stmts = append(stmts, p.parseStmt())
	}

	end := p.expect(TOK_RBRACE).Span
	return &ast.Block{
		ASTBase: ast.NewASTBaseOver(start, end),
		Stmts:   stmts,
	}
}

// parseIfStmt parses an if statement with an optional else or else-if tail.
//
// if_stmt := 'if' expr block ['else' (if_stmt | block)]
func (p *Parser) parseIfStmt() ast.ASTNode {
	start := p.expect(TOK_IF).Span
	cond := p.parseExpr()
	then := p.parseBlock()

	var elseBranch ast.ASTNode
	end := then.Span()
	if p.tok.Kind == TOK_ELSE {
		p.next()

		if p.tok.Kind == TOK_IF {
			elseBranch = p.parseIfStmt()
		} else {
			elseBranch = p.parseBlock()
		}

		end = elseBranch.Span()
	}

	return &ast.IfStmt{
		ASTBase: ast.NewASTBaseOver(start, end),
		Cond:    cond,
		Then:    then,
		Else:    elseBranch,
	}
}

// parseWhileLoop parses a while loop.
//
// while_stmt := 'while' expr block
func (p *Parser) parseWhileLoop() ast.ASTNode {
	start := p.expect(TOK_WHILE).Span
	cond := p.parseExpr()
	body := p.parseBlock()

	return &ast.WhileLoop{
		ASTBase: ast.NewASTBaseOver(start, body.Span()),
		Cond:    cond,
		Body:    body,
	}
}

// parseDoWhileLoop parses a do-while loop.
//
// do_stmt := 'do' block 'while' expr
func (p *Parser) parseDoWhileLoop() ast.ASTNode {
	start := p.expect(TOK_DO).Span
	body := p.parseBlock()
	p.expect(TOK_WHILE)
	cond := p.parseExpr()

	return &ast.DoWhileLoop{
		ASTBase: ast.NewASTBaseOver(start, cond.Span()),
		Body:    body,
		Cond:    cond,
	}
}

// parseForLoop parses a counted for loop.
//
// for_stmt := 'for' 'IDENT' '=' expr 'to' expr ['step' expr] block
func (p *Parser) parseForLoop() ast.ASTNode {
	start := p.expect(TOK_FOR).Span
	name := p.expect(TOK_IDENT)
	p.expect(TOK_ASSIGN)
	lo := p.parseExpr()
	p.expect(TOK_TO)
	hi := p.parseExpr()

	var stepper ast.ASTExpr
	if p.tok.Kind == TOK_STEP {
		p.next()
		stepper = p.parseExpr()
	}

	body := p.parseBlock()

	return &ast.ForLoop{
		ASTBase:    ast.NewASTBaseOver(start, body.Span()),
		VarName:    name.Value,
		LowerBound: lo,
		UpperBound: hi,
		Stepper:    stepper,
		Body:       body,
	}
}

// -----------------------------------------------------------------------------

// spanOver is a small helper returning the span over two nodes.
func spanOver(start, end ast.ASTNode) *report.TextSpan {
	return report.NewSpanOver(start.Span(), end.Span())
}
