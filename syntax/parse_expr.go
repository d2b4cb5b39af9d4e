package syntax

import (
	"strconv"

	"ember/ast"
	"ember/report"
)

// parseExpr parses an expression.
//
// expr := assign
func (p *Parser) parseExpr() ast.ASTExpr {
	return p.parseAssign()
}

// parseAssign parses a right-associative assignment expression.
//
// assign := 'IDENT' '=' assign | or_expr
func (p *Parser) parseAssign() ast.ASTExpr {
	lhs := p.parseBinaryExpr(0)

	if p.tok.Kind == TOK_ASSIGN {
		opSpan := p.tok.Span
		ident, ok := lhs.(*ast.Identifier)
		if !ok {
			panic(report.Raise(opSpan, "left side of assignment must be a variable"))
		}

		p.next()
		rhs := p.parseAssign()

		return &ast.Assign{
			ExprBase: ast.NewExprBaseOn(spanOver(lhs, rhs)),
			LHS:      ident,
			RHS:      rhs,
		}
	}

	return lhs
}

// binaryPrecTable maps binary operator token kinds to their precedence levels:
// a higher value binds tighter.
var binaryPrecTable = map[int]int{
	TOK_OR:    0,
	TOK_AND:   1,
	TOK_EQ:    2,
	TOK_NEQ:   2,
	TOK_LT:    2,
	TOK_LTEQ:  2,
	TOK_GT:    2,
	TOK_GTEQ:  2,
	TOK_PLUS:  3,
	TOK_MINUS: 3,
	TOK_STAR:  4,
	TOK_DIV:   4,
	TOK_MOD:   4,
}

const maxBinaryPrec = 5

// parseBinaryExpr parses a left-associative binary expression at or above the
// given precedence level by precedence climbing.
func (p *Parser) parseBinaryExpr(prec int) ast.ASTExpr {
	if prec == maxBinaryPrec {
		return p.parseUnaryExpr()
	}

	lhs := p.parseBinaryExpr(prec + 1)
	for {
		opPrec, ok := binaryPrecTable[p.tok.Kind]
		if !ok || opPrec != prec {
			return lhs
		}

		op := ast.AppliedOperator{
			Kind: p.tok.Kind,
			Name: p.tok.Value,
			Span: p.tok.Span,
		}
		p.next()

		rhs := p.parseBinaryExpr(prec + 1)
		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOn(spanOver(lhs, rhs)),
			Op:       op,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}
}

// parseUnaryExpr parses a unary expression.
//
// unary := ('-' | '!') unary | atom
func (p *Parser) parseUnaryExpr() ast.ASTExpr {
	if p.tok.Kind == TOK_MINUS || p.tok.Kind == TOK_NOT {
		op := ast.AppliedOperator{
			Kind: p.tok.Kind,
			Name: p.tok.Value,
			Span: p.tok.Span,
		}
		p.next()

		operand := p.parseUnaryExpr()
		return &ast.UnaryOp{
			ExprBase: ast.NewExprBaseOn(report.NewSpanOver(op.Span, operand.Span())),
			Op:       op,
			Operand:  operand,
		}
	}

	return p.parseAtom()
}

// parseAtom parses an atomic expression.
//
// atom := 'INTLIT' | 'true' | 'false' | 'IDENT' | '(' expr ')'
func (p *Parser) parseAtom() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_INTLIT:
		tok := p.tok
		p.next()

		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			panic(report.Raise(tok.Span, "integer literal out of range"))
		}

		return &ast.Literal{
			ExprBase: ast.NewExprBaseOn(tok.Span),
			Value:    value,
		}
	case TOK_TRUE, TOK_FALSE:
		tok := p.tok
		p.next()

		return &ast.Literal{
			ExprBase: ast.NewExprBaseOn(tok.Span),
			Value:    tok.Kind == TOK_TRUE,
		}
	case TOK_IDENT:
		tok := p.tok
		p.next()

		return &ast.Identifier{
			ExprBase: ast.NewExprBaseOn(tok.Span),
			Name:     tok.Value,
		}
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.expect(TOK_RPAREN)
		return expr
	default:
		p.reject()
		return nil
	}
}
