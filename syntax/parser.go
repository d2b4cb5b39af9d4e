package syntax

import (
	"io"

	"ember/ast"
	"ember/report"
)

// Parser is the parser for an Ember source file.  It acts as a state machine
// moving over the input token by token and deciding what to parse based on the
// token it is currently positioned on and its context (implicit from the call
// stack of parsing functions): it is a recursive descent parser.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of
// their production, leaving the parser on the next token.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token
}

// NewParser creates a new parser reading from the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// Parse parses a whole program: a sequence of statements terminated by the end
// of the input.  The resulting block is unbound: identifiers carry no symbols
// and expressions carry no types until the walker has run.
func (p *Parser) Parse() (prog *ast.Block, err error) {
	defer func() {
		if x := recover(); x != nil {
			if cerr, ok := x.(*report.LocalCompileError); ok {
				prog, err = nil, cerr
			} else {
				panic(x)
			}
		}
	}()

	// move the parser onto the first token
	p.next()

	start := p.tok.Span
	var stmts []ast.ASTNode
	for p.tok.Kind != TOK_EOF {
		stmts = append(stmts, p.parseStmt())
	}

	return &ast.Block{
		ASTBase: ast.NewASTBaseOver(start, p.tok.Span),
		Stmts:   stmts,
	}, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// expect asserts that the current token is of the given kind and moves the
// parser past it, returning it.
func (p *Parser) expect(kind int) *Token {
	if p.tok.Kind != kind {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// reject raises a parse error on the current token.
func (p *Parser) reject() {
	panic(report.Raise(p.tok.Span, "unexpected %s", TokenKindName(p.tok.Kind)))
}
