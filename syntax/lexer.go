package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"ember/report"
)

// Lexer is responsible for tokenizing a source file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer reading from the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file:    bufio.NewReader(r),
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the input.  If the input has ended,
// this will be an EOF token.  A malformed token causes a *LocalCompileError
// panic which the parser's public API converts into a returned error.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '#':
			l.skipLineComment()
		default:
			l.mark()

			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			}

			return l.lexPunctOrOper()
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF)
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer literal.
func (l *Lexer) lexNumericLit() *Token {
	for isDecimalDigit(l.peek()) {
		l.read()
	}

	return l.makeToken(TOK_INTLIT)
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	for c := l.peek(); isFirstIdentChar(c) || isDecimalDigit(c); c = l.peek() {
		l.read()
	}

	tok := l.makeToken(TOK_IDENT)
	if kind, ok := keywords[tok.Value]; ok {
		tok.Kind = kind
	}

	return tok
}

// lexPunctOrOper lexes a punctuation or operator token.
func (l *Lexer) lexPunctOrOper() *Token {
	c := l.read()

	switch c {
	case '+':
		return l.makeToken(TOK_PLUS)
	case '-':
		return l.makeToken(TOK_MINUS)
	case '*':
		return l.makeToken(TOK_STAR)
	case '/':
		return l.makeToken(TOK_DIV)
	case '%':
		return l.makeToken(TOK_MOD)
	case '(':
		return l.makeToken(TOK_LPAREN)
	case ')':
		return l.makeToken(TOK_RPAREN)
	case '{':
		return l.makeToken(TOK_LBRACE)
	case '}':
		return l.makeToken(TOK_RBRACE)
	case '=':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_EQ)
		}

		return l.makeToken(TOK_ASSIGN)
	case '!':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_NEQ)
		}

		return l.makeToken(TOK_NOT)
	case '<':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_LTEQ)
		}

		return l.makeToken(TOK_LT)
	case '>':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_GTEQ)
		}

		return l.makeToken(TOK_GT)
	case '&':
		if l.read() == '&' {
			return l.makeToken(TOK_AND)
		}
	case '|':
		if l.read() == '|' {
			return l.makeToken(TOK_OR)
		}
	}

	panic(report.Raise(l.span(), "unexpected character `%c`", c))
}

// skipLineComment skips a `#` comment through the end of the line.
func (l *Lexer) skipLineComment() {
	for c := l.peek(); c != '\n' && c != -1; c = l.peek() {
		l.skip()
	}
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the token being built and
// resets the token buffer.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
	l.tokBuff.Reset()
}

// makeToken produces a token of the given kind from the token buffer and the
// marked start position.
func (l *Lexer) makeToken(kind int) *Token {
	return &Token{
		Kind:  kind,
		Value: l.tokBuff.String(),
		Span:  l.span(),
	}
}

// span returns the text span from the marked position to the current position.
func (l *Lexer) span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col - 1,
	}
}

// peek returns the next rune in the input without consuming it.  It returns -1
// at the end of the input.
func (l *Lexer) peek() rune {
	c, _, err := l.file.ReadRune()
	if err != nil {
		return -1
	}

	l.file.UnreadRune()
	return c
}

// read consumes the next rune, appends it to the token buffer, and updates the
// lexer's position.
func (l *Lexer) read() rune {
	c, _, err := l.file.ReadRune()
	if err != nil {
		return -1
	}

	l.tokBuff.WriteRune(c)
	l.advance(c)
	return c
}

// skip consumes the next rune without adding it to the token buffer.
func (l *Lexer) skip() {
	c, _, err := l.file.ReadRune()
	if err != nil {
		return
	}

	l.advance(c)
}

// advance updates the lexer's line and column for the given consumed rune.
func (l *Lexer) advance(c rune) {
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
