package syntax

import (
	"strings"
	"testing"
)

// lexAll drains the lexer, returning every token up to and including EOF.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	lexer := NewLexer(strings.NewReader(src))

	var toks []*Token
	for {
		tok := lexer.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		src   string
		kinds []int
	}{
		{"var x = 10", []int{TOK_VAR, TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_EOF}},
		{"let y = true", []int{TOK_LET, TOK_IDENT, TOK_ASSIGN, TOK_TRUE, TOK_EOF}},
		{"x <= y >= z < w > v", []int{TOK_IDENT, TOK_LTEQ, TOK_IDENT, TOK_GTEQ, TOK_IDENT, TOK_LT, TOK_IDENT, TOK_GT, TOK_IDENT, TOK_EOF}},
		{"a == b != c = d", []int{TOK_IDENT, TOK_EQ, TOK_IDENT, TOK_NEQ, TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_EOF}},
		{"p && q || !r", []int{TOK_IDENT, TOK_AND, TOK_IDENT, TOK_OR, TOK_NOT, TOK_IDENT, TOK_EOF}},
		{"for i = 1 to 5 step 2 {}", []int{TOK_FOR, TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_TO, TOK_INTLIT, TOK_STEP, TOK_INTLIT, TOK_LBRACE, TOK_RBRACE, TOK_EOF}},
		{"do {} while false", []int{TOK_DO, TOK_LBRACE, TOK_RBRACE, TOK_WHILE, TOK_FALSE, TOK_EOF}},
		{"a + b - c * d / e % f", []int{TOK_IDENT, TOK_PLUS, TOK_IDENT, TOK_MINUS, TOK_IDENT, TOK_STAR, TOK_IDENT, TOK_DIV, TOK_IDENT, TOK_MOD, TOK_IDENT, TOK_EOF}},
		{"# only a comment\n", []int{TOK_EOF}},
		{"x # trailing comment\ny", []int{TOK_IDENT, TOK_IDENT, TOK_EOF}},
	}

	for _, tc := range tests {
		toks := lexAll(t, tc.src)

		if len(toks) != len(tc.kinds) {
			t.Errorf("%q lexed to %d tokens, want %d", tc.src, len(toks), len(tc.kinds))
			continue
		}

		for i, tok := range toks {
			if tok.Kind != tc.kinds[i] {
				t.Errorf("%q token %d is %s, want %s", tc.src, i, TokenKindName(tok.Kind), TokenKindName(tc.kinds[i]))
			}
		}
	}
}

func TestLexValuesAndSpans(t *testing.T) {
	toks := lexAll(t, "count = 123")

	if toks[0].Value != "count" || toks[1].Value != "=" || toks[2].Value != "123" {
		t.Errorf("unexpected token values: %q %q %q", toks[0].Value, toks[1].Value, toks[2].Value)
	}

	ident := toks[0].Span
	if ident.StartLine != 0 || ident.StartCol != 0 || ident.EndCol != 4 {
		t.Errorf("identifier span = %+v, want cols 0-4 on line 0", ident)
	}

	lit := toks[2].Span
	if lit.StartCol != 8 || lit.EndCol != 10 {
		t.Errorf("literal span = %+v, want cols 8-10", lit)
	}
}

func TestLexTracksLines(t *testing.T) {
	toks := lexAll(t, "a\n  b")

	if toks[1].Span.StartLine != 1 || toks[1].Span.StartCol != 2 {
		t.Errorf("second identifier span = %+v, want line 1 col 2", toks[1].Span)
	}
}
