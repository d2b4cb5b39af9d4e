package syntax

import (
	"strings"
	"testing"

	"ember/ast"
)

// mustParse parses a source program, failing the test on error.
func mustParse(t *testing.T, src string) *ast.Block {
	t.Helper()

	prog, err := NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	return prog
}

func TestParseStatementShapes(t *testing.T) {
	prog := mustParse(t, `var x = 1
let y = 2
if x < y { x = y } else { y = x }
while x > 0 { x = x - 1 }
do { x = x + 1 } while x < 3
for i = 1 to 10 step 2 { x = x + i }
x + y`)

	if len(prog.Stmts) != 7 {
		t.Fatalf("parsed %d statements, want 7", len(prog.Stmts))
	}

	if decl, ok := prog.Stmts[0].(*ast.VarDecl); !ok || decl.Const || decl.Name != "x" {
		t.Errorf("statement 0 is not `var x`")
	}
	if decl, ok := prog.Stmts[1].(*ast.VarDecl); !ok || !decl.Const || decl.Name != "y" {
		t.Errorf("statement 1 is not `let y`")
	}
	if ifStmt, ok := prog.Stmts[2].(*ast.IfStmt); !ok || ifStmt.Else == nil {
		t.Errorf("statement 2 is not an if with else")
	}
	if _, ok := prog.Stmts[3].(*ast.WhileLoop); !ok {
		t.Errorf("statement 3 is not a while loop")
	}
	if _, ok := prog.Stmts[4].(*ast.DoWhileLoop); !ok {
		t.Errorf("statement 4 is not a do-while loop")
	}
	if loop, ok := prog.Stmts[5].(*ast.ForLoop); !ok || loop.VarName != "i" || loop.Stepper == nil {
		t.Errorf("statement 5 is not a stepped for loop")
	}
	if _, ok := prog.Stmts[6].(*ast.ExprStmt); !ok {
		t.Errorf("statement 6 is not an expression statement")
	}
}

func TestParseForWithoutStep(t *testing.T) {
	prog := mustParse(t, "for i = 1 to 5 { i }")

	loop := prog.Stmts[0].(*ast.ForLoop)
	if loop.Stepper != nil {
		t.Error("omitted step clause parsed to a non-nil stepper")
	}
}

func TestParseElseIfChain(t *testing.T) {
	prog := mustParse(t, "if a { x } else if b { y } else { z }")

	outer := prog.Stmts[0].(*ast.IfStmt)
	inner, ok := outer.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("else-if parsed to %T, want nested *ast.IfStmt", outer.Else)
	}
	if inner.Else == nil {
		t.Error("final else branch missing from else-if chain")
	}
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 + 2 < 3 + 4", "((1 + 2) < (3 + 4))"},
		{"a < b && c < d || e", "(((a < b) && (c < d)) || e)"},
		{"-a + b", "((-a) + b)"},
		{"!(a && b)", "(!(a && b))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a = b = c + 1", "(a = (b = (c + 1)))"},
	}

	for _, tc := range tests {
		prog := mustParse(t, tc.src)

		stmt := prog.Stmts[0].(*ast.ExprStmt)
		if got := ast.Repr(stmt); strings.TrimSpace(got) != tc.want {
			t.Errorf("%q parsed as %s, want %s", tc.src, strings.TrimSpace(got), tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"var = 1",
		"if { x }",
		"for 1 = 1 to 2 { }",
		"do { x } until false",
		"while true { ",
		"x = ",
		"1 = x",
		"@",
	}

	for _, src := range tests {
		if _, err := NewParser(strings.NewReader(src)).Parse(); err == nil {
			t.Errorf("%q parsed without error", src)
		}
	}
}

func TestParseSpans(t *testing.T) {
	prog := mustParse(t, "while true { x }")

	span := prog.Stmts[0].Span()
	if span.StartLine != 0 || span.StartCol != 0 {
		t.Errorf("while span starts at %d:%d, want 0:0", span.StartLine, span.StartCol)
	}
	if span.EndCol != 15 {
		t.Errorf("while span ends at col %d, want 15", span.EndCol)
	}
}
