package walk

import (
	"strings"
	"testing"

	"ember/ast"
	"ember/syntax"
	"ember/types"
)

// parse parses a source program, failing the test on error.
func parse(t *testing.T, src string) *ast.Block {
	t.Helper()

	prog, err := syntax.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	return prog
}

func TestWalkBindsSymbolsAndTypes(t *testing.T) {
	prog := parse(t, "var x = 1\nvar b = x < 2\nx = x + 1")

	if err := NewWalker().Walk(prog); err != nil {
		t.Fatalf("walk error: %s", err)
	}

	xDecl := prog.Stmts[0].(*ast.VarDecl)
	if xDecl.Sym == nil || !types.Equals(xDecl.Sym.Type, types.PrimTypeI64) {
		t.Error("`x` did not bind to an i64 symbol")
	}

	bDecl := prog.Stmts[1].(*ast.VarDecl)
	if bDecl.Sym == nil || !types.Equals(bDecl.Sym.Type, types.PrimTypeBool) {
		t.Error("`b` did not bind to a bool symbol")
	}

	assign := prog.Stmts[2].(*ast.ExprStmt).Expr.(*ast.Assign)
	if assign.LHS.Sym != xDecl.Sym {
		t.Error("assignment target did not resolve to the declared symbol")
	}
	if assign.RHS.(*ast.BinaryOp).Op.Method == nil {
		t.Error("binary operator did not resolve to a method")
	}
}

func TestWalkShadowing(t *testing.T) {
	prog := parse(t, "var x = 1\n{ var x = true\nvar y = x }\nvar z = x + 1")

	if err := NewWalker().Walk(prog); err != nil {
		t.Fatalf("walk error: %s", err)
	}

	outer := prog.Stmts[0].(*ast.VarDecl).Sym
	block := prog.Stmts[1].(*ast.Block)
	inner := block.Stmts[0].(*ast.VarDecl).Sym

	if outer == inner {
		t.Fatal("shadowing declaration reused the outer symbol")
	}
	if !types.Equals(inner.Type, types.PrimTypeBool) {
		t.Error("inner `x` is not bool")
	}

	yInit := block.Stmts[1].(*ast.VarDecl).Initializer.(*ast.Identifier)
	if yInit.Sym != inner {
		t.Error("`x` inside the block did not resolve to the shadowing symbol")
	}

	zInit := prog.Stmts[2].(*ast.VarDecl).Initializer.(*ast.BinaryOp).Lhs.(*ast.Identifier)
	if zInit.Sym != outer {
		t.Error("`x` after the block did not resolve to the outer symbol")
	}
}

func TestWalkForLoopVariable(t *testing.T) {
	prog := parse(t, "var sum = 0\nfor i = 1 to 3 { sum = sum + i }")

	if err := NewWalker().Walk(prog); err != nil {
		t.Fatalf("walk error: %s", err)
	}

	loop := prog.Stmts[1].(*ast.ForLoop)
	if loop.VarSym == nil || !types.Equals(loop.VarSym.Type, types.PrimTypeI64) {
		t.Fatal("loop variable did not bind to an i64 symbol")
	}
	if loop.VarSym.Constant {
		t.Error("loop variable is constant; the lowered increment must assign it")
	}
}

func TestWalkErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"UnresolvedName", "x = 1"},
		{"UnresolvedInExpr", "var x = y + 1"},
		{"AssignToLet", "let x = 1\nx = 2"},
		{"Redeclaration", "var x = 1\nvar x = 2"},
		{"NonBoolIfCond", "if 1 { }"},
		{"NonBoolWhileCond", "while 1 + 1 { }"},
		{"NonBoolDoWhileCond", "do { } while 0"},
		{"NonIntLowerBound", "for i = true to 5 { }"},
		{"NonIntUpperBound", "for i = 1 to false { }"},
		{"NonIntStep", "for i = 1 to 5 step true { }"},
		{"MixedOperands", "var x = 1 + true"},
		{"LogicalOnInts", "var x = 1 && 2"},
		{"ArithmeticOnBools", "var x = true + false"},
		{"NegateBool", "var x = -true"},
		{"NotInt", "var x = !1"},
		{"AssignTypeMismatch", "var x = 1\nx = true"},
		{"LoopVarOutOfScope", "for i = 1 to 3 { }\nvar x = i"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := NewWalker().Walk(parse(t, tc.src)); err == nil {
				t.Errorf("%q walked without error", tc.src)
			}
		})
	}
}

func TestIntrinsicBinaryOperatorTable(t *testing.T) {
	tests := []struct {
		kind       int
		lhs, rhs   types.Type
		wantReturn types.Type
	}{
		{syntax.TOK_PLUS, types.PrimTypeI64, types.PrimTypeI64, types.PrimTypeI64},
		{syntax.TOK_LT, types.PrimTypeI64, types.PrimTypeI64, types.PrimTypeBool},
		{syntax.TOK_LTEQ, types.PrimTypeI64, types.PrimTypeI64, types.PrimTypeBool},
		{syntax.TOK_GT, types.PrimTypeI64, types.PrimTypeI64, types.PrimTypeBool},
		{syntax.TOK_GTEQ, types.PrimTypeI64, types.PrimTypeI64, types.PrimTypeBool},
		{syntax.TOK_AND, types.PrimTypeBool, types.PrimTypeBool, types.PrimTypeBool},
		{syntax.TOK_OR, types.PrimTypeBool, types.PrimTypeBool, types.PrimTypeBool},
	}

	for _, tc := range tests {
		method := GetIntrinsicBinaryOperator(tc.kind, tc.lhs, tc.rhs)
		if method == nil {
			t.Errorf("%s (%s, %s) did not resolve", syntax.TokenKindName(tc.kind), tc.lhs.Repr(), tc.rhs.Repr())
			continue
		}

		if !types.Equals(method.ReturnType, tc.wantReturn) {
			t.Errorf("%s (%s, %s) returns %s, want %s",
				syntax.TokenKindName(tc.kind), tc.lhs.Repr(), tc.rhs.Repr(),
				method.ReturnType.Repr(), tc.wantReturn.Repr())
		}
	}

	if GetIntrinsicBinaryOperator(syntax.TOK_PLUS, types.PrimTypeBool, types.PrimTypeBool) != nil {
		t.Error("+ resolved on booleans")
	}
	if GetIntrinsicBinaryOperator(syntax.TOK_AND, types.PrimTypeI64, types.PrimTypeI64) != nil {
		t.Error("&& resolved on integers")
	}
	if GetIntrinsicBinaryOperator(syntax.TOK_PLUS, types.PrimTypeI64, types.PrimTypeBool) != nil {
		t.Error("+ resolved on mixed operand types")
	}
}
