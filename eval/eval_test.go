package eval_test

import (
	"strings"
	"testing"

	"ember/ast"
	"ember/common"
	"ember/eval"
	"ember/lower"
	"ember/syntax"
	"ember/walk"
)

// mustBind parses and binds a source program.
func mustBind(t *testing.T, src string) *ast.Block {
	t.Helper()

	prog, err := syntax.NewParser(strings.NewReader(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}

	if err := walk.NewWalker().Walk(prog); err != nil {
		t.Fatalf("walk error: %s", err)
	}

	return prog
}

// topLevelSyms collects the symbols declared at the top level of a bound
// program, in declaration order.
func topLevelSyms(prog *ast.Block) []*common.Symbol {
	var syms []*common.Symbol
	for _, stmt := range prog.Stmts {
		if decl, ok := stmt.(*ast.VarDecl); ok {
			syms = append(syms, decl.Sym)
		}
	}

	return syms
}

// -----------------------------------------------------------------------------

// TestLoweredMatchesReference executes each program twice: structured under
// the reference semantics and lowered under the flat label-and-jump
// semantics.  The final environments must agree on every top level variable.
func TestLoweredMatchesReference(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "StraightLine",
			src:  "var x = 1\nvar y = x + 2\ny = y * x",
		},
		{
			name: "IfChain",
			src: `var x = 5
var tag = 0
if x < 3 { tag = 1 } else if x < 7 { tag = 2 } else { tag = 3 }`,
		},
		{
			name: "WhileCountdown",
			src: `var n = 10
var steps = 0
while n > 0 { n = n - 2
steps = steps + 1 }`,
		},
		{
			name: "DoWhileUntil",
			src: `var n = 0
do { n = n + 3 } while n < 10`,
		},
		{
			name: "ForAscending",
			src: `var sum = 0
for i = 1 to 6 { sum = sum + i * i }`,
		},
		{
			name: "ForDescendingStep",
			src: `var hits = 0
var last = 0
for i = 9 to 0 step -3 { hits = hits + 1
last = i }`,
		},
		{
			name: "ForZeroStep",
			src: `var hits = 0
for i = 1 to 5 step 0 { hits = hits + 1 }`,
		},
		{
			name: "NestedMix",
			src: `var acc = 0
for i = 1 to 4 {
    var j = i
    do {
        if j % 2 == 0 { acc = acc + j } else { acc = acc - 1 }
        j = j - 1
    } while j > 0
    while acc < 0 { acc = acc + 5 }
}`,
		},
		{
			name: "ShortCircuitGuards",
			src: `var x = 0
var ok = false
if x != 0 && 10 / x > 1 { ok = true }
if x == 0 || 10 / x > 1 { ok = true }`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := mustBind(t, tc.src)
			syms := topLevelSyms(prog)

			reference := eval.NewEvaluator()
			if err := reference.Execute(prog); err != nil {
				t.Fatalf("reference evaluation error: %s", err)
			}

			loweredEv := eval.NewEvaluator()
			if err := loweredEv.Execute(lower.Lower(prog)); err != nil {
				t.Fatalf("lowered evaluation error: %s", err)
			}

			for _, sym := range syms {
				refVal, _ := reference.Value(sym)
				lowVal, ok := loweredEv.Value(sym)
				if !ok {
					t.Errorf("`%s` has no value after lowered execution", sym.Name)
					continue
				}

				if refVal != lowVal {
					t.Errorf("`%s` = %v lowered, %v under reference semantics", sym.Name, lowVal, refVal)
				}
			}
		})
	}
}

// -----------------------------------------------------------------------------

func TestDoWhileBodyRunsBeforeTest(t *testing.T) {
	prog := mustBind(t, "var x = 0\ndo { x = x + 1 } while false")

	ev := eval.NewEvaluator()
	if err := ev.Execute(prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}

	if value, _ := ev.Value(topLevelSyms(prog)[0]); value != int64(1) {
		t.Errorf("x = %v, want 1", value)
	}
}

func TestWhileConditionTestedBeforeBody(t *testing.T) {
	prog := mustBind(t, "var x = 7\nwhile false { x = x + 1 }")

	ev := eval.NewEvaluator()
	if err := ev.Execute(prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}

	if value, _ := ev.Value(topLevelSyms(prog)[0]); value != int64(7) {
		t.Errorf("x = %v, want 7", value)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	prog := mustBind(t, "var x = 0\nvar y = 1 / x")

	if err := eval.NewEvaluator().Execute(prog); err == nil {
		t.Error("division by zero did not error")
	}
}

func TestModuloByZeroIsRuntimeError(t *testing.T) {
	prog := mustBind(t, "var x = 0\nvar y = 1 % x")

	if err := eval.NewEvaluator().Execute(prog); err == nil {
		t.Error("modulo by zero did not error")
	}
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	// the right operands divide by zero; short circuiting must avoid them
	src := `var zero = 0
var and = false && 1 / zero == 1
var or = true || 1 / zero == 1`

	prog := mustBind(t, src)

	ev := eval.NewEvaluator()
	if err := ev.Execute(prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}

	syms := topLevelSyms(prog)
	if value, _ := ev.Value(syms[1]); value != false {
		t.Errorf("false && _ = %v, want false", value)
	}
	if value, _ := ev.Value(syms[2]); value != true {
		t.Errorf("true || _ = %v, want true", value)
	}
}

func TestAssignmentYieldsValue(t *testing.T) {
	prog := mustBind(t, "var x = 0\nvar y = (x = 42)")

	ev := eval.NewEvaluator()
	if err := ev.Execute(prog); err != nil {
		t.Fatalf("evaluation error: %s", err)
	}

	syms := topLevelSyms(prog)
	if value, _ := ev.Value(syms[0]); value != int64(42) {
		t.Errorf("x = %v, want 42", value)
	}
	if value, _ := ev.Value(syms[1]); value != int64(42) {
		t.Errorf("y = %v, want 42", value)
	}
}
