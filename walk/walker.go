package walk

import (
	"ember/ast"
	"ember/common"
	"ember/report"
)

// Walker is responsible for binding and checking a parsed program: declaring
// symbols, resolving identifier references, typing expressions, and resolving
// operator applications.  Walkers are created once per program.
type Walker struct {
	// scopes is the stack of local variable scopes.  Each scope maps variable
	// names to their symbols.
	scopes []map[string]*common.Symbol
}

// NewWalker creates a new walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk binds and checks a whole program in place.  On success the program is a
// bound tree suitable for lowering: every identifier carries a symbol and
// every expression carries a type.
func (w *Walker) Walk(prog *ast.Block) (err error) {
	defer func() {
		if x := recover(); x != nil {
			if cerr, ok := x.(*report.LocalCompileError); ok {
				err = cerr
			} else {
				panic(x)
			}
		}
	}()

	// the program's top level statements share one scope
	w.pushScope()
	defer w.popScope()

	for _, stmt := range prog.Stmts {
		w.walkStmt(stmt)
	}

	return nil
}

// -----------------------------------------------------------------------------

// error raises a compile error at the given span.
func (w *Walker) error(span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(span, msg, args...))
}

// declare defines a new symbol in the current scope.  It is an error to
// declare the same name twice in one scope; shadowing an outer scope is
// allowed.
func (w *Walker) declare(sym *common.Symbol) {
	scope := w.scopes[len(w.scopes)-1]
	if _, ok := scope[sym.Name]; ok {
		w.error(sym.DefSpan, "variable `%s` is already declared in this scope", sym.Name)
	}

	scope[sym.Name] = sym
}

// lookup finds the symbol for a name, searching scopes innermost first.
func (w *Walker) lookup(name string, span *report.TextSpan) *common.Symbol {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if sym, ok := w.scopes[i][name]; ok {
			return sym
		}
	}

	w.error(span, "variable `%s` is not declared", name)
	return nil
}

// pushScope pushes a scope onto the local scope stack.
func (w *Walker) pushScope() {
	w.scopes = append(w.scopes, make(map[string]*common.Symbol))
}

// popScope pops a scope from the local scope stack.
func (w *Walker) popScope() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}
