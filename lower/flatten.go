package lower

import (
	"ember/ast"
	"ember/util"
)

// flatten splices the nested blocks of a rewritten tree into a single linear
// statement sequence, preserving order.  The rewritten tree contains no
// structured control flow, so blocks are the only composite statements left.
func (l *Lowerer) flatten(stmt ast.ASTNode) *ast.Block {
	var flattened []ast.ASTNode

	stack := []ast.ASTNode{stmt}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if block, ok := node.(*ast.Block); ok {
			// children are pushed in reverse so they pop in original order
			stack = append(stack, util.Reversed(block.Stmts)...)
		} else {
			flattened = append(flattened, node)
		}
	}

	return &ast.Block{
		ASTBase: ast.NewASTBaseOn(stmt.Span()),
		Stmts:   flattened,
	}
}
