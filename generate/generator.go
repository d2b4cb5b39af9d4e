// Package generate converts lowered Ember blocks into LLVM IR using llir.
// It is a consumer of the lowered form: by the time a block reaches the
// backend it contains only declarations, expression statements, labels, and
// jumps, which map directly onto LLVM basic blocks and branches.
package generate

import (
	"ember/ast"
	"ember/common"
	"ember/report"
	"ember/types"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Generator is responsible for converting a lowered block into an LLVM
// module.  Generators are created once per block.
type Generator struct {
	// mod is the LLVM module being generated.
	mod *ir.Module

	// fn is the `main` function all statements are generated into.
	fn *ir.Func

	// block is the basic block the generator is currently positioned on.
	block *ir.Block

	// vars maps symbols to their stack allocations.
	vars map[*common.Symbol]value.Value

	// blocks maps label symbols to their basic blocks.
	blocks map[*common.LabelSymbol]*ir.Block

	// retSlot is the stack slot holding the module's result value: the value
	// of the dynamically last integer expression statement executed.
	retSlot value.Value
}

// NewGenerator creates a new generator.
func NewGenerator() *Generator {
	return &Generator{
		vars:   make(map[*common.Symbol]value.Value),
		blocks: make(map[*common.LabelSymbol]*ir.Block),
	}
}

// Generate converts a lowered block into an LLVM module containing a single
// `main` function returning i64.
func Generate(lowered *ast.Block) *ir.Module {
	return NewGenerator().Generate(lowered)
}

// Generate is the method form of the package-level Generate function.
func (g *Generator) Generate(lowered *ast.Block) *ir.Module {
	g.mod = ir.NewModule()
	g.fn = g.mod.NewFunc("main", lltypes.I64)
	g.block = g.fn.NewBlock("entry")

	g.retSlot = g.block.NewAlloca(lltypes.I64)
	g.block.NewStore(constant.NewInt(lltypes.I64, 0), g.retSlot)

	// Basic blocks are created up front so forward jumps have targets.
	for _, stmt := range lowered.Stmts {
		if label, ok := stmt.(*ast.LabelStmt); ok {
			g.blocks[label.Label] = g.fn.NewBlock(label.Label.Name)
		}
	}

	for _, stmt := range lowered.Stmts {
		g.genStmt(stmt)
	}

	if g.block.Term == nil {
		result := g.block.NewLoad(lltypes.I64, g.retSlot)
		g.block.NewRet(result)
	}

	return g.mod
}

// -----------------------------------------------------------------------------

// convType converts an Ember type to its LLVM representation.
func (g *Generator) convType(typ types.Type) lltypes.Type {
	pt, ok := typ.(types.PrimitiveType)
	if !ok {
		report.ReportICE("codegen: no LLVM representation for type `%s`", typ.Repr())
	}

	switch pt {
	case types.PrimTypeBool:
		return lltypes.I1
	case types.PrimTypeI64:
		return lltypes.I64
	default:
		report.ReportICE("codegen: no LLVM representation for type `%s`", typ.Repr())
		return nil
	}
}

// labelBlock returns the basic block for a label.
func (g *Generator) labelBlock(label *common.LabelSymbol) *ir.Block {
	block, ok := g.blocks[label]
	if !ok {
		report.ReportICE("codegen: jump to undefined label %s", label.Name)
	}

	return block
}
