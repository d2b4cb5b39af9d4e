package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ember/ast"
	"ember/eval"
	"ember/generate"
	"ember/lower"
	"ember/report"
	"ember/syntax"
	"ember/walk"
)

// Compiler represents the overall state of one compilation: a single source
// file moving through the parse, check, lower, and output phases.
type Compiler struct {
	// rootPath is the path to the source file being compiled.
	rootPath string

	// profile is the current build profile of the compiler.
	profile *BuildProfile

	// prog is the bound program produced by the analysis phase.
	prog *ast.Block

	// lowered is the flat program produced by the lowering phase.
	lowered *ast.Block
}

// NewCompiler creates a new compiler for the given source file.
func NewCompiler(rootPath string, profile *BuildProfile) *Compiler {
	return &Compiler{rootPath: rootPath, profile: profile}
}

// Analyze runs the analysis phases of the compiler: parsing and checking.
func (c *Compiler) Analyze() bool {
	f, err := os.Open(c.rootPath)
	if err != nil {
		report.ReportFatal("unable to open source file at `%s`: %s", c.rootPath, err.Error())
		return false
	}
	defer f.Close()

	prog, err := syntax.NewParser(f).Parse()
	if err != nil {
		c.reportError(err)
		return false
	}

	if err := walk.NewWalker().Walk(prog); err != nil {
		c.reportError(err)
		return false
	}

	c.prog = prog
	return true
}

// Lower runs the lowering phase of the compiler: the bound program's
// structured control flow is rewritten into labels and jumps.
func (c *Compiler) Lower() {
	c.lowered = lower.Lower(c.prog)
}

// Generate runs the output phase of the compiler: the lowered program is
// converted to LLVM IR and written to the output path.
func (c *Compiler) Generate() bool {
	mod := generate.Generate(c.lowered)

	outPath := c.profile.OutputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(c.rootPath, filepath.Ext(c.rootPath)) + ".ll"
	}

	if err := os.WriteFile(outPath, []byte(mod.String()), 0644); err != nil {
		report.ReportFatal("unable to write output file at `%s`: %s", outPath, err.Error())
		return false
	}

	report.DisplayInfoMessage("Compiled", outPath)
	return true
}

// Run evaluates the lowered program and displays the final value of each
// user-declared variable.
func (c *Compiler) Run() bool {
	ev := eval.NewEvaluator()
	if err := ev.Execute(c.lowered); err != nil {
		c.reportError(err)
		return false
	}

	for _, stmt := range c.lowered.Stmts {
		decl, ok := stmt.(*ast.VarDecl)
		if !ok || decl.Sym.DefSpan == nil {
			// synthesized declarations are not part of the program's surface
			continue
		}

		if value, ok := ev.Value(decl.Sym); ok {
			report.DisplayInfoMessage(decl.Sym.Name, fmt.Sprintf("%v", value))
		}
	}

	return true
}

// reportError reports an error from one of the compilation phases.
func (c *Compiler) reportError(err error) {
	if cerr, ok := err.(*report.LocalCompileError); ok {
		report.ReportCompileError(c.rootPath, cerr.Span, cerr.Message)
	} else {
		report.ReportStdError(c.rootPath, err)
	}
}
