package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"ember/common"
	"ember/report"
)

// Execute is the main entry point for the `ember` CLI utility.
func Execute() {
	// set up the argument parser and all its commands and arguments
	cli := olive.NewCLI("ember", "ember is a tool for compiling and running Ember programs", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file to LLVM IR", true)
	buildCmd.AddPrimaryArg("file-path", "the path to the source file to build", true)
	buildCmd.AddStringArg("outpath", "o", "the path to write output to", false)

	runCmd := cli.AddSubcommand("run", "compile and evaluate a source file", true)
	runCmd.AddPrimaryArg("file-path", "the path to the source file to run", true)

	cli.AddSubcommand("version", "print the Ember version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Print("argument error: ", err.Error(), "\n")
		os.Exit(1)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execCompileCommand(subResult, result.Arguments["loglevel"].(string), false)
	case "run":
		execCompileCommand(subResult, result.Arguments["loglevel"].(string), true)
	case "version":
		report.InitReporter(report.LogLevelVerbose)
		report.DisplayInfoMessage("Ember Version", common.EmberVersion)
	}
}

// execCompileCommand executes the build or run subcommand and handles all
// errors related to it.
func execCompileCommand(result *olive.ArgParseResult, loglevel string, run bool) {
	// get the primary argument: the source file path
	rootPath, _ := result.PrimaryArg()

	// the optional profile file next to the source provides defaults; flags
	// given on the command line win
	profile, err := LoadProfile(filepath.Dir(rootPath))

	level := logLevelNames[loglevel]
	if loglevel == "verbose" && profile != nil && profile.LogLevel != -1 {
		level = profile.LogLevel
	}

	// initialize the reporter
	report.InitReporter(level)

	if err != nil {
		report.ReportFatal(err.Error())
	}

	if outPath, ok := result.Arguments["outpath"]; ok {
		if outPathStr, ok := outPath.(string); ok && outPathStr != "" {
			profile.OutputPath = outPathStr
		}
	}

	if run {
		profile.OutputMode = OutModeRun
	}

	// create the compiler and run the phases
	c := NewCompiler(rootPath, profile)
	if !c.Analyze() {
		os.Exit(1)
	}

	c.Lower()

	ok := false
	switch profile.OutputMode {
	case OutModeRun:
		ok = c.Run()
	default:
		ok = c.Generate()
	}

	if !ok || report.AnyErrors() {
		os.Exit(1)
	}
}
