package cmd

import (
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"gcl/common"
	"gcl/mods"
	"gcl/report"
)

// Execute runs the main `gclc` command line application and returns the
// process exit code: 0 on success, 1 if diagnostics were reported, and 2 on
// usage or configuration errors.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("gclc", "gclc is a tool for translating GCL programs into the lambda calculus", true)
	cli.AddFlag("verbose", "v", "show phase progress and trace logging")
	cli.AddFlag("quiet", "q", "only show errors")
	cli.AddFlag("no-color", "nc", "disable colored output")

	tokensCmd := cli.AddSubcommand("tokens", "lex a source file and dump its token stream", true)
	tokensCmd.AddPrimaryArg("file", "the source file to lex", true)

	astCmd := cli.AddSubcommand("ast", "parse a source file and print its syntax tree", true)
	astCmd.AddPrimaryArg("file", "the source file to parse", true)

	checkCmd := cli.AddSubcommand("check", "analyze a source file and report diagnostics", true)
	checkCmd.AddPrimaryArg("file", "the source file to check", true)

	translateCmd := cli.AddSubcommand("translate", "translate a source file into a lambda formula", true)
	translateCmd.AddPrimaryArg("file", "the source file to translate", true)
	translateCmd.AddFlag("expand", "e", "print the formula with all combinators expanded")
	translateCmd.AddStringArg("out", "o", "write the formula to a file instead of stdout", false)

	runCmd := cli.AddSubcommand("run", "translate a source file and reduce it to its output", true)
	runCmd.AddPrimaryArg("file", "the source file to run", true)
	runCmd.AddStringArg("steps", "s", "the maximum number of reduction steps", false)

	watchCmd := cli.AddSubcommand("watch", "re-run a source file on every change", true)
	watchCmd.AddPrimaryArg("file", "the source file to watch", true)
	watchCmd.AddStringArg("steps", "s", "the maximum number of reduction steps", false)

	modCmd := cli.AddSubcommand("mod", "manage projects", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a project in the working directory", true)
	modInitCmd.AddPrimaryArg("project-name", "the name of the new project", true)

	cli.AddSubcommand("version", "print the gclc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("Usage Error", err)
		return 2
	}

	initDisplay(result)

	// process the inputed command line
	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		return 2
	}

	switch subcmdName {
	case "tokens":
		return execTokensCommand(subResult)
	case "ast":
		return execAstCommand(subResult)
	case "check":
		return execCheckCommand(subResult)
	case "translate":
		return execTranslateCommand(subResult)
	case "run":
		return execRunCommand(subResult)
	case "watch":
		return execWatchCommand(subResult)
	case "mod":
		return execModCommand(subResult)
	case "version":
		report.PrintInfoMessage("gclc Version", "v"+common.GclcVersion)
	}

	return 0
}

// initDisplay initializes the reporter and the trace logger from the global
// display flags.
func initDisplay(result *olive.ArgParseResult) {
	if result.HasFlag("no-color") {
		pterm.DisableColor()
	}

	logLevelName := "warning"
	logrusLevel := logrus.WarnLevel
	if result.HasFlag("quiet") {
		logLevelName = "error"
		logrusLevel = logrus.ErrorLevel
	} else if result.HasFlag("verbose") {
		logLevelName = "verbose"
		logrusLevel = logrus.TraceLevel
	}

	report.Init(logLevelName)
	logrus.SetLevel(logrusLevel)
}

// projectFor loads the project configuration governing the given source
// path, falling back to the defaults when no project file exists.
func projectFor(srcPath string) (*mods.GclProject, bool) {
	proj, err := mods.LoadNearest(srcPath)
	if err != nil {
		report.PrintErrorMessage("Project Error", err)
		return nil, false
	}

	return proj, true
}

// execModCommand executes the `mod` subcommand and its subcommands.
func execModCommand(result *olive.ArgParseResult) int {
	subcmdName, subResult, ok := result.Subcommand()
	if !ok {
		return 2
	}

	switch subcmdName {
	case "init":
		name, _ := subResult.PrimaryArg()

		workDir, err := os.Getwd()
		if err != nil {
			report.PrintErrorMessage("Path Error", err)
			return 2
		}

		if err := mods.InitProject(name, workDir); err != nil {
			report.PrintErrorMessage("Project Init Error", err)
			return 2
		}

		report.PrintInfoMessage("Created", filepath.Join(workDir, common.ProjectFileName))
	}

	return 0
}
