package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ComedicChimera/olive"

	"gcl/build"
	"gcl/common"
	"gcl/lambda"
	"gcl/mods"
	"gcl/report"
)

// compilerFor builds a compiler for the primary source file argument of the
// given parse result under its governing project.
func compilerFor(result *olive.ArgParseResult) (*build.Compiler, bool) {
	srcPath, _ := result.PrimaryArg()

	proj, ok := projectFor(srcPath)
	if !ok {
		return nil, false
	}

	c, err := build.NewCompiler(srcPath, proj)
	if err != nil {
		report.PrintErrorMessage("Config Error", err)
		return nil, false
	}

	return c, true
}

// stepsArg extracts the reduction step budget argument, returning zero if it
// was not passed.
func stepsArg(result *olive.ArgParseResult) (int, error) {
	v, ok := result.Arguments["steps"]
	if !ok {
		return 0, nil
	}

	n, err := strconv.Atoi(v.(string))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("`%s` is not a valid step count", v.(string))
	}

	return n, nil
}

// writeOutputFile writes translated output to the file at the given path.
func writeOutputFile(fpath, content string) error {
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(content)
	return err
}

// -----------------------------------------------------------------------------

// execCheckCommand executes the `check` subcommand: the pipeline through
// context analysis.
func execCheckCommand(result *olive.ArgParseResult) int {
	c, ok := compilerFor(result)
	if !ok {
		return 2
	}

	report.DisplayHeader(common.GclcVersion, filepath.Base(c.SrcPath()))

	ok = c.Analyze()
	report.Finished(ok)

	if !ok {
		return 1
	}

	return 0
}

// execTranslateCommand executes the `translate` subcommand: the pipeline
// through formula generation, printing or writing the formula.
func execTranslateCommand(result *olive.ArgParseResult) int {
	c, ok := compilerFor(result)
	if !ok {
		return 2
	}

	report.DisplayHeader(common.GclcVersion, filepath.Base(c.SrcPath()))

	ok = c.Translate()
	report.Finished(ok)
	if !ok {
		return 1
	}

	var text string
	if result.HasFlag("expand") || c.Project().Output == mods.OutputExpanded {
		text = lambda.FormatExpanded(c.Formula())
	} else {
		text = lambda.Format(c.Formula())
	}

	if outVal, outOk := result.Arguments["out"]; outOk {
		if err := writeOutputFile(outVal.(string), text+"\n"); err != nil {
			report.PrintErrorMessage("Output Error", err)
			return 2
		}
	} else {
		fmt.Println(text)
	}

	return 0
}

// execRunCommand executes the `run` subcommand: the full pipeline plus
// reduction, printing the program's decoded output.
func execRunCommand(result *olive.ArgParseResult) int {
	steps, err := stepsArg(result)
	if err != nil {
		report.PrintErrorMessage("Usage Error", err)
		return 2
	}

	c, ok := compilerFor(result)
	if !ok {
		return 2
	}

	report.DisplayHeader(common.GclcVersion, filepath.Base(c.SrcPath()))

	output, ok := c.Run(steps)
	if !ok {
		report.Finished(false)
		return 1
	}

	for _, line := range output {
		fmt.Println(line)
	}

	report.Finished(true)
	return 0
}

// execWatchCommand executes the `watch` subcommand: `run` repeated on every
// change to the source file.
func execWatchCommand(result *olive.ArgParseResult) int {
	steps, err := stepsArg(result)
	if err != nil {
		report.PrintErrorMessage("Usage Error", err)
		return 2
	}

	c, ok := compilerFor(result)
	if !ok {
		return 2
	}

	err = build.Watch(c.SrcPath(), func() {
		report.DisplayHeader(common.GclcVersion, filepath.Base(c.SrcPath()))

		output, ok := c.Run(steps)
		if ok {
			for _, line := range output {
				fmt.Println(line)
			}
		}

		report.Finished(ok)
	})
	if err != nil {
		report.PrintErrorMessage("Watch Error", err)
		return 2
	}

	return 0
}
