package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/ComedicChimera/olive"

	"gcl/report"
	"gcl/syntax"
)

// execTokensCommand executes the `tokens` subcommand: it lexes the source
// file and dumps the token stream one token per line.
func execTokensCommand(result *olive.ArgParseResult) int {
	srcPath, _ := result.PrimaryArg()

	f, err := os.Open(srcPath)
	if err != nil {
		report.PrintErrorMessage("Config Error", fmt.Errorf("unable to open source file: %s", err.Error()))
		return 2
	}
	defer f.Close()

	toks, ok := lexAll(srcPath, bufio.NewReader(f))
	for _, tok := range toks {
		fmt.Printf(
			"%-16s %-20s (%d, %d)\n",
			syntax.KindRepr(tok.Kind), strconv.Quote(tok.Value),
			tok.Span.StartLine+1, tok.Span.StartCol+1,
		)
	}

	if !ok {
		return 1
	}

	return 0
}

// lexAll drives a lexer over a whole source file, accumulating its tokens
// and reporting any lexical error.
func lexAll(path string, r *bufio.Reader) (toks []*syntax.Token, ok bool) {
	defer report.CatchErrors(path)

	l := syntax.NewLexer(r)
	for {
		tok, err := l.NextToken()
		if err != nil {
			panic(err)
		}

		if tok.Kind == syntax.TOK_EOF {
			return toks, true
		}

		toks = append(toks, tok)
	}
}

// execAstCommand executes the `ast` subcommand: it parses the source file
// and prints the syntax tree in labeled form.
func execAstCommand(result *olive.ArgParseResult) int {
	srcPath, _ := result.PrimaryArg()

	f, err := os.Open(srcPath)
	if err != nil {
		report.PrintErrorMessage("Config Error", fmt.Errorf("unable to open source file: %s", err.Error()))
		return 2
	}
	defer f.Close()

	root := syntax.NewParser(srcPath, bufio.NewReader(f)).Parse()
	if root == nil || report.AnyErrors() {
		return 1
	}

	fmt.Println(syntax.DumpTree(root))
	return 0
}
