package syntax

import (
	"bufio"
	"fmt"

	"gcl/ast"
	"gcl/report"
	"gcl/util"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a GCL source file.  It is a recursive descent
// parser that moves over the file token by token, deciding what to parse
// based on the token it is currently positioned on and its context (implicit
// from the callstack of parsing functions).  All parsing functions assume
// that they begin with the parser positioned on the first token of their
// production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.  Errors are raised
// through panics and recovered at the Parse boundary.  Parsers are created
// once per file.
type Parser struct {
	// path is the path to the source file being parsed.
	path string

	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token before the current token.
	lookbehind *Token
}

// NewParser creates a new parser for the given file path and file reader.
func NewParser(path string, r *bufio.Reader) *Parser {
	return &Parser{
		path:  path,
		lexer: NewLexer(r),
	}
}

// Parse parses a file and returns the program block rooting its AST.  The
// returned block is nil if an error was reported: parsing fails fast on the
// first lexical or syntax error.
func (p *Parser) Parse() (root *ast.Block) {
	defer report.CatchErrors(p.path)

	// move the parser onto the first token
	p.next()

	block := p.parseBlock()

	if !p.has(TOK_EOF) {
		p.reject(TOK_EOF)
	}

	root = block
	return
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.lookbehind = p.tok
	p.tok = tok
}

// has returns whether the parser is on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of the given kind and moves the
// parser forward, returning the matched token.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject(kind)
	}

	tok := p.tok
	p.next()

	return tok
}

// -----------------------------------------------------------------------------

// reject raises an unexpected token error on the current token.  The expected
// token kinds, if any, are attached to the diagnostic.
func (p *Parser) reject(expected ...int) {
	reprs := util.Map(expected, KindRepr)

	if p.has(TOK_EOF) {
		panic(&report.Diagnostic{
			Code:     report.CodeUnexpectedEOF,
			Message:  "unexpected end of file",
			Span:     p.tok.Span,
			Path:     p.path,
			Expected: reprs,
		})
	}

	panic(&report.Diagnostic{
		Code:     report.CodeUnexpectedToken,
		Message:  fmt.Sprintf("unexpected token: `%s`", p.tok.Value),
		Span:     p.tok.Span,
		Path:     p.path,
		Expected: reprs,
	})
}
