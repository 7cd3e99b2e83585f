package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"gcl/report"
)

// Lexer is responsible for tokenizing a GCL source file.  Tokens are produced
// lazily, one NextToken call at a time, in a single pass with one rune of
// lookahead.  A lexer is created once per pass over a file.
type Lexer struct {
	file    *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer reading from the given source reader.
func NewLexer(file *bufio.Reader) *Lexer {
	return &Lexer{
		file:    file,
		tokBuff: &strings.Builder{},
		line:    0,
		col:     0,
	}
}

// NextToken retrieves the next token from the input.  If the input has ended,
// this will be an EOF token.  Lexical errors are returned as *report.LocalError
// values carrying the offending span.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if err := l.lexComment(); err != nil {
				return nil, err
			}
		case '"':
			return l.lexStringLit()
		case '-':
			return l.lexMinusOrArrow()
		case '=':
			return l.lexEquals()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.  Symbols lex by maximal munch: every proper prefix of a
// multi-rune pattern is itself a pattern.  The arrow and `==` are the two
// exceptions and get dedicated handling.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"*": TOK_STAR,
	// `-` and `-->` are handled by lexMinusOrArrow.

	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	"<>": TOK_NEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,
	// `==` is handled by lexEquals.

	":":  TOK_COLON,
	":=": TOK_ASSIGN,

	"[":  TOK_LBRACKET,
	"[]": TOK_GUARD,
	"]":  TOK_RBRACKET,

	".":  TOK_DOT,
	"..": TOK_ELLIPSIS,

	"→": TOK_ARROW,

	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	",": TOK_COMMA,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		return nil, report.Raise(report.CodeBadChar, l.getSpan(), "unknown rune: `%s`", l.tokBuff.String())
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// lexMinusOrArrow lexes a `-` token or the ASCII arrow `-->`.  The arrow needs
// two runes of lookahead so that `a--b` still lexes as two minus tokens.
func (l *Lexer) lexMinusOrArrow() (*Token, error) {
	l.mark()
	l.eat()

	if next, err := l.file.Peek(2); err == nil && string(next) == "->" {
		l.eat()
		l.eat()
		return l.makeToken(TOK_ARROW), nil
	}

	return l.makeToken(TOK_MINUS), nil
}

// lexEquals lexes the `==` operator.  A lone `=` is not a symbol of the
// language (assignment is `:=`), so it is rejected here.
func (l *Lexer) lexEquals() (*Token, error) {
	l.mark()
	l.eat()

	c, err := l.peek()
	if err != nil {
		return nil, err
	}

	if c != '=' {
		return nil, report.Raise(report.CodeBadChar, l.getSpan(), "unknown symbol: `=`")
	}

	l.eat()
	return l.makeToken(TOK_EQ), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"int":      TOK_INT,
	"bool":     TOK_BOOL,
	"function": TOK_FUNCTION,

	"if":    TOK_IF,
	"fi":    TOK_FI,
	"while": TOK_WHILE,
	"end":   TOK_END,
	"print": TOK_PRINT,
	"skip":  TOK_SKIP,

	"true":  TOK_TRUE,
	"false": TOK_FALSE,

	"and": TOK_AND,
	"or":  TOK_OR,
	"not": TOK_NOT,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes a numeric literal.  GCL numbers are plain decimal digit
// runs: no signs, bases, or fractions.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	return l.makeToken(TOK_NUMLIT), nil
}

// -----------------------------------------------------------------------------

// lexStringLit lexes a string literal.  Strings are double quoted, single
// line, with `\"`, `\\`, and `\n` escapes.  The token value keeps the escape
// sequences as written; the parser decodes them.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch c {
		case -1:
			return nil, report.Raise(report.CodeUnterminated, l.getSpan(), "unclosed string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT), nil
		case '\n':
			return nil, report.Raise(report.CodeUnterminated, l.getSpan(), "string literal cannot contain a newline")
		case '\\':
			l.eat()
			if err = l.eatEscapeSequence(); err != nil {
				return nil, err
			}
		default:
			l.eat()
		}
	}
}

// eatEscapeSequence attempts to consume an escape sequence.  This assumes the
// leading `\` has already been consumed.
func (l *Lexer) eatEscapeSequence() error {
	c, err := l.eat()
	if err != nil {
		return err
	}

	switch c {
	case -1:
		return report.Raise(report.CodeUnterminated, l.getSpan(), "expected escape sequence not end of input")
	case 'n', '\\', '"':
		return nil
	default:
		return report.Raise(report.CodeBadChar, l.getSpan(), "unknown escape sequence: `\\%c`", c)
	}
}

// -----------------------------------------------------------------------------

// lexComment consumes a `//` line comment.  GCL has no division operator, so
// a lone `/` is a lexical error.
func (l *Lexer) lexComment() error {
	l.mark()
	l.skip()

	c, err := l.peek()
	if err != nil {
		return err
	}

	if c != '/' {
		return report.Raise(report.CodeBadChar, l.getSpan(), "unknown symbol: `/`")
	}

	for c != '\n' && c != -1 && err == nil {
		c, err = l.skip()
	}

	return err
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the lexer encounters an EOF, -1 is returned as the rune value.
func (l *Lexer) eat() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c, nil
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.  If the lexer encounters an EOF, -1 is returned as the rune
// value.
func (l *Lexer) skip() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	l.updatePos(c)

	return c, nil
}

// peek returns the next rune in the file without moving the lexer forward or
// writing the rune to the token buffer.  If the lexer encounters an EOF, -1 is
// returned as the rune value.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err != nil {
		if err == io.EOF {
			return -1, nil
		}

		return 0, err
	}

	if err = l.file.UnreadRune(); err != nil {
		return 0, err
	}

	return c, nil
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
