package syntax

import "gcl/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.  This may not directly
	// correspond to its value: eg. the value of a string token has the leading
	// quotes trimmed off for convenience.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_INT = iota
	TOK_BOOL
	TOK_FUNCTION

	TOK_IF
	TOK_FI
	TOK_WHILE
	TOK_END
	TOK_PRINT
	TOK_SKIP

	TOK_TRUE
	TOK_FALSE

	TOK_AND
	TOK_OR
	TOK_NOT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR

	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ
	TOK_EQ
	TOK_NEQ

	TOK_ASSIGN
	TOK_ARROW
	TOK_GUARD
	TOK_DOT
	TOK_ELLIPSIS

	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_SEMI
	TOK_COLON

	TOK_IDENT
	TOK_NUMLIT
	TOK_STRINGLIT

	TOK_EOF
)

// tokenKindReprs maps token kinds to the representations used in diagnostics
// and token dumps.
var tokenKindReprs = map[int]string{
	TOK_INT:      "`int`",
	TOK_BOOL:     "`bool`",
	TOK_FUNCTION: "`function`",

	TOK_IF:    "`if`",
	TOK_FI:    "`fi`",
	TOK_WHILE: "`while`",
	TOK_END:   "`end`",
	TOK_PRINT: "`print`",
	TOK_SKIP:  "`skip`",

	TOK_TRUE:  "`true`",
	TOK_FALSE: "`false`",

	TOK_AND: "`and`",
	TOK_OR:  "`or`",
	TOK_NOT: "`not`",

	TOK_PLUS:  "`+`",
	TOK_MINUS: "`-`",
	TOK_STAR:  "`*`",

	TOK_LT:   "`<`",
	TOK_GT:   "`>`",
	TOK_LTEQ: "`<=`",
	TOK_GTEQ: "`>=`",
	TOK_EQ:   "`==`",
	TOK_NEQ:  "`<>`",

	TOK_ASSIGN:   "`:=`",
	TOK_ARROW:    "`-->`",
	TOK_GUARD:    "`[]`",
	TOK_DOT:      "`.`",
	TOK_ELLIPSIS: "`..`",

	TOK_LBRACE:   "`{`",
	TOK_RBRACE:   "`}`",
	TOK_LBRACKET: "`[`",
	TOK_RBRACKET: "`]`",
	TOK_LPAREN:   "`(`",
	TOK_RPAREN:   "`)`",
	TOK_COMMA:    "`,`",
	TOK_SEMI:     "`;`",
	TOK_COLON:    "`:`",

	TOK_IDENT:     "identifier",
	TOK_NUMLIT:    "number literal",
	TOK_STRINGLIT: "string literal",

	TOK_EOF: "end of input",
}

// KindRepr returns the diagnostic representation of a token kind.
func KindRepr(kind int) string {
	return tokenKindReprs[kind]
}
