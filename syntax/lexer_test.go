package syntax

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"gcl/report"
)

func TestMain(m *testing.M) {
	report.Init("silent")
	os.Exit(m.Run())
}

func lexString(src string) *Lexer {
	return NewLexer(bufio.NewReader(strings.NewReader(src)))
}

func TestNextToken(t *testing.T) {
	input := `{
	int x, cnt2;
	bool done;
	function[..10] f;

	x := -5 * (cnt2 + 1);
	f := f[0:3];
	if x <= 0 and not done -->
		skip
	[] x >= 1 or x <> 2 --> print "hi\n"
	fi;
	while x == 0 -->
		x := f.1
	end
}`

	tests := []struct {
		expectedKind  int
		expectedValue string
	}{
		{TOK_LBRACE, "{"},

		{TOK_INT, "int"},
		{TOK_IDENT, "x"},
		{TOK_COMMA, ","},
		{TOK_IDENT, "cnt2"},
		{TOK_SEMI, ";"},

		{TOK_BOOL, "bool"},
		{TOK_IDENT, "done"},
		{TOK_SEMI, ";"},

		{TOK_FUNCTION, "function"},
		{TOK_LBRACKET, "["},
		{TOK_ELLIPSIS, ".."},
		{TOK_NUMLIT, "10"},
		{TOK_RBRACKET, "]"},
		{TOK_IDENT, "f"},
		{TOK_SEMI, ";"},

		{TOK_IDENT, "x"},
		{TOK_ASSIGN, ":="},
		{TOK_MINUS, "-"},
		{TOK_NUMLIT, "5"},
		{TOK_STAR, "*"},
		{TOK_LPAREN, "("},
		{TOK_IDENT, "cnt2"},
		{TOK_PLUS, "+"},
		{TOK_NUMLIT, "1"},
		{TOK_RPAREN, ")"},
		{TOK_SEMI, ";"},

		{TOK_IDENT, "f"},
		{TOK_ASSIGN, ":="},
		{TOK_IDENT, "f"},
		{TOK_LBRACKET, "["},
		{TOK_NUMLIT, "0"},
		{TOK_COLON, ":"},
		{TOK_NUMLIT, "3"},
		{TOK_RBRACKET, "]"},
		{TOK_SEMI, ";"},

		{TOK_IF, "if"},
		{TOK_IDENT, "x"},
		{TOK_LTEQ, "<="},
		{TOK_NUMLIT, "0"},
		{TOK_AND, "and"},
		{TOK_NOT, "not"},
		{TOK_IDENT, "done"},
		{TOK_ARROW, "-->"},
		{TOK_SKIP, "skip"},
		{TOK_GUARD, "[]"},
		{TOK_IDENT, "x"},
		{TOK_GTEQ, ">="},
		{TOK_NUMLIT, "1"},
		{TOK_OR, "or"},
		{TOK_IDENT, "x"},
		{TOK_NEQ, "<>"},
		{TOK_NUMLIT, "2"},
		{TOK_ARROW, "-->"},
		{TOK_PRINT, "print"},
		{TOK_STRINGLIT, `hi\n`},
		{TOK_FI, "fi"},
		{TOK_SEMI, ";"},

		{TOK_WHILE, "while"},
		{TOK_IDENT, "x"},
		{TOK_EQ, "=="},
		{TOK_NUMLIT, "0"},
		{TOK_ARROW, "-->"},
		{TOK_IDENT, "x"},
		{TOK_ASSIGN, ":="},
		{TOK_IDENT, "f"},
		{TOK_DOT, "."},
		{TOK_NUMLIT, "1"},
		{TOK_END, "end"},

		{TOK_RBRACE, "}"},
		{TOK_EOF, ""},
	}

	l := lexString(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lexical error: %s", i, err.Error())
		}

		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - tokenkind wrong. expected=%s, got=%s",
				i, KindRepr(tt.expectedKind), KindRepr(tok.Kind))
		}

		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - tokenvalue wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}
}

func TestMinusLookahead(t *testing.T) {
	tests := []struct {
		input         string
		expectedKinds []int
	}{
		{"a-->b", []int{TOK_IDENT, TOK_ARROW, TOK_IDENT, TOK_EOF}},
		{"a--b", []int{TOK_IDENT, TOK_MINUS, TOK_MINUS, TOK_IDENT, TOK_EOF}},
		{"a-b", []int{TOK_IDENT, TOK_MINUS, TOK_IDENT, TOK_EOF}},
		{"a-", []int{TOK_IDENT, TOK_MINUS, TOK_EOF}},
		{"a → b", []int{TOK_IDENT, TOK_ARROW, TOK_IDENT, TOK_EOF}},
	}

	for i, tt := range tests {
		l := lexString(tt.input)

		for j, expected := range tt.expectedKinds {
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("tests[%d] - unexpected lexical error: %s", i, err.Error())
			}

			if tok.Kind != expected {
				t.Fatalf("tests[%d] - token %d kind wrong. expected=%s, got=%s",
					i, j, KindRepr(expected), KindRepr(tok.Kind))
			}
		}
	}
}

func TestTokenSpans(t *testing.T) {
	input := "if x\n\ty := 10"

	tests := []struct {
		startLine, startCol int
		endLine, endCol     int
	}{
		{0, 0, 0, 2},  // if
		{0, 3, 0, 4},  // x
		{1, 4, 1, 5},  // y, behind a tab
		{1, 6, 1, 8},  // :=
		{1, 9, 1, 11}, // 10
	}

	l := lexString(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lexical error: %s", i, err.Error())
		}

		span := tok.Span
		if span.StartLine != tt.startLine || span.StartCol != tt.startCol ||
			span.EndLine != tt.endLine || span.EndCol != tt.endCol {
			t.Fatalf("tests[%d] - span wrong. expected=(%d, %d)-(%d, %d), got=(%d, %d)-(%d, %d)",
				i, tt.startLine, tt.startCol, tt.endLine, tt.endCol,
				span.StartLine, span.StartCol, span.EndLine, span.EndCol)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input         string
		expectedValue string
	}{
		{`""`, ""},
		{`"a b"`, "a b"},
		{`"a\nb"`, `a\nb`},
		{`"a\"b"`, `a\"b`},
		{`"a\\b"`, `a\\b`},
	}

	for i, tt := range tests {
		tok, err := lexString(tt.input).NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lexical error: %s", i, err.Error())
		}

		if tok.Kind != TOK_STRINGLIT {
			t.Fatalf("tests[%d] - tokenkind wrong. expected=%s, got=%s",
				i, KindRepr(TOK_STRINGLIT), KindRepr(tok.Kind))
		}

		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - tokenvalue wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}
}

func TestCommentsSkipped(t *testing.T) {
	tests := []struct {
		input         string
		expectedKinds []int
	}{
		{"x // rest is comment\ny", []int{TOK_IDENT, TOK_IDENT, TOK_EOF}},
		{"x // trailing", []int{TOK_IDENT, TOK_EOF}},
		{"// only\n// comments", []int{TOK_EOF}},
	}

	for i, tt := range tests {
		l := lexString(tt.input)

		for j, expected := range tt.expectedKinds {
			tok, err := l.NextToken()
			if err != nil {
				t.Fatalf("tests[%d] - unexpected lexical error: %s", i, err.Error())
			}

			if tok.Kind != expected {
				t.Fatalf("tests[%d] - token %d kind wrong. expected=%s, got=%s",
					i, j, KindRepr(expected), KindRepr(tok.Kind))
			}
		}
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input        string
		expectedCode int
	}{
		{"=", report.CodeBadChar},
		{"x = 1", report.CodeBadChar},
		{"/", report.CodeBadChar},
		{"?", report.CodeBadChar},
		{"$id", report.CodeBadChar},
		{`"a\qb"`, report.CodeBadChar},
		{`"abc`, report.CodeUnterminated},
		{"\"ab\ncd\"", report.CodeUnterminated},
		{`"ab\`, report.CodeUnterminated},
	}

	for i, tt := range tests {
		l := lexString(tt.input)

		var lexErr error
		for {
			tok, err := l.NextToken()
			if err != nil {
				lexErr = err
				break
			}

			if tok.Kind == TOK_EOF {
				break
			}
		}

		if lexErr == nil {
			t.Fatalf("tests[%d] - expected a lexical error, got none", i)
		}

		le, ok := lexErr.(*report.LocalError)
		if !ok {
			t.Fatalf("tests[%d] - error type wrong. expected=*report.LocalError, got=%T", i, lexErr)
		}

		if le.Code != tt.expectedCode {
			t.Fatalf("tests[%d] - error code wrong. expected=%d, got=%d", i, tt.expectedCode, le.Code)
		}
	}
}
