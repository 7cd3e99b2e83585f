package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in a GCL program.  The
// starting position is the position of the first character in the span and
// the ending position is one past the last character.  The line and column
// numbers are zero-indexed; display adds one.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// Enumeration of diagnostic kinds, one per pipeline stage.
const (
	LexicalError = iota
	SyntaxError
	SemanticError
	TranslationError
)

// Enumeration of diagnostic codes.  Each code refines one of the kinds above.
const (
	// Lexical errors.
	CodeBadChar      = iota // unrecognized rune or malformed symbol
	CodeUnterminated        // string literal never closed

	// Syntax errors.
	CodeUnexpectedToken
	CodeUnexpectedEOF

	// Semantic errors.
	CodeUndeclared
	CodeRedeclared
	CodeTypeMismatch
	CodeArityOrRange
	CodeUnused // warning only

	// Translation errors.
	CodeUnsupported
	CodeDepthExceeded
)

// KindOfCode returns the diagnostic kind a code belongs to.
func KindOfCode(code int) int {
	switch {
	case code <= CodeUnterminated:
		return LexicalError
	case code <= CodeUnexpectedEOF:
		return SyntaxError
	case code <= CodeUnused:
		return SemanticError
	default:
		return TranslationError
	}
}

// Diagnostic is a structured compilation error or warning produced by a
// pipeline stage.  Diagnostics are accumulated by the reporter in the order
// they are reported so callers see them deterministically.
type Diagnostic struct {
	// The diagnostic kind: one of the stage kinds enumerated above.
	Kind int

	// The diagnostic code refining the kind.
	Code int

	// The error message.
	Message string

	// The span over which the diagnostic occurs.  This may be nil for
	// diagnostics with no position (eg. unexpected end of input).
	Span *TextSpan

	// The path to the source file the diagnostic refers to.
	Path string

	// The representations of the token kinds the parser would have accepted.
	// Only set for unexpected token errors.
	Expected []string

	// Whether this diagnostic is a warning rather than an error.
	IsWarning bool
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// -----------------------------------------------------------------------------

// LocalError is a compilation error that occurs in a context in which the
// source file is known by the error handler and thus doesn't need to be
// passed along with the error.  Local errors are raised through panics and
// caught at stage boundaries by CatchErrors.
type LocalError struct {
	// The diagnostic code of the error.
	Code int

	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (le *LocalError) Error() string {
	return le.Message
}

// Raise creates a new local error with the given code over the given span.
func Raise(code int, span *TextSpan, msg string, args ...interface{}) *LocalError {
	return &LocalError{Code: code, Message: fmt.Sprintf(msg, args...), Span: span}
}
