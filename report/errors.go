package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in an Ember program.  Text
// spans are inclusive on both sides: the starting position is the position of
// the first character in the span and the ending position is the position of
// the last character in the span.  The line and column numbers are
// zero-indexed.
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

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  May be nil if the error has no
	// useful position (eg. unexpected end of file).
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}
