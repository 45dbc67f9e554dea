package edifact

import (
	"errors"
	"fmt"
)

// Errors reported while resolving delimiters, scanning text, and
// assembling or building interchanges. Match them with errors.Is; parse
// failures arrive wrapped in a *ParseError carrying position details.
var (
	// ErrMalformedServiceAdvice indicates a UNA advice that is present
	// but unusable (cut short, duplicate characters, alphanumeric
	// structural characters).
	ErrMalformedServiceAdvice = errors.New("malformed service string advice")

	// ErrUnterminatedSegment indicates segment text that ran out before
	// its terminator, including a release character with nothing left
	// to release.
	ErrUnterminatedSegment = errors.New("unterminated segment")

	// ErrUnknownStructure indicates input that tokenizes but is not
	// shaped as an interchange (wrong opening segment, body segments
	// outside any message, content after the trailer).
	ErrUnknownStructure = errors.New("unknown interchange structure")

	// ErrIncompleteDocument indicates a build finished without a
	// required part.
	ErrIncompleteDocument = errors.New("incomplete document")

	// ErrInvalidFieldValue indicates builder input that fails a field
	// constraint.
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// ParseError locates a structural failure in the input text.
//
// Offset is a byte offset into the original input and Segment the
// zero-based ordinal of the segment being read when the failure was
// detected. Either is -1 when it does not apply.
type ParseError struct {
	Err     error
	Offset  int
	Segment int
	Detail  string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Segment >= 0 {
		msg = fmt.Sprintf("%s (segment %d)", msg, e.Segment)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
