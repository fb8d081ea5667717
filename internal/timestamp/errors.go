package timestamp

import (
	"errors"
	"fmt"
)

// Sentinel errors for document annotation.
var (
	ErrMissingBaseURL = errors.New("section heading has no base URL")
	ErrMalformedTime  = errors.New("malformed time token")
	ErrMalformedEntry = errors.New("malformed setlist entry")
	ErrInvalidPolicy  = errors.New("invalid malformed-entry policy")
)

// LineError ties an annotation failure to a line of the document.
// Line is 1-based.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
