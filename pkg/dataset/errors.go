package dataset

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFile indicates a dataset file extension that cannot be decoded.
var ErrUnsupportedFile = errors.New("unsupported dataset file")

// DecodeError reports a malformed row in a dataset document.
type DecodeError struct {
	Row    int
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("dataset row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("dataset row %d column %q: %v", e.Row, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
