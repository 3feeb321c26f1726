package tseries

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("value is outside of acceptable range")

// DateParseError is returned for any string that could not be read as a
// date. Err holds the underlying cause.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause see through the wrapper.
func (e *DateParseError) Cause() error { return e.Err }

func newDateParseError(input string, err error) error {
	var dpe *DateParseError
	if errors.As(err, &dpe) {
		return err
	}
	return &DateParseError{Input: input, Err: err}
}

// RangeError reports a numeric input outside the range a converter
// accepts.
type RangeError struct {
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOutOfRange, e.Value)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// TZMismatchError is the panic value raised when two zones that must
// agree do not.
type TZMismatchError struct {
	Inferred string
	Given    string
}

func (e *TZMismatchError) Error() string {
	return fmt.Sprintf("inferred time zone %s does not match %s", e.Inferred, e.Given)
}
