// Package errors defines the coded errors returned across tonesketch.
//
// An [*Error] pairs a [Code] with a message. Validation in the colour and
// sketch packages returns INVALID_* codes. UNSUPPORTED_TONE marks a tone
// with no RGB conversion, and EMPTY_PALETTE a palette left with no swatches.
// Callers test codes with [Is] rather than matching message text:
//
//	if errors.Is(err, errors.ErrCodeInvalidHue) { ... }
//
// [Wrap] keeps the cause reachable through the standard errors.Unwrap chain.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidSketch Code = "INVALID_SKETCH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidSize   Code = "INVALID_SIZE"
	ErrCodeInvalidHue    Code = "INVALID_HUE"
	ErrCodeInvalidTone   Code = "INVALID_TONE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeUnsupportedTone Code = "UNSUPPORTED_TONE"
	ErrCodeEmptyPalette    Code = "EMPTY_PALETTE"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error. Cause may be nil.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix from an *Error. Other errors are
// returned as err.Error().
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
