// Package errors defines the error kinds raised while turning a physical
// design into a placement model.
//
// Fatal kinds describe inputs the pipeline cannot recover from (utilization
// above 100%, malformed power pins, unknown constraint directives). They are
// returned as values; only the top-level driver decides to exit.
//
//	err := errors.New(errors.ErrCodeUtilization, "utilization %.2f%%", u*100)
//	if errors.IsFatal(err) {
//	    // stop the run
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Fatal: the design is infeasible or malformed.
	ErrCodeUtilization          Code = "UTILIZATION_EXCEEDED"
	ErrCodePowerPinCount        Code = "POWER_PIN_COUNT"
	ErrCodeUnsupportedDirective Code = "UNSUPPORTED_DIRECTIVE"
	ErrCodeInvalidOrientation   Code = "INVALID_ORIENTATION"

	// Input errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeMissingReference Code = "MISSING_REFERENCE"
	ErrCodeParse            Code = "PARSE_ERROR"

	// I/O errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Advisory
	ErrCodeUndefinedPower Code = "UNDEFINED_POWER"
)

var fatalCodes = map[Code]bool{
	ErrCodeUtilization:          true,
	ErrCodePowerPinCount:        true,
	ErrCodeUnsupportedDirective: true,
	ErrCodeInvalidOrientation:   true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Fatal reports whether the code terminates a run.
func (e *Error) Fatal() bool {
	return fatalCodes[e.Code]
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code, or "" for foreign errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsFatal reports whether any *Error in the chain carries a fatal code.
func IsFatal(err error) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Fatal() {
			return true
		}
		err = e.Cause
	}
	return false
}
