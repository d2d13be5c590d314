// Package errors carries the coded errors returned at the boundaries of the
// reporting pipeline: file import, recipe and report parsing, configuration
// and the CLI. The statistical core never returns them.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code classifies an AppError for callers that branch on the failure kind.
type Code string

const (
	CodeConfigInvalid        Code = "CONFIG_INVALID"
	CodeNotFound             Code = "NOT_FOUND"
	CodeInternalError        Code = "INTERNAL_ERROR"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeImportFailed         Code = "IMPORT_FAILED"
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"

	// CodeUnknown is what GetCode reports for errors carrying no code.
	CodeUnknown Code = "UNKNOWN"
)

// AppError is a coded error with an optional cause.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	switch {
	case e.Cause == nil:
		return e.Message
	case e.Message == "":
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

// ConfigInvalid reports an environment setting that failed validation.
func ConfigInvalid(message string) *AppError {
	return &AppError{Code: CodeConfigInvalid, Message: message}
}

// InvalidInput reports a malformed recipe, report or command argument.
func InvalidInput(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message}
}

// ImportFailed reports a source file that could not be read into a table.
func ImportFailed(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeImportFailed,
		Message: fmt.Sprintf("failed to import %s", path),
		Cause:   cause,
	}
}

// UnsupportedOperation reports a recipe step or report block the core cannot run.
func UnsupportedOperation(what string, cause error) *AppError {
	return &AppError{
		Code:    CodeUnsupportedOperation,
		Message: fmt.Sprintf("unsupported %s", what),
		Cause:   cause,
	}
}

// Wrap adds context to err. The code of the nearest AppError in the chain is
// kept; foreign errors become INTERNAL_ERROR.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: codeOr(err, CodeInternalError), Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode recodes err, keeping its message and cause.
func WithCode(code Code, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: code, Message: appErr.Message, Cause: appErr.Cause}
	}
	return &AppError{Code: code, Cause: err}
}

// GetCode returns the code of the outermost AppError in the chain.
func GetCode(err error) Code {
	return codeOr(err, CodeUnknown)
}

func codeOr(err error, fallback Code) Code {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return fallback
}
