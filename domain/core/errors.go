package core

import (
	"errors"
	"fmt"
)

// Domain errors. Core computations never return these; they surface at the
// boundaries (recipe parsing, report specs, imports, CLI).
var (
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)

	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrUnknownStatistic = errors.New("unknown statistic")
	ErrUnknownOperator  = errors.New("unknown comparison operator")
	ErrUnknownTest      = errors.New("unknown test type")
	ErrUnknownInterval  = errors.New("unknown interval type")
	ErrUnknownStep      = errors.New("unknown cleaning step")
	ErrUnsupportedFile  = errors.New("unsupported file type")
)

// NewColumnNotFoundError reports a selector that did not resolve.
func NewColumnNotFoundError(selector string) error {
	return fmt.Errorf("%w %q", ErrColumnNotFound, selector)
}

// IsNotFoundError reports whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownNameError reports whether err came from an unrecognised enum name.
func IsUnknownNameError(err error) bool {
	return errors.Is(err, ErrUnknownStatistic) ||
		errors.Is(err, ErrUnknownOperator) ||
		errors.Is(err, ErrUnknownTest) ||
		errors.Is(err, ErrUnknownInterval) ||
		errors.Is(err, ErrUnknownStep)
}
