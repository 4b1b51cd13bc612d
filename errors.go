package bigint

import (
	apperrors "github.com/agbru/bigint/internal/errors"
)

// Error kinds. Use errors.Is to classify an error returned by this package.
var (
	ErrInvalidArgument = apperrors.ErrInvalidArgument
	ErrDivisionByZero  = apperrors.ErrDivisionByZero
	ErrNotInvertible   = apperrors.ErrNotInvertible
	ErrNoSquareRoot    = apperrors.ErrNoSquareRoot
	ErrBufferTooSmall  = apperrors.ErrBufferTooSmall
)

// Structured error types, for use with errors.As.
type (
	// OpError names the failing operation and wraps the error kind.
	OpError = apperrors.OpError
	// ParseError describes a rejected string.
	ParseError = apperrors.ParseError
	// BufferError describes an output buffer that is too short.
	BufferError = apperrors.BufferError
)

// newError builds an *OpError for op and counts the failure.
func newError(op string, kind error, format string, a ...any) error {
	err := apperrors.NewOpError(op, kind, format, a...)
	collector.ObserveFailure(op, apperrors.Kind(err))
	return err
}
