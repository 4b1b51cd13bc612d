package apperrors

import (
	"errors"
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Error kinds
// ─────────────────────────────────────────────────────────────────────────────

// Sentinel error kinds. Every error returned by the engine wraps exactly one
// of these.
var (
	// ErrInvalidArgument reports a malformed input such as a bad digit
	// string, an even modulus or a value that does not fit a machine type.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero reports a zero divisor or modulus.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotInvertible reports that no modular inverse exists.
	ErrNotInvertible = errors.New("not invertible")
	// ErrNoSquareRoot reports that a value is a quadratic non-residue.
	ErrNoSquareRoot = errors.New("no square root")
	// ErrBufferTooSmall reports that an output buffer cannot hold a value.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Kind returns a short stable label for the sentinel wrapped by err, suitable
// for metric labels. It returns "unknown" for foreign errors.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNotInvertible):
		return "not_invertible"
	case errors.Is(err, ErrNoSquareRoot):
		return "no_square_root"
	case errors.Is(err, ErrBufferTooSmall):
		return "buffer_too_small"
	}
	return "unknown"
}

// ─────────────────────────────────────────────────────────────────────────────
// Structured errors
// ─────────────────────────────────────────────────────────────────────────────

// OpError records the operation that failed together with its cause.
type OpError struct {
	// Op is the name of the failing operation, e.g. "ModInverse".
	Op string
	// Cause is the underlying error; it wraps one of the sentinel kinds.
	Cause error
}

// Error returns "bigint: <op>: <cause>".
func (e *OpError) Error() string {
	return "bigint: " + e.Op + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e *OpError) Unwrap() error { return e.Cause }

// NewOpError builds an OpError whose cause is kind annotated with a
// formatted detail message.
//
// Parameters:
//   - op: The failing operation.
//   - kind: One of the sentinel kinds.
//   - format: A format string for the detail (see fmt.Sprintf). May be empty.
//   - a: Arguments to be formatted into the detail.
//
// Returns:
//   - error: An *OpError wrapping kind.
func NewOpError(op string, kind error, format string, a ...any) error {
	cause := kind
	if format != "" {
		cause = fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
	}
	return &OpError{Op: op, Cause: cause}
}

// ParseError reports a string that does not match the integer grammar.
type ParseError struct {
	// Input is the rejected string.
	Input string
	// Base is the base requested by the caller, 0 for prefix detection.
	Base int
	// Message explains what was wrong with the input.
	Message string
}

// Error returns a formatted message describing the rejected input.
func (e *ParseError) Error() string {
	return fmt.Sprintf("bigint: cannot parse %q in base %d: %s", e.Input, e.Base, e.Message)
}

// Unwrap returns ErrInvalidArgument.
func (e *ParseError) Unwrap() error { return ErrInvalidArgument }

// BufferError reports an output buffer that is too small for a value.
type BufferError struct {
	// Need is the number of bytes the value requires.
	Need int
	// Have is the length of the buffer supplied.
	Have int
}

// Error returns a formatted message describing the shortfall.
func (e *BufferError) Error() string {
	return fmt.Sprintf("buffer too small: need %d bytes, have %d", e.Need, e.Have)
}

// Unwrap returns ErrBufferTooSmall.
func (e *BufferError) Unwrap() error { return ErrBufferTooSmall }

// ConfigError represents an invalid tuning value from the environment or a
// configuration file.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
