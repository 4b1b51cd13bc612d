// Package apperrors defines the error vocabulary of the integer engine: the
// sentinel error kinds callers match with errors.Is, and the structured error
// types that carry the failing operation and its context.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All structured error types implement Unwrap() so that errors.Is() finds the
// sentinel kind and errors.As() finds the structured type.
package apperrors
