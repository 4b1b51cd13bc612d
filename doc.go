// Package bigint implements arbitrary-precision signed integers.
//
// An Int is a sign and an unsigned magnitude. The zero value is 0 and ready
// to use. Operations follow the destination-receiver convention
//
//	z.Add(x, y) // z = x + y
//
// where the receiver receives the result and is returned for chaining. The
// receiver may alias any operand. Operations that can fail return an error
// wrapping one of ErrInvalidArgument, ErrDivisionByZero, ErrNotInvertible,
// ErrNoSquareRoot or ErrBufferTooSmall; on failure the receiver is left
// unchanged.
//
// Two division disciplines are provided. Quo, Rem and QuoRem truncate toward
// zero, so the remainder takes the sign of the dividend. Div, Mod and DivMod
// round the quotient so the modulus takes the sign of the divisor.
//
// Bit operations (Bit, SetBit, Rsh, And, Or, Xor, AndNot, Not) view negative
// values as infinite two's-complement bit strings.
//
// The number-theory suite covers the extended GCD, modular inverse, modular
// exponentiation, the Jacobi symbol and modular square roots.
//
// # Tuning and observability
//
// At init the package reads BIGINT_KARATSUBA_THRESHOLD, BIGINT_LOG_LEVEL and
// an optional TOML file named by BIGINT_CONFIG. Logging is silent unless a
// level is configured or SetLogger is called. RegisterMetrics exposes
// prometheus counters for square-root strategy selection and failures.
package bigint
