// Package nat implements the unsigned magnitude arithmetic behind the public
// bigint.Int type.
//
// A Nat is a little-endian slice of machine words. Every value returned by
// this package is normalized: the most significant word is non-zero, and
// zero is represented by the empty slice. Receivers follow the math/big
// convention z.Op(x, y): the result is written into z's backing array when
// it is large enough and does not overlap an operand in a harmful way, and
// the (possibly reallocated) result is returned.
//
// The hot vector kernels (addVV, subVV, addMulVVW) are linked to math/big's
// internal implementations. Everything else is portable Go built on
// math/bits.
package nat
