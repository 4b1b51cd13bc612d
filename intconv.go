// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversion between Int values and strings.

package bigint

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/nat"
)

// MaxBase is the maximum base accepted for string conversions: ten digits,
// 26 lower case and 26 upper case letters.
const MaxBase = nat.MaxBase

// ─────────────────────────────────────────────────────────────────────────────
// Formatting
// ─────────────────────────────────────────────────────────────────────────────

// Text returns the string representation of x in the given base, which must
// be between 2 and MaxBase. Digit values 10 to 35 use lower case letters and
// 36 to 61 use upper case letters. A nil pointer yields "<nil>". It panics
// for an invalid base.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.abs.Itoa(x.neg, base))
}

// Append appends the representation of x in the given base to buf and
// returns the extended buffer.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.Itoa(x.neg, base)...)
}

// String returns the decimal representation of x, as x.Text(10).
func (x *Int) String() string {
	return x.Text(10)
}

// write count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = intOne // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the formats
// 'b' (binary), 'o' (octal with 0 prefix), 'O' (octal with 0o prefix),
// 'd' (decimal), 'x' (lowercase hexadecimal), and
// 'X' (uppercase hexadecimal).
// Also supported are the full suite of package fmt's format
// flags for integral types, including '+' and ' ' for sign
// control, '#' for leading zero in octal and for hexadecimal,
// a leading "0x" or "0X" for "%#x" and "%#X" respectively,
// specification of minimum digits precision, output field
// width, space or zero padding, and '-' for left or right
// justification.
func (x *Int) Format(s fmt.State, ch rune) {
	var base int
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x', 'X':
		base = 16
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b': // binary
			prefix = "0b"
		case 'o': // octal
			prefix = "0"
		case 'x': // hexadecimal
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if ch == 'O' {
		prefix = "0o"
	}

	digits := x.abs.Utoa(base)
	if ch == 'X' {
		for i, d := range digits {
			if 'a' <= d && d <= 'z' {
				digits[i] = 'A' + (d - 'a')
			}
		}
	}

	var left int  // space characters to left of digits for right justification ("%8d")
	var zeros int // zero characters as left-most digits ("%.8d")
	var right int // space characters to right of digits for left justification ("%-8d")

	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeros = precision - len(digits)
		case len(digits) == 1 && digits[0] == '0' && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	length := len(sign) + len(prefix) + zeros + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && !precisionSet:
			zeros = d
		default:
			left = d
		}
	}

	// print number as [left pad][sign][prefix][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	s.Write(digits)
	writeMultiple(s, " ", right)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// SetString sets z to the value of s, interpreted in the given base, and
// returns z. The entire string, after an optional leading "+" or "-", must
// be valid digits.
//
// The base must be 0 or between 2 and MaxBase. For base 0 the prefix
// selects the actual base: "0b" or "0B" selects 2, "0o" or "0O" selects 8,
// "0x" or "0X" selects 16, a lone leading "0" selects 8 and anything else
// selects 10. Only with base 0 may an underscore appear between digits or
// between a prefix and an adjacent digit.
//
// For bases up to 36 letters are case-insensitive. For larger bases 'a' to
// 'z' are 10 to 35 and 'A' to 'Z' are 36 to 61.
//
// On failure the error is a *ParseError and z is unchanged.
func (z *Int) SetString(s string, base int) (*Int, error) {
	neg, abs, err := scanInt(s, base)
	if err != nil {
		collector.ObserveFailure("SetString", apperrors.Kind(err))
		return z, err
	}
	z.abs = abs
	z.neg = len(abs) > 0 && neg
	return z, nil
}

// Parse returns a new Int set to the value of s in the given base, with the
// same rules as SetString.
func Parse(s string, base int) (*Int, error) {
	z, err := new(Int).SetString(s, base)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// scanInt parses a complete signed integer literal.
func scanInt(s string, base int) (neg bool, abs nat.Nat, err error) {
	fail := func(msg string) error {
		return &ParseError{Input: s, Base: base, Message: msg}
	}

	if base != 0 && (base < 2 || base > MaxBase) {
		return false, nil, fail(fmt.Sprintf("base must be 0 or between 2 and %d", MaxBase))
	}
	if len(s) == 0 {
		return false, nil, fail("empty input")
	}

	i := 0
	switch s[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i == len(s) {
		return false, nil, fail("missing digits")
	}

	// Determine the actual base and skip its prefix.
	b, prefix := base, byte(0)
	if base == 0 {
		b = 10
		if s[i] == '0' {
			b, prefix = 8, '0'
			if i+1 < len(s) {
				switch s[i+1] | 0x20 {
				case 'b':
					b, prefix = 2, 'b'
				case 'o':
					b, prefix = 8, 'o'
				case 'x':
					b, prefix = 16, 'x'
				}
			}
			if prefix == '0' {
				i++ // the 0 is also a digit
			} else {
				i += 2
			}
		}
	}

	// prev is the class of the previous character: '.' for the start
	// without a prefix, '0' after a digit or prefix, '_' after a separator.
	prev := byte('.')
	if prefix != 0 {
		prev = '0'
	}
	invalSep := false

	digs := make([]byte, 0, len(s)-i)
	for ; i < len(s); i++ {
		ch := s[i]
		if ch == '_' && base == 0 {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
			continue
		}
		d, ok := nat.DigitValue(ch, b)
		if !ok {
			return false, nil, fail(fmt.Sprintf("invalid digit %q", ch))
		}
		digs = append(digs, byte(d))
		prev = '0'
	}

	switch {
	case len(digs) == 0 && prefix != '0':
		return false, nil, fail("missing digits")
	case invalSep || prev == '_':
		return false, nil, fail("'_' must separate successive digits")
	}
	return neg, nat.Nat(nil).SetDigits(digs, b), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// fmt.Scanner
// ─────────────────────────────────────────────────────────────────────────────

var _ fmt.Scanner = intOne // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner. It accepts the verbs 'b', 'o',
// 'd', 'x', 'X', 's' and 'v'; 's' and 'v' detect the base from a prefix.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	base := 0
	switch ch {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'd':
		base = 10
	case 'x', 'X':
		base = 16
	case 's', 'v':
		// let scan determine the base
	default:
		return newError("Scan", ErrInvalidArgument, "invalid verb %q", ch)
	}
	tok, err := s.Token(false, func(r rune) bool {
		return r == '+' || r == '-' || r == '_' ||
			('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	_, err = z.SetString(string(tok), base)
	return err
}
