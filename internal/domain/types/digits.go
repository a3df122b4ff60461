package types

import "fmt"

// DigitString is an immutable run of decimal digits of pi starting with the
// integer part "3". The zero value is empty and unusable as a keystream.
type DigitString struct {
	s string
}

// NewDigitString validates s and wraps it. s must be non-empty, start with
// '3' and contain only '0'..'9'.
func NewDigitString(s string) (DigitString, error) {
	if s == "" {
		return DigitString{}, fmt.Errorf("%w: empty", ErrMalformedDigits)
	}
	if s[0] != '3' {
		return DigitString{}, fmt.Errorf("%w: leading digit %q, want '3'", ErrMalformedDigits, s[0])
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return DigitString{}, fmt.Errorf("%w: non-digit %q at index %d", ErrMalformedDigits, s[i], i)
		}
	}
	return DigitString{s: s}, nil
}

// Len returns the number of digits.
func (d DigitString) Len() int { return len(d.s) }

// Value returns the numeric value of the digit at index i.
func (d DigitString) Value(i int) int { return int(d.s[i] - '0') }

// Prefix returns at most the first n digits.
func (d DigitString) Prefix(n int) string {
	if n > len(d.s) {
		n = len(d.s)
	}
	return d.s[:n]
}

// String returns the digits as text.
func (d DigitString) String() string { return d.s }

// Digits is a DigitString together with the tier that produced it.
type Digits struct {
	DigitString
	Tier Tier
}
