package keystream

import (
	"errors"
	"fmt"

	"picipher/internal/domain"
)

// WrapWidth is the size of the codepoint space. A shift past either end
// lands back inside [0, MaxCodepoint] and decrypting undoes it exactly.
// Results that wrap differ by one from a correction of ±MaxCodepoint, so
// ciphertexts near either end of the range are not interchangeable with
// ones produced that way.
const WrapWidth = domain.MaxCodepoint + 1

var (
	ErrEmptyDigits         = errors.New("keystream: empty digit string")
	ErrCodepointOutOfRange = errors.New("keystream: codepoint out of range")
)

// TransformError reports the message position at which a transform failed.
type TransformError struct {
	Pos       int
	Codepoint rune
	Err       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("position %d (U+%04X): %v", e.Pos, e.Codepoint, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Translate applies mode to every codepoint of message.
func Translate(mode domain.Mode, message []rune, key domain.Key, digits domain.DigitString) (domain.TranslatedMessage, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMode, mode)
	}
	n := digits.Len()
	if n == 0 {
		return nil, ErrEmptyDigits
	}

	out := make(domain.TranslatedMessage, len(message))
	for i, c := range message {
		if c < 0 || c > domain.MaxCodepoint {
			return nil, &TransformError{Pos: i, Codepoint: c, Err: ErrCodepointOutOfRange}
		}
		out[i] = Shift(mode, c, digits.Value(key.Offset(i, n)))
	}
	return out, nil
}

// Encrypt is Translate(domain.Encrypt, ...) over a string.
func Encrypt(message string, key domain.Key, digits domain.DigitString) (domain.TranslatedMessage, error) {
	return Translate(domain.Encrypt, []rune(message), key, digits)
}

// Decrypt is Translate(domain.Decrypt, ...) over a string.
func Decrypt(message string, key domain.Key, digits domain.DigitString) (domain.TranslatedMessage, error) {
	return Translate(domain.Decrypt, []rune(message), key, digits)
}

// Shift moves c by d in the direction of mode and wraps the result into
// [0, MaxCodepoint]. c must already be in range and 0 <= d <= 9.
func Shift(mode domain.Mode, c rune, d int) rune {
	if mode == domain.Decrypt {
		c -= rune(d)
	} else {
		c += rune(d)
	}
	switch {
	case c > domain.MaxCodepoint:
		c -= WrapWidth
	case c < 0:
		c += WrapWidth
	}
	return c
}
