package types

import "errors"

var (
	// ErrDigitSourceUnavailable is returned when every acquisition tier failed.
	ErrDigitSourceUnavailable = errors.New("no pi digit source available")

	// ErrInvalidKey is returned when a key is not a non-negative integer.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidMode is returned for anything other than encrypt or decrypt.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrMalformedDigits is returned when text cannot be normalized into a
	// DigitString.
	ErrMalformedDigits = errors.New("malformed pi digits")

	// ErrUnrepresentableOutput is returned by an output sink that cannot
	// encode a translated message.
	ErrUnrepresentableOutput = errors.New("translated message cannot be encoded")
)
