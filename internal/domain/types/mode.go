package types

import (
	"fmt"
	"strings"
)

// Mode selects the direction of the keystream transform.
type Mode int

const (
	// Encrypt shifts codepoints up by the keystream digit.
	Encrypt Mode = iota + 1
	// Decrypt shifts codepoints down by the keystream digit.
	Decrypt
)

// String returns "encrypt", "decrypt" or a placeholder for unknown values.
func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the two defined modes.
func (m Mode) Valid() bool { return m == Encrypt || m == Decrypt }

// ParseMode accepts "encrypt", "e", "decrypt" or "d" in any case, with
// surrounding whitespace ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "e":
		return Encrypt, nil
	case "decrypt", "d":
		return Decrypt, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
