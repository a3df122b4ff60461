package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is the starting offset into a DigitString. Any value is usable:
// indexing reduces it modulo the digit length.
type Key uint64

// ParseKey parses a decimal, non-negative key. Signs, fractions and values
// beyond the uint64 range are rejected with ErrInvalidKey.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidKey, s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key(v), nil
}

// Offset returns the index of the digit used at message position pos for a
// digit string of length n. n must be positive.
func (k Key) Offset(pos, n int) int {
	base := uint64(k) % uint64(n)
	return int((base + uint64(pos)%uint64(n)) % uint64(n))
}
