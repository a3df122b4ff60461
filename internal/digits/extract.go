package digits

import (
	"fmt"
	"math/big"

	"picipher/internal/domain"
)

// Normalize strips a decimal point directly after the leading digit and
// returns exactly the first l digits of raw.
func Normalize(raw string, l int) (domain.DigitString, error) {
	if l <= 0 {
		return domain.DigitString{}, fmt.Errorf("%w: requested length %d", domain.ErrMalformedDigits, l)
	}
	if len(raw) > 1 && raw[1] == '.' {
		raw = raw[:1] + raw[2:]
	}
	if len(raw) < l {
		return domain.DigitString{}, fmt.Errorf("%w: have %d digits, need %d", domain.ErrMalformedDigits, len(raw), l)
	}
	return domain.NewDigitString(raw[:l])
}

// FromFixedPoint renders a fixed-point pi value (one = 10^P, so P+1 decimal
// digits) and returns its first l digits.
func FromFixedPoint(v *big.Int, l int) (domain.DigitString, error) {
	if v.Sign() <= 0 {
		return domain.DigitString{}, fmt.Errorf("%w: non-positive value", domain.ErrMalformedDigits)
	}
	return Normalize(v.Text(10), l)
}
