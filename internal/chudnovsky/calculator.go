package chudnovsky

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"picipher/internal/digits"
	"picipher/internal/domain"
	"picipher/internal/fixedpoint"
)

// GuardDigits is the extra working precision carried beyond the requested
// digit count. Each truncated term loses at most one unit in the last place,
// and b_sum weights those losses by k, so roughly log10(terms^2) trailing
// digits are unreliable.
const GuardDigits = 20

// Calculator computes pi digits locally.
type Calculator struct {
	log      logr.Logger
	progress ProgressReporter
}

// New returns a Calculator. progress may be nil.
func New(log logr.Logger, progress ProgressReporter) *Calculator {
	return &Calculator{log: log.WithName("chudnovsky"), progress: progress}
}

// ComputeDigits returns the first n digits of pi, "3" included.
func (c *Calculator) ComputeDigits(n int) (domain.DigitString, error) {
	if n <= 0 {
		return domain.DigitString{}, fmt.Errorf("chudnovsky: digit count must be positive, got %d", n)
	}
	l := c.log.WithValues("digits", n, "precision", n+GuardDigits)
	l.V(1).Info("computing pi")
	start := time.Now()

	one := fixedpoint.One(n + GuardDigits)
	sums := Sum(one, c.progress)
	pi := assemble(sums, one)

	ds, err := digits.FromFixedPoint(pi, n)
	if err != nil {
		return domain.DigitString{}, fmt.Errorf("chudnovsky: %w", err)
	}
	l.Info("computed pi", "terms", sums.Terms, "elapsed", time.Since(start).Round(time.Millisecond))
	return ds, nil
}

var _ domain.DigitComputer = (*Calculator)(nil)
