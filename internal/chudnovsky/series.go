package chudnovsky

import (
	"math"
	"math/big"

	"picipher/internal/fixedpoint"
)

const (
	// DigitsPerTerm is the number of decimal digits each series term adds.
	DigitsPerTerm = 14.181647462725477

	c3Over24 = 640320 * 640320 * 640320 / 24

	sumA    = 13591409
	sumB    = 545140134
	sqrtArg = 10005
	scale   = 426880
)

// Sums holds the accumulators of a finished summation.
type Sums struct {
	A     *big.Int // sum of a_k
	B     *big.Int // sum of k*a_k
	Terms int      // index of the first term that underflowed to zero
}

// Sum runs the series at the precision implied by one. report may be nil.
func Sum(one *big.Int, report ProgressReporter) Sums {
	tracker := newTracker(report, expectedTerms(one))

	c3 := big.NewInt(c3Over24)
	ak := new(big.Int).Set(one)
	aSum := new(big.Int).Set(one)
	bSum := new(big.Int)

	var num, den, kb, t big.Int
	k := int64(1)
	for {
		num.SetInt64(-(6*k - 5) * (2*k - 1) * (6*k - 1))
		ak.Mul(ak, &num)

		kb.SetInt64(k)
		den.Mul(&kb, &kb)
		den.Mul(&den, &kb)
		den.Mul(&den, c3)
		ak.Quo(ak, &den)

		aSum.Add(aSum, ak)
		t.Mul(&kb, ak)
		bSum.Add(bSum, &t)

		tracker.step(int(k))
		if ak.Sign() == 0 {
			break
		}
		k++
	}
	tracker.done()

	return Sums{A: aSum, B: bSum, Terms: int(k)}
}

// Pi returns pi in fixed point: an integer of P+1 digits for one = 10^P.
func Pi(one *big.Int) *big.Int {
	return assemble(Sum(one, nil), one)
}

func assemble(s Sums, one *big.Int) *big.Int {
	total := new(big.Int).Mul(big.NewInt(sumA), s.A)
	total.Add(total, new(big.Int).Mul(big.NewInt(sumB), s.B))

	root := fixedpoint.Sqrt(fixedpoint.FromInt(sqrtArg, one), one)
	num := new(big.Int).Mul(big.NewInt(scale), root)
	return fixedpoint.Div(num, total, one)
}

// expectedTerms estimates the loop length from the precision of one.
func expectedTerms(one *big.Int) int {
	digits := float64(one.BitLen()-1) * math.Log10(2)
	return int(math.Ceil(digits/DigitsPerTerm)) + 1
}
