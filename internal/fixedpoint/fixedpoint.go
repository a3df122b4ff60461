package fixedpoint

import (
	"math"
	"math/big"
)

var ten = big.NewInt(10)

// One returns the scale factor 10^p.
func One(p int) *big.Int {
	if p < 0 {
		panic("fixedpoint: negative precision")
	}
	return new(big.Int).Exp(ten, big.NewInt(int64(p)), nil)
}

// FromInt returns the fixed-point representation of the integer x.
func FromInt(x int64, one *big.Int) *big.Int {
	return new(big.Int).Mul(big.NewInt(x), one)
}

// Mul returns a*b/one.
func Mul(a, b, one *big.Int) *big.Int {
	z := new(big.Int).Mul(a, b)
	return z.Quo(z, one)
}

// Div returns a*one/b. It panics if b is zero.
func Div(a, b, one *big.Int) *big.Int {
	z := new(big.Int).Mul(a, one)
	return z.Quo(z, b)
}

// Sqrt returns the fixed-point square root of n, exactly floor(sqrt(n*one)).
//
// The first estimate comes from a float64 square root of n/one so that
// Newton-Raphson starts with ~15 correct digits and doubles them on every
// iteration. It panics if n is negative.
func Sqrt(n, one *big.Int) *big.Int {
	switch n.Sign() {
	case -1:
		panic("fixedpoint: square root of negative number")
	case 0:
		return new(big.Int)
	}

	nOne := new(big.Int).Mul(n, one)
	x := seed(n, one)
	if x.Sign() <= 0 {
		x.SetInt64(1)
	}

	// After one step x >= floor(sqrt(nOne)) and the sequence only decreases
	// until it reaches the root.
	var q big.Int
	step := func(x *big.Int) *big.Int {
		q.Quo(nOne, x)
		y := new(big.Int).Add(x, &q)
		return y.Rsh(y, 1)
	}
	x = step(x)
	for {
		y := step(x)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// seed approximates sqrt(n/one)*one from float64 arithmetic.
func seed(n, one *big.Int) *big.Int {
	ratio, _ := new(big.Float).Quo(new(big.Float).SetInt(n), new(big.Float).SetInt(one)).Float64()
	if math.IsInf(ratio, 0) || ratio <= 0 {
		// Out of float64 range: fall back to a power-of-two estimate.
		nOne := new(big.Int).Mul(n, one)
		return new(big.Int).Lsh(big.NewInt(1), uint(nOne.BitLen()+1)/2)
	}
	root := new(big.Float).SetFloat64(math.Sqrt(ratio))
	root.Mul(root, new(big.Float).SetInt(one))
	x, _ := root.Int(nil)
	return x
}
