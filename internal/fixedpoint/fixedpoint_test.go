package fixedpoint_test

import (
	"math/big"
	"testing"

	"picipher/internal/fixedpoint"
)

// checkFloorRoot asserts r*r <= n*one < (r+1)*(r+1).
func checkFloorRoot(t *testing.T, r, n, one *big.Int) {
	t.Helper()
	target := new(big.Int).Mul(n, one)
	sq := new(big.Int).Mul(r, r)
	if sq.Cmp(target) > 0 {
		t.Fatalf("root too large: r^2 - n*one = %s", new(big.Int).Sub(sq, target))
	}
	r1 := new(big.Int).Add(r, big.NewInt(1))
	if new(big.Int).Mul(r1, r1).Cmp(target) <= 0 {
		t.Fatalf("root too small for n=%s", n)
	}
}

func TestSqrt_Chudnovsky10005(t *testing.T) {
	for _, p := range []int{10, 50, 1000, 20000} {
		one := fixedpoint.One(p)
		n := fixedpoint.FromInt(10005, one)
		r := fixedpoint.Sqrt(n, one)
		checkFloorRoot(t, r, n, one)

		// sqrt(10005) = 100.024996875781005944792187876357778001595...
		want := "10002499687578100594479218787635777800159"
		got := r.String()
		if k := min(len(got), len(want)); got[:k] != want[:k] {
			t.Fatalf("P=%d: got %s, want prefix %s", p, got[:k], want[:k])
		}
	}
}

func TestSqrt_Representative(t *testing.T) {
	one := fixedpoint.One(30)
	cases := []*big.Int{
		big.NewInt(1),
		fixedpoint.FromInt(2, one),
		fixedpoint.FromInt(4, one),
		fixedpoint.FromInt(1_000_000_007, one),
		new(big.Int).Sub(fixedpoint.FromInt(9, one), big.NewInt(1)),
		new(big.Int).Exp(big.NewInt(10), big.NewInt(400), nil), // far beyond float64
	}
	for _, n := range cases {
		checkFloorRoot(t, fixedpoint.Sqrt(n, one), n, one)
	}

	if got := fixedpoint.Sqrt(fixedpoint.FromInt(4, one), one); got.Cmp(fixedpoint.FromInt(2, one)) != 0 {
		t.Fatalf("sqrt(4) = %s, want exactly 2*one", got)
	}
	if got := fixedpoint.Sqrt(new(big.Int), one); got.Sign() != 0 {
		t.Fatalf("sqrt(0) = %s, want 0", got)
	}
}

func TestSqrt_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative input")
		}
	}()
	fixedpoint.Sqrt(big.NewInt(-1), fixedpoint.One(5))
}

func TestMulDiv(t *testing.T) {
	one := fixedpoint.One(6)
	a := big.NewInt(1_500_000) // 1.5
	b := big.NewInt(2_250_000) // 2.25

	if got := fixedpoint.Mul(a, b, one); got.Int64() != 3_375_000 {
		t.Fatalf("Mul = %s, want 3375000", got)
	}
	if got := fixedpoint.Div(b, a, one); got.Int64() != 1_500_000 {
		t.Fatalf("Div = %s, want 1500000", got)
	}
	// Truncation toward zero: -1/3 at six digits is -0.333333.
	if got := fixedpoint.Div(big.NewInt(-1_000_000), big.NewInt(3_000_000), one); got.Int64() != -333_333 {
		t.Fatalf("Div(-1, 3) = %s, want -333333", got)
	}
}
