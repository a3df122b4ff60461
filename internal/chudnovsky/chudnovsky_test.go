package chudnovsky_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"picipher/internal/chudnovsky"
	"picipher/internal/fixedpoint"
)

// piPrefix is "3" followed by the first 100 decimals of pi.
const piPrefix = "3" +
	"1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

// machinPi computes pi = 16*atan(1/5) - 4*atan(1/239) in fixed point as an
// independent reference.
func machinPi(one *big.Int) *big.Int {
	a := arctanInv(5, one)
	b := arctanInv(239, one)
	a.Mul(a, big.NewInt(16))
	b.Mul(b, big.NewInt(4))
	return a.Sub(a, b)
}

func arctanInv(x int64, one *big.Int) *big.Int {
	sum := new(big.Int)
	power := new(big.Int).Quo(one, big.NewInt(x))
	x2 := big.NewInt(x * x)
	var term big.Int
	for k := int64(0); power.Sign() != 0; k++ {
		term.Quo(power, big.NewInt(2*k+1))
		if k%2 == 0 {
			sum.Add(sum, &term)
		} else {
			sum.Sub(sum, &term)
		}
		power.Quo(power, x2)
	}
	return sum
}

func TestPi_KnownPrefix(t *testing.T) {
	got := chudnovsky.Pi(fixedpoint.One(140)).String()
	if len(got) != 141 {
		t.Fatalf("len = %d, want P+1 = 141", len(got))
	}
	if !strings.HasPrefix(got, piPrefix) {
		t.Fatalf("got %s..., want %s...", got[:40], piPrefix[:40])
	}
}

func TestSum_TerminatesByUnderflow(t *testing.T) {
	for _, p := range []int{0, 14, 1000, 5000} {
		s := chudnovsky.Sum(fixedpoint.One(p), nil)
		want := float64(p) / chudnovsky.DigitsPerTerm
		if float64(s.Terms) < want-1 || float64(s.Terms) > want+3 {
			t.Fatalf("P=%d: %d terms, expected about %.1f", p, s.Terms, want)
		}
		if s.A.Sign() <= 0 {
			t.Fatalf("P=%d: a_sum must stay positive, got %s", p, s.A)
		}
	}
}

func TestCalculator_MatchesMachin(t *testing.T) {
	const n = 3000
	calc := chudnovsky.New(logr.Discard(), nil)
	got, err := calc.ComputeDigits(n)
	if err != nil {
		t.Fatalf("ComputeDigits: %v", err)
	}
	want := machinPi(fixedpoint.One(n + 20)).String()[:n]
	if got.String() != want {
		for i := 0; i < n; i++ {
			if got.String()[i] != want[i] {
				t.Fatalf("first mismatch at index %d", i)
			}
		}
	}
}

func TestCalculator_ReportsProgress(t *testing.T) {
	var reports []float64
	calc := chudnovsky.New(logr.Discard(), func(p float64) { reports = append(reports, p) })
	if _, err := calc.ComputeDigits(2000); err != nil {
		t.Fatalf("ComputeDigits: %v", err)
	}
	if len(reports) == 0 {
		t.Fatal("no progress reported")
	}
	if len(reports) > 102 {
		t.Fatalf("too many reports: %d", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Fatalf("progress went backwards: %v -> %v", reports[i-1], reports[i])
		}
	}
	if last := reports[len(reports)-1]; last != 1 {
		t.Fatalf("final progress = %v, want 1", last)
	}
}

func TestCalculator_RejectsNonPositive(t *testing.T) {
	calc := chudnovsky.New(logr.Discard(), nil)
	if _, err := calc.ComputeDigits(0); err == nil {
		t.Fatal("expected error for zero digits")
	}
}

func TestCalculator_HundredThousandDigits(t *testing.T) {
	if testing.Short() {
		t.Skip("full 100,000-digit computation")
	}
	const n = 100_000
	calc := chudnovsky.New(logr.Discard(), nil)
	got, err := calc.ComputeDigits(n)
	if err != nil {
		t.Fatalf("ComputeDigits: %v", err)
	}
	if got.Len() != n {
		t.Fatalf("len = %d, want %d", got.Len(), n)
	}
	s := got.String()
	if !strings.HasPrefix(s, piPrefix) {
		t.Fatalf("prefix mismatch: %s", s[:40])
	}
	for i := 0; i < n; i++ {
		if s[i] < '0' || s[i] > '9' {
			t.Fatalf("non-digit %q at %d", s[i], i)
		}
	}

	want := machinPi(fixedpoint.One(n + 40)).String()[:n]
	if s != want {
		for i := 0; i < n; i++ {
			if s[i] != want[i] {
				t.Fatalf("first mismatch with Machin reference at index %d", i)
			}
		}
	}
}
