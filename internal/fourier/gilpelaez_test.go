package fourier

import (
	"errors"
	"math"
	"testing"

	"github.com/contactkeval/option-fourier/internal/model"
)

const (
	testForward  = 100.0
	testStrike   = 125.0
	testVol      = 0.4
	testMaturity = 5.0
	testBound    = 1000.0
)

func newBS(t *testing.T) *model.BlackScholes {
	t.Helper()
	m, err := model.NewBlackScholes(testForward, testVol)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func closedForm(t *testing.T, m *model.BlackScholes) float64 {
	t.Helper()
	ref, err := m.ForwardPrice(testStrike, testMaturity)
	if err != nil {
		t.Fatalf("closed form: %v", err)
	}
	return ref
}

func TestGilPelaezMatchesClosedForm(t *testing.T) {
	m := newBS(t)
	ref := closedForm(t, m)

	res, err := GilPelaez(m, testStrike, testMaturity, 128, testBound)
	if err != nil {
		t.Fatalf("gil-pelaez: %v", err)
	}
	if math.Abs(res.Price-ref) > 1e-3 {
		t.Fatalf("price mismatch at n=128: got %.9f want %.9f", res.Price, ref)
	}
}

// The absolute error versus the closed form must not increase as the
// abscissa count grows, until it hits the machine-precision floor.
func TestGilPelaezMonotoneConvergence(t *testing.T) {
	m := newBS(t)
	ref := closedForm(t, m)

	orders := []int{2, 4, 8, 16, 32, 64, 128, 256}
	errs := make([]float64, len(orders))
	for i, n := range orders {
		res, err := GilPelaez(m, testStrike, testMaturity, n, testBound)
		if err != nil {
			t.Fatalf("gil-pelaez n=%d: %v", n, err)
		}
		errs[i] = math.Abs(res.Price - ref)
	}

	const floor = 1e-9
	for i := 0; i+1 < len(errs); i++ {
		if errs[i] <= floor {
			break
		}
		if errs[i+1] > errs[i]+1e-9 {
			t.Fatalf("error increased from n=%d (%.3e) to n=%d (%.3e)",
				orders[i], errs[i], orders[i+1], errs[i+1])
		}
	}
	if errs[len(errs)-1] > 1e-9 {
		t.Fatalf("error at n=256 should be at machine-precision floor, got %.3e", errs[len(errs)-1])
	}
}

// The intermediate probability terms are Phi(d1) and Phi(d2) in the
// Black-Scholes case.
func TestGilPelaezProbabilities(t *testing.T) {
	m := newBS(t)
	res, err := GilPelaez(m, testStrike, testMaturity, 256, testBound)
	if err != nil {
		t.Fatalf("gil-pelaez: %v", err)
	}

	sqT := testVol * math.Sqrt(testMaturity)
	d1 := (math.Log(testForward/testStrike) + 0.5*testVol*testVol*testMaturity) / sqT
	d2 := d1 - sqT
	phi := func(x float64) float64 { return 0.5 * (1 + math.Erf(x/math.Sqrt2)) }

	if math.Abs(res.StateProb-phi(d1)) > 1e-9 {
		t.Errorf("state probability: got %.12f want %.12f", res.StateProb, phi(d1))
	}
	if math.Abs(res.ExerciseProb-phi(d2)) > 1e-9 {
		t.Errorf("exercise probability: got %.12f want %.12f", res.ExerciseProb, phi(d2))
	}
}

// degenerate is a Model whose characteristic function vanishes everywhere,
// so the Gil-Pelaez normalization phi(-i, T) is zero.
type degenerate struct{}

func (degenerate) Forward() float64 { return 100 }
func (degenerate) CharacteristicFunction(u complex128, maturity float64) complex128 {
	return 0
}

func TestGilPelaezZeroNormalization(t *testing.T) {
	_, err := GilPelaez(degenerate{}, testStrike, testMaturity, 64, testBound)
	var de *model.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError for vanishing phi(-i), got %v", err)
	}
}

func TestGilPelaezInvalidInputs(t *testing.T) {
	m := newBS(t)
	cases := []struct {
		name                    string
		strike, maturity, bound float64
		n                       int
	}{
		{"zero strike", 0, 1, 100, 64},
		{"negative maturity", 100, -1, 100, 64},
		{"zero bound", 100, 1, 0, 64},
		{"infinite bound", 100, 1, math.Inf(1), 64},
		{"zero order", 100, 1, 100, 0},
	}
	for _, c := range cases {
		if _, err := GilPelaez(m, c.strike, c.maturity, c.n, c.bound); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
