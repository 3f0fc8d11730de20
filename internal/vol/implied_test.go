package vol

import (
	"errors"
	"math"
	"testing"

	"github.com/contactkeval/option-fourier/internal/model"
)

func TestImpliedVolReference(t *testing.T) {
	m, err := model.NewBlackScholes(100, 0.4)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	price, err := m.ForwardPrice(125, 5)
	if err != nil {
		t.Fatalf("forward price: %v", err)
	}

	got, err := ImpliedVol(100, 125, 5, price)
	if err != nil {
		t.Fatalf("implied vol: %v", err)
	}
	if math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("implied vol mismatch: got %.12f want 0.4", got)
	}
}

// Round-trip law: inverting a closed-form price recovers the volatility
// that produced it.
func TestImpliedVolRoundTrip(t *testing.T) {
	cases := []struct {
		forward, strike, maturity, vol float64
	}{
		{100, 125, 5, 0.4},
		{100, 80, 1, 0.25},
		{1, 1.1, 0.25, 0.12},
		{50, 50, 2, 0.6},
	}
	for _, c := range cases {
		m, err := model.NewBlackScholes(c.forward, c.vol)
		if err != nil {
			t.Fatalf("new model: %v", err)
		}
		price, err := m.ForwardPrice(c.strike, c.maturity)
		if err != nil {
			t.Fatalf("forward price: %v", err)
		}
		got, err := ImpliedVol(c.forward, c.strike, c.maturity, price)
		if err != nil {
			t.Fatalf("implied vol for F=%g K=%g T=%g vol=%g: %v",
				c.forward, c.strike, c.maturity, c.vol, err)
		}
		if math.Abs(got-c.vol) > 1e-9 {
			t.Errorf("round trip F=%g K=%g T=%g: got %.12f want %g",
				c.forward, c.strike, c.maturity, got, c.vol)
		}
	}
}

func TestImpliedVolConvergenceError(t *testing.T) {
	// a price above the forward violates no-arbitrage bounds, so no
	// volatility can reproduce it
	_, err := ImpliedVol(100, 125, 5, 200)
	var ce *ConvergenceError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConvergenceError, got %v", err)
	}
	if ce.Forward != 100 || ce.Strike != 125 || ce.Maturity != 5 || ce.Price != 200 {
		t.Fatalf("ConvergenceError should carry the failing inputs, got %+v", ce)
	}
}

func TestImpliedVolInvalidInputs(t *testing.T) {
	if _, err := ImpliedVol(0, 125, 5, 10); err == nil {
		t.Error("expected error for zero forward")
	}
	if _, err := ImpliedVol(100, -125, 5, 10); err == nil {
		t.Error("expected error for negative strike")
	}
	if _, err := ImpliedVol(100, 125, 0, 10); err == nil {
		t.Error("expected error for zero maturity")
	}
}
