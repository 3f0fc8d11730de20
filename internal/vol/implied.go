// Package vol inverts option prices to Black-Scholes implied volatilities,
// the common scale on which prices from different models and inversion
// methods are compared.
package vol

import (
	"fmt"
	"math"

	"github.com/contactkeval/option-fourier/internal/model"
)

// ConvergenceError reports that the root-finder failed to meet its
// tolerance within the iteration budget. It carries the failing inputs for
// diagnosis; there is no closed-form fallback.
type ConvergenceError struct {
	Forward  float64
	Strike   float64
	Maturity float64
	Price    float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("vol: implied volatility did not converge for forward=%g strike=%g maturity=%g price=%g",
		e.Forward, e.Strike, e.Maturity, e.Price)
}

const (
	initialGuess = 0.2
	maxIter      = 100
	priceTol     = 1e-12
	minVega      = 1e-12
)

// ImpliedVol finds the volatility at which the Black-Scholes undiscounted
// forward price of a call matches the given price, by Newton iteration on
// the analytic vega from a fixed initial guess. Guardrails clamp the
// iterate to (0, 5]; if the tolerance is not met within the budget the
// call fails with a ConvergenceError.
func ImpliedVol(forward, strike, maturity, price float64) (float64, error) {
	if forward <= 0 {
		return 0, fmt.Errorf("vol: forward must be positive, got %g", forward)
	}
	if strike <= 0 {
		return 0, fmt.Errorf("vol: strike must be positive, got %g", strike)
	}
	if maturity <= 0 {
		return 0, fmt.Errorf("vol: maturity must be positive, got %g", maturity)
	}

	sigma := initialGuess
	for i := 0; i < maxIter; i++ {
		m, err := model.NewBlackScholes(forward, sigma)
		if err != nil {
			return 0, err
		}
		p, err := m.ForwardPrice(strike, maturity)
		if err != nil {
			return 0, err
		}
		diff := p - price
		if math.Abs(diff) < priceTol {
			return sigma, nil
		}
		vega := m.Vega(strike, maturity)
		if vega < minVega {
			break
		}
		sigma -= diff / vega
		// keep the iterate inside the solver's working range
		if sigma <= 0 {
			sigma = 1e-4
		}
		if sigma > 5 {
			sigma = 5
		}
	}
	return 0, &ConvergenceError{Forward: forward, Strike: strike, Maturity: maturity, Price: price}
}
