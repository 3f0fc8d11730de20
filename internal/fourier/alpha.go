package fourier

import (
	"fmt"
	"math"

	"github.com/contactkeval/option-fourier/internal/model"
)

// OptimalAlphaVG returns the payoff-independent saddle-point damping
// exponent for a Variance Gamma model at the given strike and maturity.
// It lies inside the strip of analyticity of the characteristic function
// and minimizes the variance of the Carr-Madan integrand.
//
// With f = lnF + omega*T, m = f - lnK and s² = sigma²:
//
//	a  = -theta/s² - 1 + T/(nu*m)
//	b² = theta²/s⁴ + 2/(nu*s²) + T²/(nu²*m²)
//	α* = a - b  if m > 0, else a + b
//
// Fails with a DomainError when m = 0 (strike equal to the drift-adjusted
// forward in log space).
func OptimalAlphaVG(vg *model.VarianceGamma, strike, maturity float64) (float64, error) {
	if strike <= 0 {
		return 0, fmt.Errorf("fourier: strike must be positive, got %g", strike)
	}
	if maturity <= 0 {
		return 0, fmt.Errorf("fourier: maturity must be positive, got %g", maturity)
	}
	f := math.Log(vg.Forward()) + vg.Omega()*maturity
	mny := f - math.Log(strike)
	if mny == 0 {
		return 0, &model.DomainError{
			Op:     "OptimalAlphaVG",
			Reason: "drift-adjusted log-moneyness is zero",
		}
	}
	s2 := vg.Sigma() * vg.Sigma()
	nu := vg.Nu()
	a := -vg.Theta()/s2 - 1 + maturity/(nu*mny)
	b2 := vg.Theta()*vg.Theta()/(s2*s2) + 2/(nu*s2) + maturity*maturity/(nu*nu*mny*mny)
	if mny > 0 {
		return a - math.Sqrt(b2), nil
	}
	return a + math.Sqrt(b2), nil
}
