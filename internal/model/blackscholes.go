package model

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholes is the log-normal model. It doubles as the ground truth for
// the Fourier pricers through its closed-form forward price.
//
// Immutable after construction; ln(forward) is cached because every
// characteristic-function evaluation needs it.
type BlackScholes struct {
	forward float64
	vol     float64
	logF    float64
}

// NewBlackScholes builds a Black-Scholes model with the given forward
// level (> 0) and volatility (>= 0).
func NewBlackScholes(forward, vol float64) (*BlackScholes, error) {
	if forward <= 0 {
		return nil, errPositive("NewBlackScholes", "forward", forward)
	}
	if vol < 0 {
		return nil, errNonNegative("NewBlackScholes", "volatility", vol)
	}
	return &BlackScholes{forward: forward, vol: vol, logF: math.Log(forward)}, nil
}

// Forward returns the forward level.
func (m *BlackScholes) Forward() float64 { return m.forward }

// Vol returns the volatility.
func (m *BlackScholes) Vol() float64 { return m.vol }

// ForwardPrice returns the closed-form undiscounted forward price of a
// European call: F*Phi(d1) - K*Phi(d2). It is the reference the inversion
// pricers are validated against.
//
// Requires maturity > 0 and volatility > 0; a zero volatility makes the
// d1/d2 formulas divide by zero and is reported as a DomainError.
func (m *BlackScholes) ForwardPrice(strike, maturity float64) (float64, error) {
	if strike <= 0 {
		return 0, errPositive("ForwardPrice", "strike", strike)
	}
	if maturity <= 0 {
		return 0, errPositive("ForwardPrice", "maturity", maturity)
	}
	if m.vol == 0 {
		return 0, &DomainError{Op: "ForwardPrice", Reason: "volatility must be positive for the closed form"}
	}
	sqT := m.vol * math.Sqrt(maturity)
	d1 := (m.logF - math.Log(strike) + 0.5*m.vol*m.vol*maturity) / sqT
	d2 := d1 - sqT
	return m.forward*distuv.UnitNormal.CDF(d1) - strike*distuv.UnitNormal.CDF(d2), nil
}

// Vega returns the sensitivity of the forward price to volatility,
// F*phi(d1)*sqrt(T). Zero when maturity or volatility is non-positive.
func (m *BlackScholes) Vega(strike, maturity float64) float64 {
	if strike <= 0 || maturity <= 0 || m.vol <= 0 {
		return 0
	}
	sqT := m.vol * math.Sqrt(maturity)
	d1 := (m.logF - math.Log(strike) + 0.5*m.vol*m.vol*maturity) / sqT
	return m.forward * distuv.UnitNormal.Prob(d1) * math.Sqrt(maturity)
}

// CharacteristicFunction returns exp(i*u*lnF - 0.5*sigma^2*T*u*(u+i)).
func (m *BlackScholes) CharacteristicFunction(u complex128, maturity float64) complex128 {
	return cmplx.Exp(1i*u*complex(m.logF, 0) - complex(0.5*m.vol*m.vol*maturity, 0)*u*(u+1i))
}
