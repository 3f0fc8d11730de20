// Package model defines the characteristic-function models the Fourier
// pricers consume. A model exposes its forward level and the risk-neutral
// characteristic function of the log-forward price, evaluated at complex
// frequency arguments (the pricers evaluate it off the real axis).
//
// Black-Scholes and Variance Gamma are peers behind the same interface; any
// process with a known characteristic function plugs in without new
// pricing code.
package model

import "fmt"

// Model is the capability set a Fourier pricer needs.
type Model interface {
	// Forward returns the undiscounted forward level of the underlying.
	Forward() float64
	// CharacteristicFunction evaluates E[exp(i*u*ln F_T)] at a complex
	// frequency u for the given maturity in years.
	CharacteristicFunction(u complex128, maturity float64) complex128
}

// DomainError reports a parameter combination outside the mathematical
// domain of a formula (for example a non-positive argument to a logarithm).
type DomainError struct {
	Op     string // operation that failed, e.g. "NewVarianceGamma"
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("model: %s: %s", e.Op, e.Reason)
}

func errPositive(op, name string, v float64) error {
	return fmt.Errorf("model: %s: %s must be positive, got %g", op, name, v)
}

func errNonNegative(op, name string, v float64) error {
	return fmt.Errorf("model: %s: %s must be non-negative, got %g", op, name, v)
}
