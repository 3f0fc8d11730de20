// Package quadrature provides fixed-order Gauss-Legendre integration on a
// finite interval, for real- and complex-valued integrands.
//
// The rule is deliberately non-adaptive: it evaluates the integrand at a
// fixed set of abscissae and reports no error estimate. Callers choose the
// order and the truncation bound; convergence must be validated externally
// (see the study package). This is a documented limitation, not a defect.
package quadrature

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

var (
	// ErrInvalidOrder is returned for a non-positive abscissa count.
	ErrInvalidOrder = errors.New("quadrature: order must be positive")
	// ErrInvalidInterval is returned when the interval is not finite or a >= b.
	ErrInvalidInterval = errors.New("quadrature: interval must be finite with a < b")
)

// Rule holds the canonical Gauss-Legendre nodes and weights of a given
// order on [-1, 1]. A Rule is immutable once built and safe for concurrent
// use; computing it is the expensive step, so rules are meant to be built
// once (usually through a Cache) and reused across many integrations.
type Rule struct {
	order   int
	nodes   []float64
	weights []float64
}

// New computes the Gauss-Legendre rule of the given order on [-1, 1].
func New(order int) (*Rule, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	r := &Rule{
		order:   order,
		nodes:   make([]float64, order),
		weights: make([]float64, order),
	}
	quad.Legendre{}.FixedLocations(r.nodes, r.weights, -1, 1)
	return r, nil
}

// Order returns the abscissa count of the rule.
func (r *Rule) Order() int { return r.order }

// Integrate approximates the integral of f over [a, b] by rescaling the
// canonical nodes via x -> (x+1)/2*(b-a)+a and the weights by (b-a)/2.
//
// The result is exact for polynomials of degree <= 2*order-1. For smooth
// rapidly decaying integrands convergence is spectral in the order, up to
// the bias introduced by truncating an infinite domain at b.
func (r *Rule) Integrate(f func(float64) float64, a, b float64) (float64, error) {
	if err := checkInterval(a, b); err != nil {
		return 0, err
	}
	half := 0.5 * (b - a)
	var sum float64
	for i, x := range r.nodes {
		sum += f((x+1)*half+a) * r.weights[i]
	}
	return sum * half, nil
}

// IntegrateComplex is Integrate for a complex-valued integrand of a real
// variable, as produced by characteristic-function pricers.
func (r *Rule) IntegrateComplex(f func(float64) complex128, a, b float64) (complex128, error) {
	if err := checkInterval(a, b); err != nil {
		return 0, err
	}
	half := 0.5 * (b - a)
	var sum complex128
	for i, x := range r.nodes {
		sum += f((x+1)*half+a) * complex(r.weights[i], 0)
	}
	return sum * complex(half, 0), nil
}

func checkInterval(a, b float64) error {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)
	}
	return nil
}

// Cache memoizes rules by order. Population is lazy and idempotent: the
// rule for each distinct order is computed at most once, and first use from
// multiple goroutines is safe. Tests can use isolated instances instead of
// the shared package-level cache.
type Cache struct {
	mu    sync.Mutex
	rules map[int]*Rule
}

// NewCache returns an empty rule cache.
func NewCache() *Cache {
	return &Cache{rules: make(map[int]*Rule)}
}

// Rule returns the memoized rule for the given order, computing it on
// first use.
func (c *Cache) Rule(order int) (*Rule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.rules[order]; ok {
		return r, nil
	}
	r, err := New(order)
	if err != nil {
		return nil, err
	}
	c.rules[order] = r
	return r, nil
}

// defaultCache backs the package-level convenience functions.
var defaultCache = NewCache()

// Get returns the shared process-wide rule for the given order.
func Get(order int) (*Rule, error) {
	return defaultCache.Rule(order)
}

// Integrate approximates the integral of f over [a, b] with the shared
// rule of the given order.
func Integrate(f func(float64) float64, order int, a, b float64) (float64, error) {
	r, err := Get(order)
	if err != nil {
		return 0, err
	}
	return r.Integrate(f, a, b)
}

// IntegrateComplex is Integrate for a complex-valued integrand.
func IntegrateComplex(f func(float64) complex128, order int, a, b float64) (complex128, error) {
	r, err := Get(order)
	if err != nil {
		return 0, err
	}
	return r.IntegrateComplex(f, a, b)
}
