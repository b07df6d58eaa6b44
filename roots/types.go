// Core types, sentinel errors and configuration options of the
// root-search framework.

package roots

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the root-search framework.
var (
	// ErrInvalidBracket indicates that f(a) and f(b) share a sign, so the
	// interval [a,b] is not a valid bracket.
	ErrInvalidBracket = errors.New("roots: endpoints do not bracket a sign change")

	// ErrInvalidOrder indicates an unsupported convergence-order selector;
	// valid orders are 0 (hybrid default), 1, 2, 5, 8 and 16.
	ErrInvalidOrder = errors.New("roots: unsupported convergence order")

	// ErrZeroDerivative indicates that the derivative (or the Halley
	// denominator) evaluated to exactly zero at the current iterate.
	ErrZeroDerivative = errors.New("roots: derivative vanished at the current iterate")

	// ErrConvergence indicates that the iteration budget was exhausted
	// before any certificate could be issued. Match with errors.Is; the
	// concrete value is a *ConvergenceError carrying the best iterate.
	ErrConvergence = errors.New("roots: iteration budget exhausted without a certificate")
)

// ConvergenceError reports a failed search together with the most
// promising iterate seen, for diagnostic use. It matches ErrConvergence
// under errors.Is.
type ConvergenceError struct {
	Best  float64 // iterate with the smallest |f| observed
	FBest float64 // f(Best)
	Steps int     // iterations consumed
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("roots: no certificate after %d iterations (best x=%g, f(x)=%g)", e.Steps, e.Best, e.FBest)
}

// Unwrap makes errors.Is(err, ErrConvergence) succeed.
func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// Func is a scalar real function of one real variable. The framework
// assumes it is pure and inexpensive to re-evaluate; the evaluation count
// is the dominant cost metric throughout.
type Func func(float64) float64

// Certificate tags a returned root with the strength of its guarantee.
type Certificate int

const (
	// NoCertificate is the zero value; never returned alongside a nil error.
	NoCertificate Certificate = iota

	// ExactZero: f(x) == 0 exactly.
	ExactZero

	// SignChangeAtUnit: f changes sign between x and an adjacent
	// representable float. Mathematically guaranteed for continuous f.
	SignChangeAtUnit

	// ToleranceMet: |f(x)| ≤ Tol. Plausible, not guaranteed; issued only
	// by the high-order derivative-free methods.
	ToleranceMet
)

// String returns a short human-readable tag name.
func (c Certificate) String() string {
	switch c {
	case ExactZero:
		return "exact-zero"
	case SignChangeAtUnit:
		return "sign-change-at-unit"
	case ToleranceMet:
		return "tolerance-met"
	default:
		return "no-certificate"
	}
}

// Options configures a single search call.
//
// Order         – convergence-order selector for FindRootFrom:
//
//	0 (default) selects the hybrid method; 1, 2, 5, 8, 16
//	select the pure derivative-free schemes.
//
// MaxIterations – per-call iteration budget, the sole safeguard against
//
//	non-termination. 0 selects a per-method default
//	(bisection 4096, derivative-free and classical 128,
//	hybrid 512).
//
// Tol           – absolute residual threshold for the ToleranceMet
//
//	certificate of the high-order methods, and the x-width
//	target of Brent. Default 1e-12.
//
// Lo, Hi        – optional confining bracket for FindRootFrom; every step
//
//	is clamped to stay inside, out-of-bracket updates are
//	replaced by a bisection midpoint. Active only when
//	HasBracket is true.
//
// Subdivisions  – number of panels used by the FindRealRoots sieve.
//
//	Default 512.
type Options struct {
	Order         int
	MaxIterations int
	Tol           float64
	Lo, Hi        float64
	HasBracket    bool
	Subdivisions  int
}

// Option represents a functional option for configuring a search call.
type Option func(*Options)

// WithOrder selects the convergence order for FindRootFrom.
// Validation is deferred to the entry point, which reports
// ErrInvalidOrder for unsupported selectors.
func WithOrder(order int) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithMaxIterations caps the number of iterations for this call.
// Must be positive; non-positive values panic (programmer error).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("roots: MaxIterations must be positive")
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the absolute residual threshold used by the
// ToleranceMet certificate. Must be positive; non-positive values panic.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("roots: Tol must be positive")
		}
		o.Tol = tol
	}
}

// WithBracket confines a guess-based search to [lo, hi]. The bracket is a
// caller-declared guess window: no sign-change precondition is checked.
// Requires lo < hi; anything else panics (programmer error).
func WithBracket(lo, hi float64) Option {
	return func(o *Options) {
		if !(lo < hi) {
			panic("roots: confining bracket requires lo < hi")
		}
		o.Lo, o.Hi, o.HasBracket = lo, hi, true
	}
}

// WithSubdivisions sets the panel count of the FindRealRoots sieve.
// Must be positive; non-positive values panic.
func WithSubdivisions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("roots: Subdivisions must be positive")
		}
		o.Subdivisions = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use as a starting point for functional-option overrides.
//
// Defaults:
//   - Order:         0 (hybrid method).
//   - MaxIterations: 0 (per-method default; see Options).
//   - Tol:           1e-12.
//   - Subdivisions:  512.
//   - No confining bracket.
func DefaultOptions() Options {
	return Options{
		Order:        0,
		Tol:          defaultTol,
		Subdivisions: defaultSubdivisions,
	}
}

// Per-method iteration defaults, applied when MaxIterations == 0.
const (
	defaultTol          = 1e-12
	defaultSubdivisions = 512

	maxIterBisect    = 4096 // bisection narrows one bit per step; generous
	maxIterIterative = 128  // pure derivative-free and classical methods
	maxIterHybrid    = 512  // hybrid trades evaluations for robustness
)

// apply folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// budget resolves the per-method iteration budget.
func (o Options) budget(fallback int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return fallback
}
