package roots

import "math"

// Classical derivative-based iterations. Derivative providers are plain
// Func callables — symbolic, automatic or finite-difference, supplied by
// the caller; no contract beyond "takes a real, returns a real" is
// assumed. All three methods terminate on ExactZero or SignChangeAtUnit,
// or fail with ErrConvergence once the budget is spent; ToleranceMet is
// never issued here.

// Newton runs the Newton–Raphson iteration x₁ = x − f(x)/f'(x) from x0.
//
// Errors: ErrZeroDerivative when f'(x) is exactly zero at an iterate,
// ErrConvergence on budget exhaustion.
//
// Complexity: quadratic convergence near a simple root; one f and one
// f' evaluation per step.
func Newton(f, fp Func, x0 float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
	return classical(f, x0, o, func(x, fx float64) (float64, error) {
		d := fp(x)
		if d == 0 {
			return 0, ErrZeroDerivative
		}
		return x - fx/d, nil
	})
}

// Halley runs the cubic-order iteration
// x₁ = x − 2·f·f' / (2·f'² − f·f'') from x0, consuming both a first and
// a second derivative provider.
//
// Errors: ErrZeroDerivative when the denominator is exactly zero,
// ErrConvergence on budget exhaustion.
func Halley(f, fp, fpp Func, x0 float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
	return classical(f, x0, o, func(x, fx float64) (float64, error) {
		d1 := fp(x)
		d2 := fpp(x)
		den := 2*d1*d1 - fx*d2
		if den == 0 {
			return 0, ErrZeroDerivative
		}
		return x - 2*fx*d1/den, nil
	})
}

// Secant iterates from the two starting points x0, x1, approximating the
// derivative from the two most recent function values.
//
// Errors: ErrConvergence — also when the divided difference degenerates
// before any certificate is available.
func Secant(f Func, x0, x1 float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
	xp, fpv := x0, f(x0)
	if cert, ok := certifyAt(f, xp, fpv); ok {
		return xp, cert, nil
	}
	return classical(f, x1, o, func(x, fx float64) (float64, error) {
		if x == xp {
			return 0, errStalled
		}
		d := (fx - fpv) / (x - xp)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, errStalled
		}
		xp, fpv = x, fx
		return x - fx/d, nil
	})
}

// errStalled is an internal marker: the update rule cannot advance, and
// the failure should surface as ErrConvergence with the best iterate.
var errStalled = &ConvergenceError{}

// classical drives a single-point update rule with the shared
// certificate/budget policy of the derivative-based methods.
func classical(f Func, x0 float64, o Options, step func(x, fx float64) (float64, error)) (float64, Certificate, error) {
	x := x0
	fx := f(x)
	if cert, ok := certifyAt(f, x, fx); ok {
		return x, cert, nil
	}

	best, fbest := x, fx
	limit := o.budget(maxIterIterative)
	for n := 0; n < limit; n++ {
		x1, err := step(x, fx)
		if err == errStalled {
			return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: n}
		}
		if err != nil {
			return 0, NoCertificate, err
		}
		if math.IsNaN(x1) || math.IsInf(x1, 0) {
			return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: n}
		}

		fx1 := f(x1)
		if fx1 == 0 {
			return x1, ExactZero, nil
		}
		if adjacentOrEqual(x, x1) {
			if cert, ok := certifyAt(f, x1, fx1); ok {
				return x1, cert, nil
			}
		}
		if math.Abs(fx1) < math.Abs(fbest) {
			best, fbest = x1, fx1
		}
		x, fx = x1, fx1
	}

	return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: limit}
}
