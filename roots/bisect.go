package roots

import "math"

// Bisect finds a zero of f inside the bracket [a, b].
//
// Description:
//
//	Classic bisection: evaluate the midpoint, keep the half that still
//	brackets the sign change, stop when the bracket collapses to two
//	adjacent representable floats or a midpoint evaluates to exactly
//	zero. Bisection is preferred over superlinear bracketing schemes for
//	ordinary float64 work because it reaches machine-precision
//	convergence in a bounded number of evaluations for arbitrary,
//	possibly non-smooth, sign changes. When evaluations are expensive
//	relative to arithmetic, use Brent instead.
//
// Contracts:
//   - a and b must be finite; they are swapped if given in reverse order.
//   - f(a)·f(b) < 0 is required unless an endpoint is an exact zero;
//     otherwise ErrInvalidBracket is returned.
//   - On success the returned x satisfies min(a,b) ≤ x ≤ max(a,b) and
//     carries ExactZero or SignChangeAtUnit. Never ToleranceMet.
//
// Errors: ErrInvalidBracket, ErrConvergence (budget; see WithMaxIterations).
//
// Complexity: O(log₂((b−a)/ulp)) evaluations, O(1) space. Deterministic.
func Bisect(f Func, a, b float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
	return bisect(f, a, b, o)
}

// bisect is the option-resolved body shared with the hybrid fallback.
func bisect(f Func, a, b float64, o Options) (float64, Certificate, error) {
	if a > b {
		a, b = b, a
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a == b {
		return 0, NoCertificate, ErrInvalidBracket
	}

	fa := f(a)
	if fa == 0 {
		return a, ExactZero, nil
	}
	fb := f(b)
	if fb == 0 {
		return b, ExactZero, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) || math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, NoCertificate, ErrInvalidBracket
	}

	limit := o.budget(maxIterBisect)
	for step := 0; step < limit; step++ {
		m := midpoint(a, b)
		if m == a || m == b {
			// Adjacent floats: the unit bracket itself is the certificate.
			// Report the endpoint with the smaller residual.
			if math.Abs(fa) <= math.Abs(fb) {
				return a, SignChangeAtUnit, nil
			}
			return b, SignChangeAtUnit, nil
		}
		fm := f(m)
		if fm == 0 {
			return m, ExactZero, nil
		}
		if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = m, fm
		} else {
			b, fb = m, fm
		}
	}

	best, fbest := a, fa
	if math.Abs(fb) < math.Abs(fa) {
		best, fbest = b, fb
	}
	return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: limit}
}

// midpoint halves [a,b] without losing the exactness of the split.
// a + (b−a)/2 is exact whenever b−a does not overflow (Sterbenz), which
// keeps every midpoint on the dyadic grid and lets bisection visit an
// interior exact zero when one exists.
func midpoint(a, b float64) float64 {
	m := a + (b-a)/2
	if math.IsInf(m, 0) || m < a || m > b {
		m = 0.5*a + 0.5*b
	}
	return m
}
