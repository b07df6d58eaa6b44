package roots

import "math"

// Brent finds a zero of f inside the bracket [a, b] with superlinear
// convergence.
//
// Description:
//
//	Forsythe–Malcolm–Moler zeroin: at every step the routine holds three
//	abscissae — b (best so far), a (previous) and c (an older point such
//	that b and c still confine the root) — and chooses between a
//	bisection step and a linear or inverse-quadratic interpolation step,
//	accepting interpolation only when it lands safely inside the current
//	interval. Superlinear convergence per evaluation makes this the
//	right bracketing scheme when each evaluation is expensive (extended
//	precision, costly models); plain Bisect needs fewer assumptions and
//	is the default for cheap float64 functions.
//
// Contracts:
//   - Same bracket precondition as Bisect (ErrInvalidBracket otherwise).
//   - Terminates when the step shrinks below 2·eps·|b| + Tol/2. The
//     result carries ExactZero when f hit zero, SignChangeAtUnit when
//     the final point still certifies at adjacent-float granularity,
//     and ToleranceMet otherwise — the fallback tag for any setting in
//     which adjacent-value stepping is not the operative notion of
//     convergence.
//
// Errors: ErrInvalidBracket, ErrConvergence.
//
// Complexity: superlinear (~1.6 order per evaluation near simple roots).
func Brent(f Func, a, b float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
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

	const eps = 0x1p-52
	var (
		c, fc                = a, fa
		prevStep             = b - a
		p, q, newStep, tlAct float64
	)

	limit := o.budget(maxIterBisect)
	for step := 0; step < limit; step++ {
		// Keep |f(b)| ≤ |f(c)| with b, c confining the root.
		if math.Abs(fc) < math.Abs(fb) {
			a, fa = b, fb
			b, fb = c, fc
			c, fc = a, fa
		}

		tlAct = 2*eps*math.Abs(b) + o.Tol/2
		newStep = (c - b) / 2

		if math.Abs(newStep) <= tlAct || fb == 0 {
			return finishBrent(f, b, fb)
		}

		// Try interpolation when the previous step was full-size and f
		// decreased in magnitude.
		if math.Abs(prevStep) >= tlAct && math.Abs(fa) > math.Abs(fb) {
			cb := c - b
			if a == c {
				// Two distinct points: linear (secant) interpolation.
				t1 := fb / fa
				p = cb * t1
				q = 1.0 - t1
			} else {
				// Three distinct points: inverse quadratic interpolation.
				q0 := fa / fc
				t1 := fb / fc
				t2 := fb / fa
				p = t2 * (cb*q0*(q0-t1) - (b-a)*(t1-1.0))
				q = (q0 - 1.0) * (t1 - 1.0) * (t2 - 1.0)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			// Accept only if the step stays well inside [b, c] and keeps
			// shrinking versus the step before last.
			if p < (0.75*cb*q-math.Abs(tlAct*q)/2) && p < math.Abs(prevStep*q/2) {
				newStep = p / q
			}
		}

		// Never step by less than the actual tolerance.
		if math.Abs(newStep) < tlAct {
			newStep = math.Copysign(tlAct, newStep)
		}

		prevStep = newStep
		a, fa = b, fb
		b += newStep
		fb = f(b)
		if fb == 0 {
			return b, ExactZero, nil
		}
		if (fb > 0) == (fc > 0) {
			// b and c no longer confine the root; reuse the previous best.
			c, fc = a, fa
		}
	}

	return 0, NoCertificate, &ConvergenceError{Best: b, FBest: fb, Steps: limit}
}

// finishBrent upgrades the termination point to the strongest available
// certificate: exact zero, adjacent-float sign change, else tolerance.
func finishBrent(f Func, x, fx float64) (float64, Certificate, error) {
	if fx == 0 {
		return x, ExactZero, nil
	}
	if cert, ok := certifyAt(f, x, fx); ok {
		return x, cert, nil
	}
	return x, ToleranceMet, nil
}
