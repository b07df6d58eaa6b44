package roots

import "math"

// hybrid is the default guess-based method (order 0).
//
// Description:
//
//	Per step it combines three ingredients:
//	 1. a damped Steffensen update, with the forward-difference offset
//	    clamped relative to the scale of the iterate;
//	 2. an inverse-quadratic fit through the three most recent iterates,
//	    used when it proposes a more conservative step;
//	 3. a bracketing fallback — the moment any two evaluated points
//	    bracket a sign change, the search hands the sub-bracket to
//	    bisection and finishes with a guaranteed certificate.
//	A worsening step (|f| more than doubles) is halved toward the
//	current iterate before being accepted.
//
//	The hybrid is deliberately forgiving of poor initial guesses and
//	oscillatory functions; it spends extra evaluations where the pure
//	high-order schemes would diverge or cycle. It never settles for
//	ToleranceMet: only ExactZero and SignChangeAtUnit are issued.
//
// Errors: ErrConvergence with the best iterate on budget exhaustion.
func hybrid(f Func, x0 float64, o Options) (float64, Certificate, error) {
	x := x0
	fx := f(x)

	// Idempotence: a previously returned root certifies immediately.
	if cert, ok := certifyAt(f, x, fx); ok {
		return x, cert, nil
	}

	// History ring for the quadratic fit: most recent last.
	hx := [3]float64{x, x, x}
	hf := [3]float64{fx, fx, fx}
	seen := 1

	best, fbest := x, fx
	limit := o.budget(maxIterHybrid)
	for n := 0; n < limit; n++ {
		// Damped Steffensen candidate. The companion point w is itself an
		// evaluation — check it for a bracket before anything else.
		h := dampedH(x, fx)
		if h == 0 {
			return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: n}
		}
		w := x + h
		fw := f(w)
		if fw == 0 {
			return w, ExactZero, nil
		}
		if oppositeSigns(fx, fw) {
			return bisect(f, math.Min(x, w), math.Max(x, w), o)
		}

		cand, ok := 0.0, false
		if g := (fw - fx) / h; g != 0 && !math.IsNaN(g) && !math.IsInf(g, 0) {
			cand = x - fx/g
			ok = !math.IsNaN(cand) && !math.IsInf(cand, 0)
		}

		// Quadratic-fit correction: prefer the inverse-quadratic proposal
		// when it takes a shorter, better-grounded step.
		if seen >= 3 {
			if q, okq := inverseQuadratic(hx, hf); okq {
				if !ok || math.Abs(q-x) < math.Abs(cand-x) {
					cand, ok = q, true
				}
			}
		}
		if !ok {
			return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: n}
		}
		cand = confine(x, cand, o)

		// Accept with damping: a step that more than doubles |f| is
		// halved toward x, a few times. Every probe is also a bracket
		// opportunity.
		fc := f(cand)
		for try := 0; try < 5; try++ {
			if fc == 0 {
				return cand, ExactZero, nil
			}
			if oppositeSigns(fx, fc) {
				return bisect(f, math.Min(x, cand), math.Max(x, cand), o)
			}
			if math.Abs(fc) <= 2*math.Abs(fx) {
				break
			}
			cand = midpoint(math.Min(x, cand), math.Max(x, cand))
			if cand == x {
				break
			}
			fc = f(cand)
		}

		if adjacentOrEqual(x, cand) {
			if cert, okc := certifyAt(f, cand, fc); okc {
				return cand, cert, nil
			}
		}

		if math.Abs(fc) < math.Abs(fbest) {
			best, fbest = cand, fc
		}
		hx[0], hx[1], hx[2] = hx[1], hx[2], cand
		hf[0], hf[1], hf[2] = hf[1], hf[2], fc
		seen++
		x, fx = cand, fc
	}

	return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: limit}
}

// dampedH clamps the Steffensen offset more aggressively than steffH:
// far from a root the raw offset f(x) can be enormous, and the hybrid
// prefers short, recoverable steps.
func dampedH(x, fx float64) float64 {
	lim := 0.25 * math.Max(1, math.Abs(x))
	if math.Abs(fx) > lim {
		return math.Copysign(lim, fx)
	}
	return fx
}

// inverseQuadratic interpolates x as a quadratic in f through three
// iterates and evaluates it at f = 0. Requires pairwise-distinct
// ordinates; reports false otherwise or on a non-finite result.
func inverseQuadratic(hx, hf [3]float64) (float64, bool) {
	f0, f1, f2 := hf[0], hf[1], hf[2]
	if f0 == f1 || f0 == f2 || f1 == f2 {
		return 0, false
	}
	q := hx[0]*f1*f2/((f0-f1)*(f0-f2)) +
		hx[1]*f0*f2/((f1-f0)*(f1-f2)) +
		hx[2]*f0*f1/((f2-f0)*(f2-f1))
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, false
	}
	return q, true
}
