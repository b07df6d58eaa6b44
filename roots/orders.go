package roots

import "math"

// This file implements the pure derivative-free schemes of fixed
// convergence order. Every scheme is built from forward-difference
// secant-like approximations to the Newton step; no derivative is ever
// evaluated.
//
//	order 1  — secant, seeded with a Steffensen-style companion point.
//	order 2  — Steffensen: f'(x) ≈ (f(x+f(x)) − f(x)) / f(x).
//	order 5  — Kumar–Singh–Srivastava two-substep scheme.
//	order 8  — the order-2 step composed three times per iteration.
//	order 16 — the order-2 step composed four times per iteration.
//
// Composing a fixed-point iteration of order p with one of order q
// yields order p·q near a simple root, so the compositions genuinely
// reach orders 8 and 16 at the price of extra evaluations per step.
// The pure schemes are fast on well-behaved problems but may diverge or
// cycle when the local derivative is small or the second derivative is
// large relative to the step; FindRootFrom's hybrid default trades
// evaluations for robustness in exactly those cases.

// stepFunc advances one iterate. It may evaluate f internally. A false
// flag signals a stalled update (vanishing divided difference or a
// non-finite intermediate).
type stepFunc func(x, fx float64) (float64, bool)

// kernelFor returns the step kernel for a supported pure order.
func kernelFor(f Func, order int) (stepFunc, bool) {
	switch order {
	case 1:
		return secantKernel(f), true
	case 2:
		return composedSteffensen(f, 1), true
	case 5:
		return kssKernel(f), true
	case 8:
		return composedSteffensen(f, 3), true
	case 16:
		return composedSteffensen(f, 4), true
	default:
		return nil, false
	}
}

// iterate drives a pure fixed-order kernel from x0 until a certificate
// is issued or the budget runs out.
//
// Certificate policy: ExactZero and SignChangeAtUnit as usual, plus
// ToleranceMet when |f(x)| ≤ Tol — the high-order schemes are the only
// ones allowed to settle for a tolerance.
func iterate(f Func, x0 float64, step stepFunc, o Options) (float64, Certificate, error) {
	x := x0
	fx := f(x)

	// Idempotence: a previously returned root certifies immediately.
	if cert, ok := certifyAt(f, x, fx); ok {
		return x, cert, nil
	}

	best, fbest := x, fx
	limit := o.budget(maxIterIterative)
	for n := 0; n < limit; n++ {
		if math.Abs(fx) <= o.Tol {
			return x, ToleranceMet, nil
		}

		x1, ok := step(x, fx)
		if !ok || math.IsNaN(x1) || math.IsInf(x1, 0) {
			return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: n}
		}
		x1 = confine(x, x1, o)

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

	if math.Abs(fx) <= o.Tol {
		return x, ToleranceMet, nil
	}
	return 0, NoCertificate, &ConvergenceError{Best: best, FBest: fbest, Steps: limit}
}

// confine clamps a proposed update into the caller's guess window.
// Instead of taking the raw out-of-bracket step, the update is replaced
// by a bisection step toward the violated endpoint.
func confine(x, x1 float64, o Options) float64 {
	if !o.HasBracket {
		return x1
	}
	if x1 < o.Lo {
		return midpoint(math.Max(o.Lo, math.Min(x, o.Hi)), o.Lo)
	}
	if x1 > o.Hi {
		return midpoint(math.Min(o.Hi, math.Max(x, o.Lo)), o.Hi)
	}
	return x1
}

// steffH returns the forward-difference offset h = f(x), clamped so the
// companion point x+h cannot run away when |f| is large far from a root.
func steffH(x, fx float64) float64 {
	lim := math.Max(1, math.Abs(x))
	if math.Abs(fx) > lim {
		return math.Copysign(lim, fx)
	}
	return fx
}

// steffSub performs one raw Steffensen substep:
// x₁ = x − f(x)/g, g = (f(x+h) − f(x))/h, h = steffH(x, f(x)).
func steffSub(f Func, x, fx float64) (float64, bool) {
	h := steffH(x, fx)
	if h == 0 {
		return 0, false
	}
	w := x + h
	fw := f(w)
	g := (fw - fx) / h
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}
	x1 := x - fx/g
	if math.IsNaN(x1) || math.IsInf(x1, 0) {
		return 0, false
	}
	return x1, true
}

// composedSteffensen composes k Steffensen substeps into one kernel step
// (orders 2, 8, 16 for k = 1, 3, 4).
func composedSteffensen(f Func, k int) stepFunc {
	return func(x, fx float64) (float64, bool) {
		cx, cfx := x, fx
		for i := 0; i < k; i++ {
			nx, ok := steffSub(f, cx, cfx)
			if !ok {
				if i == 0 {
					return 0, false
				}
				// Partial progress still moves the outer iteration.
				return cx, true
			}
			cx = nx
			if i < k-1 {
				cfx = f(cx)
				if cfx == 0 {
					return cx, true
				}
			}
		}
		return cx, true
	}
}

// secantKernel keeps one history point; the first call seeds it with a
// Steffensen-style companion so a single starting guess suffices.
func secantKernel(f Func) stepFunc {
	var (
		xp, fp float64
		have   bool
	)
	return func(x, fx float64) (float64, bool) {
		if !have {
			h := steffH(x, fx)
			if h == 0 {
				return 0, false
			}
			xp = x + h
			fp = f(xp)
			have = true
		}
		if x == xp {
			return 0, false
		}
		d := (fx - fp) / (x - xp)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, false
		}
		x1 := x - fx/d
		if math.IsNaN(x1) || math.IsInf(x1, 0) {
			return 0, false
		}
		xp, fp = x, fx
		return x1, true
	}
}

// kssKernel implements the fifth-order Kumar–Singh–Srivastava scheme:
//
//	w = x + h,           g  = f[x,w]
//	y = x − f(x)/g
//	z = x − (f(x)² + f(y)²) / (g·f(x))
//	x₁ = z − f(z) / (f[y,x]·f[y,w]/f[x,w])
//
// Four evaluations per step, no derivatives.
func kssKernel(f Func) stepFunc {
	return func(x, fx float64) (float64, bool) {
		h := steffH(x, fx)
		if h == 0 {
			return 0, false
		}
		w := x + h
		fw := f(w)
		g := (fw - fx) / h
		if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return 0, false
		}

		y := x - fx/g
		fy := f(y)
		if fy == 0 {
			return y, true
		}

		z := x - (fx*fx+fy*fy)/(g*fx)
		fz := f(z)
		if fz == 0 {
			return z, true
		}

		if y == x || y == w {
			return z, true
		}
		fyx := (fy - fx) / (y - x)
		fyw := (fy - fw) / (y - w)
		d := fyx * fyw / g
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return z, true
		}
		x1 := z - fz/d
		if math.IsNaN(x1) || math.IsInf(x1, 0) {
			return z, true
		}
		return x1, true
	}
}
