package poly

// GCD computes a monic greatest common divisor of p and q with float64
// coefficients.
//
// Description:
//
//	Euclidean algorithm stabilized for floating point: both operands are
//	normalized to monic form at every turn, and a remainder counts as
//	zero once its max-norm falls below tol relative to the larger input
//	norm. Floating-point polynomials rarely share an exact factor, so
//	the "is this remainder zero" decision is necessarily a threshold —
//	and the right threshold is problem-dependent, which is why tol is an
//	explicit parameter rather than a constant.
//
// Contracts:
//   - tol must be positive; the multroot package defaults it to 1e-10.
//   - GCD(p, 0) = monic(p), GCD(0, 0) = 0.
//   - The result is monic (or the constant 1 for coprime inputs).
//
// Complexity: O(deg²) arithmetic. Deterministic.
func GCD(p, q Poly, tol float64) Poly {
	a := p.Monic()
	b := q.Monic()
	if len(a) < len(b) {
		a, b = b, a
	}
	scale := a.NormInf()
	if s := b.NormInf(); s > scale {
		scale = s
	}
	if scale == 0 {
		return nil
	}

	for !b.IsZero() {
		if b.Degree() == 0 {
			return Poly{1}
		}
		_, r, err := a.Div(b)
		if err != nil {
			break
		}
		r = chop(r, tol*scale)
		a, b = b, r.Monic()
	}
	return a
}

// chop zeroes coefficients below the absolute threshold, so a remainder
// that is numerically noise actually loses degree.
func chop(p Poly, threshold float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		if c > threshold || c < -threshold {
			out[i] = c
		}
	}
	return out.trim()
}
