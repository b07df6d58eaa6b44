package poly

import (
	"errors"
	"math"
)

// ErrDivideByZero indicates division by the zero polynomial.
var ErrDivideByZero = errors.New("poly: division by zero polynomial")

// Poly is a univariate polynomial with float64 coefficients in
// ascending-power order: p(x) = c₀ + c₁·x + c₂·x² + …
type Poly []float64

// New builds a trimmed polynomial from ascending-power coefficients.
func New(coeffs ...float64) Poly {
	return Poly(coeffs).trim()
}

// trim drops trailing zero coefficients, restoring the nonzero-leading
// invariant. The zero polynomial trims to an empty slice.
func (p Poly) trim() Poly {
	i := len(p)
	for i > 0 && p[i-1] == 0 {
		i--
	}
	return p[:i]
}

// Degree returns the degree, or −1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.trim()) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.trim()) == 0 }

// Eval evaluates p at x by Horner's scheme.
func (p Poly) Eval(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	v := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Func returns p as a plain evaluation callable for the roots package.
func (p Poly) Func() func(float64) float64 {
	return func(x float64) float64 { return p.Eval(x) }
}

// Derivative returns p′.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return nil
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = float64(i) * p[i]
	}
	return out.trim()
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	for i := range out {
		if i < len(p) {
			out[i] += p[i]
		}
		if i < len(q) {
			out[i] += q[i]
		}
	}
	return out.trim()
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	n := max(len(p), len(q))
	out := make(Poly, n)
	for i := range out {
		if i < len(p) {
			out[i] += p[i]
		}
		if i < len(q) {
			out[i] -= q[i]
		}
	}
	return out.trim()
}

// Mul returns p · q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return nil
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, ca := range p {
		if ca == 0 {
			continue
		}
		for j, cb := range q {
			out[i+j] += ca * cb
		}
	}
	return out.trim()
}

// Scale returns α · p.
func (p Poly) Scale(alpha float64) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = alpha * c
	}
	return out.trim()
}

// Div performs polynomial long division, returning quotient and
// remainder with p = quo·q + rem and deg rem < deg q.
//
// Errors: ErrDivideByZero if q is the zero polynomial.
func (p Poly) Div(q Poly) (quo, rem Poly, err error) {
	q = q.trim()
	if len(q) == 0 {
		return nil, nil, ErrDivideByZero
	}
	rem = append(Poly(nil), p.trim()...)
	if len(rem) < len(q) {
		return nil, rem, nil
	}
	quo = make(Poly, len(rem)-len(q)+1)
	lead := q[len(q)-1]
	for len(rem) >= len(q) {
		k := len(rem) - len(q)
		c := rem[len(rem)-1] / lead
		quo[k] = c
		for i, qc := range q {
			rem[k+i] -= c * qc
		}
		// The leading term cancels by construction; drop it explicitly to
		// guard against rounding leftovers.
		rem = rem[:len(rem)-1].trim()
		if len(rem) == 0 {
			break
		}
	}
	return quo.trim(), rem, nil
}

// Monic divides out the leading coefficient. The zero polynomial is
// returned unchanged.
func (p Poly) Monic() Poly {
	t := p.trim()
	if len(t) == 0 {
		return t
	}
	return t.Scale(1 / t[len(t)-1])
}

// NormInf returns the largest coefficient magnitude.
func (p Poly) NormInf() float64 {
	var m float64
	for _, c := range p {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return m
}

// RootBound returns the Cauchy bound B = 1 + max|cᵢ/c_n|: every real
// root of p lies in [−B, B]. Returns 0 for constants.
func (p Poly) RootBound() float64 {
	t := p.trim()
	if len(t) < 2 {
		return 0
	}
	lead := math.Abs(t[len(t)-1])
	var m float64
	for _, c := range t[:len(t)-1] {
		if a := math.Abs(c); a > m {
			m = a
		}
	}
	return 1 + m/lead
}

// FromRoots builds the monic polynomial Π (x − rᵢ).
func FromRoots(rs ...float64) Poly {
	out := Poly{1}
	for _, r := range rs {
		out = out.Mul(Poly{-r, 1})
	}
	return out
}
