package poly

import "math/big"

// RatPoly is a univariate polynomial with exact rational coefficients in
// ascending-power order. Integer polynomials embed exactly, so this one
// type covers both the integer and rational coefficient domains; every
// operation below is exact — no tolerance enters anywhere.
type RatPoly []*big.Rat

// NewRat builds a trimmed rational polynomial. Coefficients are copied;
// nil entries count as zero.
func NewRat(coeffs ...*big.Rat) RatPoly {
	out := make(RatPoly, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			out[i] = new(big.Rat)
		} else {
			out[i] = new(big.Rat).Set(c)
		}
	}
	return out.trim()
}

// NewRatFromInts builds an integer polynomial from ascending-power
// integer coefficients.
func NewRatFromInts(coeffs ...int64) RatPoly {
	out := make(RatPoly, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Rat).SetInt64(c)
	}
	return out.trim()
}

// trim drops trailing zero coefficients.
func (p RatPoly) trim() RatPoly {
	i := len(p)
	for i > 0 && p[i-1].Sign() == 0 {
		i--
	}
	return p[:i]
}

// Degree returns the degree, or −1 for the zero polynomial.
func (p RatPoly) Degree() int { return len(p.trim()) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p RatPoly) IsZero() bool { return len(p.trim()) == 0 }

// Derivative returns p′, exactly.
func (p RatPoly) Derivative() RatPoly {
	if len(p) <= 1 {
		return nil
	}
	out := make(RatPoly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = new(big.Rat).Mul(big.NewRat(int64(i), 1), p[i])
	}
	return out.trim()
}

// Monic divides out the leading coefficient, exactly.
func (p RatPoly) Monic() RatPoly {
	t := p.trim()
	if len(t) == 0 {
		return t
	}
	inv := new(big.Rat).Inv(t[len(t)-1])
	out := make(RatPoly, len(t))
	for i, c := range t {
		out[i] = new(big.Rat).Mul(c, inv)
	}
	return out
}

// Div performs exact polynomial long division: p = quo·q + rem with
// deg rem < deg q.
//
// Errors: ErrDivideByZero if q is the zero polynomial.
func (p RatPoly) Div(q RatPoly) (quo, rem RatPoly, err error) {
	q = q.trim()
	if len(q) == 0 {
		return nil, nil, ErrDivideByZero
	}
	rem = make(RatPoly, len(p.trim()))
	for i, c := range p.trim() {
		rem[i] = new(big.Rat).Set(c)
	}
	if len(rem) < len(q) {
		return nil, rem, nil
	}
	quo = make(RatPoly, len(rem)-len(q)+1)
	for i := range quo {
		quo[i] = new(big.Rat)
	}
	lead := q[len(q)-1]
	for len(rem) >= len(q) {
		k := len(rem) - len(q)
		c := new(big.Rat).Quo(rem[len(rem)-1], lead)
		quo[k].Set(c)
		for i, qc := range q {
			rem[k+i].Sub(rem[k+i], new(big.Rat).Mul(c, qc))
		}
		rem = rem[:len(rem)-1].trim()
		if len(rem) == 0 {
			break
		}
	}
	return quo.trim(), rem, nil
}

// RatGCD computes the exact monic greatest common divisor of p and q via
// the Euclidean algorithm — no tolerance, so multiplicity structure read
// from a RatPoly chain is exact.
func RatGCD(p, q RatPoly) RatPoly {
	a := p.Monic()
	b := q.Monic()
	if len(a) < len(b) {
		a, b = b, a
	}
	for !b.IsZero() {
		if b.Degree() == 0 {
			return NewRatFromInts(1)
		}
		_, r, err := a.Div(b)
		if err != nil {
			break
		}
		a, b = b, r.Monic()
	}
	return a
}

// Float converts p to float64 coefficients, rounding each rational to
// the nearest representable value.
func (p RatPoly) Float() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		f, _ := c.Float64()
		out[i] = f
	}
	return out.trim()
}
