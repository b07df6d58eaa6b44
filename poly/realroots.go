package poly

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlroots/roots"
)

// RealRoots returns the real roots of p in ascending order.
//
// Description:
//
//	Recursive critical-point separation: the real roots of p′ split the
//	Cauchy-bound interval [−B, B] into panels on which p is monotone,
//	and each panel whose endpoints bracket a sign change is resolved by
//	bisection, which certifies the zero at machine precision. Degrees
//	one and two are solved in closed form.
//
// Contracts:
//   - Intended for square-free polynomials (all roots simple), the shape
//     produced by the multroot GCD chain: there every real root induces
//     a sign change and the enumeration is complete. A root of even
//     multiplicity touches zero without crossing and is not detected
//     unless it coincides with a critical point that evaluates to
//     exactly zero.
//   - Constants (degree ≤ 0) have no roots; nil is returned.
//
// Complexity: O(deg²) bisection runs of O(log(width/ulp)) evaluations.
func (p Poly) RealRoots() []float64 {
	t := p.trim()
	switch {
	case len(t) < 2:
		return nil
	case len(t) == 2:
		return []float64{-t[0] / t[1]}
	case len(t) == 3:
		return quadraticRoots(t[2], t[1], t[0])
	}

	crit := t.Derivative().RealRoots()
	bound := t.RootBound()

	pts := make([]float64, 0, len(crit)+2)
	pts = append(pts, -bound)
	for _, c := range crit {
		if -bound < c && c < bound {
			pts = append(pts, c)
		}
	}
	pts = append(pts, bound)
	sort.Float64s(pts)

	f := t.Func()
	var out []float64
	for i := 0; i+1 < len(pts); i++ {
		lo, hi := pts[i], pts[i+1]
		if !(lo < hi) {
			continue
		}
		flo, fhi := f(lo), f(hi)
		if flo == 0 {
			out = append(out, lo)
			continue
		}
		if fhi == 0 {
			continue // recorded as the left endpoint of the next panel
		}
		if math.Signbit(flo) != math.Signbit(fhi) {
			if r, _, err := roots.Bisect(f, lo, hi); err == nil {
				out = append(out, r)
			}
		}
	}
	if f(bound) == 0 {
		out = append(out, bound)
	}

	sort.Float64s(out)
	return dedupe(out)
}

// quadraticRoots solves a·x² + b·x + c = 0 with the numerically stable
// formulation q = −(b + sign(b)·√disc)/2, r₁ = q/a, r₂ = c/q.
func quadraticRoots(a, b, c float64) []float64 {
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}
	q := -(b + math.Copysign(math.Sqrt(disc), b)) / 2
	if q == 0 {
		s := math.Sqrt(-c / a)
		return sortedPair(-s, s)
	}
	return sortedPair(q/a, c/q)
}

func sortedPair(x, y float64) []float64 {
	if x > y {
		x, y = y, x
	}
	return []float64{x, y}
}

// dedupe removes exact duplicates from a sorted slice.
func dedupe(xs []float64) []float64 {
	if len(xs) < 2 {
		return xs
	}
	k := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[k-1] {
			xs[k] = xs[i]
			k++
		}
	}
	return xs[:k]
}
