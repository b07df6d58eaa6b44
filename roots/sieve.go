package roots

import (
	"math"
	"sort"
)

// FindRealRoots sweeps [a, b] for real zeros of f.
//
// Description:
//
//	The interval is split into Subdivisions equal panels; each panel
//	whose endpoints bracket a sign change is handed to Bisect, and grid
//	points that evaluate to exactly zero are collected directly. The
//	result is sorted ascending with duplicates removed.
//
//	This is a heuristic sieve, not a complete enumerator: a zero of even
//	order that lies entirely inside one panel produces no sign change
//	and is silently missed. Tighten WithSubdivisions when zeros may
//	cluster.
//
// Contracts:
//   - a < b, both finite; panels inherit the Bisect guarantees, so every
//     reported root carries an ExactZero or SignChangeAtUnit certificate
//     internally.
//
// Errors: ErrInvalidBracket on a malformed interval. Panel-level
// convergence failures cannot occur: a sign-changing panel always
// certifies within the bisection budget.
//
// Complexity: O(Subdivisions) evaluations for the sweep plus
// O(log₂(width/ulp)) per sign-changing panel.
func FindRealRoots(f Func, a, b float64, opts ...Option) ([]float64, error) {
	o := buildOptions(opts)
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || !(a < b) {
		return nil, ErrInvalidBracket
	}

	n := o.Subdivisions
	step := (b - a) / float64(n)

	var out []float64
	xPrev := a
	fPrev := f(xPrev)
	if fPrev == 0 {
		out = append(out, xPrev)
	}
	for i := 1; i <= n; i++ {
		x := a + float64(i)*step
		if i == n {
			x = b
		}
		fx := f(x)
		switch {
		case fx == 0:
			out = append(out, x)
		case !math.IsNaN(fPrev) && !math.IsNaN(fx) && fPrev != 0 &&
			math.Signbit(fPrev) != math.Signbit(fx):
			if r, _, err := bisect(f, xPrev, x, o); err == nil {
				out = append(out, r)
			}
		}
		xPrev, fPrev = x, fx
	}

	sort.Float64s(out)
	return dedupeSorted(out), nil
}

// dedupeSorted removes exact duplicates from a sorted slice in place.
func dedupeSorted(xs []float64) []float64 {
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
