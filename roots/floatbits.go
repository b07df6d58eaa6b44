// Adjacent-float predicates.
//
// Convergence at machine precision is decided at the granularity of
// adjacent representable values, never by adding or subtracting an
// epsilon. NextUp/NextDown step through the binary representation
// (math.Nextafter), and UnitSignChange is the only admissible notion of
// "found a root up to rounding" for continuous zeros.

package roots

import "math"

// NextUp returns the smallest representable float64 strictly greater
// than x. NextUp(+Inf) == +Inf.
func NextUp(x float64) float64 { return math.Nextafter(x, math.Inf(1)) }

// NextDown returns the largest representable float64 strictly smaller
// than x. NextDown(-Inf) == -Inf.
func NextDown(x float64) float64 { return math.Nextafter(x, math.Inf(-1)) }

// UnitSignChange reports whether f vanishes at c up to rounding:
// f(c) == 0, or f(pred(c))·f(c) ≤ 0, or f(c)·f(succ(c)) ≤ 0, where pred
// and succ are the adjacent representable neighbors of c.
//
// Complexity: at most 3 evaluations of f.
func UnitSignChange(f Func, c float64) bool {
	fc := f(c)
	if fc == 0 {
		return true
	}
	cert, ok := certifyAt(f, c, fc)
	return ok && cert != NoCertificate
}

// oppositeSigns reports sign(a)·sign(b) ≤ 0 without forming the product,
// so huge values cannot overflow and tiny ones cannot flush to zero.
func oppositeSigns(a, b float64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return math.Signbit(a) != math.Signbit(b)
}

// adjacentOrEqual reports whether x and y are the same float or
// immediate representable neighbors.
func adjacentOrEqual(x, y float64) bool {
	if x == y {
		return true
	}
	if x < y {
		return NextUp(x) == y
	}
	return NextUp(y) == x
}

// certifyAt issues the strongest certificate available at x, given the
// already-computed fx. Costs up to 2 extra evaluations.
func certifyAt(f Func, x, fx float64) (Certificate, bool) {
	if fx == 0 {
		return ExactZero, true
	}
	if math.IsNaN(fx) {
		return NoCertificate, false
	}
	if oppositeSigns(fx, f(NextUp(x))) || oppositeSigns(f(NextDown(x)), fx) {
		return SignChangeAtUnit, true
	}
	return NoCertificate, false
}
