// Package poly implements univariate polynomials over two coefficient
// domains: float64 (Poly) and exact rationals (RatPoly, which also
// embeds integer polynomials exactly).
//
// Representation: coefficients ordered by ascending power, trailing
// zeros trimmed, so the invariant "leading coefficient nonzero" holds
// for every non-zero polynomial and Degree is len−1. The zero
// polynomial is the empty slice with Degree −1.
//
// Beyond arithmetic, the package carries the two operations the
// multiplicity pipeline is built on: a tolerance-stabilized float64 GCD
// (with an exact rational counterpart) and complete real-root
// enumeration of square-free polynomials by critical-point separation.
//
// Errors (sentinel):
//
//	– ErrDivideByZero if a division by the zero polynomial is requested.
package poly
