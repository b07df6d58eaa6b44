// Package lvlroots is a toolkit for locating real zeros of scalar
// functions and for resolving polynomial roots together with their
// multiplicities.
//
// 🚀 What is lvlroots?
//
//	A deterministic, dependency-light numerical library that brings together:
//		• Bracketing search: bisection with machine-precision certificates,
//		  plus a superlinear zeroin-style variant for expensive functions
//		• Derivative-free iteration: secant, Steffensen and higher-order
//		  compositions (orders 1, 2, 5, 8, 16) with a robust hybrid default
//		• Classical iterations: Newton, Halley, secant with injected
//		  derivative providers
//		• Polynomial machinery: float64 and exact big.Rat coefficient
//		  domains, tolerant and exact GCDs, real-root extraction
//		• Multiplicity resolution: GCD-chain analysis and a Gauss-Newton
//		  refiner that stays accurate under repeated or clustered roots
//
// ✨ Why choose lvlroots?
//
//   - Honest answers – every root carries a certificate stating how strong
//     the guarantee is (exact zero, adjacent-float sign change, or tolerance)
//   - Rock-solid failure modes – sentinel errors, no panics on bad input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – identical inputs always produce identical results
//
// Everything is organized under four subpackages:
//
//	roots/    — scalar root search: bisection, derivative-free orders,
//	            Newton/Halley/secant, interval sieve
//	poly/     — univariate polynomials over float64 and big.Rat,
//	            arithmetic, GCDs, real roots
//	multroot/ — multiplicity structure via GCD chains + Gauss-Newton
//	            refinement
//	matrix/   — small dense linear algebra core (QR least squares) used
//	            by the refiner
//
// Quick taste:
//
//	x, cert, err := roots.FindRoot(func(x float64) float64 {
//	    return math.Cos(x) - x
//	}, 0, 1)
//	// x ≈ 0.7390851332151607, cert == roots.ExactZero, err == nil
package lvlroots
