// Package roots provides a scalar root-search framework over float64
// callables.
//
// A search either returns a root together with a Certificate describing
// how strong the guarantee is, or fails with one of the sentinel errors
// below. There is no third outcome: a silently wrong answer is never
// returned.
//
// Certificates (strongest first):
//
//	– ExactZero        f(x) evaluated to exactly 0.
//	– SignChangeAtUnit f changes sign between x and one of its adjacent
//	                   representable neighbors — the tightest non-exact
//	                   bracket a binary float can express.
//	– ToleranceMet     |f(x)| ≤ Tol. Only the high-order derivative-free
//	                   methods and Brent may return this tag; bisection
//	                   and the hybrid default insist on the two stricter
//	                   tags.
//
// Entry points, selected by argument shape:
//
//	– FindRoot(f, a, b, …)   — bracket form, delegates to Bisect.
//	– FindRootFrom(f, x0, …) — guess form; WithOrder picks between the
//	                           hybrid default (0) and the pure
//	                           derivative-free schemes {1, 2, 5, 8, 16}.
//	– FindRealRoots(f, a, b, …) — panel sweep for every crossing.
//	– Brent, Newton, Halley, Secant — named classical engines.
//
// Errors (sentinel):
//
//	– ErrInvalidBracket if the supplied endpoints do not bracket a sign change.
//	– ErrInvalidOrder   if the convergence-order selector is not one of
//	                    {0, 1, 2, 5, 8, 16}.
//	– ErrZeroDerivative if a Newton/Halley denominator is exactly zero.
//	– ErrConvergence    if the iteration budget ran out without any
//	                    certificate; returned wrapped in *ConvergenceError
//	                    which carries the best iterate for diagnostics.
package roots
