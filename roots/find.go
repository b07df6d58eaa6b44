// Unified entry points for scalar root search.
//
// Argument shape selects the engine explicitly — no runtime type
// inspection:
//
//   - FindRoot(f, a, b, …)   — bracket form; delegates to Bisect.
//   - FindRootFrom(f, x0, …) — guess form; WithOrder routes between the
//     hybrid default and the pure derivative-free schemes; WithBracket
//     optionally confines the search.
//
// Design principles:
//   - Deterministic: no randomness, fixed evaluation order.
//   - Strict sentinels: precondition violations surface immediately and
//     are never retried internally.
//   - The only locally recovered failure is the hybrid's fallback to
//     bisection once a sign change has been bracketed.

package roots

// FindRoot locates a zero of f inside the bracket [a, b].
//
// Contracts:
//   - f(a)·f(b) < 0 (ErrInvalidBracket otherwise).
//   - On success: min(a,b) ≤ x ≤ max(a,b), certificate ExactZero or
//     SignChangeAtUnit.
//
// Accepted options: WithMaxIterations.
func FindRoot(f Func, a, b float64, opts ...Option) (float64, Certificate, error) {
	return Bisect(f, a, b, opts...)
}

// FindRootFrom locates a zero of f starting from the single guess x0.
//
// The convergence order is selected with WithOrder: 0 (default) runs the
// hybrid method, {1, 2, 5, 8, 16} run the pure derivative-free schemes;
// any other selector fails with ErrInvalidOrder. WithBracket confines
// every step to a caller-declared window; WithTolerance tunes the
// ToleranceMet threshold of the high-order schemes.
//
// Errors: ErrInvalidOrder, ErrConvergence (budget exhausted; the
// returned *ConvergenceError carries the best iterate found).
func FindRootFrom(f Func, x0 float64, opts ...Option) (float64, Certificate, error) {
	o := buildOptions(opts)
	if o.Order == 0 {
		return hybrid(f, x0, o)
	}
	kernel, ok := kernelFor(f, o.Order)
	if !ok {
		return 0, NoCertificate, ErrInvalidOrder
	}
	return iterate(f, x0, kernel, o)
}
