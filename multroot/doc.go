// Package multroot resolves the roots of a polynomial together with
// their multiplicities.
//
// The pipeline has two stages. First, a GCD chain
//
//	p₀ = p,  p₁ = gcd(p₀, p₀′),  p₂ = gcd(p₁, p₁′),  …
//
// is built until a constant is reached; each link strictly decreases the
// degree, and the degree-drop sequence determines the multiplicity
// partition: dividing consecutive links isolates square-free cofactors
// whose roots are exactly the roots of a given multiplicity. Second, a
// Gauss-Newton least-squares correction refines the approximate root
// locations jointly, under the now-known multiplicity structure — a
// multiplicity-m root costs a naive solver m-th-root-of-eps accuracy,
// while the structured correction restores first-order conditioning.
//
// Two coefficient domains are supported: float64 (FindStructure), where
// GCD degree decisions need an explicit tolerance and nearby roots below
// the resolvable separation merge into one entry with combined
// multiplicity (a documented precision limit, not a bug), and exact
// rationals/integers (FindStructureRat), where multiplicities are exact.
//
// Errors (sentinel):
//
//	– ErrDegreeTooLow if the polynomial has degree < 1.
package multroot
