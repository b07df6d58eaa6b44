package multroot

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlroots/poly"
)

// FindStructure resolves the real roots of p and their multiplicities.
//
// Description:
//
//	Builds the GCD chain p, gcd(p, p′), gcd(·, ·′), … with the
//	tolerance-based float64 GCD, divides consecutive links to obtain the
//	square-free cofactors v₁, v₂, …, where vᵢ carries exactly the roots
//	of multiplicity i, extracts each vᵢ's real roots, merges clustered
//	detections, and finally refines the locations with the structured
//	Gauss-Newton correction.
//
// Contracts:
//   - deg p ≥ 1 (ErrDegreeTooLow otherwise).
//   - For a polynomial whose roots are all real, the returned
//     multiplicities sum to deg p; near-equal roots closer than the
//     merge tolerance collapse into one entry with combined
//     multiplicity.
//
// Errors: ErrDegreeTooLow. Refinement never fails hard: when it cannot
// improve the residual, Result.Refined is false and the chain estimate
// is returned unchanged.
//
// Complexity: O(deg³) arithmetic overall; deterministic.
func FindStructure(p poly.Poly, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	pm := p.Monic()
	n := pm.Degree()
	if n < 1 {
		return Result{}, ErrDegreeTooLow
	}

	cofactors := squareFreeCofactors(pm, o.GCDTolerance)
	s := structureFromCofactors(cofactors, o)
	return refine(pm, s, o), nil
}

// FindStructureRat resolves root multiplicities of an integer or
// rational polynomial exactly: the GCD chain uses exact arithmetic with
// no tolerance, so the multiplicity partition is exact; only the root
// locations themselves are numeric (and are Gauss-Newton refined).
//
// Errors: ErrDegreeTooLow.
func FindStructureRat(p poly.RatPoly, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	pm := p.Monic()
	n := pm.Degree()
	if n < 1 {
		return Result{}, ErrDegreeTooLow
	}

	// Exact chain: pᵢ = gcd(pᵢ₋₁, pᵢ₋₁′) until constant.
	var chain []poly.RatPoly
	for cur := pm; cur.Degree() > 0; {
		chain = append(chain, cur)
		cur = poly.RatGCD(cur, cur.Derivative())
	}
	chain = append(chain, poly.NewRatFromInts(1))

	// uᵢ = pᵢ₋₁ / pᵢ, vᵢ = uᵢ / uᵢ₊₁ — all divisions exact.
	var cofactors []poly.Poly
	for i := 1; i < len(chain); i++ {
		ui, _, _ := chain[i-1].Div(chain[i])
		var uj poly.RatPoly
		if i < len(chain)-1 {
			uj, _, _ = chain[i].Div(chain[i+1])
		} else {
			uj = poly.NewRatFromInts(1)
		}
		vi, _, _ := ui.Div(uj)
		cofactors = append(cofactors, vi.Float())
	}

	s := structureFromCofactors(cofactors, o)
	return refine(pm.Float().Monic(), s, o), nil
}

// squareFreeCofactors returns v₁, v₂, … for a monic float64 polynomial:
// vᵢ is square-free and vanishes exactly at the multiplicity-i roots.
func squareFreeCofactors(pm poly.Poly, tol float64) []poly.Poly {
	var chain []poly.Poly
	for cur := pm; cur.Degree() > 0; {
		chain = append(chain, cur)
		next := poly.GCD(cur, cur.Derivative(), tol)
		if next.Degree() >= cur.Degree() {
			// A tolerance failure would stall the chain; force termination.
			next = poly.New(1)
		}
		cur = next
	}
	chain = append(chain, poly.New(1))

	var cofactors []poly.Poly
	for i := 1; i < len(chain); i++ {
		ui, _, _ := chain[i-1].Div(chain[i])
		uj := poly.New(1)
		if i < len(chain)-1 {
			uj, _, _ = chain[i].Div(chain[i+1])
		}
		vi, _, _ := ui.Div(uj)
		cofactors = append(cofactors, vi)
	}
	return cofactors
}

// structureFromCofactors extracts real roots of every cofactor, tags
// them with their multiplicity, sorts and merges clustered entries.
func structureFromCofactors(cofactors []poly.Poly, o Options) Structure {
	var s Structure
	for i, v := range cofactors {
		if v.Degree() < 1 {
			continue
		}
		for _, r := range v.RealRoots() {
			s = append(s, Root{X: r, Multiplicity: i + 1})
		}
	}
	sort.Slice(s, func(a, b int) bool { return s[a].X < s[b].X })
	return mergeClustered(s, o.MergeTolerance)
}

// mergeClustered collapses sorted roots whose separation is below the
// relative merge tolerance, summing their multiplicities and averaging
// the locations weighted by multiplicity.
func mergeClustered(s Structure, tol float64) Structure {
	if len(s) < 2 {
		return s
	}
	out := Structure{s[0]}
	for _, r := range s[1:] {
		last := &out[len(out)-1]
		sep := tol * math.Max(1, math.Abs(last.X))
		if r.X-last.X <= sep {
			total := last.Multiplicity + r.Multiplicity
			last.X = (last.X*float64(last.Multiplicity) + r.X*float64(r.Multiplicity)) / float64(total)
			last.Multiplicity = total
			continue
		}
		out = append(out, r)
	}
	return out
}
