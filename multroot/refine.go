package multroot

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlroots/matrix"
	"github.com/katalvlaran/lvlroots/poly"
)

// refine runs the structured Gauss-Newton correction.
//
// Description:
//
//	With the multiplicity structure fixed, the roots z₁…z_k parametrize
//	the monic reconstruction G(x) = Π (x − zⱼ)^mⱼ. The residual is the
//	coefficient-space difference r(z) = coeffs(G) − coeffs(p), and the
//	Jacobian has the closed form ∂G/∂zⱼ = −mⱼ·G/(x − zⱼ), so column j is
//	−mⱼ times the synthetic-division quotient. Each iteration solves the
//	least-squares system J·Δ = −r by Householder QR and applies z ← z+Δ,
//	halving Δ while the residual worsens.
//
//	Refinement is a best-effort stage: if the very first correction
//	cannot reduce the residual, or the structure does not account for
//	the full degree (complex roots), the chain estimate is returned
//	untouched with Refined == false.
//
// Complexity: O(MaxRefine · n·k²) with n = deg p, k = len(s).
func refine(pm poly.Poly, s Structure, o Options) Result {
	n := pm.Degree()
	if len(s) == 0 || s.Degree() != n {
		return Result{Roots: s, Refined: false, Residual: math.NaN()}
	}

	zs := make([]float64, len(s))
	ms := make([]int, len(s))
	for i, r := range s {
		zs[i] = r.X
		ms[i] = r.Multiplicity
	}

	target := paddedCoeffs(pm, n)
	res := residual(zs, ms, target)
	initial := matrix.Norm2(res)
	bestZ := append([]float64(nil), zs...)
	bestNorm := initial

	for iter := 0; iter < o.MaxRefine && bestNorm > 0; iter++ {
		jac, err := jacobian(bestZ, ms, n)
		if err != nil {
			break
		}
		rhs := residual(bestZ, ms, target)
		for i := range rhs {
			rhs[i] = -rhs[i]
		}
		delta, err := matrix.SolveLS(jac, rhs)
		if err != nil {
			break
		}

		// Damped acceptance: halve the step while it makes things worse.
		improved := false
		scale := 1.0
		for try := 0; try < 6; try++ {
			trial := make([]float64, len(bestZ))
			for i := range trial {
				trial[i] = bestZ[i] + scale*delta[i]
			}
			norm := matrix.Norm2(residual(trial, ms, target))
			if norm < bestNorm {
				bestZ, bestNorm = trial, norm
				improved = true
				break
			}
			scale /= 2
		}
		if !improved {
			break
		}
		if bestNorm <= 1e-15*math.Max(1, pm.NormInf()) {
			break
		}
	}

	if !(bestNorm < initial) {
		return Result{Roots: s, Refined: false, Residual: initial}
	}

	out := make(Structure, len(s))
	for i := range out {
		out[i] = Root{X: bestZ[i], Multiplicity: ms[i]}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].X < out[b].X })
	return Result{Roots: out, Refined: true, Residual: bestNorm}
}

// reconstruct expands Π (x − zⱼ)^mⱼ.
func reconstruct(zs []float64, ms []int) poly.Poly {
	out := poly.New(1)
	for j, z := range zs {
		factor := poly.New(-z, 1)
		for k := 0; k < ms[j]; k++ {
			out = out.Mul(factor)
		}
	}
	return out
}

// residual returns coeffs(G) − target over the non-leading positions.
func residual(zs []float64, ms []int, target []float64) []float64 {
	g := paddedCoeffs(reconstruct(zs, ms), len(target))
	for i := range g {
		g[i] -= target[i]
	}
	return g
}

// paddedCoeffs returns the n non-leading coefficients of a monic
// degree-n polynomial, zero-padded if trimming shortened the slice.
func paddedCoeffs(p poly.Poly, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n && i < len(p); i++ {
		out[i] = p[i]
	}
	return out
}

// jacobian assembles the n×k Gauss-Newton Jacobian: column j holds the
// coefficients of −mⱼ·G/(x − zⱼ).
func jacobian(zs []float64, ms []int, n int) (*matrix.Dense, error) {
	g := reconstruct(zs, ms)
	jac, err := matrix.NewDense(n, len(zs))
	if err != nil {
		return nil, err
	}
	for j, z := range zs {
		q := deflate(g, z)
		for i := 0; i < n; i++ {
			v := 0.0
			if i < len(q) {
				v = -float64(ms[j]) * q[i]
			}
			if err := jac.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	return jac, nil
}

// deflate divides g by (x − z) synthetically, discarding the remainder.
func deflate(g poly.Poly, z float64) poly.Poly {
	if len(g) < 2 {
		return nil
	}
	q := make(poly.Poly, len(g)-1)
	carry := g[len(g)-1]
	for i := len(g) - 2; i >= 0; i-- {
		q[i] = carry
		carry = g[i] + z*carry
	}
	return q
}
