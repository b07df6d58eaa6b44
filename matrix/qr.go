package matrix

import "math"

// SolveLS solves the least-squares problem min‖a·x − b‖₂ for a tall
// system (Rows ≥ Cols) by Householder QR.
//
// Description:
//
//	Reflections are applied column by column to a working copy of a and
//	to the right-hand side simultaneously, reducing a to upper
//	triangular form; back substitution on the leading n×n block then
//	yields the minimizer. Column norms are accumulated in a scaled form
//	so extreme entries neither overflow nor flush to zero.
//
// Contracts:
//   - a must be non-nil with Rows ≥ Cols and len(b) == Rows.
//   - a and b are not mutated.
//
// Errors:
//   - ErrDimensionMismatch on shape violations.
//   - ErrSingular when a pivot of the triangular factor is numerically
//     zero (rank-deficient system).
//
// Complexity: O(r·c²) time, O(r·c) space. Deterministic.
func SolveLS(a *Dense, b []float64) ([]float64, error) {
	if a == nil || len(b) != a.r || a.r < a.c {
		return nil, ErrDimensionMismatch
	}

	m, n := a.r, a.c
	w := a.Clone()
	rhs := make([]float64, m)
	copy(rhs, b)

	v := make([]float64, m)
	for k := 0; k < n; k++ {
		// Column norm below the diagonal.
		norm := 0.0
		for i := k; i < m; i++ {
			norm = math.Hypot(norm, w.data[i*n+k])
		}
		if norm == 0 {
			return nil, ErrSingular
		}

		alpha := -math.Copysign(norm, w.data[k*n+k])

		// Householder vector for column k.
		for i := 0; i < k; i++ {
			v[i] = 0
		}
		for i := k; i < m; i++ {
			v[i] = w.data[i*n+k]
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		// Reflect the remaining columns.
		for j := k; j < n; j++ {
			sum := 0.0
			for i := k; i < m; i++ {
				sum += v[i] * w.data[i*n+j]
			}
			for i := k; i < m; i++ {
				w.data[i*n+j] -= tau * v[i] * sum
			}
		}
		// Reflect the right-hand side.
		sum := 0.0
		for i := k; i < m; i++ {
			sum += v[i] * rhs[i]
		}
		for i := k; i < m; i++ {
			rhs[i] -= tau * v[i] * sum
		}
	}

	// Back substitution on the leading triangular block.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= w.data[i*n+j] * x[j]
		}
		pivot := w.data[i*n+i]
		if pivot == 0 || math.IsNaN(pivot) {
			return nil, ErrSingular
		}
		x[i] = sum / pivot
	}
	return x, nil
}
