package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlroots/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill populates a dense matrix row by row.
func fill(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

// TestSolveLS_Square solves an exactly determined 2×2 system.
func TestSolveLS_Square(t *testing.T) {
	a := fill(t, [][]float64{
		{2, 1},
		{1, 3},
	})

	// Solution (1, 2): b = A·(1,2).
	x, err := matrix.SolveLS(a, []float64{4, 7})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1, x[0], 1e-12)
	assert.InDelta(t, 2, x[1], 1e-12)
}

// TestSolveLS_OverdeterminedConsistent fits a line through three exactly
// collinear points: the least-squares minimizer reproduces it.
func TestSolveLS_OverdeterminedConsistent(t *testing.T) {
	// Columns: intercept, slope. Points (0,1), (1,2), (2,3) lie on y = x+1.
	a := fill(t, [][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
	})

	x, err := matrix.SolveLS(a, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1, x[0], 1e-12, "intercept")
	assert.InDelta(t, 1, x[1], 1e-12, "slope")
}

// TestSolveLS_OverdeterminedResidual minimizes a genuinely inconsistent
// system; the normal equations give the fit y = x + 1/3.
func TestSolveLS_OverdeterminedResidual(t *testing.T) {
	// Points (0,0), (1,2), (2,2).
	a := fill(t, [][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
	})

	x, err := matrix.SolveLS(a, []float64{0, 2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, x[0], 1e-12, "intercept")
	assert.InDelta(t, 1, x[1], 1e-12, "slope")
}

// TestSolveLS_Singular rejects a rank-deficient matrix.
func TestSolveLS_Singular(t *testing.T) {
	a := fill(t, [][]float64{
		{1, 0},
		{1, 0},
		{1, 0},
	})

	_, err := matrix.SolveLS(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolveLS_ShapeViolations covers the dimension contracts.
func TestSolveLS_ShapeViolations(t *testing.T) {
	wide := fill(t, [][]float64{{1, 2, 3}})
	_, err := matrix.SolveLS(wide, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "wide systems are not supported")

	tall := fill(t, [][]float64{{1}, {2}})
	_, err = matrix.SolveLS(tall, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "rhs length must match rows")

	_, err = matrix.SolveLS(nil, []float64{})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
