package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlroots/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shape validates construction and shape accessors.
func TestNewDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	_, err = matrix.NewDense(0, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestDense_AtSet round-trips entries and rejects bad indices.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_Clone produces an independent copy.
func TestDense_Clone(t *testing.T) {
	m, _ := matrix.NewDense(1, 1)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 2))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the original")
}

// TestDense_MatVec multiplies a known 2×3 matrix by a vector.
func TestDense_MatVec(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	for j, v := range []float64{1, 2, 3} {
		require.NoError(t, m.Set(0, j, v))
	}
	for j, v := range []float64{4, 5, 6} {
		require.NoError(t, m.Set(1, j, v))
	}

	y, err := m.MatVec([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, y)

	_, err = m.MatVec([]float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNorm2 checks the overflow-safe Euclidean norm.
func TestNorm2(t *testing.T) {
	assert.Equal(t, 5.0, matrix.Norm2([]float64{3, 4}))
	assert.Equal(t, 0.0, matrix.Norm2(nil))
	assert.Equal(t, 1e300, matrix.Norm2([]float64{1e300}), "no overflow on extreme entries")
}
