package matrix

import (
	"errors"
	"math"
)

// Sentinel errors returned by the matrix package.
var (
	// ErrBadShape is returned when a requested shape is invalid (r ≤ 0 or c ≤ 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when the triangular factor has a (numerically)
	// zero pivot and the system cannot be solved.
	ErrSingular = errors.New("matrix: singular system")
)

// Dense is a row-major dense matrix backed by a flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero rows×cols matrix.
//
// Errors: ErrBadShape for non-positive dimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns m(row, col).
//
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return m.data[row*m.c+col], nil
}

// Set assigns m(row, col) = v.
//
// Errors: ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}
	m.data[row*m.c+col] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// MatVec computes y = m·x.
//
// Errors: ErrDimensionMismatch when len(x) != Cols().
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		acc := 0.0
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}
	return y, nil
}

// Norm2 returns the Euclidean norm of a vector (overflow-safe).
func Norm2(x []float64) float64 {
	var s float64
	for _, v := range x {
		s = math.Hypot(s, v)
	}
	return s
}
