package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlroots/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBrent_Sin locates π on [3,4] and checks the accuracy implied by
// the default tolerance.
func TestBrent_Sin(t *testing.T) {
	x, cert, err := roots.Brent(math.Sin, 3, 4)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, x, 1e-10)
	assert.NotEqual(t, roots.NoCertificate, cert)
}

// TestBrent_CountsFewerEvaluationsThanBisect is the reason Brent exists:
// superlinear interpolation steps beat one-bit-per-step bisection when
// every evaluation is paid for.
func TestBrent_CountsFewerEvaluationsThanBisect(t *testing.T) {
	counted := func(n *int) roots.Func {
		return func(x float64) float64 {
			*n++
			return math.Exp(x) - 3
		}
	}

	var nBrent, nBisect int
	_, _, err := roots.Brent(counted(&nBrent), 0, 4)
	require.NoError(t, err)
	_, _, err = roots.Bisect(counted(&nBisect), 0, 4)
	require.NoError(t, err)

	assert.Less(t, nBrent, nBisect, "interpolation should need fewer evaluations")
}

// TestBrent_InvalidBracket mirrors the bisection precondition.
func TestBrent_InvalidBracket(t *testing.T) {
	_, _, err := roots.Brent(math.Exp, 0, 1)
	assert.ErrorIs(t, err, roots.ErrInvalidBracket, "exp is positive everywhere")

	_, _, err = roots.Brent(math.Sin, 2, 2)
	assert.ErrorIs(t, err, roots.ErrInvalidBracket)
}

// TestBrent_EndpointExactZero returns an exactly-zero endpoint at once.
func TestBrent_EndpointExactZero(t *testing.T) {
	f := func(x float64) float64 { return x }

	x, cert, err := roots.Brent(f, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactZero, cert)
	assert.Equal(t, 0.0, x)
}

// TestBrent_TighterTolerance verifies that shrinking Tol tightens the
// returned abscissa.
func TestBrent_TighterTolerance(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2 }

	x, _, err := roots.Brent(f, 1, 2, roots.WithTolerance(1e-14))
	require.NoError(t, err)
	assert.InDelta(t, math.Cbrt(2), x, 1e-13)
}
