package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlroots/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBisect_CosMinusX_ExactZero verifies that bisection on cos(x)−x over
// [0,1] lands on the representable value where the residual is exactly
// zero. The exact midpoint rule keeps every probe on the dyadic grid, so
// the interior exact zero is actually visited.
func TestBisect_CosMinusX_ExactZero(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	x, cert, err := roots.Bisect(f, 0, 1)
	require.NoError(t, err, "cos(x)-x brackets a root on [0,1]")
	assert.Equal(t, roots.ExactZero, cert, "the Dottie number is representable with f(x)==0")
	assert.Zero(t, f(x), "certificate must be backed by an exact residual")
	assert.InDelta(t, 0.7390851332151607, x, 1e-15)
}

// TestBisect_Sin_UnitCertificate verifies the adjacent-float certificate:
// sin has no representable exact zero near π, so the search must collapse
// to a one-ulp bracket and report the sign change.
func TestBisect_Sin_UnitCertificate(t *testing.T) {
	x, cert, err := roots.Bisect(math.Sin, math.Pi/2, 3*math.Pi/2)
	require.NoError(t, err)
	assert.Equal(t, roots.SignChangeAtUnit, cert, "π is irrational: only a unit bracket is attainable")
	assert.InDelta(t, math.Pi, x, 1e-15, "root must be within one ulp of π")
}

// TestBisect_InvalidBracket ensures endpoints with the same sign fail fast.
func TestBisect_InvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	_, _, err := roots.Bisect(f, 1, 2)
	assert.ErrorIs(t, err, roots.ErrInvalidBracket, "x² is positive on [1,2]")

	_, _, err = roots.Bisect(math.Sin, 1, 1)
	assert.ErrorIs(t, err, roots.ErrInvalidBracket, "degenerate interval is not a bracket")

	_, _, err = roots.Bisect(math.Sin, math.NaN(), 1)
	assert.ErrorIs(t, err, roots.ErrInvalidBracket, "NaN endpoint is not a bracket")
}

// TestBisect_ReversedEndpoints verifies that a reversed bracket is
// accepted and normalized rather than rejected.
func TestBisect_ReversedEndpoints(t *testing.T) {
	x, _, err := roots.Bisect(math.Sin, 3*math.Pi/2, math.Pi/2)
	require.NoError(t, err, "reversed endpoints are swapped, not rejected")
	assert.InDelta(t, math.Pi, x, 1e-15)
}

// TestBisect_EndpointExactZero checks the endpoint shortcut: an endpoint
// evaluating to exactly zero is returned immediately, sign change or not.
func TestBisect_EndpointExactZero(t *testing.T) {
	x, cert, err := roots.Bisect(math.Sin, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactZero, cert)
	assert.Equal(t, 0.0, x)
}

// TestBisect_ResultWithinBracket asserts the containment contract
// min(a,b) ≤ x ≤ max(a,b) across assorted brackets.
func TestBisect_ResultWithinBracket(t *testing.T) {
	cases := []struct {
		name string
		f    roots.Func
		a, b float64
	}{
		{"cube", func(x float64) float64 { return x*x*x - 2 }, 0, 2},
		{"exp", func(x float64) float64 { return math.Exp(x) - 3 }, 0, 4},
		{"atan-shift", func(x float64) float64 { return math.Atan(x) - 1 }, -10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, cert, err := roots.Bisect(tc.f, tc.a, tc.b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, x, tc.a)
			assert.LessOrEqual(t, x, tc.b)
			assert.NotEqual(t, roots.NoCertificate, cert)
			assert.NotEqual(t, roots.ToleranceMet, cert, "bisection never settles for a tolerance")
		})
	}
}

// TestBisect_BudgetExhausted forces ErrConvergence via a tiny iteration
// cap and inspects the diagnostic payload.
func TestBisect_BudgetExhausted(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	_, _, err := roots.Bisect(f, 0, 1, roots.WithMaxIterations(4))
	require.ErrorIs(t, err, roots.ErrConvergence)

	var ce *roots.ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 4, ce.Steps)
	assert.GreaterOrEqual(t, ce.Best, 0.0)
	assert.LessOrEqual(t, ce.Best, 1.0)
}
