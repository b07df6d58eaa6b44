package poly_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlroots/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRat_CopiesAndTrims checks value semantics and trailing-zero
// trimming of the rational constructor.
func TestNewRat_CopiesAndTrims(t *testing.T) {
	c := big.NewRat(1, 2)
	p := poly.NewRat(c, nil, new(big.Rat))
	assert.Equal(t, 0, p.Degree(), "nil and zero coefficients trim away")

	c.SetInt64(99)
	assert.Equal(t, "1/2", p[0].RatString(), "coefficients are copied, not aliased")
}

// TestRatPoly_Derivative differentiates exactly.
func TestRatPoly_Derivative(t *testing.T) {
	p := poly.NewRatFromInts(1, 2, 3) // 1 + 2x + 3x²
	d := p.Derivative()
	require.Equal(t, 1, d.Degree())
	assert.Equal(t, "2", d[0].RatString())
	assert.Equal(t, "6", d[1].RatString())
}

// TestRatPoly_DivExact divides x²−1 by x−1 with zero remainder.
func TestRatPoly_DivExact(t *testing.T) {
	p := poly.NewRatFromInts(-1, 0, 1)
	q := poly.NewRatFromInts(-1, 1)

	quo, rem, err := p.Div(q)
	require.NoError(t, err)
	assert.True(t, rem.IsZero())
	require.Equal(t, 1, quo.Degree())
	assert.Equal(t, "1", quo[0].RatString())
	assert.Equal(t, "1", quo[1].RatString())
}

// TestRatPoly_DivByZero fails with the shared sentinel.
func TestRatPoly_DivByZero(t *testing.T) {
	_, _, err := poly.NewRatFromInts(1, 1).Div(poly.NewRat())
	assert.ErrorIs(t, err, poly.ErrDivideByZero)
}

// TestRatGCD_Exact recovers (x−1) from (x−1)²(x+2) and its derivative
// with no tolerance anywhere.
func TestRatGCD_Exact(t *testing.T) {
	// (x−1)²(x+2) = x³ − 3x + 2
	p := poly.NewRatFromInts(2, -3, 0, 1)

	g := poly.RatGCD(p, p.Derivative())
	require.Equal(t, 1, g.Degree())
	assert.Equal(t, "-1", g[0].RatString())
	assert.Equal(t, "1", g[1].RatString())
}

// TestRatGCD_Coprime returns the constant 1.
func TestRatGCD_Coprime(t *testing.T) {
	p := poly.NewRatFromInts(-1, 1) // x − 1
	q := poly.NewRatFromInts(1, 1)  // x + 1

	g := poly.RatGCD(p, q)
	require.Equal(t, 0, g.Degree())
	assert.Equal(t, "1", g[0].RatString())
}

// TestRatPoly_Float rounds rational coefficients to float64.
func TestRatPoly_Float(t *testing.T) {
	p := poly.NewRat(big.NewRat(1, 4), big.NewRat(3, 2))
	assert.Equal(t, poly.New(0.25, 1.5), p.Float())
}
