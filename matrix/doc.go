// Package matrix provides the small dense linear-algebra core consumed
// by the Gauss-Newton refiner: a flat row-major Dense type,
// matrix-vector products and a Householder-QR least-squares solver.
//
// All algorithms are deterministic (fixed traversal order, no pivoting)
// and return sentinel errors; nothing here panics on user-triggered
// conditions.
package matrix
