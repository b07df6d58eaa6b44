package multroot

import "errors"

// ErrDegreeTooLow indicates that the input polynomial is constant (or
// zero) and has no root structure to resolve.
var ErrDegreeTooLow = errors.New("multroot: polynomial degree must be at least 1")

// Root pairs an approximate root location with its multiplicity.
type Root struct {
	X            float64
	Multiplicity int
}

// Structure is a multiplicity structure: roots in ascending order of X.
// For a polynomial whose roots are all real, the multiplicities sum to
// the degree (within the merge tolerance for clustered roots).
type Structure []Root

// Degree returns the sum of multiplicities.
func (s Structure) Degree() int {
	total := 0
	for _, r := range s {
		total += r.Multiplicity
	}
	return total
}

// Result is the outcome of the multiplicity pipeline.
//
// Refined reports whether the Gauss-Newton stage improved the residual;
// when it could not (or was not applicable, e.g. complex roots make the
// real reconstruction incomplete), the pre-refinement estimate is
// returned with Refined == false — multiplicity structure is a
// best-effort hint, never a hard failure.
type Result struct {
	Roots    Structure
	Refined  bool
	Residual float64 // ‖coefficients(reconstruction) − coefficients(p)‖₂, NaN if not comparable
}

// Options configures the multiplicity pipeline.
//
// GCDTolerance   – relative threshold below which a Euclidean remainder
//
//	counts as zero in the float64 GCD. Problem-dependent;
//	default 1e-10.
//
// MergeTolerance – relative separation below which two detected roots
//
//	are treated as one clustered root. Default 1e-8.
//
// MaxRefine      – iteration cap of the Gauss-Newton stage. Default 30.
type Options struct {
	GCDTolerance   float64
	MergeTolerance float64
	MaxRefine      int
}

// Option represents a functional option for configuring the pipeline.
type Option func(*Options)

// WithGCDTolerance sets the zero-remainder threshold of the float64 GCD.
// Must be positive; non-positive values panic (programmer error).
func WithGCDTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("multroot: GCDTolerance must be positive")
		}
		o.GCDTolerance = tol
	}
}

// WithMergeTolerance sets the clustered-root merge separation.
// Must be positive; non-positive values panic.
func WithMergeTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("multroot: MergeTolerance must be positive")
		}
		o.MergeTolerance = tol
	}
}

// WithMaxRefine caps the Gauss-Newton iterations.
// Must be positive; non-positive values panic.
func WithMaxRefine(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("multroot: MaxRefine must be positive")
		}
		o.MaxRefine = n
	}
}

// DefaultOptions returns the package defaults; see Options.
func DefaultOptions() Options {
	return Options{
		GCDTolerance:   1e-10,
		MergeTolerance: 1e-8,
		MaxRefine:      30,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
