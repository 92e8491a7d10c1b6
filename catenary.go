package catenary

import (
	"fmt"
	"math"
)

// Centered is a catenary y = a·cosh(x/a) in its own coordinate system. Its
// minimum is at (0, a).
type Centered struct {
	A float64
}

// NewCentered returns the centered catenary with shape parameter a. The
// parameter must be positive and finite.
func NewCentered(a float64) (Centered, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return Centered{}, fmt.Errorf("%w: shape parameter %g isn't positive and finite", ErrInvalidInput, a)
	}
	return Centered{A: a}, nil
}

func (c Centered) String() string {
	return fmt.Sprintf("%g·cosh(x/%g)", c.A, c.A)
}

// EvalX returns the height of the curve at x.
func (c Centered) EvalX(x float64) float64 {
	return c.A * math.Cosh(x/c.A)
}

// EvalY returns the non-negative x at which the curve has height y. The
// other solution is its negation.
//
// Heights below the minimum have no solution and result in [ErrDomain].
func (c Centered) EvalY(y float64) (float64, error) {
	if !(y >= c.A) {
		return 0, fmt.Errorf("%w: height %g is below the minimum %g", ErrDomain, y, c.A)
	}
	return c.A * math.Acosh(y/c.A), nil
}

// Slope returns the derivative dy/dx at x.
func (c Centered) Slope(x float64) float64 {
	return math.Sinh(x / c.A)
}

// Arclen returns the signed length of the curve between x0 and x1.
func (c Centered) Arclen(x0, x1 float64) float64 {
	return c.A * (math.Sinh(x1/c.A) - math.Sinh(x0/c.A))
}
