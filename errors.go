package catenary

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned for non-finite or out of range arguments,
	// such as a negative horizontal distance.
	ErrInvalidInput = errors.New("catenary: invalid input")
	// ErrDomain is returned when a function is evaluated outside of its
	// domain, such as [Centered.EvalY] below the curve's minimum, or when the
	// endpoints are vertically aligned and no catenary can span them.
	ErrDomain = errors.New("catenary: argument outside of domain")
	// ErrSolverDivergence is returned when neither root finding strategy
	// produced a valid shape parameter.
	ErrSolverDivergence = errors.New("catenary: solver did not converge")
	// ErrGeometryInconsistency is returned when a located curve segment
	// doesn't reproduce the requested vertical distance.
	ErrGeometryInconsistency = errors.New("catenary: inconsistent geometry")
)

// GeometryError describes a failed post-condition of [Centered.Locate].
type GeometryError struct {
	// Want is the requested vertical distance between the endpoints.
	Want float64
	// Got is the vertical distance between the located endpoints.
	Got float64
}

// Residual returns the absolute difference between Got and Want.
func (err *GeometryError) Residual() float64 {
	return math.Abs(err.Got - err.Want)
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("%s: vertical distance is %g, want %g (residual %g)",
		ErrGeometryInconsistency, err.Got, err.Want, err.Residual())
}

func (err *GeometryError) Unwrap() error {
	return ErrGeometryInconsistency
}
