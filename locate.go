package catenary

import "math"

// LocateTolerance is the largest absolute error in the vertical distance
// that [Centered.Locate] accepts.
const LocateTolerance = 1e-5

// EndpointOffset is the position of a chain's left endpoint on a centered
// catenary. The right endpoint is at X0 + distH.
type EndpointOffset struct {
	X0 float64
	// Residual is the absolute difference between the requested vertical
	// distance and the one between the located endpoints.
	Residual float64
}

// Locate finds the segment of c that spans two points distH apart
// horizontally and distV apart vertically. Positive distV means that the
// right endpoint is higher than the left one.
//
// The offset is computed in closed form, using
//
//	cosh(p) − cosh(q) = 2·sinh((p+q)/2)·sinh((p−q)/2)
//
// and then checked by evaluating the curve at both endpoints. A check that
// fails by more than [LocateTolerance] results in a [*GeometryError]. This
// happens when c is too tight for the span, and the hyperbolic functions
// overflow or lose all precision.
func (c Centered) Locate(distH, distV float64) (EndpointOffset, error) {
	if err := checkDistances(distH, distV); err != nil {
		return EndpointOffset{}, err
	}
	h2 := distH / 2
	sh := math.Sinh(h2 / c.A)
	x0 := c.A*math.Asinh(distV/(2*c.A*sh)) - h2

	got := c.EvalX(x0+distH) - c.EvalX(x0)
	off := EndpointOffset{X0: x0, Residual: math.Abs(got - distV)}
	if !(off.Residual <= LocateTolerance) {
		return EndpointOffset{}, &GeometryError{Want: distV, Got: got}
	}
	return off, nil
}
