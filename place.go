package catenary

import (
	"fmt"
	"image"
	"math"
)

// Placed is a segment of a centered catenary, positioned on a pixel grid.
//
// The grid is y-down. The left endpoint is in column 0, and the bottom row
// contains either the lower endpoint or, if it lies between the endpoints, the
// curve's minimum. Pixel indices are obtained by rounding to the nearest
// integer.
type Placed struct {
	Curve Centered
	// DistH and DistV are the distances between the endpoints.
	DistH, DistV float64
	// DispX is the curve x of column 0, which is the left endpoint.
	DispX float64
	// DispY is the curve y of the bottom row.
	DispY float64
	// Width and Height are the size of the pixel grid.
	Width, Height int
	// MinimumVisible reports whether the curve's minimum lies strictly between
	// the endpoints.
	MinimumVisible bool
}

// New solves and places the catenary spanning two points with the given
// distances and slack. It combines [Solve] and [Place].
func New(distH, distV, slack float64) (Placed, error) {
	c, err := Solve(distH, distV, slack)
	if err != nil {
		return Placed{}, err
	}
	return Place(c, distH, distV)
}

// NewArclen is like [New] but takes the chain's total length. It combines
// [SolveArclen] and [Place].
func NewArclen(distH, distV, arclen float64) (Placed, error) {
	c, err := SolveArclen(distH, distV, arclen)
	if err != nil {
		return Placed{}, err
	}
	return Place(c, distH, distV)
}

// Place locates the segment of c spanning the given distances and computes
// the smallest pixel grid that contains it.
//
// Every pixel index produced by rasterization is a rounded distance from the
// left endpoint or the bottom row, so the grid has one column more than the
// rounded horizontal distance and one row more than the rounded height of the
// higher endpoint.
func Place(c Centered, distH, distV float64) (Placed, error) {
	if !(c.A > 0) || math.IsInf(c.A, 0) {
		return Placed{}, fmt.Errorf("%w: shape parameter %g isn't positive and finite", ErrInvalidInput, c.A)
	}
	off, err := c.Locate(distH, distV)
	if err != nil {
		return Placed{}, err
	}
	x0 := off.X0
	x1 := x0 + distH
	y0 := c.EvalX(x0)
	y1 := c.EvalX(x1)
	yMin := min(y0, y1)

	p := Placed{
		Curve: c,
		DistH: distH,
		DistV: distV,
		DispX: x0,
		DispY: yMin,
	}
	if x0 < 0 && x1 > 0 {
		p.MinimumVisible = true
		p.DispY = c.A
	}
	// The height of the higher endpoint above the bottom row. This is the
	// vertical distance plus the sag below the lower endpoint, which is only
	// non-zero if the minimum is visible.
	top := max(y0, y1) - p.DispY

	w := math.Round(distH) + 1
	h := math.Round(top) + 1
	if !isFinite(w) || !isFinite(h) || w > math.MaxInt32 || h > math.MaxInt32 {
		return Placed{}, fmt.Errorf("%w: grid of %g×%g pixels is too large", ErrInvalidInput, w, h)
	}
	p.Width, p.Height = int(w), int(h)
	return p, nil
}

// Size returns the size of the pixel grid.
func (p Placed) Size() image.Point {
	return image.Pt(p.Width, p.Height)
}

// Bounds returns the pixel grid as a rectangle with its origin at (0, 0).
func (p Placed) Bounds() image.Rectangle {
	return image.Rectangle{Max: p.Size()}
}

// Endpoints returns the positions of the left and right endpoints on the
// centered curve.
func (p Placed) Endpoints() (x0, x1 float64) {
	return p.DispX, p.DispX + p.DistH
}

// Arclen returns the length of the placed segment.
func (p Placed) Arclen() float64 {
	x0, x1 := p.Endpoints()
	return p.Curve.Arclen(x0, x1)
}
