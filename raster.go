package catenary

import (
	"fmt"
	"image"
	"iter"
	"math"
)

// BytesPerPixel is the number of bytes per pixel in the buffers written by
// [Placed.RasterizeInto]: one each for red, green, blue, and alpha.
const BytesPerPixel = 4

var white = [BytesPerPixel]byte{0xFF, 0xFF, 0xFF, 0xFF}

// ColumnScan returns the pixels of the curve found by evaluating it once per
// column. The last column is evaluated at the right endpoint itself. A grid
// that is a single column wide is evaluated at both endpoints.
//
// Where the curve is steep, consecutive columns can be several rows apart,
// leaving vertical gaps. See [Placed.RowScan].
func (p Placed) ColumnScan() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		h := float64(p.Height)
		sample := func(col int, dx float64) bool {
			y := p.Curve.EvalX(p.DispX + dx)
			row := h - 1 - math.Round(y-p.DispY)
			if !(row >= 0 && row < h) {
				return true
			}
			return yield(image.Pt(col, int(row)))
		}
		for col := range p.Width {
			dx := float64(col)
			if col == p.Width-1 {
				if col == 0 && !sample(0, 0) {
					return
				}
				dx = p.DistH
			}
			if !sample(col, dx) {
				return
			}
		}
	}
}

// RowScan returns the pixels of the curve found by inverting it once per row.
// Each row intersects the two branches of the curve at ±x; only
// intersections on the spanned segment are used.
//
// Where the curve is flat, consecutive rows can be several columns apart,
// leaving horizontal gaps. See [Placed.ColumnScan].
func (p Placed) RowScan() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		x0, x1 := p.Endpoints()
		eps := 1e-9 * max(1, math.Abs(x0), math.Abs(x1))
		w := float64(p.Width)
		for row := range p.Height {
			y := float64(p.Height-1-row) + p.DispY
			x, err := p.Curve.EvalY(y)
			if err != nil {
				continue
			}
			for _, cand := range [2]float64{x, -x} {
				if cand < x0-eps || cand > x1+eps {
					continue
				}
				col := math.Round(cand - p.DispX)
				if !(col >= 0 && col < w) {
					continue
				}
				if !yield(image.Pt(int(col), row)) {
					return
				}
			}
		}
	}
}

// Pixels returns the union of [Placed.ColumnScan] and [Placed.RowScan].
// Pixels found by both scans are reported twice.
//
// If mirror is true, columns are flipped, so that the left endpoint ends up in
// the last column.
func (p Placed) Pixels(mirror bool) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for _, scan := range [2]iter.Seq[image.Point]{p.ColumnScan(), p.RowScan()} {
			for pt := range scan {
				if mirror {
					pt.X = p.Width - 1 - pt.X
				}
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// RasterizeInto sets the pixels of the curve to opaque white in buf, which
// holds width×height pixels in row-major, top to bottom order, with
// [BytesPerPixel] bytes per pixel. Other pixels are left unchanged; callers
// usually clear the buffer first.
//
// The dimensions must match those of p.
func (p Placed) RasterizeInto(buf []byte, width, height int, mirror bool) error {
	if width != p.Width || height != p.Height {
		return fmt.Errorf("%w: buffer is %d×%d pixels, curve needs %d×%d", ErrInvalidInput, width, height, p.Width, p.Height)
	}
	if n := width * height * BytesPerPixel; len(buf) < n {
		return fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrInvalidInput, len(buf), n)
	}
	p.rasterize(buf, width*BytesPerPixel, mirror)
	return nil
}

// Image returns a new, transparent image with the curve drawn in opaque
// white. If p has an empty grid, such as a zero Placed, the image is empty.
func (p Placed) Image(mirror bool) *image.RGBA {
	r := p.Bounds()
	if r.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(r)
	p.rasterize(img.Pix, img.Stride, mirror)
	return img
}

func (p Placed) rasterize(pix []byte, stride int, mirror bool) {
	for pt := range p.Pixels(mirror) {
		i := pt.Y*stride + pt.X*BytesPerPixel
		copy(pix[i:i+BytesPerPixel], white[:])
	}
}
