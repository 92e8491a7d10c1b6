package catenary

import (
	"bytes"
	"errors"
	"image"
	"iter"
	"math"
	"testing"
)

func collect(seq iter.Seq[image.Point]) map[image.Point]bool {
	out := map[image.Point]bool{}
	for pt := range seq {
		out[pt] = true
	}
	return out
}

func mustNew(t *testing.T, cfg config) Placed {
	t.Helper()
	p, err := New(cfg.distH, cfg.distV, cfg.slack)
	if err != nil {
		t.Fatalf("%+v: %v", cfg, err)
	}
	return p
}

func TestPixelsNoGaps(t *testing.T) {
	for _, cfg := range configs {
		p := mustNew(t, cfg)
		rows := make([]bool, p.Height)
		cols := make([]bool, p.Width)
		for pt := range p.Pixels(false) {
			if !pt.In(p.Bounds()) {
				t.Fatalf("%+v: pixel %v outside of %v", cfg, pt, p.Bounds())
			}
			rows[pt.Y] = true
			cols[pt.X] = true
		}
		for y, ok := range rows {
			if !ok {
				t.Errorf("%+v: row %d of %d is empty", cfg, y, p.Height)
			}
		}
		for x, ok := range cols {
			if !ok {
				t.Errorf("%+v: column %d of %d is empty", cfg, x, p.Width)
			}
		}
	}
}

func TestPixelsSubpixelCoverage(t *testing.T) {
	// Every row crossed by a finely sampled curve has a pixel.
	for _, cfg := range configs {
		p := mustNew(t, cfg)
		marked := make([]bool, p.Height)
		for pt := range p.Pixels(false) {
			marked[pt.Y] = true
		}
		x0, _ := p.Endpoints()
		n := 16 * (p.Width + p.Height)
		for i := 0; i <= n; i++ {
			x := x0 + p.DistH*float64(i)/float64(n)
			row := p.Height - 1 - int(math.Round(p.Curve.EvalX(x)-p.DispY))
			if row < 0 || row >= p.Height {
				continue
			}
			if !marked[row] {
				t.Errorf("%+v: curve crosses row %d at x = %g, but it has no pixels", cfg, row, x)
				break
			}
		}
	}
}

func TestColumnScan(t *testing.T) {
	for _, cfg := range configs {
		p := mustNew(t, cfg)
		seen := map[int]int{}
		for pt := range p.ColumnScan() {
			seen[pt.X]++
			dxs := []float64{float64(pt.X)}
			if pt.X == p.Width-1 {
				dxs = []float64{p.DistH}
				if pt.X == 0 {
					dxs = append(dxs, 0)
				}
			}
			rowY := float64(p.Height-1-pt.Y) + p.DispY
			d := math.Inf(1)
			for _, dx := range dxs {
				d = min(d, math.Abs(p.Curve.EvalX(p.DispX+dx)-rowY))
			}
			if d > 0.5+1e-9 {
				t.Errorf("%+v: pixel %v is %g rows away from the curve", cfg, pt, d)
			}
		}
		for col, n := range seen {
			if limit := 1 + btoi(p.Width == 1); n > limit {
				t.Errorf("%+v: column %d reported %d times", cfg, col, n)
			}
		}
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestColumnScanSingleColumn(t *testing.T) {
	// Spans below half a pixel round to a single column, which has to show
	// both endpoints. The higher one is in the top row.
	for _, cfg := range []config{{0.3, -100, 50}, {0.3, 100, 50}, {0.01, -3, 50}} {
		p := mustNew(t, cfg)
		if p.Width != 1 {
			t.Fatalf("%+v: got width %d, want 1", cfg, p.Width)
		}
		x0, x1 := p.Endpoints()
		px := collect(p.ColumnScan())
		for _, x := range []float64{x0, x1} {
			pt := image.Pt(0, p.Height-1-int(math.Round(p.Curve.EvalX(x)-p.DispY)))
			if !px[pt] {
				t.Errorf("%+v: endpoint at x = %g, pixel %v, isn't drawn", cfg, x, pt)
			}
		}
		if !px[image.Pt(0, 0)] {
			t.Errorf("%+v: top row is empty", cfg)
		}
	}
}

func TestRowScan(t *testing.T) {
	for _, cfg := range configs {
		p := mustNew(t, cfg)
		perRow := map[int]int{}
		for pt := range p.RowScan() {
			perRow[pt.Y]++
			y := float64(p.Height-1-pt.Y) + p.DispY
			x, err := p.Curve.EvalY(y)
			if err != nil {
				t.Fatalf("%+v: pixel %v: %v", cfg, pt, err)
			}
			col := float64(pt.X) + p.DispX
			if d := min(math.Abs(x-col), math.Abs(-x-col)); d > 0.5+1e-9 {
				t.Errorf("%+v: pixel %v is %g columns away from the curve", cfg, pt, d)
			}
		}
		for row, n := range perRow {
			if n > 2 {
				t.Errorf("%+v: row %d has %d pixels", cfg, row, n)
			}
		}
	}
}

func TestRowScanStaysOnSegment(t *testing.T) {
	// The minimum is left of the chain. Rows intersect the invisible branch
	// at negative x, which must not produce pixels, not even in column 0.
	p := mustNew(t, config{100, 100, 1})
	x0, x1 := p.Endpoints()
	for pt := range p.RowScan() {
		y := float64(p.Height-1-pt.Y) + p.DispY
		x, _ := p.Curve.EvalY(y)
		if x < x0-0.5 || x > x1+0.5 {
			t.Errorf("pixel %v comes from x = %g outside of [%g, %g]", pt, x, x0, x1)
		}
	}
}

func TestScansComplement(t *testing.T) {
	// Steep: one pixel per column leaves most rows empty.
	steep := mustNew(t, config{20, 500, 50})
	rows := map[int]bool{}
	for pt := range steep.ColumnScan() {
		rows[pt.Y] = true
	}
	if len(rows) >= steep.Height {
		t.Errorf("column scan of steep curve covers all %d rows", steep.Height)
	}

	// Flat: one or two pixels per row leave most columns empty.
	flat := mustNew(t, config{100, 0, 0})
	cols := map[int]bool{}
	for pt := range flat.RowScan() {
		cols[pt.X] = true
	}
	if len(cols) >= flat.Width {
		t.Errorf("row scan of flat curve covers all %d columns", flat.Width)
	}

	for _, p := range []Placed{steep, flat} {
		union := collect(p.ColumnScan())
		for pt := range p.RowScan() {
			union[pt] = true
		}
		diff(t, union, collect(p.Pixels(false)))
	}
}

func TestPixelsMirror(t *testing.T) {
	for _, cfg := range configs {
		p := mustNew(t, cfg)
		want := map[image.Point]bool{}
		for pt := range p.Pixels(false) {
			want[image.Pt(p.Width-1-pt.X, pt.Y)] = true
		}
		diff(t, want, collect(p.Pixels(true)))
	}
}

func TestPixelsScenario(t *testing.T) {
	p := mustNew(t, config{100, 100, 150})
	px := collect(p.Pixels(false))
	if len(px) == 0 {
		t.Fatal("no pixels")
	}
	// Both endpoints and the minimum are drawn.
	for _, pt := range []image.Point{
		image.Pt(0, p.Height-1-int(math.Round(p.Curve.EvalX(p.DispX)-p.DispY))),
		image.Pt(p.Width-1, 0),
		image.Pt(int(math.Round(-p.DispX)), p.Height-1),
	} {
		if !px[pt] {
			t.Errorf("pixel %v isn't drawn", pt)
		}
	}
}

func TestPixelsStop(t *testing.T) {
	p := mustNew(t, config{100, 100, 150})
	n := 0
	for range p.Pixels(false) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d pixels, want 3", n)
	}
}

func TestRasterizeInto(t *testing.T) {
	p := mustNew(t, config{100, 100, 150})
	w, h := p.Width, p.Height
	buf := make([]byte, w*h*BytesPerPixel)
	for i := range buf {
		buf[i] = byte(i%BytesPerPixel) + 1
	}
	orig := bytes.Clone(buf)
	if err := p.RasterizeInto(buf, w, h, false); err != nil {
		t.Fatal(err)
	}
	px := collect(p.Pixels(false))
	for y := range h {
		for x := range w {
			i := (y*w + x) * BytesPerPixel
			got := buf[i : i+BytesPerPixel]
			want := orig[i : i+BytesPerPixel]
			if px[image.Pt(x, y)] {
				want = white[:]
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("pixel (%d, %d) is %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeIntoInvalid(t *testing.T) {
	p := mustNew(t, config{100, 100, 150})
	w, h := p.Width, p.Height
	if err := p.RasterizeInto(make([]byte, w*h*BytesPerPixel), w+1, h, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
	if err := p.RasterizeInto(make([]byte, w*h*BytesPerPixel-1), w, h, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
}

func TestImageEmpty(t *testing.T) {
	for _, p := range []Placed{{}, {Width: -1, Height: 5}, {Width: 3, Height: -2}} {
		img := p.Image(false)
		if !img.Bounds().Empty() {
			t.Errorf("%+v: got bounds %v, want empty", p, img.Bounds())
		}
	}
}

func TestImage(t *testing.T) {
	for _, mirror := range []bool{false, true} {
		p := mustNew(t, config{1500, 1000, 1000})
		buf := make([]byte, p.Width*p.Height*BytesPerPixel)
		if err := p.RasterizeInto(buf, p.Width, p.Height, mirror); err != nil {
			t.Fatal(err)
		}
		img := p.Image(mirror)
		diff(t, p.Bounds(), img.Bounds())
		if !bytes.Equal(buf, img.Pix) {
			t.Errorf("mirror = %t: image differs from buffer", mirror)
		}
	}
}
