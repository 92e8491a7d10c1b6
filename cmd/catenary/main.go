// Command catenary renders a chain hanging between two points as a PNG
// image, with the chain drawn in opaque white on a transparent background.
//
// Usage:
//
//	catenary [-dx 100] [-dy 100] [-slack 150 | -arclen 400] [-mirror] [-scale 3] [-o out.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"golang.org/x/image/draw"
	"honnef.co/go/catenary"
)

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "catenary: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("catenary", flag.ContinueOnError)
	var (
		distH   = fs.Float64("dx", 100, "horizontal distance between the endpoints")
		distV   = fs.Float64("dy", 100, "vertical distance between the endpoints, positive if the right one is higher")
		slack   = fs.Float64("slack", 150, "length of the chain in excess of the distance between the endpoints")
		arclen  = fs.Float64("arclen", 0, "total length of the chain, overrides -slack if positive")
		mirror  = fs.Bool("mirror", false, "flip the image horizontally")
		scale   = fs.Int("scale", 1, "upscale the image by an integer factor")
		out     = fs.String("o", "catenary.png", "output file, or - for standard output")
		verbose = fs.Bool("v", false, "report the solved curve")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if *scale < 1 {
		return fmt.Errorf("invalid -scale %d", *scale)
	}

	var (
		p   catenary.Placed
		err error
	)
	if *arclen > 0 {
		p, err = catenary.NewArclen(*distH, *distV, *arclen)
	} else {
		p, err = catenary.New(*distH, *distV, *slack)
	}
	if err != nil {
		return err
	}
	if *verbose {
		x0, x1 := p.Endpoints()
		log.Printf("a = %g, endpoints at x = %g and %g, arc length %g", p.Curve.A, x0, x1, p.Arclen())
		log.Printf("%d×%d pixels, minimum visible: %t", p.Width, p.Height, p.MinimumVisible)
	}

	img := upscale(p.Image(*mirror), *scale)
	if *out == "-" {
		return png.Encode(stdout, img)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// upscale enlarges img by an integer factor without interpolation, keeping
// pixels sharp.
func upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor == 1 {
		return img
	}
	sr := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, sr, draw.Src, nil)
	return dst
}
