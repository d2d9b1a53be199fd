// Command shapecut cuts a shaped region out of an image and writes the
// result as PNG or JPEG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/shapemask/shapemask"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (png, jpeg, gif, webp, bmp, tiff)")
		out     = flag.String("out", "out.png", "output file (.png or .jpg)")
		shape   = flag.String("shape", "", "shape identifier (circle, ellipse, hexagon, pentagon, pentagon-180, square, star, heart, triangle, triangle-180)")
		circle  = flag.Bool("circle", false, "legacy flag: cut a circle when no shape matches")
		trim    = flag.Bool("trim", false, "crop the result to the shape's bounding box")
		width   = flag.Int("width", 0, "resize to this width before cutting (0 = keep)")
		height  = flag.Int("height", 0, "resize to this height before cutting (0 = keep)")
		svg     = flag.Bool("svg", false, "print the mask descriptor as SVG instead of cutting")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		shapemask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *in == "" {
		log.Fatal("missing -in")
	}
	img, err := loadImage(*in)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *in, err)
	}
	if *width > 0 || *height > 0 {
		img = imaging.Resize(img, *width, *height, imaging.Lanczos)
	}

	if *svg {
		if err := dumpSVG(img, *shape, *circle); err != nil {
			log.Fatalf("Failed to build descriptor: %v", err)
		}
		return
	}

	result, err := shapemask.Cut(img, shapemask.Options{
		Shape:        *shape,
		LegacyCircle: *circle,
		Trim:         *trim,
	})
	if err != nil {
		log.Fatalf("Failed to cut: %v", err)
	}

	if err := saveImage(*out, result); err != nil {
		log.Fatalf("Failed to save %s: %v", *out, err)
	}
	b := result.Bounds()
	log.Printf("Saved %s (%dx%d)\n", *out, b.Dx(), b.Dy())
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func dumpSVG(img image.Image, shape string, circle bool) error {
	spec, ok := shapemask.Resolve(shape, circle)
	if !ok {
		return fmt.Errorf("no shape resolves from %q", shape)
	}
	b := img.Bounds()
	outline, box := shapemask.BuildOutline(spec, b.Dx(), b.Dy())
	d := shapemask.BuildDescriptor(b.Dx(), b.Dy(), outline, box, spec.Kind)
	fmt.Print(d.SVG())
	return nil
}

func saveImage(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		// JPEG has no alpha; the transparent margin turns black.
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(f, img)
	}
}
