package shapemask

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestCutPassThrough(t *testing.T) {
	img := solidNRGBA(10, 10, color.NRGBA{R: 1, A: 255})
	out, err := Cut(img, Options{Shape: "rhombus"})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	if out != img {
		t.Error("unknown shape without legacy flag should return the source image unchanged")
	}
}

func TestCutNilImage(t *testing.T) {
	if _, err := Cut(nil, Options{Shape: "circle"}); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Cut(nil) error = %v, want ErrEmptyImage", err)
	}
}

func TestCutCircleTrims(t *testing.T) {
	img := solidNRGBA(100, 50, color.NRGBA{R: 255, A: 255})
	out, err := Cut(img, Options{Shape: "circle", Trim: true})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("trimmed size = %dx%d, want 50x50", b.Dx(), b.Dy())
	}
}

func TestCutEllipseNeverTrims(t *testing.T) {
	img := solidNRGBA(100, 50, color.NRGBA{G: 255, A: 255})
	out, err := Cut(img, Options{Shape: "ellipse", Trim: true})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("ellipse output = %dx%d, want the full 100x50 frame", b.Dx(), b.Dy())
	}
}

func TestCutWithoutTrimKeepsFrame(t *testing.T) {
	img := solidNRGBA(80, 40, color.NRGBA{B: 255, A: 255})
	out, err := Cut(img, Options{Shape: "star"})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("untrimmed output = %dx%d, want 80x40", b.Dx(), b.Dy())
	}
}

func TestCutMasksPixels(t *testing.T) {
	img := solidNRGBA(100, 100, color.NRGBA{R: 255, A: 255})
	out, err := Cut(img, Options{Shape: "circle"})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("output is %T, want *image.NRGBA", out)
	}
	if got := nrgba.NRGBAAt(50, 50); got.A != 255 || got.R != 255 {
		t.Errorf("center = %+v, want opaque red", got)
	}
	if got := nrgba.NRGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}
}

func TestCutLegacyCircle(t *testing.T) {
	img := solidNRGBA(60, 60, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	out, err := Cut(img, Options{LegacyCircle: true})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	nrgba := out.(*image.NRGBA)
	if got := nrgba.NRGBAAt(30, 30).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
	if got := nrgba.NRGBAAt(1, 1).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
}

func TestCutSquareTrimIsNoop(t *testing.T) {
	// The square (diamond) shape's box spans the short axis fully, so on a
	// square frame the trim equals the frame and no crop applies.
	img := solidNRGBA(64, 64, color.NRGBA{R: 5, A: 255})
	out, err := Cut(img, Options{Shape: "square", Trim: true})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("output = %dx%d, want the full 64x64 frame", b.Dx(), b.Dy())
	}
}

func TestCutHeartTrims(t *testing.T) {
	img := solidNRGBA(200, 200, color.NRGBA{R: 255, A: 255})
	out, err := Cut(img, Options{Shape: "heart", Trim: true})
	if err != nil {
		t.Fatalf("Cut error: %v", err)
	}
	b := out.Bounds()
	if b.Dx() > 200 || b.Dy() > 200 {
		t.Fatalf("trimmed output %dx%d exceeds frame", b.Dx(), b.Dy())
	}
	// The heart is wider than tall, so trimming removes vertical margin.
	if b.Dy() >= 200 {
		t.Errorf("height = %d, want < 200 after trim", b.Dy())
	}
	if b.Dx() != 200 {
		t.Errorf("width = %d, want the full 200 (limiting axis)", b.Dx())
	}
}
