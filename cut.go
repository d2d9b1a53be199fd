package shapemask

import (
	"errors"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage reports a source image with no pixels.
var ErrEmptyImage = errors.New("shapemask: source image has no pixels")

// Options selects the shape to cut and whether to trim the result.
type Options struct {
	// Shape is the requested shape identifier. Unknown identifiers mean
	// "no shape": the image passes through unmodified.
	Shape string

	// LegacyCircle resolves an unrecognized Shape to a circle, matching the
	// behavior of the old circle-only API.
	LegacyCircle bool

	// Trim crops the masked image back to the shape's bounding box,
	// centered and aspect-preserving. Never applied to the ellipse, whose
	// mask always fills the full frame.
	Trim bool
}

// Cut masks the image with the requested shape and, when asked, trims the
// result to the shape's bounding box. When no shape resolves the source
// image is returned as-is, which is a normal outcome rather than an error.
func Cut(img image.Image, o Options) (image.Image, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	spec, ok := Resolve(o.Shape, o.LegacyCircle)
	if !ok {
		return img, nil
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	outline, box := BuildOutline(spec, w, h)
	d := BuildDescriptor(w, h, outline, box, spec.Kind)
	Logger().Debug("mask built",
		slog.String("shape", o.Shape),
		slog.Int("width", w), slog.Int("height", h),
		slog.Float64("boxW", box.W), slog.Float64("boxH", box.H))

	out := ApplyMask(img, RenderMask(d))

	if spec.Kind == ShapeEllipse || !o.Trim {
		return out, nil
	}
	tr, err := ComputeTrim(w, h, box.W, box.H)
	if err != nil {
		return nil, err
	}
	if tr.Width >= w && tr.Height >= h {
		// The trim equals the full frame; skip the no-op crop.
		return out, nil
	}
	Logger().Debug("trimming",
		slog.Int("left", tr.Left), slog.Int("top", tr.Top),
		slog.Int("trimW", tr.Width), slog.Int("trimH", tr.Height))
	return imaging.Crop(out, image.Rect(tr.Left, tr.Top, tr.Left+tr.Width, tr.Top+tr.Height)), nil
}
