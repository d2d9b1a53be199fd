package shapemask

import (
	"errors"
	"math"
)

// ErrEmptyMask reports a mask bounding box with no area, for which no trim
// rectangle can be derived.
var ErrEmptyMask = errors.New("shapemask: mask bounding box has no area")

// TrimRect is an integer pixel crop rectangle, centered within the full
// image, with the aspect ratio of the mask's bounding box.
type TrimRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// ComputeTrim computes the centered, aspect-preserving crop rectangle that
// trims a masked image back to its shape's bounding box. The box is scaled
// by the limiting axis so the result never exceeds the image, and all
// coordinates round half away from zero.
//
// A mask box with zero or negative area returns ErrEmptyMask rather than
// propagating NaN or Inf into the rectangle.
func ComputeTrim(width, height int, maskWidth, maskHeight float64) (TrimRect, error) {
	if maskWidth <= 0 || maskHeight <= 0 {
		return TrimRect{}, ErrEmptyMask
	}

	w, h := float64(width), float64(height)
	scale := math.Min(w/maskWidth, h/maskHeight)
	trimW := maskWidth * scale
	trimH := maskHeight * scale

	return TrimRect{
		Left:   int(math.Round((w - trimW) / 2)),
		Top:    int(math.Round((h - trimH) / 2)),
		Width:  int(math.Round(trimW)),
		Height: int(math.Round(trimH)),
	}, nil
}
