package shapemask

import (
	"fmt"
	"math"
	"strings"
)

// PreserveAspect selects how a mask's viewBox maps onto its viewport.
type PreserveAspect int

const (
	// AspectNone stretches the outline independently on each axis to fill
	// the viewport exactly.
	AspectNone PreserveAspect = iota

	// AspectMeetCentered scales the outline uniformly so it fits within the
	// viewport, then centers it. The outline is never distorted.
	AspectMeetCentered
)

// String returns the SVG preserveAspectRatio spelling of the policy.
func (a PreserveAspect) String() string {
	if a == AspectNone {
		return "none"
	}
	return "xMidYMid meet"
}

// MaskDescriptor is the complete description of a shape mask, ready for
// hand-off to a rasterizer: the outline, the viewport it renders into, the
// viewBox window mapping outline coordinates to the viewport, and the
// aspect-fit policy. Built once per request and immutable.
type MaskDescriptor struct {
	Outline Outline
	Width   int // Viewport width, pixels.
	Height  int // Viewport height, pixels.
	ViewBox Rect
	Aspect  PreserveAspect
}

// BuildDescriptor assembles generator output into a mask descriptor.
// The ellipse is the only shape rendered with AspectNone: its mask fills the
// frame exactly, stretching per axis. Every other shape scales uniformly and
// is centered.
func BuildDescriptor(width, height int, outline Outline, box Rect, kind ShapeKind) MaskDescriptor {
	aspect := AspectMeetCentered
	if kind == ShapeEllipse {
		aspect = AspectNone
	}
	return MaskDescriptor{
		Outline: outline,
		Width:   width,
		Height:  height,
		ViewBox: box,
		Aspect:  aspect,
	}
}

// transform returns the affine mapping from viewBox coordinates to viewport
// pixels: device = (x*sx + tx, y*sy + ty). The viewBox must not be empty.
func (d MaskDescriptor) transform() (sx, sy, tx, ty float64) {
	w, h := float64(d.Width), float64(d.Height)
	sx = w / d.ViewBox.W
	sy = h / d.ViewBox.H
	if d.Aspect == AspectMeetCentered {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	tx = (w-d.ViewBox.W*sx)/2 - d.ViewBox.X*sx
	ty = (h-d.ViewBox.H*sy)/2 - d.ViewBox.Y*sy
	return sx, sy, tx, ty
}

// SVG serializes the descriptor as a standalone SVG document with a white
// shape on a transparent background, the form an external SVG rasterizer
// consumes.
func (d MaskDescriptor) SVG() string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%g %g %g %g" preserveAspectRatio="%s">`,
		d.Width, d.Height,
		d.ViewBox.X, d.ViewBox.Y, d.ViewBox.W, d.ViewBox.H,
		d.Aspect)
	b.WriteString("\n")

	switch o := d.Outline.(type) {
	case EllipseOutline:
		fmt.Fprintf(&b, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="#fff"/>`,
			o.CX, o.CY, o.RX, o.RY)
	case PathOutline:
		if len(o.Points) > 0 {
			b.WriteString(`  <path d="`)
			for i, p := range o.Points {
				if i == 0 {
					fmt.Fprintf(&b, "M%g %g", p.X, p.Y)
				} else {
					fmt.Fprintf(&b, " L%g %g", p.X, p.Y)
				}
			}
			b.WriteString(` Z" fill="#fff"/>`)
		}
	}
	b.WriteString("\n</svg>\n")
	return b.String()
}
