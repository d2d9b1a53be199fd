package shapemask

import "math"

// heartStep is the parameter step used to sample the heart curve, radians.
const heartStep = 0.02

// Ellipse generates the full-frame ellipse outline: centered in the frame
// with radii (width/2, height/2). Its bounding box is always the full frame,
// so no trimming ever applies to it.
func Ellipse(width, height int) (EllipseOutline, Rect) {
	w, h := float64(width), float64(height)
	o := EllipseOutline{CX: w / 2, CY: h / 2, RX: w / 2, RY: h / 2}
	return o, o.Bounds()
}

// Circle generates a centered circle outline with diameter
// min(width, height).
func Circle(width, height int) (EllipseOutline, Rect) {
	w, h := float64(width), float64(height)
	r := math.Min(w, h) / 2
	o := EllipseOutline{CX: w / 2, CY: h / 2, RX: r, RY: r}
	return o, o.Bounds()
}

// Polygon generates a regular polygon or star outline. Vertices alternate
// between the outer radius (even index) and inner radius (odd index); for
// plain polygons the radii are equal so the alternation is a no-op. The path
// emits points+1 samples, the last duplicating the first to close it.
//
// When the vertex count is odd an extra vertex at (0, outerRadius) relative
// to the center is prepended; without it the centroid of an odd-sided shape
// sits offset from the requested center.
//
// Coordinates are rounded half away from zero before storage.
func Polygon(width, height int, spec PolygonSpec) (PathOutline, Rect) {
	midX := float64(width) / 2
	midY := float64(height) / 2
	outer := math.Min(float64(width), float64(height)) / 2
	inner := outer * spec.InnerRatio

	pts := make([]Point, 0, spec.Points+2)
	if spec.Points%2 != 0 {
		pts = append(pts, Pt(math.Round(midX), math.Round(midY+outer)))
	}
	step := 2 * math.Pi / float64(spec.Points)
	for i := 0; i <= spec.Points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*step - math.Pi/2 + spec.InitialAngle
		pts = append(pts, Pt(
			math.Round(midX+r*math.Cos(a)),
			math.Round(midY+r*math.Sin(a)),
		))
	}

	o := PathOutline{Points: pts}
	return o, o.Bounds()
}

// Heart samples the closed parametric heart curve
//
//	x(t) = 16*sin(t)^3
//	y(t) = 13*cos(t) - 5*cos(2t) - 2*cos(3t) - cos(4t)
//
// for t in [-pi, pi] in steps of 0.02 radians, then closes the path back to
// its first sample. Curve-space +y points up, so samples are y-flipped into
// raster space. The curve is not normalized; the mask descriptor's viewBox
// fit scales it into the frame.
func Heart(width, height int) (PathOutline, Rect) {
	mid := math.Min(float64(width), float64(height)) / 2

	pts := make([]Point, 0, int(math.Ceil(2*math.Pi/heartStep))+2)
	for t := -math.Pi; t <= math.Pi; t += heartStep {
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts = append(pts, Pt(
			math.Round(mid+x*mid),
			math.Round(mid-y*mid),
		))
	}
	pts = append(pts, pts[0])

	o := PathOutline{Points: pts}
	return o, o.Bounds()
}

// BuildOutline generates the outline and bounding box for a resolved shape.
// Width and height must be positive; the caller guarantees this.
// ShapeNone yields a nil outline.
func BuildOutline(spec ShapeSpec, width, height int) (Outline, Rect) {
	switch spec.Kind {
	case ShapeEllipse:
		o, box := Ellipse(width, height)
		return o, box
	case ShapeCircle:
		o, box := Circle(width, height)
		return o, box
	case ShapePolygon, ShapeStar:
		o, box := Polygon(width, height, spec.Polygon)
		return o, box
	case ShapeHeart:
		o, box := Heart(width, height)
		return o, box
	}
	return nil, Rect{}
}
