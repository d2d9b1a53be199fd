package shapemask

import "math"

// Rect is an axis-aligned rectangle defined by its minimum corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxX returns the X coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the Y coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Outline is the vector description of a shape's boundary, either analytic
// (ellipse, circle) or point-sampled (polygon, star, heart). Outlines are
// value objects: built once per request and never mutated.
type Outline interface {
	// Bounds returns the tight axis-aligned bounding box of the outline.
	Bounds() Rect

	isOutline()
}

// EllipseOutline is a closed analytic curve described by its center and
// radii. A circle is an EllipseOutline with RX == RY.
type EllipseOutline struct {
	CX, CY float64 // Center.
	RX, RY float64 // Radii.
}

func (EllipseOutline) isOutline() {}

// Bounds returns the tight bounding box of the ellipse.
func (e EllipseOutline) Bounds() Rect {
	return Rect{X: e.CX - e.RX, Y: e.CY - e.RY, W: 2 * e.RX, H: 2 * e.RY}
}

// PathOutline is an ordered, closed sequence of points. The first point
// implicitly connects to the last; insertion order is the drawing order.
type PathOutline struct {
	Points []Point
}

func (PathOutline) isOutline() {}

// Bounds returns the tight min/max box over the outline's points.
// Returns the zero Rect for an empty path.
func (p PathOutline) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
