package shapemask

import "math"

// ShapeKind identifies the shape family a request resolved to.
type ShapeKind int

const (
	// ShapeNone indicates no shape was requested; the image passes through
	// unmodified.
	ShapeNone ShapeKind = iota

	// ShapeEllipse is the full-frame ellipse. It is the only shape whose
	// mask stretches independently on each axis, and it is never trimmed.
	ShapeEllipse

	// ShapeCircle is a centered circle with diameter min(width, height).
	ShapeCircle

	// ShapePolygon is a regular polygon (triangle, square, pentagon,
	// hexagon and their tilted variants).
	ShapePolygon

	// ShapeStar is the five-pointed star.
	ShapeStar

	// ShapeHeart is the parametric heart curve.
	ShapeHeart
)

// PolygonSpec parameterizes a regular polygon or star outline.
// The Kind field of the enclosing ShapeSpec indicates whether it is
// meaningful.
type PolygonSpec struct {
	Points       int     // Vertex count.
	InnerRatio   float64 // Inner/outer vertex radius ratio; 1 for plain polygons.
	InitialAngle float64 // Rotation added to every vertex angle, radians.
}

// StarInnerRatio is the inner/outer radius ratio of the five-pointed star,
// producing the classic star proportion.
const StarInnerRatio = 0.382

// ShapeSpec holds the resolved shape parameters.
// Polygon is meaningful for ShapePolygon and ShapeStar only.
type ShapeSpec struct {
	Kind    ShapeKind
	Polygon PolygonSpec
}

// Resolve maps a shape identifier to the shape to generate. Matching is
// exact and case-sensitive. An unrecognized identifier resolves to circle
// when legacyCircle is set (backward-compatibility path), and otherwise to
// ok == false, meaning no shape was requested. Unknown identifiers are a
// deliberate no-op signal, never an error.
func Resolve(shape string, legacyCircle bool) (spec ShapeSpec, ok bool) {
	switch shape {
	case "circle":
		return ShapeSpec{Kind: ShapeCircle}, true
	case "ellipse":
		return ShapeSpec{Kind: ShapeEllipse}, true
	case "hexagon":
		return polygonSpec(6, 0), true
	case "pentagon":
		return polygonSpec(5, 0), true
	case "pentagon-180":
		return polygonSpec(5, math.Pi), true
	case "square":
		return polygonSpec(4, 0), true
	case "star":
		// Ten alternating vertices: five outer tips, five inner notches.
		// An odd count cannot close the outer/inner alternation.
		return ShapeSpec{
			Kind: ShapeStar,
			Polygon: PolygonSpec{
				Points:     10,
				InnerRatio: StarInnerRatio,
			},
		}, true
	case "heart":
		return ShapeSpec{Kind: ShapeHeart}, true
	case "triangle":
		return polygonSpec(3, 0), true
	case "triangle-180":
		return polygonSpec(3, math.Pi), true
	}
	if legacyCircle {
		return ShapeSpec{Kind: ShapeCircle}, true
	}
	return ShapeSpec{}, false
}

func polygonSpec(points int, angle float64) ShapeSpec {
	return ShapeSpec{
		Kind: ShapePolygon,
		Polygon: PolygonSpec{
			Points:       points,
			InnerRatio:   1,
			InitialAngle: angle,
		},
	}
}
