package shapemask

import (
	"math"
	"testing"
)

func TestResolveIdentifiers(t *testing.T) {
	tests := []struct {
		shape string
		kind  ShapeKind
	}{
		{"circle", ShapeCircle},
		{"ellipse", ShapeEllipse},
		{"hexagon", ShapePolygon},
		{"pentagon", ShapePolygon},
		{"pentagon-180", ShapePolygon},
		{"square", ShapePolygon},
		{"star", ShapeStar},
		{"heart", ShapeHeart},
		{"triangle", ShapePolygon},
		{"triangle-180", ShapePolygon},
	}
	for _, tt := range tests {
		spec, ok := Resolve(tt.shape, false)
		if !ok {
			t.Errorf("Resolve(%q) not ok, want ok", tt.shape)
			continue
		}
		if spec.Kind != tt.kind {
			t.Errorf("Resolve(%q).Kind = %v, want %v", tt.shape, spec.Kind, tt.kind)
		}
	}
}

func TestResolveCaseSensitive(t *testing.T) {
	if _, ok := Resolve("CIRCLE", false); ok {
		t.Error("Resolve(\"CIRCLE\") resolved, want no shape (matching is case-sensitive)")
	}
	if _, ok := Resolve("Circle", false); ok {
		t.Error("Resolve(\"Circle\") resolved, want no shape")
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, ok := Resolve("rhombus", false); ok {
		t.Error("Resolve(\"rhombus\") resolved, want no shape")
	}
	if _, ok := Resolve("", false); ok {
		t.Error("Resolve(\"\") resolved, want no shape")
	}
}

func TestResolveLegacyCircle(t *testing.T) {
	spec, ok := Resolve("", true)
	if !ok {
		t.Fatal("Resolve(\"\", legacy) not ok, want circle")
	}
	if spec.Kind != ShapeCircle {
		t.Errorf("Resolve(\"\", legacy).Kind = %v, want ShapeCircle", spec.Kind)
	}

	// An exact match still wins over the legacy flag.
	spec, ok = Resolve("star", true)
	if !ok || spec.Kind != ShapeStar {
		t.Errorf("Resolve(\"star\", legacy) = %v, %v, want star", spec.Kind, ok)
	}
}

func TestResolvePolygonParams(t *testing.T) {
	tests := []struct {
		shape  string
		points int
		angle  float64
	}{
		{"triangle", 3, 0},
		{"triangle-180", 3, math.Pi},
		{"square", 4, 0},
		{"pentagon", 5, 0},
		{"pentagon-180", 5, math.Pi},
		{"hexagon", 6, 0},
	}
	for _, tt := range tests {
		spec, _ := Resolve(tt.shape, false)
		p := spec.Polygon
		if p.Points != tt.points {
			t.Errorf("%s: Points = %d, want %d", tt.shape, p.Points, tt.points)
		}
		if p.InitialAngle != tt.angle {
			t.Errorf("%s: InitialAngle = %v, want %v", tt.shape, p.InitialAngle, tt.angle)
		}
		if p.InnerRatio != 1 {
			t.Errorf("%s: InnerRatio = %v, want 1", tt.shape, p.InnerRatio)
		}
	}
}

func TestResolveStarParams(t *testing.T) {
	spec, _ := Resolve("star", false)
	// Five tips and five notches; an even count keeps the outer/inner
	// alternation consistent across the closing vertex.
	if spec.Polygon.Points != 10 {
		t.Errorf("star Points = %d, want 10", spec.Polygon.Points)
	}
	if spec.Polygon.InnerRatio != 0.382 {
		t.Errorf("star InnerRatio = %v, want 0.382 exactly", spec.Polygon.InnerRatio)
	}
}
