// Package shapemask computes the geometry needed to cut an arbitrary-shaped
// region out of a rectangular raster image.
//
// # Overview
//
// Given a target width, height and a shape identifier, shapemask produces a
// closed outline (an analytic ellipse or a sampled point path), its tight
// axis-aligned bounding box, and a mask descriptor that tells a rasterizer
// how to fit the outline into the image frame. After the mask has been
// composited against the source pixels, the trim calculator yields the
// centered, aspect-preserving crop rectangle that removes the transparent
// margin around the shape.
//
// # Quick Start
//
//	import "github.com/shapemask/shapemask"
//
//	out, err := shapemask.Cut(img, shapemask.Options{
//	    Shape: "star",
//	    Trim:  true,
//	})
//
// Lower-level pieces are exported individually: Resolve maps identifiers to
// shape kinds, BuildOutline generates outlines, BuildDescriptor packages
// them for rasterization, RenderMask rasterizes, ApplyMask composites, and
// ComputeTrim produces the final crop rectangle.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Quantized coordinates (polygon and heart vertices, trim rectangles) round
// half away from zero. This is a documented contract: callers relying on
// pixel-identical output can depend on it.
//
// # Determinism
//
// Every function is a pure computation over its inputs. Nothing is shared
// between calls, so concurrent use needs no coordination.
package shapemask
