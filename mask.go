package shapemask

import (
	"image"

	"golang.org/x/image/vector"
)

// Mask is a single-channel opacity raster. Values range from 0 (fully
// transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty mask with the given dimensions, fully
// transparent.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// kappa is the cubic Bezier control point distance for circle approximation.
// Equal to 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// RenderMask rasterizes the descriptor's outline into an antialiased alpha
// mask at viewport resolution, using the viewBox as the coordinate window
// under the descriptor's aspect policy. An empty viewBox or outline yields a
// fully transparent mask.
func RenderMask(d MaskDescriptor) *Mask {
	m := NewMask(d.Width, d.Height)
	if d.Outline == nil || d.ViewBox.Empty() {
		return m
	}

	sx, sy, tx, ty := d.transform()
	r := vector.NewRasterizer(d.Width, d.Height)

	switch o := d.Outline.(type) {
	case EllipseOutline:
		ellipseTo(r,
			o.CX*sx+tx, o.CY*sy+ty,
			o.RX*sx, o.RY*sy)
	case PathOutline:
		if len(o.Points) == 0 {
			return m
		}
		first := o.Points[0]
		r.MoveTo(float32(first.X*sx+tx), float32(first.Y*sy+ty))
		for _, p := range o.Points[1:] {
			r.LineTo(float32(p.X*sx+tx), float32(p.Y*sy+ty))
		}
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, d.Width, d.Height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	copy(m.data, dst.Pix)
	return m
}

// ellipseTo appends an ellipse in device coordinates as four kappa cubics.
func ellipseTo(r *vector.Rasterizer, cx, cy, rx, ry float64) {
	kx, ky := float32(rx*kappa), float32(ry*kappa)
	x0, x1 := float32(cx-rx), float32(cx+rx)
	y0, y1 := float32(cy-ry), float32(cy+ry)
	mx, my := float32(cx), float32(cy)

	r.MoveTo(x1, my)
	r.CubeTo(x1, my+ky, mx+kx, y1, mx, y1)
	r.CubeTo(mx-kx, y1, x0, my+ky, x0, my)
	r.CubeTo(x0, my-ky, mx-kx, y0, mx, y0)
	r.CubeTo(mx+kx, y0, x1, my-ky, x1, my)
	r.ClosePath()
}
