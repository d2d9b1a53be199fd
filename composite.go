package shapemask

import (
	"image"
	"image/draw"
)

// ApplyMask composites the mask against the source image with a
// destination-in blend: source pixels are kept where the mask is opaque,
// scaled by the mask's alpha elsewhere, and cleared where it is transparent.
// The result is a new NRGBA image with the source's dimensions, origin at
// (0, 0); the source is not modified.
func ApplyMask(img image.Image, m *Mask) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	for y := 0; y < h; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+w*4]
		for x := 0; x < w; x++ {
			a := uint32(m.At(x, y))
			i := x * 4
			row[i+3] = uint8(uint32(row[i+3]) * a / 255)
		}
	}
	return out
}
