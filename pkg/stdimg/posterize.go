package stdimg

import (
	"cmp"
	"image"
	"slices"
)

// Materialize paints each pixel with its assigned palette color. The result
// is fully opaque and has its origin at (0,0).
func Materialize(a *Assignment, p Palette) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			c := p[a.At(x, y)]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// AssignIntensity splits pixels into thirds by luminance rank: the darkest
// third goes to index 0, the middle third to 1 and the rest to 2. Equal
// luminance keeps scan order.
func AssignIntensity(src *image.NRGBA) *Assignment {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	a := NewAssignment(w, h)
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			lum[y*w+x] = luma(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
		}
	}
	order := make([]int, len(lum))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(p, q int) int {
		return cmp.Compare(lum[p], lum[q])
	})
	third := len(order) / 3
	for rank, p := range order {
		switch {
		case rank < third:
			a.Labels[p] = 0
		case rank < 2*third:
			a.Labels[p] = 1
		default:
			a.Labels[p] = 2
		}
	}
	return a
}
