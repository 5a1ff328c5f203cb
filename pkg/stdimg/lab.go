package stdimg

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Lab8 is a CIE L*a*b* (D65) color stored with 8 bits per channel:
// L scaled from 0..100 to 0..255, a and b offset by 128.
type Lab8 [3]uint8

// LabImage holds one Lab8 value per pixel in row-major order.
type LabImage struct {
	Width  int
	Height int
	Pix    []Lab8
}

// ToLab8 converts an sRGB color into 8-bit Lab. Alpha is ignored.
func ToLab8(c color.NRGBA) Lab8 {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	// go-colorful reports L in 0..1 and a/b in roughly -1..1
	return Lab8{
		quantize(l * 255.0),
		quantize(a*100.0 + 128.0),
		quantize(b*100.0 + 128.0),
	}
}

func quantize(v float64) uint8 {
	return uint8(clampFloatToUint8(math.Round(v)))
}

func clampFloatToUint8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ImageToLab converts every pixel of src. The conversion of a given RGB
// triple is memoized since photos repeat colors heavily.
func ImageToLab(src *image.NRGBA) *LabImage {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &LabImage{Width: w, Height: h, Pix: make([]Lab8, w*h)}
	cache := make(map[uint32]Lab8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			r, g, bl := src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]
			key := uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
			lab, ok := cache[key]
			if !ok {
				lab = ToLab8(color.NRGBA{R: r, G: g, B: bl, A: 0xff})
				cache[key] = lab
			}
			out.Pix[y*w+x] = lab
		}
	}
	return out
}

// Lab converts each palette color with the same transform used for pixels.
func (p Palette) Lab() [3]Lab8 {
	var out [3]Lab8
	for i, c := range p {
		out[i] = ToLab8(c)
	}
	return out
}

// labDistance is the Euclidean norm of the signed channel differences.
func labDistance(p, q Lab8) float64 {
	dl := float64(p[0]) - float64(q[0])
	da := float64(p[1]) - float64(q[1])
	db := float64(p[2]) - float64(q[2])
	return math.Sqrt(dl*dl + da*da + db*db)
}
