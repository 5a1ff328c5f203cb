package stdimg

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	figureMargin = 10
	figureTitleH = 20
	swatchSize   = 100
)

// ComparisonFigure lays out the original image, the posterized image and one
// labeled swatch per palette color side by side on a white canvas.
func ComparisonFigure(orig, posterized image.Image, p Palette) *image.NRGBA {
	ob := orig.Bounds()
	pb := posterized.Bounds()
	panelH := max(ob.Dy(), pb.Dy(), swatchSize)
	w := 4*figureMargin + ob.Dx() + pb.Dx() + len(p)*swatchSize
	h := 2*figureMargin + figureTitleH + panelH
	canvas := makeSolidNRGBA(w, h, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	top := figureMargin + figureTitleH
	x := figureMargin
	black := color.NRGBA{A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	placePanel := func(title string, src image.Image, r image.Rectangle) {
		draw.Draw(canvas, r, src, src.Bounds().Min, draw.Src)
		tx := r.Min.X + (r.Dx()-textWidth(title))/2
		Annotate(canvas, title, max(tx, r.Min.X), top-6, black)
	}

	placePanel("Original", orig, image.Rect(x, top, x+ob.Dx(), top+ob.Dy()))
	x += ob.Dx() + figureMargin
	placePanel("Tricolor", posterized, image.Rect(x, top, x+pb.Dx(), top+pb.Dy()))
	x += pb.Dx() + figureMargin

	swatches := image.NewNRGBA(image.Rect(0, 0, len(p)*swatchSize, swatchSize))
	for i, c := range p {
		r := image.Rect(i*swatchSize, 0, (i+1)*swatchSize, swatchSize)
		draw.Draw(swatches, r, image.NewUniform(c), image.Point{}, draw.Src)
		label := black
		if isDark(c) {
			label = white
		}
		Annotate(swatches, HexColor(c), r.Min.X+10, 75, label)
	}
	placePanel("Swatches", swatches, image.Rect(x, top, x+swatches.Bounds().Dx(), top+swatchSize))
	return canvas
}
