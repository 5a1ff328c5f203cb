package stdimg

import "fmt"

// Assignment maps every pixel (row-major) to a palette index 0..2.
type Assignment struct {
	Width  int
	Height int
	Labels []uint8
}

// NewAssignment allocates a w x h assignment with every pixel on index 0.
func NewAssignment(w, h int) *Assignment {
	return &Assignment{Width: w, Height: h, Labels: make([]uint8, w*h)}
}

// At returns the palette index of pixel (x, y).
func (a *Assignment) At(x, y int) uint8 {
	return a.Labels[y*a.Width+x]
}

// Counts returns how many pixels are assigned to each palette index.
func (a *Assignment) Counts() [3]int {
	var n [3]int
	for _, l := range a.Labels {
		n[l]++
	}
	return n
}

// Distances holds, per pixel in row-major order, the Lab distance to each
// palette color.
type Distances [][3]float64

// AssignNearest labels each pixel with the index of the closest palette
// color. Ties go to the lowest index.
func AssignNearest(img *LabImage, palette [3]Lab8) (*Assignment, Distances) {
	if len(img.Pix) != img.Width*img.Height {
		panic(fmt.Sprintf("stdimg: lab image has %d pixels, want %dx%d", len(img.Pix), img.Width, img.Height))
	}
	a := NewAssignment(img.Width, img.Height)
	d := make(Distances, len(img.Pix))
	for p, lab := range img.Pix {
		best := 0
		for i := range palette {
			d[p][i] = labDistance(lab, palette[i])
			if d[p][i] < d[p][best] {
				best = i
			}
		}
		a.Labels[p] = uint8(best)
	}
	return a, d
}
