package stdimg

import (
	"fmt"
	"image"
)

// Options controls how Apply posterizes an image.
type Options struct {
	Strategy Strategy
	Policy   Policy
}

// Result is the outcome of posterizing one image.
type Result struct {
	Image      *image.NRGBA
	Assignment *Assignment
	// RawCounts are the per-color pixel counts before rebalancing.
	RawCounts [3]int
	// Counts are the final per-color pixel counts.
	Counts [3]int
}

// Apply reduces img to the three palette colors. It holds no state between
// calls, so separate images may be processed concurrently.
func Apply(img image.Image, p Palette, opts Options) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	src := ToNRGBA(img)
	var a *Assignment
	var raw [3]int
	switch opts.Strategy {
	case "", StrategyLab:
		var d Distances
		a, d = AssignNearest(ImageToLab(src), p.Lab())
		raw = a.Counts()
		policy := opts.Policy
		if policy == "" {
			policy = PolicyNext
		}
		Rebalance(a, d, policy)
	case StrategyIntensity:
		a = AssignIntensity(src)
		raw = a.Counts()
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
	b := src.Bounds()
	if a.Width != b.Dx() || a.Height != b.Dy() {
		panic(fmt.Sprintf("stdimg: assignment is %dx%d for a %dx%d image", a.Width, a.Height, b.Dx(), b.Dy()))
	}
	return &Result{
		Image:      Materialize(a, p),
		Assignment: a,
		RawCounts:  raw,
		Counts:     a.Counts(),
	}, nil
}
