package stdimg

import (
	"fmt"
	"strings"
)

// Coverage returns the fraction of pixels assigned to each palette index.
// An empty assignment yields all zeros.
func Coverage(a *Assignment) [3]float64 {
	var out [3]float64
	if len(a.Labels) == 0 {
		return out
	}
	n := a.Counts()
	for i := range n {
		out[i] = float64(n[i]) / float64(len(a.Labels))
	}
	return out
}

// FormatCoverage renders per-color counts as "0x000000 33.3% (3)" entries.
func FormatCoverage(p Palette, counts [3]int) string {
	total := counts[0] + counts[1] + counts[2]
	parts := make([]string, len(p))
	for i, c := range p {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(counts[i]) / float64(total)
		}
		parts[i] = fmt.Sprintf("%s %.1f%% (%d)", HexColor(c), pct, counts[i])
	}
	return strings.Join(parts, ", ")
}
