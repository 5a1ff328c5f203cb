package stdimg

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	// ErrPaletteSize is returned when a palette does not hold exactly three colors.
	ErrPaletteSize = errors.New("exactly three colors must be specified")
	// ErrInvalidColor is returned for color strings that are not 6 hex digits.
	ErrInvalidColor = errors.New("invalid hex color")
)

// Palette is the ordered set of three target colors. Index order matters:
// it is the identity used by the assigner and the rebalancer.
type Palette [3]color.NRGBA

// ParseHexColor parses RRGGBB with an optional 0x or # prefix.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q (need 6 hex digits, got %d)", ErrInvalidColor, s, len(hex))
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParsePalette parses exactly three hex color strings, in order.
func ParsePalette(specs []string) (Palette, error) {
	var p Palette
	if len(specs) != len(p) {
		return p, fmt.Errorf("%w (got %d)", ErrPaletteSize, len(specs))
	}
	for i, s := range specs {
		c, err := ParseHexColor(s)
		if err != nil {
			return p, err
		}
		p[i] = c
	}
	return p, nil
}

// HexColor formats c as 0xRRGGBB with uppercase digits.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("0x%02X%02X%02X", c.R, c.G, c.B)
}

// Hex joins the palette colors in order, e.g. 0x000000_0x808080_0xFFFFFF.
func (p Palette) Hex() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = HexColor(c)
	}
	return strings.Join(parts, "_")
}

// isDark reports whether text drawn over c should be white.
func isDark(c color.NRGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 < 128
}

// luma returns Rec.709 luminance in 0..255.
func luma(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}
