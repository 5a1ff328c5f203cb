package stdimg

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColorValid(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"0x1E2761", color.NRGBA{0x1e, 0x27, 0x61, 0xff}},
		{"0X1e2761", color.NRGBA{0x1e, 0x27, 0x61, 0xff}},
		{"#1e2761", color.NRGBA{0x1e, 0x27, 0x61, 0xff}},
		{"1E2761", color.NRGBA{0x1e, 0x27, 0x61, 0xff}},
		{" #ffffff ", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"000000", color.NRGBA{0, 0, 0, 0xff}},
		{"0x000000", color.NRGBA{0, 0, 0, 0xff}},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseHexColor(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	cases := []string{"", "12345", "1234567", "GGGGGG", "0x", "#12345g", "+12345", "0x0x1234", "##123456"}
	for _, c := range cases {
		_, err := ParseHexColor(c)
		if err == nil {
			t.Fatalf("ParseHexColor(%q) expected error", c)
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ParseHexColor(%q) error %v does not wrap ErrInvalidColor", c, err)
		}
	}
}

func TestParsePaletteCount(t *testing.T) {
	for _, specs := range [][]string{nil, {"000000", "ffffff"}, {"000000", "808080", "ffffff", "ff0000"}} {
		if _, err := ParsePalette(specs); !errors.Is(err, ErrPaletteSize) {
			t.Fatalf("ParsePalette(%v) error = %v; want ErrPaletteSize", specs, err)
		}
	}
}

func TestPaletteHex(t *testing.T) {
	p, err := ParsePalette([]string{"#000000", "0x808080", "fFfFfF"})
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if got, want := p.Hex(), "0x000000_0x808080_0xFFFFFF"; got != want {
		t.Fatalf("Hex() = %q; want %q", got, want)
	}
}
