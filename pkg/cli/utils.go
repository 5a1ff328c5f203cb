package cli

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/edwvee/exiffix"
	"github.com/rdancer/tricolor/pkg/stdimg"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PromptLine displays a prompt and reads a full line of input from the user.
// The returned string is trimmed of surrounding whitespace (including the newline).
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// LoadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file. JPEG EXIF
// orientation is applied so the pixel grid matches what viewers display.
func LoadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, format, err := exiffix.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	return img, format, nil
}

// SaveImage writes img to path as PNG, creating parent directories as needed.
func SaveImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return imgio.Save(path, img, imgio.PNGEncoder())
}

// baseName strips the directory and extension from an input path.
func baseName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath names the posterized image for input, e.g.
// out/photo_0x000000_0x808080_0xFFFFFF.png. The same input and palette always
// map to the same file.
func OutputPath(dir, input string, p stdimg.Palette) string {
	return filepath.Join(dir, baseName(input)+"_"+p.Hex()+".png")
}

// PlotPath names the comparison figure for input.
func PlotPath(dir, input string, p stdimg.Palette) string {
	return filepath.Join(dir, baseName(input)+"_plot_"+p.Hex()+".png")
}

// GetImageInfoImage returns a short info string for an image.Image
func GetImageInfoImage(img image.Image, format string) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	if format == "" {
		format = "unknown"
	}
	b := img.Bounds()
	return fmt.Sprintf("Format: %s, Width: %d, Height: %d", strings.ToUpper(format), b.Dx(), b.Dy()), nil
}
