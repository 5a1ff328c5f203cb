package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func previewEnv(t *testing.T, backend, term, termProgram string) {
	t.Helper()
	t.Setenv("PREVIEW_BACKEND", backend)
	t.Setenv("TERM", term)
	t.Setenv("TERM_PROGRAM", termProgram)
	t.Setenv("KITTY_WINDOW_ID", "")
	t.Setenv("ITERM_SESSION_ID", "")
}

func tinyImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 0, 255})
	return img
}

// TestPreviewInlineSequence verifies that PreviewImage emits an inline-image OSC
// sequence when TERM_PROGRAM indicates an inline-capable terminal.
func TestPreviewInlineSequence(t *testing.T) {
	previewEnv(t, "", "xterm-256color", "WezTerm")
	var buf bytes.Buffer
	if err := PreviewImage(&buf, tinyImage()); err != nil {
		t.Fatalf("PreviewImage error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b]1337;File=") {
		t.Fatalf("expected inline 1337 sequence, got: %q", buf.String())
	}
}

func TestPreviewKittyChunks(t *testing.T) {
	previewEnv(t, "", "xterm-kitty", "")
	var buf bytes.Buffer
	if err := PreviewImage(&buf, tinyImage()); err != nil {
		t.Fatalf("PreviewImage error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b_Ga=T,f=100,") {
		t.Fatalf("expected kitty graphics sequence, got: %q", out)
	}
	// a tiny PNG fits one chunk, which must be the final one
	if !strings.Contains(out, "m=0;") {
		t.Fatalf("expected final chunk marker m=0, got: %q", out)
	}
}

func TestPreviewUnsupported(t *testing.T) {
	previewEnv(t, "", "dumb", "")
	err := PreviewImage(&bytes.Buffer{}, tinyImage())
	if !errors.Is(err, ErrPreviewUnsupported) {
		t.Fatalf("error = %v; want ErrPreviewUnsupported", err)
	}
}
