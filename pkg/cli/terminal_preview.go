package cli

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Terminal preview for the kitty graphics protocol and the iTerm2 inline
// image protocol (OSC 1337), which WezTerm, VS Code and others also speak.
// PREVIEW_BACKEND=kitty|inline forces a backend.

// ErrPreviewUnsupported is returned when the terminal speaks neither protocol.
var ErrPreviewUnsupported = errors.New("terminal does not support inline images")

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

func isInlineImageCapable() bool {
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return true
	}
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "iterm.app", "wezterm", "vscode", "tabby", "warpterminal", "rio", "hyper":
		return true
	}
	return strings.Contains(strings.ToLower(os.Getenv("TERM")), "wezterm")
}

// PreviewImage encodes img as PNG and writes it to w using the first
// protocol the terminal supports.
func PreviewImage(w io.Writer, img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	backend := strings.ToLower(os.Getenv("PREVIEW_BACKEND"))
	switch {
	case backend == "kitty", backend == "" && isKitty():
		debugf("preview via kitty protocol (%d bytes)", buf.Len())
		return sendKittyImage(w, buf.Bytes())
	case backend == "inline", backend == "" && isInlineImageCapable():
		debugf("preview via inline protocol (%d bytes)", buf.Len())
		return sendInlineImage(w, buf.Bytes())
	}
	return ErrPreviewUnsupported
}

// sendKittyImage transmits PNG bytes in base64 chunks of at most 4096 bytes.
func sendKittyImage(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096
	for pos := 0; pos < len(enc); pos += chunkSize {
		end := min(pos+chunkSize, len(enc))
		more := "0"
		if end < len(enc) {
			more = "1"
		}
		var seq string
		if pos == 0 {
			// a=T transmit and display, f=100 PNG, q=2 suppress replies
			seq = "\x1b_Ga=T,f=100,t=d,q=2,m=" + more + ";" + enc[pos:end] + "\x1b\\"
		} else {
			seq = "\x1b_Gm=" + more + ";" + enc[pos:end] + "\x1b\\"
		}
		if _, err := io.WriteString(w, seq); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func sendInlineImage(w io.Writer, data []byte) error {
	enc := base64.StdEncoding.EncodeToString(data)
	seq := fmt.Sprintf("\x1b]1337;File=name=preview.png;inline=1;size=%d:%s\a\n", len(data), enc)
	_, err := io.WriteString(w, seq)
	return err
}
