package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rdancer/tricolor/pkg/stdimg"
)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitFailed = 1 // at least one input could not be processed
	ExitConfig = 2 // bad flags or palette; nothing was processed
)

// Run parses args, posterizes every input image and reports one line per
// file. Unreadable inputs are reported and skipped.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "tricolor: %v\n", err)
		return ExitConfig
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "tricolor %s\n", Version)
		return ExitOK
	}
	if cfg.Update {
		if err := CheckForUpdates(stdout); err != nil {
			fmt.Fprintf(stderr, "update check error: %v\n", err)
			return ExitFailed
		}
		return ExitOK
	}

	status := ExitOK
	previewOK := cfg.Preview
	for _, r := range ProcessAll(cfg) {
		if r.Err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", r.Err)
			status = ExitFailed
			continue
		}
		fmt.Fprintf(stdout, "Saved: %s\n", r.Output)
		if r.Plot != "" {
			fmt.Fprintf(stdout, "Saved plot: %s\n", r.Plot)
		}
		if cfg.Verbose {
			fmt.Fprintf(stdout, "  %s\n  %s\n", r.Info, stdimg.FormatCoverage(cfg.Palette, r.Counts))
		}
		if previewOK && r.Image != nil {
			if err := PreviewImage(stdout, r.Image); err != nil {
				// report once, then stop trying for the rest of the batch
				fmt.Fprintf(stderr, "preview unavailable: %v\n", err)
				previewOK = false
			}
		}
	}
	return status
}
