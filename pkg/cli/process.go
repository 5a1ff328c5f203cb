package cli

import (
	"fmt"
	"image"
	"sync"

	"github.com/rdancer/tricolor/pkg/stdimg"
)

// FileError reports a failure confined to one input file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("unable to process image %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FileResult is the outcome of processing one input.
type FileResult struct {
	Input  string
	Output string
	Plot   string
	Info   string
	Image  image.Image
	Counts [3]int
	Err    error
}

// ProcessFile runs the full pipeline for one input: decode, posterize,
// write the PNG and, if requested, the comparison figure.
func ProcessFile(path string, cfg *Config) FileResult {
	res := FileResult{Input: path}
	img, format, err := LoadImage(path)
	if err != nil {
		res.Err = &FileError{Path: path, Err: err}
		return res
	}
	res.Info, _ = GetImageInfoImage(img, format)
	debugf("%s: %s", path, res.Info)

	out, err := stdimg.Apply(img, cfg.Palette, cfg.Options)
	if err != nil {
		res.Err = &FileError{Path: path, Err: err}
		return res
	}
	debugf("%s: raw %v, rebalanced %v", path, out.RawCounts, out.Counts)
	if cfg.Preview {
		res.Image = out.Image
	}
	res.Counts = out.Counts

	res.Output = OutputPath(cfg.OutputDir, path, cfg.Palette)
	if err := SaveImage(res.Output, out.Image); err != nil {
		res.Err = &FileError{Path: path, Err: fmt.Errorf("write %s: %w", res.Output, err)}
		return res
	}
	if cfg.Plot {
		res.Plot = PlotPath(cfg.OutputDir, path, cfg.Palette)
		fig := stdimg.ComparisonFigure(stdimg.ToNRGBA(img), out.Image, cfg.Palette)
		if err := SaveImage(res.Plot, fig); err != nil {
			res.Err = &FileError{Path: path, Err: fmt.Errorf("write %s: %w", res.Plot, err)}
			return res
		}
	}
	return res
}

// ProcessAll processes cfg.Inputs with up to cfg.Workers images in flight.
// Images share no state, so each pipeline runs independently; results keep
// input order.
func ProcessAll(cfg *Config) []FileResult {
	results := make([]FileResult, len(cfg.Inputs))
	workers := max(cfg.Workers, 1)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, path := range cfg.Inputs {
		i, path := i, path
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = ProcessFile(path, cfg)
		}()
	}
	wg.Wait()
	return results
}
