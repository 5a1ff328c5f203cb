package cli

import (
	"errors"
	"io"
	"testing"

	"github.com/rdancer/tricolor/pkg/stdimg"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{envColors, envOutputDir, envStrategy, envPolicy, envWorkers, envDebug} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFlags(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig([]string{
		"-color", "0x000000", "-color", "#808080", "-color", "FFFFFF",
		"-o", "out", "-plot", "-policy", "nearest", "-workers", "3",
		"a.jpg", "b.png",
	}, io.Discard)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.Palette.Hex(); got != "0x000000_0x808080_0xFFFFFF" {
		t.Fatalf("palette = %s", got)
	}
	if cfg.OutputDir != "out" || !cfg.Plot || cfg.Workers != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Options.Strategy != stdimg.StrategyLab || cfg.Options.Policy != stdimg.PolicyNearest {
		t.Fatalf("options = %+v", cfg.Options)
	}
	if len(cfg.Inputs) != 2 || cfg.Inputs[0] != "a.jpg" || cfg.Inputs[1] != "b.png" {
		t.Fatalf("inputs = %v", cfg.Inputs)
	}
}

func TestLoadConfigEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envColors, "0x111111, 0x222222,0x333333")
	t.Setenv(envStrategy, "intensity")
	t.Setenv(envOutputDir, "/tmp/tri")

	cfg, err := LoadConfig([]string{"x.png"}, io.Discard)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.Palette.Hex(); got != "0x111111_0x222222_0x333333" {
		t.Fatalf("palette from env = %s", got)
	}
	if cfg.Options.Strategy != stdimg.StrategyIntensity || cfg.OutputDir != "/tmp/tri" || cfg.Workers != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	// explicit -color replaces the environment palette entirely
	cfg, err = LoadConfig([]string{"-color", "0xAAAAAA", "-color", "0xBBBBBB", "-color", "0xCCCCCC", "x.png"}, io.Discard)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.Palette.Hex(); got != "0xAAAAAA_0xBBBBBB_0xCCCCCC" {
		t.Fatalf("palette with flags = %s", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	clearEnv(t)
	three := []string{"-color", "000000", "-color", "808080", "-color", "ffffff"}
	cases := []struct {
		name string
		args []string
		is   error
	}{
		{"two colors", []string{"-color", "000000", "-color", "ffffff", "x.png"}, stdimg.ErrPaletteSize},
		{"four colors", append(append([]string{}, three...), "-color", "ff0000", "x.png"), stdimg.ErrPaletteSize},
		{"bad hex", []string{"-color", "00000", "-color", "808080", "-color", "ffffff", "x.png"}, stdimg.ErrInvalidColor},
		{"bad policy", append(append([]string{}, three...), "-policy", "fair", "x.png"), nil},
		{"bad strategy", append(append([]string{}, three...), "-strategy", "kmeans", "x.png"), nil},
		{"no inputs", three, nil},
	}
	for _, c := range cases {
		_, err := LoadConfig(c.args, io.Discard)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if c.is != nil && !errors.Is(err, c.is) {
			t.Fatalf("%s: error %v is not %v", c.name, err, c.is)
		}
	}
}

func TestLoadConfigVersionSkipsPalette(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig([]string{"-version"}, io.Discard)
	if err != nil {
		t.Fatalf("LoadConfig(-version): %v", err)
	}
	if !cfg.ShowVersion {
		t.Fatalf("ShowVersion not set")
	}
}
