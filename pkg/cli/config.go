package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rdancer/tricolor/pkg/stdimg"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	Colors    []string
	Palette   stdimg.Palette
	OutputDir string
	Plot      bool
	Preview   bool
	Verbose   bool
	Workers   int
	Options   stdimg.Options
	Inputs    []string

	ShowVersion bool
	Update      bool
}

// colorFlag collects repeated -color values. The first explicit value
// replaces any default taken from the environment.
type colorFlag struct {
	values []string
	set    bool
}

func (c *colorFlag) String() string { return strings.Join(c.values, ",") }

func (c *colorFlag) Set(s string) error {
	if !c.set {
		c.values = nil
		c.set = true
	}
	c.values = append(c.values, s)
	return nil
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: tricolor [flags] image...\n\n")
		fmt.Fprintf(out, "Posterize images to exactly three colors.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nStrategies:\n")
		for _, s := range stdimg.Strategies {
			fmt.Fprintf(out, "  %-10s %s\n", s.Name, s.Description)
		}
		fmt.Fprintf(out, "\nPolicies (lab strategy):\n")
		for _, p := range stdimg.Policies {
			fmt.Fprintf(out, "  %-10s %s\n", p.Name, p.Description)
		}
	}
}

// LoadConfig resolves flags in args on top of TRICOLOR_* environment
// defaults. Every configuration error is reported here, before any image is
// opened. It returns flag.ErrHelp when -h was requested.
func LoadConfig(args []string, stderr io.Writer) (*Config, error) {
	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("tricolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	colors := &colorFlag{values: envList(envColors)}
	fs.Var(colors, "color", "hex color such as 0x1E2761 or #1E2761; specify exactly three times (env "+envColors+")")
	outDir := fs.String("o", envOr(envOutputDir, "."), "output directory (env "+envOutputDir+")")
	plot := fs.Bool("plot", false, "also write a comparison figure with the original, the result and the palette")
	strategy := fs.String("strategy", envOr(envStrategy, string(stdimg.StrategyLab)), "assignment strategy: "+stdimg.OptionNames(stdimg.Strategies)+" (env "+envStrategy+")")
	policy := fs.String("policy", envOr(envPolicy, string(stdimg.PolicyNext)), "rebalance policy: "+stdimg.OptionNames(stdimg.Policies)+" (env "+envPolicy+")")
	workers := fs.Int("workers", envInt(envWorkers, 1), "images processed concurrently, 0 = number of CPUs (env "+envWorkers+")")
	preview := fs.Bool("preview", false, "show each result inline in kitty or iTerm2-compatible terminals")
	verbose := fs.Bool("v", false, "print per-color coverage for each image")
	showVersion := fs.Bool("version", false, "print version and exit")
	update := fs.Bool("update", false, "check GitHub for a newer release and update in place")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Colors:      colors.values,
		OutputDir:   *outDir,
		Plot:        *plot,
		Preview:     *preview,
		Verbose:     *verbose,
		Workers:     *workers,
		Inputs:      fs.Args(),
		ShowVersion: *showVersion,
		Update:      *update,
	}
	if cfg.ShowVersion || cfg.Update {
		return cfg, nil
	}

	var err error
	if cfg.Palette, err = stdimg.ParsePalette(cfg.Colors); err != nil {
		return nil, err
	}
	if cfg.Options.Strategy, err = stdimg.ParseStrategy(*strategy); err != nil {
		return nil, err
	}
	if cfg.Options.Policy, err = stdimg.ParsePolicy(*policy); err != nil {
		return nil, err
	}
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("no input images given")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	debugf("palette=%s strategy=%s policy=%s workers=%d out=%s", cfg.Palette.Hex(), cfg.Options.Strategy, cfg.Options.Policy, cfg.Workers, cfg.OutputDir)
	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
