// Package stdimg: registry of assignment strategies and rebalance policies.
//
// Apply in engine.go dispatches on these names; the CLI reads the same
// lists for help text and flag validation.

package stdimg

import (
	"fmt"
	"strings"
)

// Strategy names a way of assigning pixels to palette indices.
type Strategy string

const (
	// StrategyLab assigns by nearest Lab color, then rebalances areas.
	StrategyLab Strategy = "lab"
	// StrategyIntensity splits pixels into luminance thirds.
	StrategyIntensity Strategy = "intensity"
)

// OptionSpec describes one selectable strategy or policy.
type OptionSpec struct {
	Name        string
	Description string
}

// Strategies lists the strategies understood by Apply.
var Strategies = []OptionSpec{
	{Name: string(StrategyLab), Description: "nearest palette color in Lab, rebalanced to about one third each (default)"},
	{Name: string(StrategyIntensity), Description: "darkest third to color 1, middle third to color 2, brightest third to color 3"},
}

// Policies lists the rebalance policies used by StrategyLab.
var Policies = []OptionSpec{
	{Name: string(PolicyNext), Description: "move excess pixels of color i to color i+1 (default)"},
	{Name: string(PolicyNearest), Description: "move excess pixels to the nearer of the two other colors"},
}

// ParseStrategy maps a strategy name to a Strategy. The empty string selects StrategyLab.
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyLab, nil
	}
	for _, o := range Strategies {
		if strings.EqualFold(o.Name, s) {
			return Strategy(o.Name), nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %s)", s, OptionNames(Strategies))
}

// OptionNames joins the names of specs with "|".
func OptionNames(specs []OptionSpec) string {
	names := make([]string, len(specs))
	for i, o := range specs {
		names[i] = o.Name
	}
	return strings.Join(names, "|")
}
