// Command tricolor posterizes images to exactly three colors.
//
// Usage:
//
//	tricolor -color 0x1E2761 -color 0xD76F30 -color 0xF5F0E1 [-plot] [-o dir] image...
//
// Each input is written as <name>_<color1>_<color2>_<color3>.png. Colors are
// matched in Lab and the result is rebalanced so each color covers roughly
// a third of the image.
package main

import (
	"os"

	"github.com/rdancer/tricolor/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
