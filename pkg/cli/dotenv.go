package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that seed flag defaults. A .env file in the working
// directory is read first; variables already set in the environment win.
const (
	envColors    = "TRICOLOR_COLORS"
	envOutputDir = "TRICOLOR_OUTPUT_DIR"
	envStrategy  = "TRICOLOR_STRATEGY"
	envPolicy    = "TRICOLOR_POLICY"
	envWorkers   = "TRICOLOR_WORKERS"
	envDebug     = "TRICOLOR_DEBUG"
)

var debugEnabled bool

// LoadDotEnv loads path (or ./.env when empty) into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	var err error
	if path == "" {
		err = godotenv.Load()
	} else {
		err = godotenv.Load(path)
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", dotEnvName(path), err)
	}
	debug := os.Getenv(envDebug)
	debugEnabled = debug == "1" || debug == "true"
	return nil
}

func dotEnvName(path string) string {
	if path == "" {
		return ".env"
	}
	return path
}

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "tricolor: "+format+"\n", args...)
	}
}

// envList splits a comma separated variable, dropping empty items.
func envList(key string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		debugf("ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}
