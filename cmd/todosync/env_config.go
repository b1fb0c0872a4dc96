package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TODOSYNC_CONFIG: config file name or path
	Input      string // TODOSYNC_INPUT: source document path
	Output     string // TODOSYNC_OUTPUT: destination document path
	Pattern    string // TODOSYNC_PATTERN: inclusion regex

	MaxLevel    int  // TODOSYNC_MAX_LEVEL: deepest kept level
	MaxLevelSet bool // true when TODOSYNC_MAX_LEVEL parsed successfully
}

// knownEnvVars lists valid TODOSYNC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TODOSYNC_CONFIG":    true,
	"TODOSYNC_INPUT":     true,
	"TODOSYNC_OUTPUT":    true,
	"TODOSYNC_PATTERN":   true,
	"TODOSYNC_MAX_LEVEL": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized TODOSYNC_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TODOSYNC_CONFIG"),
		Input:      os.Getenv("TODOSYNC_INPUT"),
		Output:     os.Getenv("TODOSYNC_OUTPUT"),
		Pattern:    os.Getenv("TODOSYNC_PATTERN"),
	}

	if raw := os.Getenv("TODOSYNC_MAX_LEVEL"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= -1 {
			cfg.MaxLevel = n
			cfg.MaxLevelSet = true
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for TODOSYNC_* variables that are
// not recognized, to catch typos like TODOSYNC_PATERN.
func warnUnknownEnvVars(w io.Writer) {
	for _, entry := range os.Environ() {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, "TODOSYNC_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s (ignored)\n", name)
		}
	}
}
