// Package config loads and validates YAML configuration for the todosync
// CLI. Config files are resolved by name (current directory, then the user
// config directory) or by explicit path, and parsed strictly so typos in
// field names fail loudly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-todosync/internal/fileutil"
	"github.com/alnah/go-todosync/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits; a pattern longer than this is almost certainly a
// file pasted into the wrong field.
const (
	MaxPatternLength = 1000
	MaxPathLength    = 4096
)

// Config holds all configuration for a sync run.
type Config struct {
	Files      FilesConfig      `yaml:"files"`
	Delimiters DelimitersConfig `yaml:"delimiters"`
	Filter     FilterConfig     `yaml:"filter"`
	Transform  TransformConfig  `yaml:"transform"`
	Sync       SyncConfig       `yaml:"sync"`
}

// FilesConfig defines default input/output documents.
type FilesConfig struct {
	Input  string `yaml:"input"`  // Source document path (empty = must specify)
	Output string `yaml:"output"` // Destination document path (empty = must specify)
}

// DelimitersConfig defines the block boundaries on both sides.
// Empty input patterns mean the physical start/end of the source document;
// output patterns are required since the destination always carries
// literal markers.
type DelimitersConfig struct {
	InputStart  string `yaml:"inputStart"`
	InputEnd    string `yaml:"inputEnd"`
	OutputStart string `yaml:"outputStart"`
	OutputEnd   string `yaml:"outputEnd"`
}

// FilterConfig defines which bullet lines are kept.
type FilterConfig struct {
	Pattern   string `yaml:"pattern"`   // Inclusion regex (empty = keep all)
	MaxLevel  int    `yaml:"maxLevel"`  // Deepest kept level; -1 = unlimited
	Recursive bool   `yaml:"recursive"` // Kept lines also keep their descendants
}

// TransformConfig defines the per-line rewrite applied to kept lines.
type TransformConfig struct {
	Search          string `yaml:"search"`          // Substitution regex (empty = disabled)
	Replace         string `yaml:"replace"`         // Replacement template ($1, ${name})
	StripProperties bool   `yaml:"stripProperties"` // Drop "key:: value" lines
	KeepNewLines    bool   `yaml:"keepNewLines"`    // Keep multi-line bullet content
}

// SyncConfig defines pipeline policy knobs.
type SyncConfig struct {
	StrictEmpty bool `yaml:"strictEmpty"` // Zero kept lines is an error
	IndentWidth int  `yaml:"indentWidth"` // Spaces per nesting level (0 = default)
}

// DefaultConfig returns a neutral configuration: whole source document,
// keep everything, no rewrite.
func DefaultConfig() *Config {
	return &Config{
		Filter: FilterConfig{MaxLevel: -1},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field length limits. Pattern syntax is validated later
// by the library when the patterns are compiled.
func (c *Config) Validate() error {
	patterns := map[string]string{
		"delimiters.inputStart":  c.Delimiters.InputStart,
		"delimiters.inputEnd":    c.Delimiters.InputEnd,
		"delimiters.outputStart": c.Delimiters.OutputStart,
		"delimiters.outputEnd":   c.Delimiters.OutputEnd,
		"filter.pattern":         c.Filter.Pattern,
		"transform.search":       c.Transform.Search,
		"transform.replace":      c.Transform.Replace,
	}
	for field, value := range patterns {
		if len(value) > MaxPatternLength {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), MaxPatternLength)
		}
	}

	paths := map[string]string{
		"files.input":  c.Files.Input,
		"files.output": c.Files.Output,
	}
	for field, value := range paths {
		if len(value) > MaxPathLength {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), MaxPathLength)
		}
	}

	return nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-todosync/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-todosync", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
