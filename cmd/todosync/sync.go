package main

import (
	"errors"
	"fmt"

	todosync "github.com/alnah/go-todosync"
	"github.com/alnah/go-todosync/internal/config"
	"github.com/alnah/go-todosync/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input document specified")
	ErrNoOutput         = errors.New("no output document specified")
	ErrMissingDelimiter = errors.New("output delimiters are required")
	ErrReadSource       = errors.New("failed to read input document")
	ErrReadDest         = errors.New("failed to read output document")
	ErrWriteDest        = errors.New("failed to write output document")
)

// runSync orchestrates one sync invocation (or a watch loop).
func runSync(positionalArgs []string, flags *syncFlags, env *Environment) error {
	// Environment variables sit between config file and CLI flags.
	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge overrides, lowest to highest precedence: env, then CLI flags.
	mergeEnv(envCfg, cfg)
	mergeFlags(flags, cfg)

	inputPath, outputPath, err := resolvePaths(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if cfg.Delimiters.OutputStart == "" || cfg.Delimiters.OutputEnd == "" {
		return ErrMissingDelimiter
	}

	if flags.behavior.watch {
		return runWatch(inputPath, outputPath, cfg, flags, env)
	}

	return syncOnce(inputPath, outputPath, cfg, flags, env)
}

// syncOnce reads both documents, runs the pipeline, and persists or prints
// the result.
func syncOnce(inputPath, outputPath string, cfg *config.Config, flags *syncFlags, env *Environment) error {
	source, err := fileutil.ReadTextFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadSource, inputPath, err)
	}

	dest, err := fileutil.ReadTextFile(outputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadDest, outputPath, err)
	}

	svc := newService(cfg)

	result, err := svc.Sync(buildInput(source, dest, cfg))
	if err != nil {
		return err
	}

	if flags.behavior.dryRun {
		fmt.Fprint(env.Stdout, result)
		return nil
	}

	if err := fileutil.WriteFileAtomic(outputPath, result); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDest, outputPath, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Synced %s -> %s\n", inputPath, outputPath)
	}
	return nil
}

// newService builds the pipeline service from config.
func newService(cfg *config.Config) *todosync.Service {
	var opts []todosync.Option
	if cfg.Sync.IndentWidth > 0 {
		opts = append(opts, todosync.WithIndentWidth(cfg.Sync.IndentWidth))
	}
	return todosync.New(opts...)
}

// buildInput maps the CLI config onto the library's Input. Empty input
// delimiter patterns mean the physical start/end of the source document.
func buildInput(source, dest string, cfg *config.Config) todosync.Input {
	return todosync.Input{
		Source:      source,
		Dest:        dest,
		SourceStart: inputDelimiter(cfg.Delimiters.InputStart),
		SourceEnd:   inputDelimiter(cfg.Delimiters.InputEnd),
		DestStart:   todosync.Delimiter(cfg.Delimiters.OutputStart),
		DestEnd:     todosync.Delimiter(cfg.Delimiters.OutputEnd),
		Filter: todosync.FilterConfig{
			Pattern:   cfg.Filter.Pattern,
			MaxLevel:  cfg.Filter.MaxLevel,
			Recursive: cfg.Filter.Recursive,
		},
		Transform: todosync.TransformConfig{
			Search:          cfg.Transform.Search,
			Replace:         cfg.Transform.Replace,
			StripProperties: cfg.Transform.StripProperties,
			KeepNewLines:    cfg.Transform.KeepNewLines,
		},
		StrictEmpty: cfg.Sync.StrictEmpty,
	}
}

// inputDelimiter interprets an empty pattern as the document edge.
func inputDelimiter(pattern string) todosync.DelimiterSpec {
	if pattern == "" {
		return todosync.DocumentEdge()
	}
	return todosync.Delimiter(pattern)
}

// resolvePaths returns the input and output document paths, positional
// arguments winning over config defaults.
func resolvePaths(args []string, cfg *config.Config) (inputPath, outputPath string, err error) {
	inputPath = cfg.Files.Input
	outputPath = cfg.Files.Output

	switch len(args) {
	case 0:
	case 1:
		inputPath = args[0]
	default:
		inputPath = args[0]
		outputPath = args[1]
	}

	if inputPath == "" {
		return "", "", ErrNoInput
	}
	if outputPath == "" {
		return "", "", ErrNoOutput
	}
	return inputPath, outputPath, nil
}
