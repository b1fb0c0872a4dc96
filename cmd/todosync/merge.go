package main

import "github.com/alnah/go-todosync/internal/config"

// mergeEnv applies environment variable overrides to cfg.
// Path and pattern fields only override when non-empty.
func mergeEnv(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Files.Input = env.Input
	}
	if env.Output != "" {
		cfg.Files.Output = env.Output
	}
	if env.Pattern != "" {
		cfg.Filter.Pattern = env.Pattern
	}
	if env.MaxLevelSet {
		cfg.Filter.MaxLevel = env.MaxLevel
	}
}

// mergeFlags applies CLI flag overrides to cfg (CLI wins over config file
// and environment). String flags override when non-empty; boolean flags
// only switch features on.
func mergeFlags(flags *syncFlags, cfg *config.Config) {
	// Delimiter flags
	if flags.delimiters.inputStart != "" {
		cfg.Delimiters.InputStart = flags.delimiters.inputStart
	}
	if flags.delimiters.inputEnd != "" {
		cfg.Delimiters.InputEnd = flags.delimiters.inputEnd
	}
	if flags.delimiters.outputStart != "" {
		cfg.Delimiters.OutputStart = flags.delimiters.outputStart
	}
	if flags.delimiters.outputEnd != "" {
		cfg.Delimiters.OutputEnd = flags.delimiters.outputEnd
	}

	// Filter flags
	if flags.filter.pattern != "" {
		cfg.Filter.Pattern = flags.filter.pattern
	}
	if flags.filter.maxLevel != maxLevelSentinel {
		cfg.Filter.MaxLevel = flags.filter.maxLevel
	}
	if flags.filter.recursive {
		cfg.Filter.Recursive = true
	}

	// Transform flags
	if flags.transform.search != "" {
		cfg.Transform.Search = flags.transform.search
		cfg.Transform.Replace = flags.transform.replace
	}
	if flags.transform.stripProperties {
		cfg.Transform.StripProperties = true
	}
	if flags.transform.keepNewLines {
		cfg.Transform.KeepNewLines = true
	}

	// Behavior flags
	if flags.behavior.strictEmpty {
		cfg.Sync.StrictEmpty = true
	}
	if flags.behavior.indentWidth > 0 {
		cfg.Sync.IndentWidth = flags.behavior.indentWidth
	}
}
