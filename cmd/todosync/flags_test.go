package main

import "testing"

func TestParseSyncFlags(t *testing.T) {
	args := []string{
		"--output-start", "<!-- BEGIN -->",
		"--output-end", "<!-- END -->",
		"-p", "TODO",
		"--max-level", "2",
		"-r",
		"--search", "TODO ",
		"--replace", "",
		"--strip-properties",
		"--strict-empty",
		"--dry-run",
		"journal.md", "README.md",
	}

	flags, positional, err := parseSyncFlags(args)
	if err != nil {
		t.Fatalf("parseSyncFlags() error = %v", err)
	}

	if flags.delimiters.outputStart != "<!-- BEGIN -->" {
		t.Errorf("outputStart = %q", flags.delimiters.outputStart)
	}
	if flags.delimiters.outputEnd != "<!-- END -->" {
		t.Errorf("outputEnd = %q", flags.delimiters.outputEnd)
	}
	if flags.filter.pattern != "TODO" {
		t.Errorf("pattern = %q", flags.filter.pattern)
	}
	if flags.filter.maxLevel != 2 {
		t.Errorf("maxLevel = %d", flags.filter.maxLevel)
	}
	if !flags.filter.recursive {
		t.Error("recursive = false, want true")
	}
	if flags.transform.search != "TODO " {
		t.Errorf("search = %q", flags.transform.search)
	}
	if !flags.transform.stripProperties {
		t.Error("stripProperties = false, want true")
	}
	if !flags.behavior.strictEmpty {
		t.Error("strictEmpty = false, want true")
	}
	if !flags.behavior.dryRun {
		t.Error("dryRun = false, want true")
	}
	if len(positional) != 2 || positional[0] != "journal.md" || positional[1] != "README.md" {
		t.Errorf("positional = %q", positional)
	}
}

func TestParseSyncFlagsDefaults(t *testing.T) {
	flags, positional, err := parseSyncFlags(nil)
	if err != nil {
		t.Fatalf("parseSyncFlags() error = %v", err)
	}

	if flags.filter.maxLevel != maxLevelSentinel {
		t.Errorf("maxLevel default = %d, want sentinel %d", flags.filter.maxLevel, maxLevelSentinel)
	}
	if flags.behavior.indentWidth != 0 {
		t.Errorf("indentWidth default = %d, want 0", flags.behavior.indentWidth)
	}
	if flags.behavior.watch || flags.behavior.dryRun || flags.filter.recursive {
		t.Error("boolean flags should default to false")
	}
	if len(positional) != 0 {
		t.Errorf("positional = %q, want none", positional)
	}
}

func TestParseSyncFlagsUnknownFlag(t *testing.T) {
	if _, _, err := parseSyncFlags([]string{"--bogus"}); err == nil {
		t.Error("parseSyncFlags() accepted unknown flag")
	}
}
