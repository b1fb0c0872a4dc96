package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-todosync/internal/config"
)

const testJournal = `- BEGIN_TODO
- TODO a
  - DONE b
- note
- END_TODO
`

const testReadme = `# Project

<!-- BEGIN_TODO -->
- stale
<!-- END_TODO -->
`

// writeTestFiles creates a journal and README in a temp dir.
func writeTestFiles(t *testing.T) (inputPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "journal.md")
	outputPath = filepath.Join(dir, "README.md")
	if err := os.WriteFile(inputPath, []byte(testJournal), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(outputPath, []byte(testReadme), 0o644); err != nil {
		t.Fatal(err)
	}
	return inputPath, outputPath
}

// syncTestFlags returns flags as parseSyncFlags would for a minimal run.
func syncTestFlags(t *testing.T, extra ...string) *syncFlags {
	t.Helper()
	args := append([]string{
		"--input-start", "BEGIN_TODO",
		"--input-end", "END_TODO",
		"--output-start", "BEGIN_TODO",
		"--output-end", "END_TODO",
		"--pattern", "TODO|DONE",
		"--quiet",
	}, extra...)
	flags, _, err := parseSyncFlags(args)
	if err != nil {
		t.Fatalf("parseSyncFlags() error = %v", err)
	}
	return flags
}

func testEnv() (*Environment, *strings.Builder, *strings.Builder) {
	var stdout, stderr strings.Builder
	return &Environment{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunSync(t *testing.T) {
	inputPath, outputPath := writeTestFiles(t)
	env, _, _ := testEnv()

	flags := syncTestFlags(t, "--recursive")
	if err := runSync([]string{inputPath, outputPath}, flags, env); err != nil {
		t.Fatalf("runSync() error = %v", err)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}

	want := `# Project

<!-- BEGIN_TODO -->
- TODO a
  - DONE b
<!-- END_TODO -->
`
	if string(got) != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestRunSyncDryRun(t *testing.T) {
	inputPath, outputPath := writeTestFiles(t)
	env, stdout, _ := testEnv()

	flags := syncTestFlags(t, "--dry-run")
	if err := runSync([]string{inputPath, outputPath}, flags, env); err != nil {
		t.Fatalf("runSync() error = %v", err)
	}

	// Result goes to stdout, the destination file stays untouched.
	if !strings.Contains(stdout.String(), "- TODO a") {
		t.Errorf("stdout = %q, want synced block", stdout.String())
	}
	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testReadme {
		t.Errorf("dry run modified the destination: %q", got)
	}
}

func TestRunSyncErrors(t *testing.T) {
	inputPath, outputPath := writeTestFiles(t)

	tests := []struct {
		name    string
		args    []string
		flags   func(*testing.T) *syncFlags
		wantErr error
	}{
		{
			name:    "missing input path",
			args:    nil,
			flags:   func(t *testing.T) *syncFlags { return syncTestFlags(t) },
			wantErr: ErrNoInput,
		},
		{
			name:    "missing output path",
			args:    []string{inputPath},
			flags:   func(t *testing.T) *syncFlags { return syncTestFlags(t) },
			wantErr: ErrNoOutput,
		},
		{
			name: "missing output delimiters",
			args: []string{inputPath, outputPath},
			flags: func(t *testing.T) *syncFlags {
				flags, _, err := parseSyncFlags([]string{"--pattern", "TODO"})
				if err != nil {
					t.Fatal(err)
				}
				return flags
			},
			wantErr: ErrMissingDelimiter,
		},
		{
			name:    "nonexistent input file",
			args:    []string{filepath.Join(t.TempDir(), "missing.md"), outputPath},
			flags:   func(t *testing.T) *syncFlags { return syncTestFlags(t) },
			wantErr: ErrReadSource,
		},
		{
			name:    "nonexistent output file",
			args:    []string{inputPath, filepath.Join(t.TempDir(), "missing.md")},
			flags:   func(t *testing.T) *syncFlags { return syncTestFlags(t) },
			wantErr: ErrReadDest,
		},
		{
			name:    "config file not found",
			args:    []string{inputPath, outputPath},
			flags:   func(t *testing.T) *syncFlags { return syncTestFlags(t, "--config", "does-not-exist") },
			wantErr: config.ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _, _ := testEnv()
			err := runSync(tt.args, tt.flags(t), env)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runSync() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunSyncConfigFile(t *testing.T) {
	inputPath, outputPath := writeTestFiles(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "sync.yaml")
	configYAML := `files:
  input: ` + inputPath + `
  output: ` + outputPath + `
delimiters:
  inputStart: BEGIN_TODO
  inputEnd: END_TODO
  outputStart: BEGIN_TODO
  outputEnd: END_TODO
filter:
  pattern: TODO|DONE
  maxLevel: -1
  recursive: true
`
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	flags, _, err := parseSyncFlags([]string{"--config", configPath, "--quiet"})
	if err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv()
	if err := runSync(nil, flags, env); err != nil {
		t.Fatalf("runSync() error = %v", err)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "- TODO a\n  - DONE b") {
		t.Errorf("output = %q, want synced block", got)
	}
}
