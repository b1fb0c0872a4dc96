package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-todosync/internal/config"
)

// debounceInterval coalesces the burst of events editors emit per save.
const debounceInterval = 200 * time.Millisecond

// runWatch syncs once, then re-syncs whenever the input file changes,
// until interrupted. The parent directory is watched rather than the file
// itself: most editors save by writing a temp file and renaming it over
// the original, which would otherwise invalidate the watch.
func runWatch(inputPath, outputPath string, cfg *config.Config, flags *syncFlags, env *Environment) error {
	if err := syncOnce(inputPath, outputPath, cfg, flags, env); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watchDir := filepath.Dir(inputPath)
	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("watching %s: %w", watchDir, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl-C to stop)\n", inputPath)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// The timer is armed by relevant events and fires once per burst.
	debounce := time.NewTimer(debounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}

	watched := filepath.Clean(inputPath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceInterval)

		case <-debounce.C:
			if err := syncOnce(inputPath, outputPath, cfg, flags, env); err != nil {
				// A transient failure (e.g. a half-saved file) should not
				// kill the watch; report it and wait for the next change.
				fmt.Fprintln(env.Stderr, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "Watch error: %v\n", err)

		case <-interrupt:
			return nil
		}
	}
}
