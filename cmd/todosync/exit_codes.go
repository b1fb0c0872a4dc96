package main

import (
	"errors"
	"os"

	todosync "github.com/alnah/go-todosync"
	"github.com/alnah/go-todosync/internal/config"
)

// Exit codes for the todosync CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful sync
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrReadDest) ||
		errors.Is(err, ErrWriteDest) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, todosync.ErrInvalidPattern) ||
		errors.Is(err, todosync.ErrInvalidMaxLevel) ||
		errors.Is(err, todosync.ErrInvalidIndentWidth) ||
		errors.Is(err, todosync.ErrEdgeDelimiter) {
		return ExitUsage
	}

	return ExitGeneral
}
