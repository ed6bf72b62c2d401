// Package errors holds the small helpers the CLI entrypoint uses to report
// failures to the terminal.
package errors

import (
	"fmt"
	"os"

	"github.com/carlamendes/bloom/internal/logger"
)

// Format renders err for the terminal, prefixed so users can spot failures
// in scrollback. Returns "" for a nil error.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs err, prints it to stderr, and exits with code 1. A nil error
// is a no-op, so call sites don't need their own nil check.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
