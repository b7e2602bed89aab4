// Package logging sets up Quill's file-backed logger.
//
// The TUI owns the terminal, so log output goes to a file instead of stderr.
// Logging is best-effort: when the file cannot be opened the returned logger
// discards everything rather than failing startup.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a leveled logger writing to path and a close function. An
// empty path yields a discard logger.
func New(path string) (*log.Logger, func()) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return discardLogger(), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return discardLogger(), func() {}
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discardLogger(), func() {}
	}

	logger := log.NewWithOptions(file, log.Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "quill",
	})
	return logger, func() { _ = file.Close() }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.InfoLevel})
}
