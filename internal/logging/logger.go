// Package logging builds the leveled logger handed to every stage of a run.
//
// There is no package-level logger: callers construct one with New and pass
// it down explicitly, which lets tests capture output in a buffer.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// New returns a text logger writing to w at the named level (debug, info,
// warn, error).
func New(w io.Writer, level string) (*log.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "imgcompress",
		ReportTimestamp: true,
	}), nil
}

// WithRun returns a child logger tagging every line with a fresh run id.
func WithRun(logger *log.Logger) (*log.Logger, string) {
	id := uuid.New().String()
	return logger.With("run", id), id
}
