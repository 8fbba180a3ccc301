package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger opens the run log. A path of "-" logs to stderr. Every line
// carries a run id so consecutive runs in one file can be told apart.
// The returned func closes the file and is safe to call more than once.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	out := os.Stderr
	closeFn := func() {}

	if path != "-" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		out = f

		closed := false
		closeFn = func() {
			if !closed {
				closed = true
				//nolint:errcheck // Nothing useful to do on a failed log close
				f.Close()
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "slimes",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger.With("run", uuid.NewString()), closeFn, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
