// Package logging sets up the application's file logger. The terminal
// belongs to the UI, so nothing is logged to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-hclog"
)

// Config contains the logging settings.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Unknown levels mean info.
	Level string
	// FilePath is the log file; empty means $XDG_STATE_HOME/serein/serein.log.
	FilePath string
}

// New opens the log file and returns the root logger. Close the returned
// closer on exit.
func New(cfg Config) (hclog.Logger, io.Closer, error) {
	path := cfg.FilePath
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("serein", "serein.log"))
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}

	return NewWithWriter(cfg.Level, file), file, nil
}

// NewWithWriter returns a root logger writing to w.
func NewWithWriter(level string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            "serein",
		Level:           parseLevel(level),
		Output:          w,
		IncludeLocation: false,
	})
}

func parseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return hclog.Info
	}
	return l
}
