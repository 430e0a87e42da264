package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// New opens a file-backed logger. Stdout belongs to the TUI, so all diagnostic
// output goes to the configured file; an empty path disables logging entirely.
func New(path string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f.Close, nil
}
