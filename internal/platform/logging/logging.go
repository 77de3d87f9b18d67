// Package logging writes diagnostics to a file so stdout stays free for
// command output and the TUI. With no path configured it is a no-op.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

func New(path string) (*log.Logger, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.LUTC), nil
}
