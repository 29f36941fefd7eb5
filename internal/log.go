package internal

import (
	"io"
	"log/slog"
)

// InitLogging routes the default slog output to the given writer.
// The destination varies by mode:
// # Watch mode
// - reports go to stdout
// - logs go to stderr
// # TUI mode
// - the terminal belongs to the interface, so logs go to a log file
// .
func InitLogging(out io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(out, nil)))
}
