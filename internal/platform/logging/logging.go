// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Options struct {
	Level  string
	Format string
	// File, when set, receives log output instead of Fallback. The TUI owns
	// the terminal, so it logs to a file.
	File     string
	Fallback io.Writer
}

// Setup installs a default logger built from opts. The returned closer
// releases the log file, if one was opened.
func Setup(opts Options) (io.Closer, error) {
	var out io.Writer = os.Stderr
	if opts.Fallback != nil {
		out = opts.Fallback
	}
	closer := io.Closer(nopCloser{})
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}
	slog.SetDefault(slog.New(NewHandler(out, opts.Level, opts.Format)))
	return closer, nil
}

func NewHandler(w io.Writer, level, format string) slog.Handler {
	hopts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, hopts)
	}
	return slog.NewTextHandler(w, hopts)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
