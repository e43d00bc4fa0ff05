// Package logger builds the slog logger used by the mincut command.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the log section of the command configuration.
type Config struct {
	Level      string
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a logger writing to cfg.Output, resolving "stdout" and
// "stderr" to the given writers. The closer releases the rotating file when
// output is "file" and is a no-op otherwise.
func Open(cfg Config, stdout, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	switch cfg.Output {
	case "stdout":
		return NewWithWriter(cfg, stdout), nopCloser{}, nil
	case "", "stderr":
		return NewWithWriter(cfg, stderr), nopCloser{}, nil
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/mincut.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		return NewWithWriter(cfg, lj), lj, nil
	default:
		return nil, nil, fmt.Errorf("logger: unknown output %q", cfg.Output)
	}
}

// NewWithWriter builds the handler for cfg on top of w, ignoring cfg.Output.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to slog; unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
