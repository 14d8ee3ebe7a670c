// Package logs builds the structured logger shared by the binaries.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects the log level and sinks.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Terminal receives human-readable text. Defaults to stderr.
	Terminal io.Writer
	// File, when set, receives JSON records appended to that path.
	File string
}

// Logger bundles the logger with the resources it holds open.
type Logger struct {
	*slog.Logger
	level  *slog.LevelVar
	closer io.Closer
}

// New builds a logger fanning out to every configured sink.
func New(opts Options) (*Logger, error) {
	level := new(slog.LevelVar)
	if err := SetLevel(level, opts.Level); err != nil {
		return nil, err
	}

	terminal := opts.Terminal
	if terminal == nil {
		terminal = os.Stderr
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(terminal, &slog.HandlerOptions{Level: level}),
	}

	var closer io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f
	}

	return &Logger{
		Logger: slog.New(slogmulti.Fanout(handlers...)),
		level:  level,
		closer: closer,
	}, nil
}

// SetLevel parses name into v. An empty name means info.
func SetLevel(v *slog.LevelVar, name string) error {
	switch strings.ToLower(name) {
	case "", "info":
		v.Set(slog.LevelInfo)
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn", "warning":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// Level exposes the live level so it can be changed at runtime.
func (l *Logger) Level() *slog.LevelVar { return l.level }

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
