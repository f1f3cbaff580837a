package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Logger is the logging surface the benchmark needs: one record per run
// milestone and per strategy, with component fields attached via With.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var handlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"json": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewJSONHandler(w, opts)
	},
	"text": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
		return slog.NewTextHandler(w, opts)
	},
}

type Config struct {
	Level     string    `yaml:"level" json:"level" default:"info"`
	Format    string    `yaml:"format" json:"format" default:"text"`
	AddSource bool      `yaml:"add_source" json:"add_source" default:"false"`
	Output    io.Writer `yaml:"-" json:"-"`
}

func (c *Config) Validate() error {
	if _, ok := levels[c.Level]; !ok {
		return fmt.Errorf("invalid log level: %s (must be %s)", c.Level, choices(levels))
	}
	if _, ok := handlers[c.Format]; !ok {
		return fmt.Errorf("invalid log format: %s (must be %s)", c.Format, choices(handlers))
	}
	return nil
}

// DefaultConfig logs info and above as text to stderr, keeping stdout for
// the benchmark report.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "text",
	}
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger builds a slog-backed Logger. Unknown levels fall back to info
// and unknown formats to JSON; call Validate first to reject them instead.
func NewLogger(config *Config) Logger {
	level, ok := levels[config.Level]
	if !ok {
		level = slog.LevelInfo
	}
	newHandler, ok := handlers[config.Format]
	if !ok {
		newHandler = handlers["json"]
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	handler := newHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: config.AddSource,
	})
	return &slogLogger{logger: slog.New(handler)}
}

// NewNoop discards every record.
func NewNoop() Logger {
	return &slogLogger{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

func choices[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
