// Package logger provides the structured logger used across the dashboard.
// It is built once at process start from an explicit Config; nothing in here
// reads environment variables.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// Config holds logger configuration.
type Config struct {
	Level   string
	Format  string // "text" or "json"
	Enabled bool
	Writer  io.Writer
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "text",
		Enabled: true,
		Writer:  os.Stderr,
	}
}

// Logger wraps pterm.Logger and carries a fixed set of key/value fields.
type Logger struct {
	base    *pterm.Logger
	fields  []any
	enabled bool
}

// New cria um logger a partir da configuração informada.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	level := ParseLevel(cfg.Level)
	if !cfg.Enabled {
		level = pterm.LogLevelDisabled
		w = io.Discard
	}

	base := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(w)

	if strings.EqualFold(cfg.Format, "json") {
		base = base.WithFormatter(pterm.LogFormatterJSON)
	}

	return &Logger{base: base, enabled: cfg.Enabled}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(Config{Enabled: false})
}

// ParseLevel converts a level name into a pterm log level. Unknown names map to info.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// With returns a logger that adds the given key/value pairs to every line.
func (l *Logger) With(args ...any) *Logger {
	fields := make([]any, 0, len(l.fields)+len(args))
	fields = append(fields, l.fields...)
	fields = append(fields, args...)
	return &Logger{base: l.base, fields: fields, enabled: l.enabled}
}

func (l *Logger) args(args []any) []pterm.LoggerArgument {
	all := make([]any, 0, len(l.fields)+len(args))
	all = append(all, l.fields...)
	all = append(all, args...)
	return l.base.Args(all...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	if !l.enabled {
		return
	}
	l.base.Debug(msg, l.args(args))
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	if !l.enabled {
		return
	}
	l.base.Info(msg, l.args(args))
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	if !l.enabled {
		return
	}
	l.base.Warn(msg, l.args(args))
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	if !l.enabled {
		return
	}
	l.base.Error(msg, l.args(args))
}

// APIStart, APISuccess and APIError keep the message format used around data fetches.
func (l *Logger) APIStart(name string, args ...any) {
	l.Info("API_START:"+name, args...)
}

func (l *Logger) APISuccess(name string, args ...any) {
	l.Info("API_SUCCESS:"+name, args...)
}

func (l *Logger) APIError(name string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	l.Error("API_ERROR:"+name, "error", msg)
}
