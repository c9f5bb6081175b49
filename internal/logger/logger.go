// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 30
)

// Option customises the logger.
type Option func(*options)

type options struct {
	level slog.Level
}

// WithDebug lowers the log level to debug.
func WithDebug(debug bool) Option {
	return func(o *options) {
		if debug {
			o.level = slog.LevelDebug
		}
	}
}

// New returns a JSON logger that writes to a rotated file at logPath. The
// returned closer releases the file.
func New(logPath string, opts ...Option) (*slog.Logger, io.Closer) {
	o := &options{level: slog.LevelInfo}

	for _, opt := range opts {
		opt(o)
	}

	w := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: o.level,
	}))

	return l, w
}

// Init installs the file logger as the slog default.
func Init(logPath string, opts ...Option) io.Closer {
	l, closer := New(logPath, opts...)

	slog.SetDefault(l)

	return closer
}
