package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var logger = New(os.Stderr, false, false)

// New builds a stderr-style logger. Debug output is enabled with verbose.
func New(w io.Writer, verbose bool, json bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// Init replaces the package logger and the slog default
func Init(verbose bool, json bool) {
	logger = New(os.Stderr, verbose, json)
	slog.SetDefault(logger)
}

// Get returns the package logger
func Get() *slog.Logger {
	return logger
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}
