package logger

import (
	"io"
	"log/slog"
	"os"
)

// Package-level logger for warnings that are not part of the console
// transcript (missing input paths, failed directory creation). Defaults to
// discard until the CLI installs one via Setup.
var log *slog.Logger

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup installs a stderr text logger. Verbose lowers the level to debug.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLogger replaces the package logger. Tests use this to capture output.
func SetLogger(l *slog.Logger) {
	log = l
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
