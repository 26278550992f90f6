// Package logging builds the slog loggers used across swarmhost, rendered
// through pterm.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// EnvLevel is the environment variable selecting the log level.
const EnvLevel = "SWARMHOST_LOG"

// New returns a logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

// Init builds a stderr logger at the level found in SWARMHOST_LOG and installs
// it as the slog default.
func Init() *slog.Logger {
	logger := New(os.Stderr, LevelFromEnv())
	slog.SetDefault(logger)
	return logger
}

// LevelFromEnv reads SWARMHOST_LOG. Unknown or empty values mean info.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(EnvLevel))
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
