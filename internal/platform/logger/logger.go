// Package logger provides structured logging for the application.
//
// Stdout belongs to the interactive menu, so log output goes to a per-day
// JSON file under the configured log directory instead.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"syllacard/internal/config"
)

// Setup initializes the application's logging system from the provided
// configuration: it ensures the log directory exists, opens (or appends to)
// today's log file, and installs a JSON slog handler at the configured level
// as the process default logger.
//
// The returned file stays open for the life of the process.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", cfg.Dir, err)
	}

	name := fmt.Sprintf("info_%s.log", time.Now().Format("20060102"))
	f, err := os.OpenFile(filepath.Join(cfg.Dir, name),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", name, err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log, nil
}

// parseLevel maps a configured level string to a slog.Level
// (case-insensitive).
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
