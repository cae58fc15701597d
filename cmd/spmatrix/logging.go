package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// Global logger, replaced by initLogging.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	// Log level mapping
	logLevelMap = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

// initLogging installs a text handler on w at the requested level.
func initLogging(w io.Writer, level string) error {
	lvl, ok := logLevelMap[strings.ToLower(level)]
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	return nil
}
