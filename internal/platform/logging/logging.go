// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

// Package logging builds the process-wide [slog.Logger].
//
// Production logs are JSON lines. LOG_FORMAT=text switches to the colored
// tint handler for local terminals.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New returns a logger writing to w in the given format and level, tagged
// with the application name.
func New(w io.Writer, format string, level slog.Level, app string) *slog.Logger {
	var handler slog.Handler

	switch format {
	case FormatText:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		})
	default:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("app", app))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a level.
// Anything else is treated as info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
