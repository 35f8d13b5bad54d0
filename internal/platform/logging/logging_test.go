// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francesca993/VanCommunity/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(input), "input %q", input)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.FormatJSON, slog.LevelInfo, "vancommunity")

	logger.Debug("hidden")
	logger.Info("group_joined", slog.String("group_id", "1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "group_joined", entry["msg"])
	assert.Equal(t, "vancommunity", entry["app"])
	assert.Equal(t, "1", entry["group_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.FormatText, slog.LevelInfo, "vancommunity")

	logger.Info("server_starting")

	assert.Contains(t, buf.String(), "server_starting")
	assert.Contains(t, buf.String(), "vancommunity")
}
