// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francesca993/VanCommunity/internal/api"
	"github.com/Francesca993/VanCommunity/internal/core/group"
	"github.com/Francesca993/VanCommunity/internal/platform/config"
	"github.com/Francesca993/VanCommunity/internal/platform/metrics"
)

func newTestAPIServer(t *testing.T, port string) *api.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := metrics.New()
	liveness, readiness := api.NewHealthHandlers(nil, logger)
	cfg := &config.Config{ServerPort: port, RateLimitRPS: 10, RateLimitBurst: 10}

	return api.NewServer(ctx, cfg, logger, registry, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   registry.Handler(),
		Group:     group.NewHandler(group.NewService(group.NewMemoryRepository(), logger)),
	})
}

/*
TestServeUntilSignal_PortInUse exits non-zero when the listener cannot bind.
*/
func TestServeUntilSignal_PortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	port := strconv.Itoa(occupied.Addr().(*net.TCPAddr).Port)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	exitCode := serveUntilSignal(newTestAPIServer(t, port), make(chan os.Signal), logger)

	assert.Equal(t, 1, exitCode)
}

/*
TestServeUntilSignal_Signal stops cleanly on SIGTERM.
*/
func TestServeUntilSignal_Signal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, 0, serveUntilSignal(newTestAPIServer(t, "0"), quit, logger))
}
