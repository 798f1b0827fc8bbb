package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ChinchiroBot_Go/internal/event"
	"github.com/osse101/ChinchiroBot_Go/internal/server"
	"github.com/osse101/ChinchiroBot_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server             *server.Server
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown shuts down application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. SSE hub (disconnect spectators)
// 3. Event publisher (flush pending retries)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		components.ResilientPublisher.Wait()
	}

	slog.Info(LogMsgServerStopped)
}
