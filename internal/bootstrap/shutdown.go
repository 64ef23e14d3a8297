package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/degenfarm/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Farm    *Farm
	Storage *Storage
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Day rollover worker (cancel the pending timer)
//  3. Job pool (run queued saves and leaderboard syncs)
//  4. Storage (close the database pool and the state store)
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if f := components.Farm; f != nil {
		if f.Rollover != nil {
			if err := f.Rollover.Shutdown(ctx); err != nil {
				slog.Error(LogMsgRolloverShutdownFailed, "error", err)
			}
		}
		if f.Jobs != nil {
			slog.Info(LogMsgFlushingBackgroundJobs)
			f.Jobs.Stop()
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		if err := components.Storage.Close(); err != nil {
			slog.Error(ErrMsgFailedCloseStateStore, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
