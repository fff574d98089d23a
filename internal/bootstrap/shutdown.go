package bootstrap

import (
	"context"
	"log/slog"

	"github.com/focusnest/focusgate/internal/database"
	"github.com/focusnest/focusgate/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server *server.Server
	DB     database.DB
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then releases the database handle. Errors are logged but never abort the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DB != nil {
		if err := components.DB.Close(); err != nil {
			slog.Error(LogMsgDatabaseCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
