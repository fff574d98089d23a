package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/focusnest/focusgate/internal/bootstrap"
	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/config"
	"github.com/focusnest/focusgate/internal/database"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/handler"
	"github.com/focusnest/focusgate/internal/naming"
	"github.com/focusnest/focusgate/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStartingFocusGate,
		"environment", cfg.Environment,
		"addr", cfg.Addr(),
		"db_path", cfg.DBPath)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}

	bus := event.NewMemoryBus()
	bootstrap.RegisterEventHandlers(bus)

	repos := bootstrap.InitializeRepositories(db)
	services, err := bootstrap.InitializeServices(cfg, repos, bus, clock.System{})
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	names, err := naming.NewResolver(cfg.AppNamesPath)
	if err != nil {
		slog.Error("Failed to load app name overrides", "error", err)
		os.Exit(1)
	}

	h := handler.New(services.Gate, services.Economy, services.Adaptive, services.Bridge, names)
	srv := server.NewServer(cfg.Addr(), db, h)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv, DB: db})
}
