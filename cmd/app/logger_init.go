package main

import (
	"github.com/focusnest/focusgate/internal/config"
	"github.com/focusnest/focusgate/internal/handler"
	"github.com/focusnest/focusgate/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev builds
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"focusgate",
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
