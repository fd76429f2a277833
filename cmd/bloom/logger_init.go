package main

import (
	"fmt"
	"io"

	"github.com/osse101/bloom/internal/config"
	"github.com/osse101/bloom/internal/logger"
)

// initLogger initializes the file logger using centralized app configuration
func initLogger(cfg *config.Config) (io.Closer, error) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	closer, err := logger.InitLogger(loggerConfig, cfg.LogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return closer, nil
}
