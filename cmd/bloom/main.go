package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/cli"
	"github.com/osse101/bloom/internal/config"
	"github.com/osse101/bloom/internal/cooldown"
	"github.com/osse101/bloom/internal/economy"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/naming"
	"github.com/osse101/bloom/internal/reward"
	"github.com/osse101/bloom/internal/server"
	"github.com/osse101/bloom/internal/state"
	"github.com/osse101/bloom/internal/utils"
)

// ShutdownTimeout bounds how long the debug server gets to drain
const ShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		// The log file may not exist yet, so startup failures go to stderr too
		fmt.Fprintln(os.Stderr, "bloom:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	closer, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	for _, warning := range config.Warnings(cfg) {
		slog.Warn("Configuration warning", "warning", warning)
	}
	slog.Info("Starting bloom", "version", cfg.Version, "storage", cfg.StorageBackend)

	// Load the plant catalog
	cat, err := catalog.Load(cfg.CatalogPath, cfg.GrowthStages())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Open the save store
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := state.Open(ctx, store.StateStore, cat, state.Options{
		GardenSize: cfg.GardenSize,
		Stages:     cfg.GrowthStages(),
	})
	if err != nil {
		slog.Error("Failed to open saved game", "error", err)
		return fmt.Errorf("failed to open saved game: %w", err)
	}

	// Optional debug endpoint for health and metrics
	if cfg.DebugAddr != "" {
		srv := server.NewServer(server.Config{
			Addr:         cfg.DebugAddr,
			Version:      cfg.Version,
			SessionID:    logger.SessionID(),
			Dependencies: store.Dependencies(),
		})
		if err := srv.Start(); err != nil {
			return fmt.Errorf("failed to start debug server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				slog.Error("Debug server shutdown failed", "error", err)
			}
		}()
	}

	// Login reward
	cooldowns := cooldown.NewService(m, cooldown.Config{
		Cooldowns: map[string]time.Duration{cooldown.ActionLoginReward: cfg.LoginRewardInterval},
	}, nil)
	rewards := reward.NewService(cooldowns, cat, m.Inventory, m, m, utils.NewRoller(), reward.Config{Seeds: cfg.LoginRewardSeeds}, nil)
	greeting, err := rewards.ClaimLoginReward(ctx)
	if err != nil {
		// A failed reward is not worth refusing to start over
		slog.Error("Login reward failed", "error", err)
	}

	// Terminal
	econ := economy.NewService(m.Inventory, m.Garden, m)
	names := naming.NewResolver(cat, m.Discovery)
	app := cli.New(os.Stdout, m, econ, names, cli.Options{Plain: plainOutput()})

	if err := app.Greet(ctx, greeting); err != nil {
		slog.Error("Failed to update garden on start", "error", err)
	}
	if err := app.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("terminal input failed: %w", err)
	}

	slog.Info("Exiting bloom")
	return nil
}

// plainOutput honours the NO_COLOR convention and non-terminal output
func plainOutput() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice == 0
}
