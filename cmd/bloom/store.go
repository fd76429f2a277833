package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/bloom/internal/config"
	"github.com/osse101/bloom/internal/database"
	"github.com/osse101/bloom/internal/database/postgres"
	"github.com/osse101/bloom/internal/handler"
	"github.com/osse101/bloom/internal/repository"
	"github.com/osse101/bloom/internal/storage"
	"github.com/osse101/bloom/internal/storage/gdata"
	"github.com/osse101/bloom/internal/storage/memory"
)

// saveStore is the configured persistence backend plus whatever it holds open
type saveStore struct {
	repository.StateStore
	pool *pgxpool.Pool
}

// openStore picks the persistence backend named in the configuration
func openStore(ctx context.Context, cfg *config.Config) (*saveStore, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		return &saveStore{StateStore: memory.NewStore(nil)}, nil

	case config.StorageBackendPostgres:
		codec, err := storage.NewCodec()
		if err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
			database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &saveStore{StateStore: postgres.NewStateStore(pool, cfg.SaveProfile, codec), pool: pool}, nil

	default:
		codec, err := storage.NewCodec()
		if err != nil {
			return nil, err
		}
		store, err := gdata.Open(cfg.AppName, cfg.SaveProfile, codec)
		if err != nil {
			return nil, fmt.Errorf("failed to open save data: %w", err)
		}
		return &saveStore{StateStore: store}, nil
	}
}

// Dependencies lists what the readiness probe should ping
func (s *saveStore) Dependencies() map[string]handler.Pinger {
	if s.pool == nil {
		return nil
	}
	return map[string]handler.Pinger{"database": s.pool}
}

func (s *saveStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
