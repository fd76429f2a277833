package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/storage"
)

// StateStore keeps one JSONB snapshot per save profile
type StateStore struct {
	pool    *pgxpool.Pool
	profile string
	codec   *storage.Codec
}

// NewStateStore creates a store for profile. Migrations must already be applied.
func NewStateStore(pool *pgxpool.Pool, profile string, codec *storage.Codec) *StateStore {
	return &StateStore{pool: pool, profile: profile, codec: codec}
}

// Load returns the saved snapshot, or nil, nil when the profile has none
func (s *StateStore) Load(ctx context.Context) (*domain.StateSnapshot, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, queryLoadState, s.profile).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.FromContext(ctx).Info("No saved state found", "profile", s.profile)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return s.codec.Decode(data)
}

// Save replaces the profile's snapshot. The row is locked first so two
// processes sharing a profile bump the revision one at a time.
func (s *StateStore) Save(ctx context.Context, snap *domain.StateSnapshot) error {
	data, err := s.codec.Encode(snap)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer SafeRollback(ctx, tx)

	var revision int64
	if err := tx.QueryRow(ctx, queryLockState, s.profile).Scan(&revision); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to lock state row: %w", err)
	}

	if _, err := tx.Exec(ctx, queryUpsertState, s.profile, snap.Version, data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}

	logger.FromContext(ctx).Debug("State saved", "profile", s.profile, "revision", revision+1)
	return nil
}

// Revision returns how many times the profile has been saved, 0 if never
func (s *StateStore) Revision(ctx context.Context) (int64, error) {
	var revision int64
	err := s.pool.QueryRow(ctx, queryRevision, s.profile).Scan(&revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read revision: %w", err)
	}
	return revision, nil
}
