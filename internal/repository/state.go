package repository

import (
	"context"

	"github.com/osse101/bloom/internal/domain"
)

// StateStore persists the whole game state as one snapshot.
// Save always replaces the previous snapshot.
type StateStore interface {
	// Load returns nil, nil when nothing has been saved yet
	Load(ctx context.Context) (*domain.StateSnapshot, error)
	Save(ctx context.Context, snapshot *domain.StateSnapshot) error
}
