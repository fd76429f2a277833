package memory

import (
	"context"

	"github.com/osse101/bloom/internal/domain"
)

// Store keeps the snapshot in process memory. Nothing survives a restart.
type Store struct {
	snap  *domain.StateSnapshot
	saves int
}

// NewStore returns an empty store, optionally seeded with a snapshot
func NewStore(seed *domain.StateSnapshot) *Store {
	return &Store{snap: clone(seed)}
}

// Load returns a copy of the last saved snapshot
func (s *Store) Load(_ context.Context) (*domain.StateSnapshot, error) {
	return clone(s.snap), nil
}

// Save replaces the stored snapshot with a copy of snap
func (s *Store) Save(_ context.Context, snap *domain.StateSnapshot) error {
	s.snap = clone(snap)
	s.saves++
	return nil
}

// Saves reports how many times Save was called
func (s *Store) Saves() int {
	return s.saves
}

func clone(snap *domain.StateSnapshot) *domain.StateSnapshot {
	if snap == nil {
		return nil
	}
	c := *snap
	c.Inventory.Items = append([]domain.InventoryStack{}, snap.Inventory.Items...)
	c.Garden.Plants = append([]domain.PlantSnapshot{}, snap.Garden.Plants...)
	c.Discovery.IdentifiedIDs = append([]string{}, snap.Discovery.IdentifiedIDs...)
	c.Discovery.PendingAnnouncementIDs = append([]string{}, snap.Discovery.PendingAnnouncementIDs...)
	if snap.LastLoginTime != nil {
		t := *snap.LastLoginTime
		c.LastLoginTime = &t
	}
	if snap.LastLoginRewardTime != nil {
		t := *snap.LastLoginRewardTime
		c.LastLoginRewardTime = &t
	}
	return &c
}
