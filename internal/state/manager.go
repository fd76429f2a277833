// Package state owns the game aggregate: it restores components from a saved
// snapshot, hands them to command handlers and writes the whole snapshot back
// after every mutation.
package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/cooldown"
	"github.com/osse101/bloom/internal/discovery"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/garden"
	"github.com/osse101/bloom/internal/inventory"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/metrics"
	"github.com/osse101/bloom/internal/repository"
)

// Options configures a new or restored game
type Options struct {
	// GardenSize only applies to brand new games; a saved garden keeps its size
	GardenSize    int
	Stages        domain.GrowthStages
	GardenOptions []garden.Option
}

// Manager is the explicit game aggregate
type Manager struct {
	Inventory *inventory.Ledger
	Garden    *garden.Garden
	Discovery *discovery.Tracker
	Catalog   *catalog.Catalog

	store      repository.StateStore
	theme      int
	lastLogin  *time.Time
	lastReward *time.Time
	isNew      bool
	batchDepth int
	dirty      bool
}

// Open loads the saved game, or starts and immediately saves a new one.
// Any load or validation error is returned; callers treat it as fatal.
func Open(ctx context.Context, store repository.StateStore, cat *catalog.Catalog, opts Options) (*Manager, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	m := &Manager{store: store, Catalog: cat}

	if snap == nil {
		logger.FromContext(ctx).Info("Starting new game", "garden_size", opts.GardenSize)
		snap = domain.NewSnapshot(opts.GardenSize)
		m.isNew = true
	}

	if err := m.restore(snap, opts); err != nil {
		return nil, err
	}

	if m.isNew {
		if err := m.save(ctx); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Manager) restore(snap *domain.StateSnapshot, opts Options) error {
	if snap.Version != domain.SnapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", domain.ErrInvalidSnapshot, snap.Version)
	}
	if snap.Garden.Size < 1 {
		return fmt.Errorf("%w: garden size %d", domain.ErrInvalidSnapshot, snap.Garden.Size)
	}
	if snap.Terminal.Theme != domain.ThemeDark && snap.Terminal.Theme != domain.ThemeLight {
		return fmt.Errorf("%w: unknown theme %d", domain.ErrInvalidSnapshot, snap.Terminal.Theme)
	}

	seen := make(map[domain.ItemKey]struct{}, len(snap.Inventory.Items))
	for _, item := range snap.Inventory.Items {
		if !item.Kind.Valid() || item.Amount <= 0 || !m.Catalog.Has(item.SpeciesID) {
			return fmt.Errorf("%w: inventory item %s x%d", domain.ErrInvalidSnapshot, item.Key(), item.Amount)
		}
		if _, dup := seen[item.Key()]; dup {
			return fmt.Errorf("%w: inventory item %s listed twice", domain.ErrInvalidSnapshot, item.Key())
		}
		seen[item.Key()] = struct{}{}
	}

	for _, id := range snap.Discovery.IdentifiedIDs {
		if !m.Catalog.Has(id) {
			return fmt.Errorf("%w: identified species %q not in catalog", domain.ErrInvalidSnapshot, id)
		}
	}

	m.Inventory = inventory.NewLedger(snap.Inventory.Items, m)
	m.Discovery = discovery.NewTracker(snap.Discovery.IdentifiedIDs, snap.Discovery.PendingAnnouncementIDs, m)
	m.Garden = garden.New(snap.Garden.Size, garden.NewEngine(opts.Stages), m.Catalog, identifier{m}, m, opts.GardenOptions...)
	if err := m.Garden.Restore(snap.Garden.Plants); err != nil {
		return err
	}

	m.theme = snap.Terminal.Theme
	m.lastLogin = snap.LastLoginTime
	m.lastReward = snap.LastLoginRewardTime
	return nil
}

// identifier counts first-time identifications on their way to the tracker
type identifier struct{ m *Manager }

func (i identifier) MarkIdentified(ctx context.Context, id string) error {
	if !i.m.Discovery.IsIdentified(id) {
		metrics.SpeciesIdentified.WithLabelValues(id).Inc()
	}
	return i.m.Discovery.MarkIdentified(ctx, id)
}

// IsNew reports whether Open created a fresh game
func (m *Manager) IsNew() bool {
	return m.isNew
}

// Persist saves the snapshot, or marks it dirty while a batch is open
func (m *Manager) Persist(ctx context.Context) error {
	if m.batchDepth > 0 {
		m.dirty = true
		return nil
	}
	return m.save(ctx)
}

// Batch runs fn with saves coalesced into at most one write at the end.
// The write happens even when fn fails: mutations made before the failure
// stay applied, so the snapshot must reflect them.
func (m *Manager) Batch(ctx context.Context, fn func() error) error {
	m.batchDepth++
	err := fn()
	m.batchDepth--

	if m.batchDepth > 0 || !m.dirty {
		return err
	}
	m.dirty = false
	return errors.Join(err, m.save(ctx))
}

func (m *Manager) save(ctx context.Context) error {
	start := time.Now()
	err := m.store.Save(ctx, m.Snapshot())
	metrics.StateSaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StateSaveErrors.Inc()
		logger.FromContext(ctx).Error("Failed to save state", "error", err)
		return fmt.Errorf("failed to save state: %w", err)
	}
	metrics.StateSaves.Inc()
	return nil
}

// Snapshot serializes the whole aggregate
func (m *Manager) Snapshot() *domain.StateSnapshot {
	snap := domain.NewSnapshot(m.Garden.Size())
	snap.Inventory.Items = append(snap.Inventory.Items, m.Inventory.All()...)
	snap.Garden = m.Garden.Snapshot()
	snap.Discovery.IdentifiedIDs = append(snap.Discovery.IdentifiedIDs, m.Discovery.Identified()...)
	snap.Discovery.PendingAnnouncementIDs = append(snap.Discovery.PendingAnnouncementIDs, m.Discovery.Pending()...)
	snap.Terminal.Theme = m.theme
	snap.LastLoginTime = m.lastLogin
	snap.LastLoginRewardTime = m.lastReward
	return snap
}

// Theme returns the saved display theme
func (m *Manager) Theme() int {
	return m.theme
}

// ToggleTheme switches between the light and dark themes and saves
func (m *Manager) ToggleTheme(ctx context.Context) (int, error) {
	if m.theme == domain.ThemeDark {
		m.theme = domain.ThemeLight
	} else {
		m.theme = domain.ThemeDark
	}
	return m.theme, m.Persist(ctx)
}

// LastLoginTime returns the previous session start, nil on a first run
func (m *Manager) LastLoginTime() *time.Time {
	return m.lastLogin
}

// RecordLogin stores the start time of this session
func (m *Manager) RecordLogin(ctx context.Context, at time.Time) error {
	m.lastLogin = &at
	return m.Persist(ctx)
}

// LastUsed implements cooldown.Store. Only the login reward is tracked.
func (m *Manager) LastUsed(action string) *time.Time {
	if action == cooldown.ActionLoginReward {
		return m.lastReward
	}
	return nil
}

// SetLastUsed implements cooldown.Store
func (m *Manager) SetLastUsed(ctx context.Context, action string, at time.Time) error {
	if action != cooldown.ActionLoginReward {
		return fmt.Errorf("%w: no saved cooldown for %q", domain.ErrInvalidInput, action)
	}
	m.lastReward = &at
	return m.Persist(ctx)
}
