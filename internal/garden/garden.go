package garden

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/utils"
)

// SpeciesLookup resolves species ids
type SpeciesLookup interface {
	Get(id string) (*catalog.Species, error)
}

// Identifier is told when a species reaches maturity for the first time
type Identifier interface {
	MarkIdentified(ctx context.Context, id string) error
}

// Persister saves the aggregate state after a mutation
type Persister interface {
	Persist(ctx context.Context) error
}

// Garden is a fixed row of slots. A slot is nil when empty.
type Garden struct {
	slots      []*domain.GrowthEntry
	engine     *Engine
	species    SpeciesLookup
	identifier Identifier
	persister  Persister
	now        func() time.Time
	roller     utils.Roller
}

// Option customizes a Garden
type Option func(*Garden)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(g *Garden) { g.now = now }
}

// WithRoller replaces the random source used for harvest yields
func WithRoller(r utils.Roller) Option {
	return func(g *Garden) { g.roller = r }
}

// New creates an empty garden with size slots
func New(size int, engine *Engine, species SpeciesLookup, identifier Identifier, persister Persister, opts ...Option) *Garden {
	g := &Garden{
		slots:      make([]*domain.GrowthEntry, size),
		engine:     engine,
		species:    species,
		identifier: identifier,
		persister:  persister,
		now:        time.Now,
		roller:     utils.NewRoller(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Restore places saved plants into their slots without saving.
// The garden must be empty.
func (g *Garden) Restore(plants []domain.PlantSnapshot) error {
	maxStage := g.engine.Stages().MaxStage
	for _, p := range plants {
		if p.SlotIndex < 0 || p.SlotIndex >= len(g.slots) {
			return fmt.Errorf("%w: plant %q in slot %d, garden has %d slots", domain.ErrInvalidSnapshot, p.SpeciesID, p.SlotIndex, len(g.slots))
		}
		if g.slots[p.SlotIndex] != nil {
			return fmt.Errorf("%w: slot %d used twice", domain.ErrInvalidSnapshot, p.SlotIndex)
		}
		if p.Stage < 0 || p.Stage > maxStage {
			return fmt.Errorf("%w: plant in slot %d has stage %d outside 0-%d", domain.ErrInvalidSnapshot, p.SlotIndex, p.Stage, maxStage)
		}
		if _, err := g.species.Get(p.SpeciesID); err != nil {
			return fmt.Errorf("%w: slot %d: %w", domain.ErrInvalidSnapshot, p.SlotIndex, err)
		}
		g.slots[p.SlotIndex] = &domain.GrowthEntry{
			SpeciesID:     p.SpeciesID,
			Stage:         p.Stage,
			LastAdvanceAt: p.LastAdvanceTimestamp,
		}
	}
	return nil
}

// Snapshot serializes occupied slots in slot order
func (g *Garden) Snapshot() domain.GardenSnapshot {
	snap := domain.GardenSnapshot{Size: len(g.slots), Plants: []domain.PlantSnapshot{}}
	for i, entry := range g.slots {
		if entry == nil {
			continue
		}
		snap.Plants = append(snap.Plants, domain.PlantSnapshot{
			SpeciesID:            entry.SpeciesID,
			SlotIndex:            i,
			Stage:                entry.Stage,
			LastAdvanceTimestamp: entry.LastAdvanceAt,
		})
	}
	return snap
}

// PlantSeed fills the lowest empty slot with a new stage 0 plant
func (g *Garden) PlantSeed(ctx context.Context, speciesID string) (int, error) {
	if _, err := g.species.Get(speciesID); err != nil {
		return -1, err
	}

	slot := slices.Index(g.slots, nil)
	if slot < 0 {
		return -1, fmt.Errorf("%w: all %d slots are occupied", domain.ErrGardenFull, len(g.slots))
	}

	g.slots[slot] = &domain.GrowthEntry{
		SpeciesID:     speciesID,
		Stage:         0,
		LastAdvanceAt: g.now(),
	}

	logger.FromContext(ctx).Info("Seed planted", "species_id", speciesID, "slot", slot)

	if err := g.persister.Persist(ctx); err != nil {
		return slot, err
	}
	return slot, nil
}

// UpdateMaturities catches every plant up to the current time and saves once
// if anything moved. Plants crossing into maturity identify their species.
func (g *Garden) UpdateMaturities(ctx context.Context) (bool, error) {
	now := g.now()
	log := logger.FromContext(ctx)

	advancedAny := false
	for i, entry := range g.slots {
		if entry == nil {
			continue
		}

		before := entry.Stage
		advanced, matured := g.engine.Advance(entry, now)
		if !advanced {
			continue
		}
		advancedAny = true
		log.Debug("Plant advanced", "slot", i, "species_id", entry.SpeciesID, "from", before, "to", entry.Stage)

		if matured {
			if err := g.identifier.MarkIdentified(ctx, entry.SpeciesID); err != nil {
				return advancedAny, fmt.Errorf("failed to identify %s: %w", entry.SpeciesID, err)
			}
		}
	}

	if !advancedAny {
		return false, nil
	}
	return true, g.persister.Persist(ctx)
}

// IsSlotEmpty reports whether slot i has no plant
func (g *Garden) IsSlotEmpty(i int) (bool, error) {
	if err := g.checkIndex(i); err != nil {
		return false, err
	}
	return g.slots[i] == nil, nil
}

// SlotEntry returns the plant in slot i, or nil when the slot is empty
func (g *Garden) SlotEntry(i int) (*domain.GrowthEntry, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	return g.slots[i], nil
}

// Slots returns every slot in order; empty slots are nil
func (g *Garden) Slots() []*domain.GrowthEntry {
	return slices.Clone(g.slots)
}

// OccupiedEntries returns the planted entries in slot order
func (g *Garden) OccupiedEntries() []*domain.GrowthEntry {
	out := make([]*domain.GrowthEntry, 0, len(g.slots))
	for _, entry := range g.slots {
		if entry != nil {
			out = append(out, entry)
		}
	}
	return out
}

// Size returns the fixed slot count
func (g *Garden) Size() int {
	return len(g.slots)
}

// EmptySlotCount returns how many slots can still be planted
func (g *Garden) EmptySlotCount() int {
	n := 0
	for _, entry := range g.slots {
		if entry == nil {
			n++
		}
	}
	return n
}

// IndexOf returns the slot holding exactly this entry, or -1
func (g *Garden) IndexOf(entry *domain.GrowthEntry) int {
	if entry == nil {
		return -1
	}
	return slices.Index(g.slots, entry)
}

// RemoveEntry clears the slot holding exactly this entry
func (g *Garden) RemoveEntry(ctx context.Context, entry *domain.GrowthEntry) error {
	slot := g.IndexOf(entry)
	if slot < 0 {
		return domain.ErrNotFound
	}

	g.slots[slot] = nil
	return g.persister.Persist(ctx)
}

// GenerateHarvestPayload rolls what the entry drops for its current band
func (g *Garden) GenerateHarvestPayload(entry *domain.GrowthEntry) (domain.HarvestPayload, error) {
	sp, err := g.species.Get(entry.SpeciesID)
	if err != nil {
		return domain.HarvestPayload{}, err
	}

	seeds, flowers := g.engine.RollYield(sp.YieldRange(entry.Stage), g.roller)
	return domain.HarvestPayload{
		SpeciesID:   entry.SpeciesID,
		Band:        sp.Band(entry.Stage),
		SeedCount:   seeds,
		FlowerCount: flowers,
	}, nil
}

// HasGoneToSeed reports whether the entry reached the terminal stage
func (g *Garden) HasGoneToSeed(entry *domain.GrowthEntry) bool {
	return g.engine.HasGoneToSeed(entry)
}

// Stages returns the growth thresholds
func (g *Garden) Stages() domain.GrowthStages {
	return g.engine.Stages()
}

func (g *Garden) checkIndex(i int) error {
	if i < 0 || i >= len(g.slots) {
		return fmt.Errorf("%w: slot %d, garden has slots 0-%d", domain.ErrIndexOutOfRange, i, len(g.slots)-1)
	}
	return nil
}
