// Package economy moves items between the inventory and the garden.
package economy

import (
	"context"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/garden"
	"github.com/osse101/bloom/internal/inventory"
)

// Batcher coalesces the saves made inside fn into one write
type Batcher interface {
	Batch(ctx context.Context, fn func() error) error
}

// PlantResult describes a seed moved from the inventory into the garden
type PlantResult struct {
	SpeciesID string `json:"id"`
	Slot      int    `json:"slot"`
}

// HarvestResult summarizes one harvest command
type HarvestResult struct {
	// Items holds one line per (kind, species) in first-seen order
	Items []domain.HarvestedItem `json:"items"`
	// Payloads holds what each harvested entry dropped, in slot order
	Payloads []domain.HarvestPayload `json:"payloads"`
}

// SpeciesIDs returns the distinct harvested species in harvest order
func (r *HarvestResult) SpeciesIDs() []string {
	seen := make(map[string]struct{}, len(r.Payloads))
	ids := make([]string, 0, len(r.Payloads))
	for _, p := range r.Payloads {
		if _, ok := seen[p.SpeciesID]; ok {
			continue
		}
		seen[p.SpeciesID] = struct{}{}
		ids = append(ids, p.SpeciesID)
	}
	return ids
}

// Service defines the plant and harvest operations
type Service interface {
	PlantFromInventory(ctx context.Context, inventoryIndex int) (*PlantResult, error)
	HarvestEntry(ctx context.Context, entry *domain.GrowthEntry) (*HarvestResult, error)
	HarvestSlot(ctx context.Context, slot int) (*HarvestResult, error)
	HarvestAll(ctx context.Context) (*HarvestResult, error)
}

type service struct {
	ledger  *inventory.Ledger
	garden  *garden.Garden
	batcher Batcher
}

// NewService creates a new economy service
func NewService(ledger *inventory.Ledger, g *garden.Garden, batcher Batcher) Service {
	return &service{
		ledger:  ledger,
		garden:  g,
		batcher: batcher,
	}
}
