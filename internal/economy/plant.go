package economy

import (
	"context"
	"fmt"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/metrics"
)

// PlantFromInventory plants one seed from the stack at inventoryIndex. Every
// precondition is checked before either component changes.
func (s *service) PlantFromInventory(ctx context.Context, inventoryIndex int) (*PlantResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlantFromInventoryCalled, "index", inventoryIndex)

	stack, err := s.validatePlant(inventoryIndex)
	if err != nil {
		return nil, err
	}

	result := &PlantResult{SpeciesID: stack.SpeciesID}
	err = s.batcher.Batch(ctx, func() error {
		slot, err := s.garden.PlantSeed(ctx, stack.SpeciesID)
		if err != nil {
			return err
		}
		result.Slot = slot
		return s.ledger.Remove(ctx, domain.KindSeed, stack.SpeciesID)
	})
	if err != nil {
		return nil, err
	}

	metrics.SeedsPlanted.WithLabelValues(stack.SpeciesID).Inc()
	log.Info(LogMsgSeedPlanted, "species_id", stack.SpeciesID, "slot", result.Slot)
	return result, nil
}

func (s *service) validatePlant(inventoryIndex int) (*domain.InventoryStack, error) {
	if s.ledger.StackCount() == 0 {
		return nil, domain.ErrEmptyInventory
	}

	stack, err := s.ledger.Get(inventoryIndex)
	if err != nil {
		return nil, err
	}
	if stack.Kind != domain.KindSeed {
		return nil, fmt.Errorf("%w: item %d is a %s", domain.ErrNotASeed, inventoryIndex, stack.Kind)
	}
	if s.garden.EmptySlotCount() == 0 {
		return nil, fmt.Errorf("%w: all %d slots are occupied", domain.ErrGardenFull, s.garden.Size())
	}
	return stack, nil
}
