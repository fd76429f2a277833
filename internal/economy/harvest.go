package economy

import (
	"context"
	"fmt"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/metrics"
)

// HarvestEntry harvests a single planted entry
func (s *service) HarvestEntry(ctx context.Context, entry *domain.GrowthEntry) (*HarvestResult, error) {
	if s.garden.IndexOf(entry) < 0 {
		return nil, domain.ErrNotFound
	}

	result := &HarvestResult{}
	err := s.batcher.Batch(ctx, func() error {
		if err := s.refresh(ctx); err != nil {
			return err
		}
		return s.harvestInto(ctx, entry, newMerger(result))
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HarvestSlot harvests the plant in one garden slot
func (s *service) HarvestSlot(ctx context.Context, slot int) (*HarvestResult, error) {
	logger.FromContext(ctx).Info(LogMsgHarvestSlotCalled, "slot", slot)

	entry, err := s.garden.SlotEntry(slot)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSlotEmpty, slot)
	}
	return s.HarvestEntry(ctx, entry)
}

// HarvestAll harvests every occupied slot and merges the yields by (kind, species)
func (s *service) HarvestAll(ctx context.Context) (*HarvestResult, error) {
	logger.FromContext(ctx).Info(LogMsgHarvestAllCalled, "occupied", s.garden.Size()-s.garden.EmptySlotCount())

	result := &HarvestResult{}
	err := s.batcher.Batch(ctx, func() error {
		if err := s.refresh(ctx); err != nil {
			return err
		}
		merge := newMerger(result)
		for _, entry := range s.garden.OccupiedEntries() {
			if err := s.harvestInto(ctx, entry, merge); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) refresh(ctx context.Context) error {
	if _, err := s.garden.UpdateMaturities(ctx); err != nil {
		return fmt.Errorf(ErrMsgUpdateMaturityFailed, err)
	}
	return nil
}

func (s *service) harvestInto(ctx context.Context, entry *domain.GrowthEntry, merge *merger) error {
	payload, err := s.garden.GenerateHarvestPayload(entry)
	if err != nil {
		return fmt.Errorf(ErrMsgPayloadFailed, entry.SpeciesID, err)
	}

	drops := []domain.HarvestedItem{
		{Kind: domain.KindSeed, SpeciesID: payload.SpeciesID, Amount: payload.SeedCount},
		{Kind: domain.KindFlower, SpeciesID: payload.SpeciesID, Amount: payload.FlowerCount},
	}
	for _, drop := range drops {
		if drop.Amount == 0 {
			continue
		}
		if _, err := s.ledger.AddQuantity(ctx, drop.Kind, drop.SpeciesID, drop.Amount); err != nil {
			return fmt.Errorf(ErrMsgAddItemFailed, drop.Kind, drop.SpeciesID, err)
		}
		metrics.ItemsHarvested.WithLabelValues(string(drop.Kind), drop.SpeciesID).Add(float64(drop.Amount))
		merge.add(drop)
	}

	if err := s.garden.RemoveEntry(ctx, entry); err != nil {
		return fmt.Errorf(ErrMsgRemoveEntryFailed, err)
	}

	merge.result.Payloads = append(merge.result.Payloads, payload)
	metrics.PlantsHarvested.WithLabelValues(payload.SpeciesID, string(payload.Band)).Inc()
	logger.FromContext(ctx).Info(LogMsgEntryHarvested,
		"species_id", payload.SpeciesID,
		"band", payload.Band,
		"seeds", payload.SeedCount,
		"flowers", payload.FlowerCount)
	return nil
}

// merger sums harvested items by (kind, species) keeping first-seen order
type merger struct {
	result *HarvestResult
	index  map[domain.ItemKey]int
}

func newMerger(result *HarvestResult) *merger {
	return &merger{result: result, index: make(map[domain.ItemKey]int)}
}

func (m *merger) add(item domain.HarvestedItem) {
	key := domain.ItemKey{Kind: item.Kind, SpeciesID: item.SpeciesID}
	if i, ok := m.index[key]; ok {
		m.result.Items[i].Amount += item.Amount
		return
	}
	m.index[key] = len(m.result.Items)
	m.result.Items = append(m.result.Items, item)
}
