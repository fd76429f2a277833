package garden_bench

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/economy"
	"github.com/osse101/bloom/internal/garden"
	"github.com/osse101/bloom/internal/inventory"
	"github.com/osse101/bloom/internal/testing/dice"
)

const benchGardenSize = 64

// --- Stubs (Zero-overhead collaborators for benchmarking) ---

type StubPersister struct{}

func (StubPersister) Persist(ctx context.Context) error { return nil }

func (StubPersister) Batch(ctx context.Context, fn func() error) error { return fn() }

type StubIdentifier struct{}

func (StubIdentifier) MarkIdentified(ctx context.Context, id string) error { return nil }

// fullGarden plants every slot, alternating species, with a clock the caller moves
func fullGarden(b *testing.B, now *time.Time) *garden.Garden {
	b.Helper()
	stages := domain.DefaultGrowthStages()
	cat, err := catalog.Load("", stages)
	if err != nil {
		b.Fatalf("catalog.Load failed: %v", err)
	}

	g := garden.New(benchGardenSize, garden.NewEngine(stages), cat, StubIdentifier{}, StubPersister{},
		garden.WithClock(func() time.Time { return *now }),
		garden.WithRoller(dice.Max{}))

	ids := []string{"poppy", "daffodil"}
	for i := 0; i < benchGardenSize; i++ {
		if _, err := g.PlantSeed(context.Background(), ids[i%len(ids)]); err != nil {
			b.Fatalf("PlantSeed failed: %v", err)
		}
	}
	return g
}

// --- Benchmark Functions ---

// BenchmarkUpdateMaturities_FullGarden advances every slot by one stage per iteration.
func BenchmarkUpdateMaturities_FullGarden(b *testing.B) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	g := fullGarden(b, &now)
	ctx := context.Background()
	step := domain.DefaultStageDuration

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Plants stop at the last stage, so replant once every slot has gone to seed
		if i%domain.DefaultMaxStage == 0 && i > 0 {
			b.StopTimer()
			g = fullGarden(b, &now)
			b.StartTimer()
		}
		now = now.Add(step)
		if _, err := g.UpdateMaturities(ctx); err != nil {
			b.Fatalf("UpdateMaturities failed: %v", err)
		}
	}
}

// BenchmarkHarvestAll_FullGarden measures harvesting and merging a full garden.
func BenchmarkHarvestAll_FullGarden(b *testing.B) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := fullGarden(b, &now)
		now = now.Add(time.Minute)
		svc := economy.NewService(inventory.NewLedger(nil, StubPersister{}), g, StubPersister{})
		b.StartTimer()

		result, err := svc.HarvestAll(ctx)
		if err != nil {
			b.Fatalf("HarvestAll failed: %v", err)
		}
		if len(result.Payloads) != benchGardenSize {
			b.Fatalf("harvested %d plants, want %d", len(result.Payloads), benchGardenSize)
		}
	}
}
