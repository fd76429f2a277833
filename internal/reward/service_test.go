package reward

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/cooldown"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/state"
	"github.com/osse101/bloom/internal/storage/memory"
	"github.com/osse101/bloom/internal/testing/dice"
	"github.com/osse101/bloom/internal/utils"
)

var t0 = time.Date(2026, 7, 14, 18, 0, 0, 0, time.UTC)

type fixture struct {
	m     *state.Manager
	store *memory.Store
	now   time.Time
}

func newFixture(t *testing.T, snap *domain.StateSnapshot) *fixture {
	t.Helper()
	stages := domain.DefaultGrowthStages()
	cat, err := catalog.Load("", stages)
	require.NoError(t, err)

	f := &fixture{store: memory.NewStore(snap), now: t0}
	f.m, err = state.Open(context.Background(), f.store, cat, state.Options{GardenSize: 5, Stages: stages})
	require.NoError(t, err)
	return f
}

func (f *fixture) service(seeds int, roller utils.Roller, devMode bool) Service {
	clock := func() time.Time { return f.now }
	cooldowns := cooldown.NewService(f.m, cooldown.Config{
		DevMode:   devMode,
		Cooldowns: map[string]time.Duration{cooldown.ActionLoginReward: time.Hour},
	}, clock)
	return NewService(cooldowns, f.m.Catalog, f.m.Inventory, f.m, f.m, roller, Config{Seeds: seeds}, clock)
}

func TestClaimLoginReward_FirstRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	saves := f.store.Saves()

	result, err := f.service(3, &dice.Script{Rolls: []int{0, 1, 0}}, false).ClaimLoginReward(ctx)
	require.NoError(t, err)

	assert.True(t, result.Granted)
	assert.Nil(t, result.LastLogin)
	assert.Equal(t, []domain.HarvestedItem{
		{Kind: domain.KindSeed, SpeciesID: "poppy", Amount: 2},
		{Kind: domain.KindSeed, SpeciesID: "daffodil", Amount: 1},
	}, result.Seeds)
	assert.Equal(t, 2, f.m.Inventory.Amount(domain.KindSeed, "poppy"))
	assert.Equal(t, saves+1, f.store.Saves(), "reward and login share one write")

	saved, _ := f.store.Load(ctx)
	require.NotNil(t, saved.LastLoginTime)
	require.NotNil(t, saved.LastLoginRewardTime)
	assert.True(t, t0.Equal(*saved.LastLoginTime))
	assert.True(t, t0.Equal(*saved.LastLoginRewardTime))
}

func TestClaimLoginReward_OnCooldownStillRecordsLogin(t *testing.T) {
	ctx := context.Background()
	lastReward := t0.Add(-20 * time.Minute)
	snap := domain.NewSnapshot(5)
	snap.LastLoginTime = &lastReward
	snap.LastLoginRewardTime = &lastReward
	f := newFixture(t, snap)

	result, err := f.service(1, dice.Min{}, false).ClaimLoginReward(ctx)
	require.NoError(t, err)

	assert.False(t, result.Granted)
	assert.Empty(t, result.Seeds)
	assert.Equal(t, 40*time.Minute, result.Remaining)
	require.NotNil(t, result.LastLogin)
	assert.True(t, lastReward.Equal(*result.LastLogin))
	assert.Equal(t, 0, f.m.Inventory.StackCount())

	require.NotNil(t, f.m.LastLoginTime())
	assert.True(t, t0.Equal(*f.m.LastLoginTime()))
	assert.True(t, lastReward.Equal(*f.m.LastUsed(cooldown.ActionLoginReward)), "reward time untouched")
}

func TestClaimLoginReward_AfterInterval(t *testing.T) {
	ctx := context.Background()
	lastReward := t0.Add(-2 * time.Hour)
	snap := domain.NewSnapshot(5)
	snap.LastLoginRewardTime = &lastReward
	f := newFixture(t, snap)

	result, err := f.service(1, dice.Max{}, false).ClaimLoginReward(ctx)
	require.NoError(t, err)

	assert.True(t, result.Granted)
	assert.Equal(t, 1, f.m.Inventory.Amount(domain.KindSeed, "daffodil"))
}

func TestClaimLoginReward_DevModeIgnoresCooldown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	svc := f.service(1, dice.Min{}, true)

	for i := 0; i < 2; i++ {
		result, err := svc.ClaimLoginReward(ctx)
		require.NoError(t, err)
		assert.True(t, result.Granted)
	}
	assert.Equal(t, 2, f.m.Inventory.Amount(domain.KindSeed, "poppy"))
}

type failingAdder struct{}

func (failingAdder) AddQuantity(context.Context, domain.ItemKind, string, int) (*domain.InventoryStack, error) {
	return nil, errors.New("ledger locked")
}

func TestClaimLoginReward_AddFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	cooldowns := cooldown.NewService(f.m, cooldown.Config{}, func() time.Time { return f.now })
	svc := NewService(cooldowns, f.m.Catalog, failingAdder{}, f.m, f.m, dice.Min{}, Config{Seeds: 1}, func() time.Time { return f.now })

	_, err := svc.ClaimLoginReward(ctx)
	assert.ErrorContains(t, err, "ledger locked")
	assert.Nil(t, f.m.LastUsed(cooldown.ActionLoginReward), "failed reward does not start the cooldown")
}
