package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/economy"
	"github.com/osse101/bloom/internal/garden"
	"github.com/osse101/bloom/internal/metrics"
	"github.com/osse101/bloom/internal/naming"
	"github.com/osse101/bloom/internal/repository"
	"github.com/osse101/bloom/internal/reward"
	"github.com/osse101/bloom/internal/state"
	"github.com/osse101/bloom/internal/storage/memory"
	"github.com/osse101/bloom/internal/testing/dice"
	"github.com/osse101/bloom/mocks"
)

var t0 = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

type fixture struct {
	app *App
	m   *state.Manager
	out *bytes.Buffer
	now time.Time
}

func newFixture(t *testing.T, snap *domain.StateSnapshot) *fixture {
	t.Helper()
	return newFixtureWithStore(t, memory.NewStore(snap))
}

func newFixtureWithStore(t *testing.T, store repository.StateStore) *fixture {
	t.Helper()
	stages := domain.DefaultGrowthStages()
	cat, err := catalog.Load("", stages)
	require.NoError(t, err)

	f := &fixture{out: &bytes.Buffer{}, now: t0}
	f.m, err = state.Open(context.Background(), store, cat, state.Options{
		GardenSize: 3,
		Stages:     stages,
		GardenOptions: []garden.Option{
			garden.WithClock(func() time.Time { return f.now }),
			garden.WithRoller(dice.Max{}),
		},
	})
	require.NoError(t, err)

	econ := economy.NewService(f.m.Inventory, f.m.Garden, f.m)
	names := naming.NewResolver(f.m.Catalog, f.m.Discovery)
	f.app = New(f.out, f.m, econ, names, Options{Plain: true})
	return f
}

// exec runs one line and returns what it printed
func (f *fixture) exec(line string) string {
	f.out.Reset()
	f.app.Execute(context.Background(), line)
	return f.out.String()
}

func snapshotWith(items ...domain.InventoryStack) *domain.StateSnapshot {
	snap := domain.NewSnapshot(3)
	snap.Inventory.Items = append(snap.Inventory.Items, items...)
	return snap
}

func seeds(id string, n int) domain.InventoryStack {
	return domain.InventoryStack{Kind: domain.KindSeed, SpeciesID: id, Amount: n}
}

func TestRun_StopsAtExit(t *testing.T) {
	f := newFixture(t, nil)

	in := strings.NewReader("help\ninventory\n\nquit\ntheme\n")
	require.NoError(t, f.app.Run(context.Background(), in))

	out := f.out.String()
	assert.Contains(t, out, PromptText+" ")
	assert.Contains(t, out, MsgHelpCommands)
	assert.Contains(t, out, MsgInventoryEmpty)
	assert.Contains(t, out, MsgFarewell)
	assert.True(t, f.app.Quit())
	assert.Equal(t, domain.ThemeDark, f.m.Theme(), "commands after exit are not run")
}

func TestRun_EndOfInput(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Run(context.Background(), strings.NewReader("garden")))
	assert.False(t, f.app.Quit())
	assert.Contains(t, f.out.String(), MsgEmptySlot)
}

func TestExecute_UnknownCommandSuggests(t *testing.T) {
	f := newFixture(t, nil)

	out := f.exec("gardn")
	assert.Contains(t, out, MsgNotRecognised)
	assert.Contains(t, out, "Did you mean garden?")

	out = f.exec("xyzzy")
	assert.Contains(t, out, MsgNotRecognised)
	assert.NotContains(t, out, "Did you mean")
}

func TestExecute_AliasesIgnoreCase(t *testing.T) {
	f := newFixture(t, nil)

	assert.Contains(t, f.exec("GARDEN"), MsgEmptySlot)
	assert.Contains(t, f.exec("Inv"), MsgInventoryEmpty)
	assert.Contains(t, f.exec("QUIT"), MsgFarewell)
}

func TestExecute_CountsCommands(t *testing.T) {
	f := newFixture(t, nil)
	executed := metrics.CommandsExecuted.WithLabelValues("plant")
	failed := metrics.CommandErrors.WithLabelValues("plant")
	beforeExec, beforeFail := testutil.ToFloat64(executed), testutil.ToFloat64(failed)

	f.exec("plant 0")

	assert.Equal(t, beforeExec+1, testutil.ToFloat64(executed))
	assert.Equal(t, beforeFail+1, testutil.ToFloat64(failed))
}

func TestHelp(t *testing.T) {
	f := newFixture(t, nil)

	out := f.exec("help")
	for _, usage := range []string{"garden, garden [index]", "harvest [garden index], harvest all", "plant [inventory index]", "theme", "exit"} {
		assert.Contains(t, out, usage)
	}

	out = f.exec("help quit")
	assert.Contains(t, out, "Aliases: exit, quit")
	assert.Contains(t, out, "Usage: exit")

	out = f.exec("help plnt")
	assert.Contains(t, out, "Can't find a command called 'plnt'. Did you mean plant?")
}

func TestInventory(t *testing.T) {
	snap := snapshotWith(seeds("poppy", 2), domain.InventoryStack{Kind: domain.KindFlower, SpeciesID: "daffodil", Amount: 1})
	snap.Discovery.IdentifiedIDs = []string{"poppy"}
	f := newFixture(t, snap)

	out := f.exec("inventory")
	assert.Contains(t, out, "[0] Seed (Poppy)")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "[1] "+naming.UnidentifiedFlower)

	assert.Contains(t, f.exec("inventory 0"), "Seed (Poppy): A tiny, round, black seed.")
	assert.Contains(t, f.exec("inventory 4"), "Invalid index: 4. Inventory only has items 0-1")
	assert.Contains(t, f.exec("inventory two"), "Invalid index: 'two'. Please input a number e.g. inventory 2")
}

func TestPlant(t *testing.T) {
	f := newFixture(t, snapshotWith(seeds("poppy", 1)))

	out := f.exec("plant 0")
	assert.Contains(t, out, "Successfully planted "+naming.UnidentifiedSeed+" into garden slot 0. Remaining stock: 0")
	assert.Equal(t, 0, f.m.Inventory.StackCount())
	assert.Equal(t, 2, f.m.Garden.EmptySlotCount())
}

func TestPlant_Errors(t *testing.T) {
	flower := domain.InventoryStack{Kind: domain.KindFlower, SpeciesID: "poppy", Amount: 1}

	tests := []struct {
		name  string
		snap  *domain.StateSnapshot
		input string
		want  string
	}{
		{"missing index", nil, "plant", MsgPlantMissingIndex},
		{"not a number", nil, "plant first", MsgPlantNotNumber},
		{"empty inventory", nil, "plant 0", MsgPlantEmpty},
		{"out of range", snapshotWith(seeds("poppy", 1)), "plant 3", "Cannot plant. Inventory index is not valid - it must be between 0 and 0"},
		{"negative", snapshotWith(seeds("poppy", 1)), "plant -1", "it must be between 0 and 0"},
		{"flower", snapshotWith(flower), "plant 0", "Cannot plant. Item at index 0 is not a seed: " + naming.UnidentifiedFlower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.snap)
			assert.Contains(t, f.exec(tt.input), tt.want)
		})
	}
}

func TestPlant_GardenFull(t *testing.T) {
	f := newFixture(t, snapshotWith(seeds("poppy", 4)))
	for i := 0; i < 3; i++ {
		f.exec("plant 0")
	}

	assert.Contains(t, f.exec("plant 0"), MsgPlantGardenFull)
	assert.Equal(t, 1, f.m.Inventory.Amount(domain.KindSeed, "poppy"))
}

func TestGarden(t *testing.T) {
	f := newFixture(t, snapshotWith(seeds("poppy", 1)))
	f.exec("plant 0")
	f.now = f.now.Add(12 * time.Second)

	out := f.exec("garden")
	assert.Contains(t, out, "[0] "+naming.UnidentifiedPlant+" (Growing)")
	assert.Contains(t, out, "\tIt's a small plant with healthy looking leaves.")
	assert.Contains(t, out, "[1] "+MsgEmptySlot)

	assert.Contains(t, f.exec("garden 0"), naming.UnidentifiedPlant+": It's a small plant")
	assert.Contains(t, f.exec("garden 2"), MsgEmptySlot)
	assert.Contains(t, f.exec("garden 7"), "Invalid index: 7. Garden only has slots 0-2")
	assert.Contains(t, f.exec("garden x"), "Invalid index: 'x'. Please input a number e.g. garden 2")

	f.now = f.now.Add(time.Minute)
	out = f.exec("garden")
	assert.Contains(t, out, "[0] Poppy (Gone To Seed)")
	assert.Contains(t, out, "It has dried out completely.")
}

func TestHarvest_AnnouncesOnlyHarvestedSpecies(t *testing.T) {
	snap := snapshotWith(seeds("poppy", 1))
	snap.Discovery.IdentifiedIDs = []string{"daffodil"}
	snap.Discovery.PendingAnnouncementIDs = []string{"daffodil"}
	f := newFixture(t, snap)

	f.exec("plant 0")
	f.now = f.now.Add(30 * time.Second)

	out := f.exec("harvest 0")
	assert.Contains(t, out, "Harvested 'Poppy' (Flowering)")
	assert.Contains(t, out, MsgHarvestGot)
	assert.Contains(t, out, "\t2x Seed (Poppy)")
	assert.Contains(t, out, "\t4x Flower (Poppy)")
	assert.Contains(t, out, MsgIdentifiedNew)
	assert.Contains(t, out, "\tPoppy")
	assert.NotContains(t, out, "Daffodil")

	assert.Equal(t, []string{"daffodil"}, f.m.Discovery.Pending())
}

func TestHarvest_Errors(t *testing.T) {
	f := newFixture(t, nil)

	assert.Contains(t, f.exec("harvest"), MsgHarvestMissingIndex)
	assert.Contains(t, f.exec("harvest one"), MsgHarvestNotNumber)
	assert.Contains(t, f.exec("harvest 3"), "it must be between 0 and 2")
	assert.Contains(t, f.exec("harvest 1"), "Cannot harvest. Garden slot 1 is empty")
	assert.Contains(t, f.exec("harvest all"), MsgHarvestNothing)
}

func TestHarvestAll(t *testing.T) {
	f := newFixture(t, snapshotWith(seeds("poppy", 2)))
	f.exec("plant 0")
	f.exec("plant 0")
	f.now = f.now.Add(time.Minute)

	out := f.exec("harvest ALL")
	assert.Contains(t, out, "Harvested 2 plants")
	assert.Contains(t, out, "\t12x Seed (Poppy)")
	assert.NotContains(t, out, "Flower (Poppy)")
	assert.Equal(t, 3, f.m.Garden.EmptySlotCount())
}

func TestTheme(t *testing.T) {
	f := newFixture(t, nil)

	out := f.exec("theme")
	assert.Contains(t, out, MsgClearedScreen)
	assert.Contains(t, out, "Switched terminal theme 'light'.")
	assert.Equal(t, domain.ThemeLight, f.m.Theme())

	assert.Contains(t, f.exec("theme"), "'dark'")
}

func TestGreet(t *testing.T) {
	ctx := context.Background()

	t.Run("first visit with reward", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.app.Greet(ctx, &reward.Result{
			Granted: true,
			Seeds:   []domain.HarvestedItem{{Kind: domain.KindSeed, SpeciesID: "poppy", Amount: 1}},
		})
		require.NoError(t, err)

		out := f.out.String()
		assert.Contains(t, out, MsgWelcomeNew)
		assert.Contains(t, out, MsgRewardGranted)
		assert.Contains(t, out, "\t1x "+naming.UnidentifiedSeed)
		assert.NotContains(t, out, MsgDiscovered)
	})

	t.Run("returning player sees identifications from while away", func(t *testing.T) {
		last := t0.Add(-time.Hour)
		snap := domain.NewSnapshot(3)
		snap.Garden.Plants = []domain.PlantSnapshot{{SpeciesID: "daffodil", SlotIndex: 1, Stage: 2, LastAdvanceTimestamp: t0.Add(-15 * time.Second)}}
		f := newFixture(t, snap)

		require.NoError(t, f.app.Greet(ctx, &reward.Result{LastLogin: &last}))

		out := f.out.String()
		assert.Contains(t, out, "Welcome back!")
		assert.NotContains(t, out, MsgRewardGranted)
		assert.Contains(t, out, MsgDiscovered)
		assert.Contains(t, out, "\tDaffodil")
		assert.Empty(t, f.m.Discovery.Pending())
	})
}

func TestExecute_PersistenceFailureIsReported(t *testing.T) {
	store := mocks.NewMockRepositoryStateStore(t)
	store.On("Load", mock.Anything).Return(domain.NewSnapshot(3), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	f := newFixtureWithStore(t, store)

	out := f.exec("theme")
	assert.Contains(t, out, MsgInternalError)
}

func TestStyledOutputUsesPalette(t *testing.T) {
	f := newFixture(t, nil)
	f.app.plain = false
	f.app.applyTheme(domain.ThemeDark)

	out := f.exec("nope")
	assert.Contains(t, out, darkPalette.Error+MsgNotRecognised+ansiReset)
}
