package domain

import "time"

// Growth defaults. All of them can be overridden through config.
const (
	// DefaultGardenSize is the slot count of a brand new garden
	DefaultGardenSize = 5

	// DefaultStageDuration is how long a plant spends in each stage
	DefaultStageDuration = 10 * time.Second

	// DefaultMaxStage is the terminal "gone to seed" stage
	DefaultMaxStage = 5

	// DefaultMaturityStage is the first flowering stage. Reaching it identifies the species.
	DefaultMaturityStage = 3

	// DefaultSeedStage is the first stage harvested from the seed yield band
	DefaultSeedStage = 4
)

// Login reward defaults
const (
	DefaultLoginRewardInterval = 10 * time.Second
	DefaultLoginRewardSeeds    = 1
)

// Snapshot format
const (
	SnapshotVersion = 1
)

// Theme identifiers stored in the snapshot
const (
	ThemeDark  = 0
	ThemeLight = 1
)
