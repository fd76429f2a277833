package domain

import "time"

// GrowthEntry is a plant growing in one garden slot
type GrowthEntry struct {
	SpeciesID     string
	Stage         int
	LastAdvanceAt time.Time
}

// GrowthBand selects which yield range applies to a harvest
type GrowthBand string

const (
	BandGrowing   GrowthBand = "growing"
	BandFlowering GrowthBand = "flowering"
	BandSeed      GrowthBand = "gone to seed"
)

// YieldRange holds inclusive drop ranges for a harvest
type YieldRange struct {
	SeedMin   int `yaml:"seedMin" json:"seedMin" validate:"gte=0"`
	SeedMax   int `yaml:"seedMax" json:"seedMax" validate:"gtefield=SeedMin"`
	FlowerMin int `yaml:"flowerMin" json:"flowerMin" validate:"gte=0"`
	FlowerMax int `yaml:"flowerMax" json:"flowerMax" validate:"gtefield=FlowerMin"`
}

// GrowthStages holds the stage thresholds shared by the garden and the catalog
type GrowthStages struct {
	Duration      time.Duration
	MaxStage      int
	MaturityStage int
	SeedStage     int
}

// DefaultGrowthStages returns the stock thresholds
func DefaultGrowthStages() GrowthStages {
	return GrowthStages{
		Duration:      DefaultStageDuration,
		MaxStage:      DefaultMaxStage,
		MaturityStage: DefaultMaturityStage,
		SeedStage:     DefaultSeedStage,
	}
}

// Band returns the yield band for a stage. Lower bounds are inclusive.
func (g GrowthStages) Band(stage int) GrowthBand {
	switch {
	case stage >= g.SeedStage:
		return BandSeed
	case stage >= g.MaturityStage:
		return BandFlowering
	default:
		return BandGrowing
	}
}
