package catalog

import (
	"maps"

	"github.com/osse101/bloom/internal/domain"
)

// Form is one of the three shapes a species takes: seed, plant or flower
type Form struct {
	Name    string `yaml:"name" validate:"required"`
	Summary string `yaml:"summary"`
}

// Harvest holds the yield range of each growth band
type Harvest struct {
	Growing   domain.YieldRange `yaml:"growing"`
	Flowering domain.YieldRange `yaml:"flowering"`
	Seed      domain.YieldRange `yaml:"seed"`
}

// Species is an immutable plant definition
type Species struct {
	ID                string         `yaml:"id" validate:"required,lowercase"`
	Seed              Form           `yaml:"seed"`
	Plant             Form           `yaml:"plant"`
	Flower            Form           `yaml:"flower"`
	Harvest           Harvest        `yaml:"harvest"`
	StageDescriptions map[int]string `yaml:"stageDescriptions" validate:"required,dive,keys,gte=0,endkeys,required"`
	GoneToSeed        string         `yaml:"goneToSeed" validate:"required"`

	stages domain.GrowthStages
}

// clone returns a deep copy so per-species overrides never leak into the base
func (s Species) clone() Species {
	c := s
	c.StageDescriptions = maps.Clone(s.StageDescriptions)
	return c
}

// FormFor returns the inventory form for an item kind
func (s *Species) FormFor(kind domain.ItemKind) Form {
	if kind == domain.KindFlower {
		return s.Flower
	}
	return s.Seed
}

// StageDescription describes a garden plant at the given stage.
// Stages without their own text reuse the closest earlier one.
func (s *Species) StageDescription(stage int) string {
	if stage >= s.stages.MaxStage {
		return s.GoneToSeed
	}
	for i := stage; i >= 0; i-- {
		if desc, ok := s.StageDescriptions[i]; ok {
			return desc
		}
	}
	return ""
}

// Band returns the growth band a stage falls in
func (s *Species) Band(stage int) domain.GrowthBand {
	return s.stages.Band(stage)
}

// YieldRange returns the harvest ranges for a plant at the given stage
func (s *Species) YieldRange(stage int) domain.YieldRange {
	switch s.stages.Band(stage) {
	case domain.BandSeed:
		return s.Harvest.Seed
	case domain.BandFlowering:
		return s.Harvest.Flowering
	default:
		return s.Harvest.Growing
	}
}
