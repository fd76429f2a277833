// Package naming turns species ids into what the player sees, hiding the
// real names until a species has been identified.
package naming

import (
	"fmt"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/domain"
)

// SpeciesLookup finds species definitions by id
type SpeciesLookup interface {
	Get(id string) (*catalog.Species, error)
}

// Identification reports which species the player has identified
type Identification interface {
	IsIdentified(id string) bool
}

// Resolver generates display names and descriptions
type Resolver interface {
	// ItemName names an inventory item
	ItemName(kind domain.ItemKind, speciesID string) string

	// ItemSummary describes an inventory item
	ItemSummary(kind domain.ItemKind, speciesID string) string

	// PlantName names a plant growing in the garden
	PlantName(speciesID string) string

	// StageSummary describes a garden plant at its current stage
	StageSummary(entry *domain.GrowthEntry) string
}

// unidentifiedNames is keyed by item kind; plants use UnidentifiedPlant
var unidentifiedNames = map[domain.ItemKind]string{
	domain.KindSeed:   UnidentifiedSeed,
	domain.KindFlower: UnidentifiedFlower,
}

type resolver struct {
	species    SpeciesLookup
	identified Identification
}

// NewResolver creates a resolver over the catalog and the discovery state
func NewResolver(species SpeciesLookup, identified Identification) Resolver {
	return &resolver{species: species, identified: identified}
}

func (r *resolver) ItemName(kind domain.ItemKind, speciesID string) string {
	sp, err := r.species.Get(speciesID)
	if err != nil {
		return fmt.Sprintf(UnknownSpeciesFormat, speciesID)
	}
	if !r.identified.IsIdentified(speciesID) {
		return unidentifiedNames[kind]
	}
	return sp.FormFor(kind).Name
}

// ItemSummary shows the catalog summary even before identification; the
// summaries describe what the item looks like, not what it is.
func (r *resolver) ItemSummary(kind domain.ItemKind, speciesID string) string {
	sp, err := r.species.Get(speciesID)
	if err != nil {
		return ""
	}
	return sp.FormFor(kind).Summary
}

func (r *resolver) PlantName(speciesID string) string {
	sp, err := r.species.Get(speciesID)
	if err != nil {
		return fmt.Sprintf(UnknownSpeciesFormat, speciesID)
	}
	if !r.identified.IsIdentified(speciesID) {
		return UnidentifiedPlant
	}
	return sp.Plant.Name
}

func (r *resolver) StageSummary(entry *domain.GrowthEntry) string {
	sp, err := r.species.Get(entry.SpeciesID)
	if err != nil {
		return ""
	}
	return sp.StageDescription(entry.Stage)
}
