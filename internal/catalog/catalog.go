package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/utils"
)

//go:embed plants.yaml
var defaultCatalog []byte

var validate = validator.New()

// Catalog is the read-only table of species, built once at startup
type Catalog struct {
	byID    map[string]*Species
	ordered []*Species
	stages  domain.GrowthStages
}

type catalogFile struct {
	Base    yaml.Node   `yaml:"base"`
	Species []yaml.Node `yaml:"species"`
}

// Load reads the catalog from path, or the embedded default when path is empty
func Load(path string, stages domain.GrowthStages) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog, stages)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data, stages)
}

// Parse builds a catalog from YAML. Each species is decoded on top of a copy
// of the base definition, so nested fields it omits keep the base values.
func Parse(data []byte, stages domain.GrowthStages) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if len(file.Species) == 0 {
		return nil, errors.New("catalog defines no species")
	}

	var base Species
	if !file.Base.IsZero() {
		if err := file.Base.Decode(&base); err != nil {
			return nil, fmt.Errorf("failed to decode catalog base: %w", err)
		}
	}

	c := &Catalog{
		byID:    make(map[string]*Species, len(file.Species)),
		ordered: make([]*Species, 0, len(file.Species)),
		stages:  stages,
	}

	for i := range file.Species {
		sp := base.clone()
		if err := file.Species[i].Decode(&sp); err != nil {
			return nil, fmt.Errorf("failed to decode species #%d: %w", i, err)
		}
		sp.stages = stages

		if err := validate.Struct(&sp); err != nil {
			return nil, fmt.Errorf("invalid species %q: %w", sp.ID, err)
		}
		if _, dup := c.byID[sp.ID]; dup {
			return nil, fmt.Errorf("duplicate species id %q", sp.ID)
		}

		c.byID[sp.ID] = &sp
		c.ordered = append(c.ordered, &sp)
	}

	return c, nil
}

// Get looks up a species by id
func (c *Catalog) Get(id string) (*Species, error) {
	sp, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSpeciesNotFound, id)
	}
	return sp, nil
}

// Has reports whether id names a species
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Random picks a species uniformly
func (c *Catalog) Random(r utils.Roller) *Species {
	return c.ordered[r.Index(len(c.ordered))]
}

// All returns the species in file order
func (c *Catalog) All() []*Species {
	out := make([]*Species, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of species
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Stages returns the growth thresholds the catalog was built with
func (c *Catalog) Stages() domain.GrowthStages {
	return c.stages
}
