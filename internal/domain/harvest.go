package domain

// HarvestPayload is what a single garden entry drops when harvested
type HarvestPayload struct {
	SpeciesID   string
	Band        GrowthBand
	SeedCount   int
	FlowerCount int
}

// HarvestedItem is one line of a harvest summary
type HarvestedItem struct {
	Kind      ItemKind `json:"kind"`
	SpeciesID string   `json:"id"`
	Amount    int      `json:"amount"`
}
