package domain

import "fmt"

// ItemKind distinguishes the two inventory categories. Identity of an item is (kind, species).
type ItemKind string

const (
	KindSeed   ItemKind = "seed"
	KindFlower ItemKind = "flower"
)

// Valid reports whether k is a known kind
func (k ItemKind) Valid() bool {
	return k == KindSeed || k == KindFlower
}

// InventoryStack aggregates every unit of one (kind, species) pair
type InventoryStack struct {
	Kind      ItemKind `json:"kind"`
	SpeciesID string   `json:"id"`
	Amount    int      `json:"amount"`
}

// Key returns the identity of the stack
func (s InventoryStack) Key() ItemKey {
	return ItemKey{Kind: s.Kind, SpeciesID: s.SpeciesID}
}

// ItemKey is the (kind, species) identity used for merging
type ItemKey struct {
	Kind      ItemKind
	SpeciesID string
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s:%s", k.Kind, k.SpeciesID)
}
