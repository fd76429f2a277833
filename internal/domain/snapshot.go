package domain

import "time"

// StateSnapshot is the whole persisted game state. Saves always replace the previous snapshot.
type StateSnapshot struct {
	Version             int               `json:"version"`
	Inventory           InventorySnapshot `json:"inventory"`
	Garden              GardenSnapshot    `json:"garden"`
	Discovery           DiscoverySnapshot `json:"discovery"`
	Terminal            TerminalSnapshot  `json:"terminal"`
	LastLoginTime       *time.Time        `json:"lastLoginTime,omitempty"`
	LastLoginRewardTime *time.Time        `json:"lastLoginRewardTime,omitempty"`
}

// InventorySnapshot lists stacks in display order
type InventorySnapshot struct {
	Items []InventoryStack `json:"items"`
}

// GardenSnapshot stores only occupied slots, each with its slot index
type GardenSnapshot struct {
	Size   int             `json:"size"`
	Plants []PlantSnapshot `json:"plants"`
}

// PlantSnapshot is a serialized GrowthEntry
type PlantSnapshot struct {
	SpeciesID            string    `json:"id"`
	SlotIndex            int       `json:"slotIndex"`
	Stage                int       `json:"stage"`
	LastAdvanceTimestamp time.Time `json:"lastAdvanceTimestamp"`
}

// DiscoverySnapshot stores the identified set and the pending announcement queue
type DiscoverySnapshot struct {
	IdentifiedIDs          []string `json:"identifiedIds"`
	PendingAnnouncementIDs []string `json:"pendingAnnouncementIds"`
}

// TerminalSnapshot stores display preferences
type TerminalSnapshot struct {
	Theme int `json:"theme"`
}

// NewSnapshot returns the state of a brand new game
func NewSnapshot(gardenSize int) *StateSnapshot {
	return &StateSnapshot{
		Version:   SnapshotVersion,
		Inventory: InventorySnapshot{Items: []InventoryStack{}},
		Garden:    GardenSnapshot{Size: gardenSize, Plants: []PlantSnapshot{}},
		Discovery: DiscoverySnapshot{
			IdentifiedIDs:          []string{},
			PendingAnnouncementIDs: []string{},
		},
		Terminal: TerminalSnapshot{Theme: ThemeDark},
	}
}
