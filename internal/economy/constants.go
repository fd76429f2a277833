package economy

// Log messages
const (
	LogMsgPlantFromInventoryCalled = "PlantFromInventory called"
	LogMsgSeedPlanted              = "Seed planted from inventory"
	LogMsgHarvestSlotCalled        = "HarvestSlot called"
	LogMsgHarvestAllCalled         = "HarvestAll called"
	LogMsgEntryHarvested           = "Entry harvested"
)

// Error messages
const (
	ErrMsgGetStackFailed       = "failed to read inventory stack: %w"
	ErrMsgUpdateMaturityFailed = "failed to update maturities: %w"
	ErrMsgPayloadFailed        = "failed to roll harvest for %s: %w"
	ErrMsgAddItemFailed        = "failed to add %s %s: %w"
	ErrMsgRemoveEntryFailed    = "failed to clear harvested slot: %w"
)
