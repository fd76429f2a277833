package cli

// Prompt and session text
const (
	PromptText        = "bloom>"
	MsgWelcomeNew     = "Welcome to your new garden!"
	MsgWelcomeBackFmt = "Welcome back! Your last visit was %s."
	MsgRewardGranted  = "You found some seeds on your doorstep:"
	MsgIdentifiedNew  = "You've identified new plants!"
	MsgDiscovered     = "Discovered:"
	MsgFarewell       = "See you later!"
	MsgNotRecognised  = "Command not recognised"
	MsgDidYouMeanFmt  = "Did you mean %s?"
	MsgInternalError  = "Something went wrong, check the log for details."
	MsgClearedScreen  = "(Cleared terminal)"
	MsgThemeSwitchFmt = "Switched terminal theme '%s'."
)

// Inventory messages
const (
	MsgInventoryEmpty          = "Your inventory is empty."
	MsgInventoryBadIndexFmt    = "Invalid index: %s. Inventory only has items 0-%d"
	MsgInventoryEmptyIndexFmt  = "Invalid index: %s. Your inventory is empty"
	MsgInventoryNotNumberFmt   = "Invalid index: '%s'. Please input a number e.g. %s"
	MsgInventoryItemSummaryFmt = "%s: %s"
)

// Garden messages
const (
	MsgGardenBadIndexFmt  = "Invalid index: %s. Garden only has slots 0-%d"
	MsgGardenNotNumberFmt = "Invalid index: '%s'. Please input a number e.g. %s"
	MsgEmptySlot          = "[ Empty slot ]"
	MsgEmptySlotSummary   = " -- "
)

// Plant messages
const (
	MsgPlantMissingIndex = "Cannot plant. Missing inventory index. See usage: help plant"
	MsgPlantNotNumber    = "Cannot plant. Inventory index is not valid - it must be a number"
	MsgPlantEmpty        = "Cannot plant. Inventory is empty"
	MsgPlantOutOfRange   = "Cannot plant. Inventory index is not valid - it must be between 0 and %d"
	MsgPlantGardenFull   = "Cannot plant. Garden is full"
	MsgPlantNotASeedFmt  = "Cannot plant. Item at index %d is not a seed: %s"
	MsgPlantedFmt        = "Successfully planted %s into garden slot %d. Remaining stock: %d"
)

// Harvest messages
const (
	MsgHarvestMissingIndex = "Cannot harvest. Missing garden slot index. See usage: help harvest"
	MsgHarvestNotNumber    = "Cannot harvest. Garden slot index is not valid - it must be a number"
	MsgHarvestOutOfRange   = "Cannot harvest. Garden slot index is not valid - it must be between 0 and %d"
	MsgHarvestSlotEmptyFmt = "Cannot harvest. Garden slot %d is empty"
	MsgHarvestNothing      = "There is nothing to harvest."
	MsgHarvestedFmt        = "Harvested '%s' (%s)"
	MsgHarvestedAllFmt     = "Harvested %d plants"
	MsgHarvestGot          = "Got:"
	MsgHarvestLineFmt      = "\t%dx %s"
)

// Help messages
const (
	MsgHelpCommands   = "Commands:"
	MsgHelpAliasesFmt = "Aliases: %s"
	MsgHelpUsageFmt   = "Usage: %s"
	MsgHelpUnknownFmt = "Can't find a command called '%s'"
)

// HarvestAllArg harvests every occupied slot
const HarvestAllArg = "all"

// Suggestion tuning
const (
	SuggestionCacheSize = 128
	// MinSuggestInput skips suggestions for one-letter typos of nothing in particular
	MinSuggestInput = 2
)

// Log messages
const (
	LogMsgCommandReceived = "Command received"
	LogMsgCommandFailed   = "Command failed"
	LogMsgInputClosed     = "Input closed"
)

// ANSI control sequences
const (
	ansiReset       = "\033[0m"
	ansiClearScreen = "\033[2J\033[H"
)
