package naming

// Display names for species the player has not identified yet
const (
	UnidentifiedSeed   = "Unidentified seed"
	UnidentifiedPlant  = "Unidentified plant"
	UnidentifiedFlower = "Unidentified flower"
)

// UnknownSpeciesFormat names an id the catalog does not know
const UnknownSpeciesFormat = "Unknown species (%s)"
