package pokeapi

// Pokemon is the entity record returned by the pokemon endpoint. Only the
// fields this server reshapes are mapped; the API returns far more.
type Pokemon struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Height         int         `json:"height"`
	Weight         int         `json:"weight"`
	BaseExperience int         `json:"base_experience"`
	Stats          []StatEntry `json:"stats"`
	Types          []TypeEntry `json:"types"`
	Sprites        Sprites     `json:"sprites"`
}

// StatEntry is one (stat, base value) pair in API order.
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// TypeEntry is one slotted type assignment.
type TypeEntry struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// NamedResource is the API's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sprites holds the raw image URL fields. Every field is nullable upstream.
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	FrontShiny   *string      `json:"front_shiny"`
	BackDefault  *string      `json:"back_default"`
	BackShiny    *string      `json:"back_shiny"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites nests the alternate art collections.
type OtherSprites struct {
	OfficialArtwork ArtworkSprites `json:"official-artwork"`
}

// ArtworkSprites holds the official artwork renders.
type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
}
