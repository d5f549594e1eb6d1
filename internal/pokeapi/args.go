package pokeapi

// PokemonArgs contains the single identifier parameter shared by every
// pokemon tool.
type PokemonArgs struct {
	Pokemon string `json:"pokemon" jsonschema:"required" jsonschema_description:"Pokemon name (e.g. pikachu) or numeric Pokedex id (e.g. 25)"`
}

// StatsResult is the result of a base stat lookup
type StatsResult struct {
	Name           string         `json:"name"`
	ID             int            `json:"id"`
	Stats          map[string]int `json:"stats"`
	Types          []string       `json:"types"`
	BaseExperience int            `json:"base_experience"`
}

// SpriteSet is the flattened image URL set for MCP responses. Fields stay
// nullable so missing upstream sprites survive as JSON null.
type SpriteSet struct {
	FrontDefault    *string `json:"front_default"`
	FrontShiny      *string `json:"front_shiny"`
	BackDefault     *string `json:"back_default"`
	BackShiny       *string `json:"back_shiny"`
	OfficialArtwork *string `json:"official_artwork"`
}

// ImagesResult is the result of a sprite lookup
type ImagesResult struct {
	Name    string    `json:"name"`
	ID      int       `json:"id"`
	Sprites SpriteSet `json:"sprites"`
}

// InfoResult is the combined profile view: stats, types and images plus
// physical dimensions.
type InfoResult struct {
	Name           string         `json:"name"`
	ID             int            `json:"id"`
	Height         int            `json:"height"`
	Weight         int            `json:"weight"`
	BaseExperience int            `json:"base_experience"`
	Stats          map[string]int `json:"stats"`
	Types          []string       `json:"types"`
	Images         SpriteSet      `json:"images"`
}

// CryResult is the result of a cry URL lookup
type CryResult struct {
	Name   string `json:"name"`
	ID     int    `json:"id"`
	CryURL string `json:"cry_url"`
	Format string `json:"format"`
	Source string `json:"source"`
}
