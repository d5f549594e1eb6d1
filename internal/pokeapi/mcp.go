package pokeapi

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// statSlots is the fixed set of stat names exposed to callers. Stats the API
// returns under any other name are dropped.
var statSlots = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// GetStatsMCP is the MCP wrapper for base stats, types and base experience
func (c *Client) GetStatsMCP(ctx context.Context, args PokemonArgs) (StatsResult, error) {
	pokemon, err := c.GetPokemon(ctx, args.Pokemon)
	if err != nil {
		return StatsResult{}, err
	}

	return StatsResult{
		Name:           pokemon.Name,
		ID:             pokemon.ID,
		Stats:          buildStats(pokemon.Stats),
		Types:          buildTypes(pokemon.Types),
		BaseExperience: pokemon.BaseExperience,
	}, nil
}

// GetImagesMCP is the MCP wrapper for sprite and artwork URLs
func (c *Client) GetImagesMCP(ctx context.Context, args PokemonArgs) (ImagesResult, error) {
	pokemon, err := c.GetPokemon(ctx, args.Pokemon)
	if err != nil {
		return ImagesResult{}, err
	}

	return ImagesResult{
		Name:    pokemon.Name,
		ID:      pokemon.ID,
		Sprites: buildSprites(pokemon.Sprites),
	}, nil
}

// GetInfoMCP is the MCP wrapper for the combined profile view
func (c *Client) GetInfoMCP(ctx context.Context, args PokemonArgs) (InfoResult, error) {
	pokemon, err := c.GetPokemon(ctx, args.Pokemon)
	if err != nil {
		return InfoResult{}, err
	}

	return InfoResult{
		Name:           pokemon.Name,
		ID:             pokemon.ID,
		Height:         pokemon.Height,
		Weight:         pokemon.Weight,
		BaseExperience: pokemon.BaseExperience,
		Stats:          buildStats(pokemon.Stats),
		Types:          buildTypes(pokemon.Types),
		Images:         buildSprites(pokemon.Sprites),
	}, nil
}

// GetCryMCP is the MCP wrapper for the cry audio URL lookup
func (c *Client) GetCryMCP(ctx context.Context, args PokemonArgs) (CryResult, error) {
	pokemon, err := c.GetPokemon(ctx, args.Pokemon)
	if err != nil {
		return CryResult{}, err
	}

	if err := c.CheckCry(ctx, pokemon.ID); err != nil {
		return CryResult{}, err
	}

	return CryResult{
		Name:   pokemon.Name,
		ID:     pokemon.ID,
		CryURL: c.CryURL(pokemon.ID),
		Format: CryFormat,
		Source: CrySource,
	}, nil
}

// buildStats fills the six stat slots from API entries. Every slot is present
// in the output; slots the API did not return stay zero.
func buildStats(entries []StatEntry) map[string]int {
	stats := make(map[string]int, len(statSlots))
	for _, name := range statSlots {
		stats[name] = 0
	}
	for _, entry := range entries {
		if _, ok := stats[entry.Stat.Name]; ok {
			stats[entry.Stat.Name] = entry.BaseStat
		}
	}
	return stats
}

// buildTypes extracts type names in API order.
func buildTypes(entries []TypeEntry) []string {
	types := make([]string, 0, len(entries))
	for _, entry := range entries {
		types = append(types, entry.Type.Name)
	}
	return types
}

// buildSprites flattens the nested sprite layout into the public shape.
func buildSprites(s Sprites) SpriteSet {
	return SpriteSet{
		FrontDefault:    s.FrontDefault,
		FrontShiny:      s.FrontShiny,
		BackDefault:     s.BackDefault,
		BackShiny:       s.BackShiny,
		OfficialArtwork: s.Other.OfficialArtwork.FrontDefault,
	}
}
