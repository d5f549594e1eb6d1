package tools

// AllTools contains all tool specifications for the PokeAPI MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// DATA TOOLS
	// ==========================================================================
	{
		Name:     "get_pokemon_stats",
		Method:   "GetStats",
		Title:    "Get Pokemon Stats",
		Category: "data",
		Description: `Get a pokemon's base battle stats, types and base experience.

USE WHEN: User asks "how strong is X", "what are pikachu's stats", "how fast is X", "what type is X".

NOT FOR: Pictures (use get_pokemon_images). Not for the full profile with height/weight (use get_pokemon_info). Not for sounds (use get_pokemon_cry or play_pokemon_cry).

PARAMETERS:
- pokemon: Pokemon name or numeric Pokedex id (required)

RETURNS: Name, id, the six base stats (hp, attack, defense, special-attack, special-defense, speed), ordered type list, and base experience.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_images",
		Method:   "GetImages",
		Title:    "Get Pokemon Images",
		Category: "data",
		Description: `Get a pokemon's sprite and official artwork URLs.

USE WHEN: User asks "show me X", "what does pikachu look like", "get a picture of X", "shiny sprite of X".

NOT FOR: Stats or typing (use get_pokemon_stats). Not for the combined profile (use get_pokemon_info).

PARAMETERS:
- pokemon: Pokemon name or numeric Pokedex id (required)

RETURNS: Front/back sprite URLs in normal and shiny variants plus the official artwork render. Missing sprites come back as null.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_pokemon_info",
		Method:   "GetInfo",
		Title:    "Get Pokemon Info",
		Category: "data",
		Description: `Get a pokemon's complete profile: stats, types, size and images in one call.

USE WHEN: User asks "tell me about X", "give me everything on pikachu", "pokemon profile for X".

NOT FOR: Narrow lookups where one aspect suffices (use get_pokemon_stats or get_pokemon_images - smaller responses).

PARAMETERS:
- pokemon: Pokemon name or numeric Pokedex id (required)

RETURNS: Name, id, height, weight, base experience, the six base stats, types, and the full image URL set.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// AUDIO TOOLS
	// ==========================================================================
	{
		Name:     "get_pokemon_cry",
		Method:   "GetCry",
		Title:    "Get Pokemon Cry",
		Category: "audio",
		Description: `Get the URL of a pokemon's cry sound file, verified to exist.

USE WHEN: User asks "what does X sound like", "link to pikachu's cry", "get the cry audio URL".

NOT FOR: Actually playing the sound on this machine (use play_pokemon_cry).

PARAMETERS:
- pokemon: Pokemon name or numeric Pokedex id (required)

RETURNS: Name, id, the cry audio URL (OGG format), and its source.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "play_pokemon_cry",
		Method:   "PlayCry",
		Title:    "Play Pokemon Cry",
		Category: "audio",
		Description: `Download a pokemon's cry and play it through the system audio player.

USE WHEN: User says "play pikachu's cry", "let me hear X", "make the pokemon sound".

NOT FOR: Just getting the audio URL (use get_pokemon_cry - no download, no playback).

PARAMETERS:
- pokemon: Pokemon name or numeric Pokedex id (required)

RETURNS: Playback status and platform. If no audio player is available the file is kept on disk and the response includes manual playback instructions.

NOTE: Plays audio on the machine running this server and writes a temporary file there.`,
		ReadOnly:   false,
		Idempotent: false,
		OpenWorld:  true,
	},
}
