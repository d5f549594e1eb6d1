// PokeAPI MCP Server - A Model Context Protocol server for the PokeAPI
// Provides tools for looking up pokemon data and playing pokemon cries
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/audio"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/tools"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
)

const (
	ServerName    = "pokeapi-mcp-server"
	ServerVersion = "1.1.0" // Added play_pokemon_cry playback tool
)

const serverInstructions = `PokeAPI MCP Server provides tools for looking up pokemon data and playing pokemon cries.

Available tools:
- get_pokemon_stats: Get base stats, types, and base experience
- get_pokemon_images: Get sprite and artwork URLs
- get_pokemon_info: Get a combined profile (stats, types, size, images)
- get_pokemon_cry: Get the cry audio URL for a pokemon
- play_pokemon_cry: Download a cry and play it on the local machine

All tools take a single 'pokemon' argument: a pokemon name (e.g. pikachu)
or a numeric Pokedex id (e.g. 25). Names are matched case-insensitively.

Configure via environment variables:
- POKEAPI_BASE_URL: PokeAPI base URL (default https://pokeapi.co)
- POKEAPI_CRIES_BASE_URL: Base URL for cry audio files
- POKEAPI_TEMP_DIR: Directory for downloaded cry files (default temp)
- POKEAPI_PLAYBACK_TIMEOUT: Max wait for the audio player (default 60s)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Set up tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment
	config := pokeapi.LoadConfig()

	// Create PokeAPI client and audio player
	client := pokeapi.NewClientFromConfig(config, logger)
	defer client.Close()

	player := audio.NewPlayer(client,
		audio.WithTempDir(config.TempDir),
		audio.WithTimeout(config.PlaybackTimeout),
		audio.WithLogger(logger),
	)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, player, logger)
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting PokeAPI MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
