// Command benchmark measures PokeAPI latency for the lookup and cry paths.
// It talks to the live API, so results depend on network conditions.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"golang.org/x/sync/errgroup"
)

var benchmarkPokemon = []string{"bulbasaur", "charmander", "squirtle", "pikachu", "eevee"}

// measureLookupLatency times individual pokemon lookups
func measureLookupLatency(ctx context.Context, client *pokeapi.Client) {
	fmt.Println("=== Lookup Latency ===")
	fmt.Println()

	fmt.Println("1. Individual GetPokemon calls (no caching, every call hits the network):")

	var total time.Duration
	for _, name := range benchmarkPokemon {
		start := time.Now()
		p, err := client.GetPokemon(ctx, name)
		if err != nil {
			fmt.Printf("   Error fetching %s: %v\n", name, err)
			return
		}
		elapsed := time.Since(start)
		total += elapsed
		fmt.Printf("   %-12s (id %3d): %v\n", p.Name, p.ID, elapsed)
	}

	fmt.Printf("   Average: %v\n", total/time.Duration(len(benchmarkPokemon)))
	fmt.Println()
}

// measureParallelLookups compares sequential and concurrent lookups
func measureParallelLookups(ctx context.Context, client *pokeapi.Client) {
	fmt.Println("=== Sequential vs Parallel Lookups ===")
	fmt.Println()

	// Sequential baseline
	fmt.Printf("2. Sequential lookups (%d pokemon):\n", len(benchmarkPokemon))
	start := time.Now()
	for _, name := range benchmarkPokemon {
		if _, err := client.GetPokemon(ctx, name); err != nil {
			fmt.Printf("   Error: %v\n", err)
			return
		}
	}
	sequentialTime := time.Since(start)
	fmt.Printf("   Sequential time: %v\n", sequentialTime)
	fmt.Println()

	// Concurrent with errgroup
	fmt.Printf("3. Parallel lookups (%d pokemon, 4 workers):\n", len(benchmarkPokemon))
	start = time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, name := range benchmarkPokemon {
		g.Go(func() error {
			_, err := client.GetPokemon(gctx, name)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	parallelTime := time.Since(start)
	fmt.Printf("   Parallel time: %v\n", parallelTime)
	fmt.Printf("   Speedup: %.1fx faster\n", float64(sequentialTime)/float64(parallelTime))
	fmt.Println()
}

// measureCryPath times the cry availability check against the full lookup
func measureCryPath(ctx context.Context, client *pokeapi.Client) {
	fmt.Println("=== Cry Path ===")
	fmt.Println()

	fmt.Println("4. Cry availability (lookup + HEAD check):")

	start := time.Now()
	p, err := client.GetPokemon(ctx, "pikachu")
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	lookupTime := time.Since(start)

	start = time.Now()
	if err := client.CheckCry(ctx, p.ID); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	checkTime := time.Since(start)

	fmt.Printf("   Lookup:     %v\n", lookupTime)
	fmt.Printf("   HEAD check: %v\n", checkTime)
	fmt.Printf("   Cry URL:    %s\n", client.CryURL(p.ID))
	fmt.Println()
}

func main() {
	fmt.Println("PokeAPI MCP Server - Performance Measurements")
	fmt.Println("==============================================")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := pokeapi.NewClientFromConfig(pokeapi.LoadConfig(), logger)
	defer client.Close()
	ctx := context.Background()

	measureLookupLatency(ctx, client)
	measureParallelLookups(ctx, client)
	measureCryPath(ctx, client)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key characteristics:")
	fmt.Println("• Every tool call fetches fresh data; latency tracks upstream API health")
	fmt.Println("• Independent lookups parallelize well (connection reuse via shared client)")
	fmt.Println("• Cry availability is a cheap HEAD request on top of the base lookup")
}
