package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/audio"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
	"github.com/olgasafonova/pokeapi-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *pokeapi.Client
	player *audio.Player
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *pokeapi.Client, player *audio.Player, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		player: player,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server. The routing table is
// assembled once here at startup and never changes afterwards.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "GetStats":
		register(h, server, tool, spec, h.client.GetStatsMCP)
	case "GetImages":
		register(h, server, tool, spec, h.client.GetImagesMCP)
	case "GetInfo":
		register(h, server, tool, spec, h.client.GetInfoMCP)
	case "GetCry":
		register(h, server, tool, spec, h.client.GetCryMCP)
	case "PlayCry":
		register(h, server, tool, spec, h.player.PlayCry)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the handler method with panic recovery, metrics, tracing, and
// logging. Failures inside the method come back as error results; only the
// transport-level argument and name checks reject calls before this point.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case pokeapi.PokemonArgs:
		attrs = append(attrs, "pokemon", a.Pokemon)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case pokeapi.StatsResult:
		attrs = append(attrs, "id", r.ID, "types", len(r.Types))
	case pokeapi.ImagesResult:
		attrs = append(attrs, "id", r.ID)
	case pokeapi.InfoResult:
		attrs = append(attrs, "id", r.ID, "types", len(r.Types))
	case pokeapi.CryResult:
		attrs = append(attrs, "id", r.ID, "cry_url", r.CryURL)
	case audio.PlayCryResult:
		attrs = append(attrs, "id", r.ID, "status", r.Status, "platform", r.Platform)
	}

	h.logger.Info("Tool executed", attrs...)
}
