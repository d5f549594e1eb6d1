package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
)

const (
	// pokemonEndpoint is the REST path for single-entity lookups, keyed by
	// lowercase name or decimal id.
	pokemonEndpoint = "/api/v2/pokemon/"

	// cryPathTemplate locates an OGG cry on the audio mirror by pokemon id.
	cryPathTemplate = "%s/cries/pokemon/latest/%d.ogg"

	// CrySource identifies where cry audio is served from.
	CrySource = "github.com/PokeAPI/cries"

	// CryFormat is the audio container used by the cry mirror.
	CryFormat = "ogg"
)

// Client provides access to the PokeAPI REST endpoint and its cry audio mirror
type Client struct {
	*base.Client

	baseURL      string
	criesBaseURL string
	userAgent    string
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom API base URL (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithCriesBaseURL sets a custom cry mirror base URL (useful for testing).
func WithCriesBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.criesBaseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = l
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// NewClient creates a new PokeAPI client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		Client:       base.NewClient(),
		baseURL:      DefaultBaseURL,
		criesBaseURL: DefaultCriesBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromConfig creates a client from loaded configuration.
func NewClientFromConfig(cfg *Config, logger *slog.Logger) *Client {
	opts := []ClientOption{
		WithBaseURL(cfg.BaseURL),
		WithCriesBaseURL(cfg.CriesBaseURL),
		WithTimeout(cfg.Timeout),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	return NewClient(opts...)
}

// GetPokemon fetches a pokemon record by name or numeric id. The identifier is
// lowercased before the request; the API treats names and ids uniformly as the
// final path segment.
func (c *Client) GetPokemon(ctx context.Context, rawIdentifier string) (*Pokemon, error) {
	normalized, err := ValidateIdentifier(rawIdentifier)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	errorCode := ""
	defer func() {
		metrics.RecordAPICall("get_pokemon", time.Since(start).Seconds(), errorCode == "", errorCode)
	}()

	reqURL := c.baseURL + pokemonEndpoint + normalized
	body, statusCode, err := c.DoRequest(ctx, base.RequestConfig{URL: reqURL, UserAgent: c.userAgent})
	if err != nil {
		errorCode = "transport"
		return nil, fmt.Errorf("failed to fetch pokemon data: %w", err)
	}

	if statusCode == http.StatusNotFound {
		errorCode = "not_found"
		return nil, apierrors.NewNotFoundError(rawIdentifier)
	}

	if statusCode != http.StatusOK {
		errorCode = strconv.Itoa(statusCode)
		return nil, fmt.Errorf("failed to fetch pokemon data: unexpected status %d: %s",
			statusCode, base.Truncate(string(body), 200))
	}

	var pokemon Pokemon
	if err := json.Unmarshal(body, &pokemon); err != nil {
		errorCode = "parse"
		return nil, fmt.Errorf("failed to fetch pokemon data: %w", err)
	}

	return &pokemon, nil
}

// CryURL returns the deterministic cry audio URL for a pokemon id.
func (c *Client) CryURL(id int) string {
	return fmt.Sprintf(cryPathTemplate, c.criesBaseURL, id)
}

// CheckCry confirms via a HEAD request that the cry asset for a pokemon id is
// reachable. Any status other than 200 counts as the cry not existing.
func (c *Client) CheckCry(ctx context.Context, id int) error {
	start := time.Now()
	errorCode := ""
	defer func() {
		metrics.RecordAPICall("check_cry", time.Since(start).Seconds(), errorCode == "", errorCode)
	}()

	_, statusCode, err := c.DoRequest(ctx, base.RequestConfig{
		URL:       c.CryURL(id),
		Method:    http.MethodHead,
		UserAgent: c.userAgent,
	})
	if err != nil {
		errorCode = "transport"
		return fmt.Errorf("failed to check cry availability: %w", err)
	}

	if statusCode != http.StatusOK {
		errorCode = "not_found"
		return apierrors.NewCryNotFoundError(strconv.Itoa(id))
	}

	return nil
}

// DownloadCry streams the cry audio for a pokemon id. The caller owns the
// returned reader and must close it.
func (c *Client) DownloadCry(ctx context.Context, id int) (io.ReadCloser, error) {
	body, statusCode, err := c.DoStream(ctx, base.RequestConfig{URL: c.CryURL(id), UserAgent: c.userAgent})
	if err != nil {
		return nil, fmt.Errorf("failed to download cry: %w", err)
	}

	if statusCode != http.StatusOK {
		body.Close()
		return nil, apierrors.NewCryNotFoundError(strconv.Itoa(id))
	}

	return body, nil
}
