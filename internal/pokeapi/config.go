package pokeapi

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Default endpoints and tuning knobs. All of them can be overridden through
// environment variables; the public API needs no credentials.
const (
	DefaultBaseURL      = "https://pokeapi.co"
	DefaultCriesBaseURL = "https://raw.githubusercontent.com/PokeAPI/cries/main"
	DefaultTempDir      = "temp"

	DefaultTimeout         = 30 * time.Second
	DefaultPlaybackTimeout = 60 * time.Second
)

// Config holds PokeAPI connection and playback settings
type Config struct {
	// BaseURL is the REST API endpoint (e.g., https://pokeapi.co)
	BaseURL string

	// CriesBaseURL is the root of the cry audio mirror
	CriesBaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string

	// TempDir is where downloaded cry files are staged for playback
	TempDir string

	// PlaybackTimeout bounds how long a system audio player may run
	PlaybackTimeout time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first; variables already set in the
// environment win. Every setting has a default, so loading never fails.
func LoadConfig() *Config {
	_ = godotenv.Load()

	baseURL := os.Getenv("POKEAPI_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	criesBaseURL := os.Getenv("POKEAPI_CRIES_BASE_URL")
	if criesBaseURL == "" {
		criesBaseURL = DefaultCriesBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("POKEAPI_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	playbackTimeout := DefaultPlaybackTimeout
	if t := os.Getenv("POKEAPI_PLAYBACK_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			playbackTimeout = d
		}
	}

	tempDir := os.Getenv("POKEAPI_TEMP_DIR")
	if tempDir == "" {
		tempDir = DefaultTempDir
	}

	return &Config{
		BaseURL:         baseURL,
		CriesBaseURL:    criesBaseURL,
		Timeout:         timeout,
		UserAgent:       os.Getenv("POKEAPI_USER_AGENT"),
		TempDir:         tempDir,
		PlaybackTimeout: playbackTimeout,
	}
}
