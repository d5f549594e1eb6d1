// Package audio downloads pokemon cry files and plays them through the
// host's native audio player.
package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
	"github.com/olgasafonova/pokeapi-mcp-server/metrics"
)

// Playback outcome statuses surfaced to callers.
const (
	StatusPlaybackComplete = "playback complete"
	StatusPlaybackFailed   = "downloaded, playback failed"
)

// PlayCryResult is the result of a play-cry invocation. Playback problems are
// reported inside a success payload; only fetch and download problems become
// errors.
type PlayCryResult struct {
	Name                   string `json:"name"`
	ID                     int    `json:"id"`
	CryURL                 string `json:"cry_url"`
	Status                 string `json:"status"`
	Platform               string `json:"platform"`
	FilePath               string `json:"file_path"`
	PlayerError            string `json:"player_error,omitempty"`
	ManualPlayInstructions string `json:"manual_play_instructions,omitempty"`
}

// CommandRunner abstracts external process execution so tests can stand in
// for the system audio player.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// Player downloads cry audio into a temp directory and hands it to the
// platform's player binary.
type Player struct {
	client  *pokeapi.Client
	tempDir string
	timeout time.Duration
	goos    string
	runner  CommandRunner
	logger  *slog.Logger
}

// PlayerOption configures the player.
type PlayerOption func(*Player)

// WithTempDir sets the directory cry files are staged in.
func WithTempDir(dir string) PlayerOption {
	return func(p *Player) {
		p.tempDir = dir
	}
}

// WithTimeout bounds how long a player process may run.
func WithTimeout(d time.Duration) PlayerOption {
	return func(p *Player) {
		p.timeout = d
	}
}

// WithGOOS overrides platform detection (useful for testing).
func WithGOOS(goos string) PlayerOption {
	return func(p *Player) {
		p.goos = goos
	}
}

// WithRunner replaces the process runner (useful for testing).
func WithRunner(r CommandRunner) PlayerOption {
	return func(p *Player) {
		p.runner = r
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) {
		p.logger = l
	}
}

// NewPlayer creates a player backed by the given API client.
func NewPlayer(client *pokeapi.Client, opts ...PlayerOption) *Player {
	p := &Player{
		client:  client,
		tempDir: pokeapi.DefaultTempDir,
		timeout: pokeapi.DefaultPlaybackTimeout,
		goos:    runtime.GOOS,
		runner:  execRunner{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PlayCry fetches the pokemon, downloads its cry into the temp directory and
// plays it synchronously. The file is removed only after the player exits
// cleanly; on playback failure it is kept so the user can play it by hand.
//
// Two concurrent calls for the same pokemon share a file path and may
// clobber each other; same-name playback is not concurrency-safe.
func (p *Player) PlayCry(ctx context.Context, args pokeapi.PokemonArgs) (PlayCryResult, error) {
	pokemon, err := p.client.GetPokemon(ctx, args.Pokemon)
	if err != nil {
		return PlayCryResult{}, err
	}

	path, err := p.download(ctx, pokemon)
	if err != nil {
		return PlayCryResult{}, err
	}

	result := PlayCryResult{
		Name:     pokemon.Name,
		ID:       pokemon.ID,
		CryURL:   p.client.CryURL(pokemon.ID),
		Platform: p.goos,
		FilePath: path,
	}

	if playErr := p.play(ctx, path); playErr != nil {
		status := "failed"
		if errors.Is(playErr, context.DeadlineExceeded) {
			status = "timeout"
		}
		metrics.RecordPlayback(p.goos, status)
		p.logger.Warn("Cry playback failed",
			"pokemon", pokemon.Name,
			"path", path,
			"error", playErr)

		result.Status = StatusPlaybackFailed
		result.PlayerError = playErr.Error()
		result.ManualPlayInstructions = manualInstructions(p.goos, path)
		return result, nil
	}

	metrics.RecordPlayback(p.goos, "complete")
	if err := os.Remove(path); err != nil {
		p.logger.Warn("Failed to remove cry file", "path", path, "error", err)
	}

	result.Status = StatusPlaybackComplete
	return result, nil
}

// download stages the cry audio on disk and returns the file path.
func (p *Player) download(ctx context.Context, pokemon *pokeapi.Pokemon) (string, error) {
	if err := os.MkdirAll(p.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	body, err := p.client.DownloadCry(ctx, pokemon.ID)
	if err != nil {
		metrics.RecordCryDownload(0, false)
		return "", err
	}
	defer body.Close()

	path := filepath.Join(p.tempDir, CryFileName(pokemon.Name))
	f, err := os.Create(path)
	if err != nil {
		metrics.RecordCryDownload(0, false)
		return "", fmt.Errorf("failed to create cry file: %w", err)
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		metrics.RecordCryDownload(0, false)
		return "", fmt.Errorf("failed to write cry file: %w", err)
	}

	metrics.RecordCryDownload(n, true)
	p.logger.Debug("Cry downloaded", "pokemon", pokemon.Name, "path", path, "bytes", n)
	return path, nil
}

// play runs the platform's player commands in order until one succeeds.
func (p *Player) play(ctx context.Context, path string) error {
	commands := playerCommands(p.goos, path)
	if len(commands) == 0 {
		return fmt.Errorf("no audio player configured for platform %s", p.goos)
	}

	var lastErr error
	for _, command := range commands {
		playCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.runner.Run(playCtx, command[0], command[1:]...)
		cancel()

		if err == nil {
			return nil
		}
		if errors.Is(playCtx.Err(), context.DeadlineExceeded) {
			// Expiry means the player ran but never exited; do not start
			// another one.
			return fmt.Errorf("player timed out after %s: %w", p.timeout, context.DeadlineExceeded)
		}
		lastErr = err
	}

	return lastErr
}

// CryFileName returns the staged file name for a pokemon's cry.
func CryFileName(name string) string {
	return name + "_cry.ogg"
}

// playerCommands returns the candidate player invocations for a platform.
// Linux gets a PulseAudio then ALSA fallback; unknown platforms get none.
func playerCommands(goos, path string) [][]string {
	switch goos {
	case "darwin":
		return [][]string{{"afplay", path}}
	case "windows":
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path)
		return [][]string{{"powershell", "-c", script}}
	case "linux":
		return [][]string{{"paplay", path}, {"aplay", path}}
	default:
		return nil
	}
}

// manualInstructions tells the user how to play the retained file themselves.
func manualInstructions(goos, path string) string {
	switch goos {
	case "darwin":
		return fmt.Sprintf("Play it manually with: afplay %s", path)
	case "windows":
		return fmt.Sprintf("Play it manually with: powershell -c \"(New-Object Media.SoundPlayer '%s').PlaySync()\"", path)
	case "linux":
		return fmt.Sprintf("Play it manually with: paplay %s (or aplay %s)", path, path)
	default:
		return fmt.Sprintf("Open %s with any OGG-capable audio player", path)
	}
}
