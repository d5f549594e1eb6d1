package audio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apierrors "github.com/olgasafonova/pokeapi-mcp-server/internal/errors"
	"github.com/olgasafonova/pokeapi-mcp-server/internal/pokeapi"
)

const dittoJSON = `{
	"id": 132,
	"name": "ditto",
	"height": 3,
	"weight": 40,
	"base_experience": 101,
	"stats": [],
	"types": [],
	"sprites": {"other": {"official-artwork": {}}}
}`

var cryBytes = []byte("OggS\x00fake-cry-payload")

// apiServer serves the ditto fixture and 404s everything else.
func apiServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon/ditto", "/api/v2/pokemon/132":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(dittoJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// cryServer serves the cry payload with a fixed status.
func cryServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write(cryBytes)
		}
	}))
}

// fakeRunner records invocations and fails the commands it is told to.
type fakeRunner struct {
	failOn map[string]error
	calls  [][]string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err, ok := f.failOn[name]; ok {
		return err
	}
	return nil
}

// blockingRunner simulates a player process that never exits.
type blockingRunner struct{}

func (blockingRunner) Run(ctx context.Context, name string, args ...string) error {
	<-ctx.Done()
	return ctx.Err()
}

func newTestPlayer(t *testing.T, api, cries *httptest.Server, opts ...PlayerOption) (*Player, string) {
	t.Helper()
	client := pokeapi.NewClient(
		pokeapi.WithBaseURL(api.URL),
		pokeapi.WithCriesBaseURL(cries.URL),
	)
	t.Cleanup(client.Close)

	tempDir := filepath.Join(t.TempDir(), "cries")
	base := []PlayerOption{WithTempDir(tempDir), WithGOOS("linux")}
	player := NewPlayer(client, append(base, opts...)...)
	return player, tempDir
}

// =============================================================================
// PlayCry Tests
// =============================================================================

func TestPlayCry_Success(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	runner := &fakeRunner{}
	player, tempDir := newTestPlayer(t, api, cries, WithRunner(runner))

	result, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("PlayCry failed: %v", err)
	}

	if result.Status != StatusPlaybackComplete {
		t.Errorf("Status = %q, want %q", result.Status, StatusPlaybackComplete)
	}
	if result.Name != "ditto" || result.ID != 132 {
		t.Errorf("Identity = (%q, %d), want (ditto, 132)", result.Name, result.ID)
	}
	if result.Platform != "linux" {
		t.Errorf("Platform = %q, want linux", result.Platform)
	}
	if result.PlayerError != "" {
		t.Errorf("PlayerError = %q, want empty on success", result.PlayerError)
	}
	if result.ManualPlayInstructions != "" {
		t.Errorf("ManualPlayInstructions = %q, want empty on success", result.ManualPlayInstructions)
	}

	wantPath := filepath.Join(tempDir, "ditto_cry.ogg")
	if result.FilePath != wantPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, wantPath)
	}
	if _, err := os.Stat(wantPath); !os.IsNotExist(err) {
		t.Error("Cry file should be deleted after successful playback")
	}

	if len(runner.calls) != 1 {
		t.Fatalf("Player invoked %d times, want 1", len(runner.calls))
	}
	if runner.calls[0][0] != "paplay" {
		t.Errorf("Player command = %q, want paplay", runner.calls[0][0])
	}
	if runner.calls[0][1] != wantPath {
		t.Errorf("Player arg = %q, want the staged file path", runner.calls[0][1])
	}
}

func TestPlayCry_PlayerFails_KeepsFile(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	runner := &fakeRunner{failOn: map[string]error{
		"paplay": errors.New(`exec: "paplay": executable file not found in $PATH`),
		"aplay":  errors.New(`exec: "aplay": executable file not found in $PATH`),
	}}
	player, tempDir := newTestPlayer(t, api, cries, WithRunner(runner))

	result, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("Playback failure must not surface as an error, got: %v", err)
	}

	if result.Status != StatusPlaybackFailed {
		t.Errorf("Status = %q, want %q", result.Status, StatusPlaybackFailed)
	}
	if result.PlayerError == "" {
		t.Error("PlayerError should carry the underlying player failure")
	}
	if result.ManualPlayInstructions == "" {
		t.Error("ManualPlayInstructions should not be empty on playback failure")
	}
	if !strings.Contains(result.ManualPlayInstructions, result.FilePath) {
		t.Errorf("Instructions %q should reference the retained file", result.ManualPlayInstructions)
	}

	wantPath := filepath.Join(tempDir, "ditto_cry.ogg")
	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("Cry file should be retained for manual playback: %v", err)
	}
	if string(data) != string(cryBytes) {
		t.Errorf("Retained file holds %d bytes, want the full %d byte payload", len(data), len(cryBytes))
	}
}

func TestPlayCry_PlayerTimeout(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	player, tempDir := newTestPlayer(t, api, cries,
		WithRunner(blockingRunner{}),
		WithTimeout(50*time.Millisecond))

	result, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("Timeout must not surface as an error, got: %v", err)
	}

	if result.Status != StatusPlaybackFailed {
		t.Errorf("Status = %q, want %q", result.Status, StatusPlaybackFailed)
	}
	if !strings.Contains(result.PlayerError, "timed out") {
		t.Errorf("PlayerError = %q, want a timeout cause", result.PlayerError)
	}
	if _, statErr := os.Stat(filepath.Join(tempDir, "ditto_cry.ogg")); statErr != nil {
		t.Errorf("Cry file should be retained after a timeout: %v", statErr)
	}
}

func TestPlayCry_LinuxFallback(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	runner := &fakeRunner{failOn: map[string]error{
		"paplay": errors.New("pulse: connection refused"),
	}}
	player, _ := newTestPlayer(t, api, cries, WithRunner(runner))

	result, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("PlayCry failed: %v", err)
	}

	if result.Status != StatusPlaybackComplete {
		t.Errorf("Status = %q, want success via aplay fallback", result.Status)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("Player invoked %d times, want paplay then aplay", len(runner.calls))
	}
	if runner.calls[0][0] != "paplay" || runner.calls[1][0] != "aplay" {
		t.Errorf("Fallback order = [%s, %s], want [paplay, aplay]", runner.calls[0][0], runner.calls[1][0])
	}
}

func TestPlayCry_UnsupportedPlatform(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	runner := &fakeRunner{}
	player, tempDir := newTestPlayer(t, api, cries, WithRunner(runner), WithGOOS("plan9"))

	result, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("Unsupported platform must not surface as an error, got: %v", err)
	}

	if result.Status != StatusPlaybackFailed {
		t.Errorf("Status = %q, want %q", result.Status, StatusPlaybackFailed)
	}
	if len(runner.calls) != 0 {
		t.Errorf("No player should run on an unsupported platform, got %d calls", len(runner.calls))
	}
	if result.ManualPlayInstructions == "" {
		t.Error("ManualPlayInstructions should still tell the user what to do")
	}
	if _, statErr := os.Stat(filepath.Join(tempDir, "ditto_cry.ogg")); statErr != nil {
		t.Errorf("Cry file should be retained: %v", statErr)
	}
}

func TestPlayCry_UnknownPokemon(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	player, tempDir := newTestPlayer(t, api, cries, WithRunner(&fakeRunner{}))

	_, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "missingno"})
	if err == nil {
		t.Fatal("Expected error for unknown pokemon")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(tempDir); !os.IsNotExist(statErr) {
		t.Error("Temp directory should not be created when the fetch fails")
	}
}

func TestPlayCry_DownloadFails(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusNotFound)
	defer cries.Close()

	player, tempDir := newTestPlayer(t, api, cries, WithRunner(&fakeRunner{}))

	_, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err == nil {
		t.Fatal("Expected error when the cry download fails")
	}
	if !apierrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}

	entries, readErr := os.ReadDir(tempDir)
	if readErr != nil {
		t.Fatalf("ReadDir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("No file should be staged for a failed download, found %d entries", len(entries))
	}
}

func TestPlayCry_SameNameReusesPath(t *testing.T) {
	api := apiServer(t)
	defer api.Close()
	cries := cryServer(t, http.StatusOK)
	defer cries.Close()

	runner := &fakeRunner{}
	player, _ := newTestPlayer(t, api, cries, WithRunner(runner))

	first, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("First PlayCry failed: %v", err)
	}
	second, err := player.PlayCry(context.Background(), pokeapi.PokemonArgs{Pokemon: "ditto"})
	if err != nil {
		t.Fatalf("Second PlayCry failed: %v", err)
	}

	// The file name is derived from the pokemon name alone, so repeated calls
	// share one path. Two overlapping calls for the same pokemon would race
	// on it; that is a known limitation, and race freedom is not guaranteed.
	if first.FilePath != second.FilePath {
		t.Errorf("Paths differ across calls: %q vs %q", first.FilePath, second.FilePath)
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestCryFileName(t *testing.T) {
	if got := CryFileName("pikachu"); got != "pikachu_cry.ogg" {
		t.Errorf("CryFileName(pikachu) = %q, want pikachu_cry.ogg", got)
	}
	if got := CryFileName("mr-mime"); got != "mr-mime_cry.ogg" {
		t.Errorf("CryFileName(mr-mime) = %q, want mr-mime_cry.ogg", got)
	}
}

func TestPlayerCommands(t *testing.T) {
	tests := []struct {
		goos     string
		wantCmds []string
	}{
		{"darwin", []string{"afplay"}},
		{"windows", []string{"powershell"}},
		{"linux", []string{"paplay", "aplay"}},
		{"plan9", nil},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			commands := playerCommands(tt.goos, "temp/pikachu_cry.ogg")
			if len(commands) != len(tt.wantCmds) {
				t.Fatalf("Got %d commands, want %d", len(commands), len(tt.wantCmds))
			}
			for i, want := range tt.wantCmds {
				if commands[i][0] != want {
					t.Errorf("Command %d = %q, want %q", i, commands[i][0], want)
				}
			}
		})
	}
}

func TestManualInstructions(t *testing.T) {
	const path = "temp/pikachu_cry.ogg"
	for _, goos := range []string{"darwin", "windows", "linux", "plan9"} {
		t.Run(goos, func(t *testing.T) {
			got := manualInstructions(goos, path)
			if got == "" {
				t.Fatal("Instructions should never be empty")
			}
			if !strings.Contains(got, path) {
				t.Errorf("Instructions %q should reference the file path", got)
			}
		})
	}
}
