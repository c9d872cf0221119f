package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"personaje/internal/engine"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Movement.MoveForce != 15 || cfg.Movement.MaxSpeed != 15 {
		t.Errorf("movement defaults changed: %+v", cfg.Movement)
	}
	if cfg.Jump.Force != 5 || cfg.Jump.GroundCheckRadius != 0.5 {
		t.Errorf("jump defaults changed: %+v", cfg.Jump)
	}
	if cfg.Pickups.PowerUpJumpForce != 10 || cfg.Pickups.PowerUpDuration != 5 || cfg.Pickups.RespawnDelay != 30 {
		t.Errorf("pickup defaults changed: %+v", cfg.Pickups)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.yaml", `
movement:
  policy: velocity
  max_speed: 8
jump:
  ground_policy: latch
win:
  target_score: 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Movement.Policy != MovementVelocity || cfg.Movement.MaxSpeed != 8 {
		t.Errorf("movement not loaded: %+v", cfg.Movement)
	}
	if cfg.Movement.MoveForce != 15 {
		t.Errorf("unset move_force should keep default 15, got %v", cfg.Movement.MoveForce)
	}
	if cfg.Jump.GroundPolicy != GroundLatch || cfg.Win.TargetScore != 15 {
		t.Errorf("jump/win not loaded: %+v %+v", cfg.Jump, cfg.Win)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"policy", "movement:\n  policy: teleport\n"},
		{"max speed", "movement:\n  max_speed: 0\n"},
		{"ground policy", "jump:\n  ground_policy: raycast\n"},
		{"radius", "jump:\n  ground_check_radius: -1\n"},
		{"layers", "jump:\n  ground_layers: [lava]\n"},
		{"duration", "pickups:\n  power_up_duration: 0\n"},
		{"fixed step", "simulation:\n  fixed_step: 0\n"},
		{"scenes", "scenes: []\n"},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		path := writeFile(t, dir, "bad.yaml", tt.yaml)
		_, err := Load(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestGroundMask(t *testing.T) {
	cfg := Default()
	cfg.Jump.GroundLayers = []string{"ground", "default"}
	mask, err := cfg.GroundMask()
	if err != nil {
		t.Fatal(err)
	}
	if mask != engine.LayerGround|engine.LayerDefault {
		t.Errorf("unexpected mask %b", mask)
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.yaml", "win:\n  target_score: 1\n")

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "game.yaml", "win:\n  target_score: 2\n")

	select {
	case got := <-w.Events:
		if !SameFile(got, path) {
			t.Errorf("expected event for %s, got %s", path, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the config write")
	}
}

func TestWatcherReportsBurstAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.yaml", "win:\n  target_score: 1\n")

	w, err := WatchFile(path)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	// An in-place save that lands in two writes inside the debounce window.
	writeFile(t, dir, "game.yaml", "win:\n  target_")
	time.Sleep(DebounceDelay / 4)
	writeFile(t, dir, "game.yaml", "win:\n  target_score: 3\n")

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the config writes")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("event arrived before the final write: %v", err)
	}
	if cfg.Win.TargetScore != 3 {
		t.Errorf("expected the final contents, got target %d", cfg.Win.TargetScore)
	}

	select {
	case got := <-w.Events:
		t.Errorf("burst reported twice, extra event for %s", got)
	case <-time.After(3 * DebounceDelay):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
