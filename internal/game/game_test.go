package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"personaje/internal/components"
	"personaje/internal/config"
	"personaje/internal/engine"
	"personaje/internal/input"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const levelPath = "../../assets/scenes/level1.json"

func newGame(t *testing.T) (*Game, *observer.ObservedLogs) {
	t.Helper()
	cfg := config.Default()
	cfg.Scenes = []string{levelPath}
	core, logs := observer.New(zap.InfoLevel)
	g := New(cfg, zap.New(core))
	if err := g.LoadScene(0); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g, logs
}

func TestHeadlessRunCollectsFirstCoin(t *testing.T) {
	g, logs := newGame(t)

	script, err := input.LoadScript("../../assets/input/first-coin.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RunHeadless(script, 1000); err != nil {
		t.Fatal(err)
	}

	if g.Score() != 5 || g.Won() {
		t.Errorf("expected score 5 without a win, got %d (won=%v)", g.Score(), g.Won())
	}
	if g.Player().TargetScore() != 15 {
		t.Errorf("target should be the three coins, got %d", g.Player().TargetScore())
	}
	if coin := g.World.Scene.FindByName("Coin1"); coin.Active {
		t.Error("Coin1 should have been consumed")
	}
	if logs.FilterMessage("headless run finished").Len() != 1 {
		t.Error("missing run summary log")
	}
}

func TestRestartKeyReloadsScene(t *testing.T) {
	g, _ := newGame(t)
	step := g.Config.Simulation.FixedStep

	g.RunHeadless(input.NewScripted(input.Step{Frames: 60, Vertical: 1}), 60)
	if g.Score() != 5 {
		t.Fatalf("setup: expected score 5, got %d", g.Score())
	}

	if err := g.Tick(step, input.State{Restart: true}); err != nil {
		t.Fatal(err)
	}
	if g.Score() != 0 || g.World.Now() != 0 {
		t.Errorf("restart should reset score and clock, got score %d at t=%f", g.Score(), g.World.Now())
	}
	if !g.World.Scene.FindByName("Coin1").Active {
		t.Error("restart should bring back consumed coins")
	}

	// Still holding R does not reload again.
	g.Tick(step, input.State{Restart: true})
	if g.World.Now() == 0 {
		t.Error("held restart key reloaded the scene a second time")
	}
}

func TestRestartButtonReloadsScene(t *testing.T) {
	g, _ := newGame(t)
	step := g.Config.Simulation.FixedStep
	g.World.Pause()

	btn := engine.GetComponent[*components.UIButton](g.World.Scene.FindByName("RestartButton"))
	if btn == nil {
		t.Fatal("level has no restart button")
	}
	btn.Click()

	if err := g.Tick(step, input.State{}); err != nil {
		t.Fatal(err)
	}
	if g.World.Paused() {
		t.Error("reloaded scene should not be paused")
	}
	if panel := engine.GetComponent[*components.UIPanel](g.World.Scene.FindByName("WinPanel")); panel.Visible() {
		t.Error("win panel should be hidden after a restart")
	}
}

func TestLoadSceneErrors(t *testing.T) {
	g, _ := newGame(t)

	if err := g.LoadScene(3); !errors.Is(err, ErrNoScene) {
		t.Errorf("expected ErrNoScene, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`{"objects": [{"name": "Lonely"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	g.Config.Scenes = append(g.Config.Scenes, empty)
	if err := g.LoadScene(1); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("expected ErrNoPlayer, got %v", err)
	}
}

func TestTickCapsStepsPerFrame(t *testing.T) {
	g, _ := newGame(t)
	step := g.Config.Simulation.FixedStep

	// A half-second stall runs at most MaxStepsPerFrame steps and drops the rest.
	g.Tick(0.5, input.State{})
	want := float64(step) * float64(g.Config.Simulation.MaxStepsPerFrame)
	if got := g.World.Now(); got < want-1e-6 || got > want+1e-6 {
		t.Errorf("expected t=%f after a stall, got %f", want, got)
	}
	if g.accumulator != 0 {
		t.Errorf("backlog should be dropped, accumulator=%f", g.accumulator)
	}
}

func TestTickPausedDoesNotStep(t *testing.T) {
	g, _ := newGame(t)
	g.World.Pause()
	for range 10 {
		g.Tick(g.Config.Simulation.FixedStep, input.State{Vertical: 1})
	}
	if g.World.Now() != 0 {
		t.Errorf("paused game advanced to t=%f", g.World.Now())
	}
}

func TestDebugToggleOnPress(t *testing.T) {
	g, _ := newGame(t)
	step := g.Config.Simulation.FixedStep

	g.Tick(step, input.State{Debug: true})
	g.Tick(step, input.State{Debug: true})
	if !g.DebugMode || !g.World.Renderer.Debug {
		t.Error("one press should turn debug view on")
	}
	g.Tick(step, input.State{})
	g.Tick(step, input.State{Debug: true})
	if g.DebugMode {
		t.Error("second press should turn debug view off")
	}
}

func TestApplyConfigRetunesRunningScene(t *testing.T) {
	g, _ := newGame(t)

	cfg := g.Config
	cfg.Jump.Force = 7
	cfg.Pickups.RespawnDelay = 0
	cfg.Camera.Distance = 12
	if err := g.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}

	if g.Player().JumpForce() != 7 {
		t.Errorf("jump force not applied, got %v", g.Player().JumpForce())
	}
	cam := engine.GetComponent[*components.OrbitCamera](g.World.Scene.FindByName("MainCamera"))
	if cam.Distance != 12 {
		t.Errorf("camera distance not applied, got %v", cam.Distance)
	}

	coin := g.World.Scene.FindByName("Coin2")
	g.World.Consume(coin)
	g.Tick(g.Config.Simulation.FixedStep, input.State{})
	if g.World.Scene.FindByUID(coin.UID) != nil {
		t.Error("respawn delay 0 should remove consumed pickups")
	}
}

func TestReloadConfigKeepsOldValuesOnError(t *testing.T) {
	g, logs := newGame(t)
	path := filepath.Join(t.TempDir(), "personaje.yaml")
	write := func(body string) {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("jump:\n  force: 6\nscenes: [" + levelPath + "]\n")
	if err := g.WatchConfig(path); err != nil {
		t.Fatal(err)
	}
	g.ReloadConfig()
	if g.Player().JumpForce() != 6 {
		t.Fatalf("expected reloaded jump force 6, got %v", g.Player().JumpForce())
	}

	write("movement:\n  policy: teleport\n")
	g.ReloadConfig()
	if g.Player().JumpForce() != 6 || g.Config.Movement.Policy != config.MovementForce {
		t.Error("invalid file should leave the running config alone")
	}
	if logs.FilterMessage("config reload failed").Len() != 1 {
		t.Errorf("expected one reload failure log, got %d", logs.FilterMessage("config reload failed").Len())
	}
}
