// Package game runs the simulation: the fixed-step accumulator, scene
// loading and restart, config hot reload, and the window's draw loop.
package game

import (
	"errors"
	"fmt"

	"personaje/internal/components"
	"personaje/internal/config"
	"personaje/internal/engine"
	"personaje/internal/gameplay"
	"personaje/internal/input"
	"personaje/internal/logger"
	"personaje/internal/world"

	"go.uber.org/zap"
)

var (
	ErrNoScene  = errors.New("no scene at index")
	ErrNoPlayer = errors.New("scene has no Personaje")
)

type Game struct {
	World     *world.World
	Config    config.Config
	DebugMode bool

	configPath string
	watcher    *config.Watcher
	log        *zap.Logger

	sceneIndex int
	player     *gameplay.Personaje
	camera     *components.OrbitCamera

	accumulator float32
	restart     input.Edge
	debug       input.Edge
	wantRestart bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config, log *zap.Logger) *Game {
	log = logger.OrNop(log)
	return &Game{
		World: world.New(log, world.Options{
			Gravity:      cfg.Simulation.Gravity,
			RespawnDelay: cfg.Pickups.RespawnDelay,
		}),
		Config: cfg,
		log:    log,
	}
}

// LoadScene replaces the running scene with Config.Scenes[index] and starts
// it. All gameplay state (score, boost, pause) starts over.
func (g *Game) LoadScene(index int) error {
	if index < 0 || index >= len(g.Config.Scenes) {
		return fmt.Errorf("%w: %d", ErrNoScene, index)
	}
	path := g.Config.Scenes[index]
	if err := g.World.LoadScene(path); err != nil {
		return fmt.Errorf("load scene %d: %w", index, err)
	}

	g.sceneIndex = index
	g.accumulator = 0
	g.wantRestart = false

	if err := g.bind(); err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	if err := g.World.Start(); err != nil {
		return fmt.Errorf("start scene %s: %w", path, err)
	}
	g.log.Info("scene started", zap.Int("index", index), zap.String("path", path))
	return nil
}

// Restart reloads the current scene.
func (g *Game) Restart() error {
	g.log.Info("restart", zap.Int("index", g.sceneIndex))
	return g.LoadScene(g.sceneIndex)
}

// bind finds the player and camera in a freshly loaded scene and pushes the
// configuration into them before Start.
func (g *Game) bind() error {
	g.player, g.camera = nil, nil
	for _, obj := range g.World.Scene.GameObjects {
		if p := engine.GetComponent[*gameplay.Personaje](obj); p != nil && g.player == nil {
			g.player = p
		}
		if c := engine.GetComponent[*components.OrbitCamera](obj); c != nil && g.camera == nil {
			g.camera = c
		}
	}
	if g.player == nil {
		return ErrNoPlayer
	}

	tuning, err := gameplay.TuningFromConfig(g.Config)
	if err != nil {
		return err
	}
	g.player.Tuning = tuning
	g.player.OnRestart.AddListener(func() { g.wantRestart = true })

	if g.camera != nil {
		g.applyCamera()
	}
	return nil
}

func (g *Game) applyCamera() {
	c := g.Config.Camera
	g.camera.Distance = c.Distance
	g.camera.Height = c.Height
	g.camera.Pitch = c.Pitch
	g.camera.LookSpeed = c.LookSpeed
	g.camera.FOV = c.FOV
}

// Tick advances one rendered frame: input handling, as many fixed physics
// steps as frameDt covers, then the per-frame update.
func (g *Game) Tick(frameDt float32, in input.State) error {
	if g.debug.Pressed(in.Debug) {
		g.DebugMode = !g.DebugMode
		g.World.Renderer.Debug = g.DebugMode
	}
	if g.restart.Pressed(in.Restart) {
		g.wantRestart = true
	}
	if g.wantRestart {
		return g.Restart()
	}

	if g.camera != nil && !g.World.Paused() {
		g.camera.Orbit(in.LookX, in.LookY)
	}
	if g.player != nil {
		g.player.SetInput(in)
	}

	if g.World.Paused() {
		g.accumulator = 0
	} else {
		step := g.Config.Simulation.FixedStep
		g.accumulator += frameDt
		steps := 0
		for g.accumulator >= step && steps < g.Config.Simulation.MaxStepsPerFrame {
			g.World.Step(step)
			g.accumulator -= step
			steps++
		}
		// Drop the backlog after a long stall instead of spiralling.
		if g.accumulator >= step {
			g.log.Debug("dropping simulation backlog", zap.Float32("seconds", g.accumulator))
			g.accumulator = 0
		}
	}

	g.World.Update(frameDt)
	return nil
}

// RunHeadless plays ticks frames of src at the fixed step with no window.
// A scripted source that runs out stops the run early.
func (g *Game) RunHeadless(src input.Source, ticks int) error {
	step := g.Config.Simulation.FixedStep
	script, scripted := src.(*input.Scripted)
	for i := 0; i < ticks; i++ {
		if scripted && script.Done() {
			break
		}
		if err := g.Tick(step, src.Poll()); err != nil {
			return err
		}
		g.PollConfig()
	}
	g.log.Info("headless run finished",
		zap.Float64("t", g.World.Now()),
		zap.Int("score", g.Score()),
		zap.Bool("won", g.Won()))
	return nil
}

// WatchConfig starts reloading the config file whenever it changes on disk.
func (g *Game) WatchConfig(path string) error {
	w, err := config.WatchFile(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	g.configPath = path
	g.watcher = w
	return nil
}

// PollConfig drains pending watcher events without blocking.
func (g *Game) PollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if config.SameFile(name, g.configPath) {
				g.ReloadConfig()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("config watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

// ReloadConfig re-reads the config file and applies the tuning that can
// change live. A bad file is logged and the old values are kept.
func (g *Game) ReloadConfig() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		g.log.Warn("config reload failed", zap.Error(err))
		return
	}
	if err := g.ApplyConfig(cfg); err != nil {
		g.log.Warn("config reload failed", zap.Error(err))
		return
	}
	g.log.Info("config reloaded", zap.String("path", g.configPath))
}

// ApplyConfig swaps in cfg for the running scene. Score and any running
// boost are kept.
func (g *Game) ApplyConfig(cfg config.Config) error {
	tuning, err := gameplay.TuningFromConfig(cfg)
	if err != nil {
		return err
	}
	g.Config = cfg
	g.World.SetRespawnDelay(cfg.Pickups.RespawnDelay)
	if g.player != nil {
		g.player.ApplyTuning(tuning)
	}
	if g.camera != nil {
		g.applyCamera()
	}
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Player() *gameplay.Personaje { return g.player }

func (g *Game) SceneIndex() int { return g.sceneIndex }

func (g *Game) Score() int {
	if g.player == nil {
		return 0
	}
	return g.player.Score()
}

func (g *Game) Won() bool {
	return g.player != nil && g.player.Won()
}
