// Package config loads the game's YAML configuration. Values missing from
// the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"personaje/internal/engine"
	"personaje/internal/logger"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	MovementForce    = "force"
	MovementVelocity = "velocity"

	GroundOverlap = "overlap"
	GroundLatch   = "latch"
)

type Config struct {
	Window     Window        `yaml:"window"`
	Logging    logger.Config `yaml:"logging"`
	Simulation Simulation    `yaml:"simulation"`
	Movement   Movement      `yaml:"movement"`
	Jump       Jump          `yaml:"jump"`
	Pickups    Pickups       `yaml:"pickups"`
	Win        Win           `yaml:"win"`
	Camera     Camera        `yaml:"camera"`
	Scenes     []string      `yaml:"scenes"`
}

type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type Simulation struct {
	FixedStep        float32 `yaml:"fixed_step"`
	Gravity          float32 `yaml:"gravity"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
}

type Movement struct {
	Policy       string  `yaml:"policy"` // force or velocity
	MoveForce    float32 `yaml:"move_force"`
	MaxSpeed     float32 `yaml:"max_speed"`
	DeadZone     float32 `yaml:"dead_zone"`
	RotationRate float32 `yaml:"rotation_rate"`
	Drag         float32 `yaml:"drag"`
}

type Jump struct {
	Force             float32  `yaml:"force"`
	GroundPolicy      string   `yaml:"ground_policy"` // overlap or latch
	GroundCheck       string   `yaml:"ground_check"`  // required child name; empty tries "GroundCheck"
	GroundCheckRadius float32  `yaml:"ground_check_radius"`
	GroundLayers      []string `yaml:"ground_layers"`
	GroundTag         string   `yaml:"ground_tag"`
}

type Pickups struct {
	PowerUpJumpForce    float32 `yaml:"power_up_jump_force"`
	PowerUpDuration     float32 `yaml:"power_up_duration"`
	RespawnDelay        float32 `yaml:"respawn_delay"` // 0 destroys consumed pickups
	ScorePerCollectible int     `yaml:"score_per_collectible"`
}

type Win struct {
	TargetScore int `yaml:"target_score"` // 0 = sum of collectibles in the scene
}

type Camera struct {
	Distance  float32 `yaml:"distance"`
	Height    float32 `yaml:"height"`
	Pitch     float32 `yaml:"pitch"`
	LookSpeed float32 `yaml:"look_speed"`
	FOV       float32 `yaml:"fov"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Personaje",
			TargetFPS: 120,
		},
		Logging: logger.DefaultConfig(),
		Simulation: Simulation{
			FixedStep:        1.0 / 50.0,
			Gravity:          -9.81,
			MaxStepsPerFrame: 5,
		},
		Movement: Movement{
			Policy:       MovementForce,
			MoveForce:    15,
			MaxSpeed:     15,
			DeadZone:     0.1,
			RotationRate: 10,
			Drag:         0.5,
		},
		Jump: Jump{
			Force:             5,
			GroundPolicy:      GroundOverlap,
			GroundCheckRadius: 0.5,
			GroundLayers:      []string{"ground"},
			GroundTag:         "Ground",
		},
		Pickups: Pickups{
			PowerUpJumpForce:    10,
			PowerUpDuration:     5,
			RespawnDelay:        30,
			ScorePerCollectible: 1,
		},
		Camera: Camera{
			Distance:  8,
			Height:    1,
			Pitch:     25,
			LookSpeed: 0.2,
			FOV:       45,
		},
		Scenes: []string{"assets/scenes/level1.json"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Simulation.FixedStep <= 0:
		return invalid("simulation.fixed_step must be positive, got %v", c.Simulation.FixedStep)
	case c.Simulation.MaxStepsPerFrame < 1:
		return invalid("simulation.max_steps_per_frame must be at least 1, got %d", c.Simulation.MaxStepsPerFrame)
	case c.Movement.Policy != MovementForce && c.Movement.Policy != MovementVelocity:
		return invalid("movement.policy must be %q or %q, got %q", MovementForce, MovementVelocity, c.Movement.Policy)
	case c.Movement.MaxSpeed <= 0:
		return invalid("movement.max_speed must be positive, got %v", c.Movement.MaxSpeed)
	case c.Movement.MoveForce < 0:
		return invalid("movement.move_force must not be negative, got %v", c.Movement.MoveForce)
	case c.Movement.DeadZone < 0 || c.Movement.DeadZone >= 1:
		return invalid("movement.dead_zone must be in [0,1), got %v", c.Movement.DeadZone)
	case c.Movement.RotationRate <= 0:
		return invalid("movement.rotation_rate must be positive, got %v", c.Movement.RotationRate)
	case c.Jump.Force < 0:
		return invalid("jump.force must not be negative, got %v", c.Jump.Force)
	case c.Jump.GroundPolicy != GroundOverlap && c.Jump.GroundPolicy != GroundLatch:
		return invalid("jump.ground_policy must be %q or %q, got %q", GroundOverlap, GroundLatch, c.Jump.GroundPolicy)
	case c.Jump.GroundCheckRadius <= 0:
		return invalid("jump.ground_check_radius must be positive, got %v", c.Jump.GroundCheckRadius)
	case c.Pickups.PowerUpDuration <= 0:
		return invalid("pickups.power_up_duration must be positive, got %v", c.Pickups.PowerUpDuration)
	case c.Pickups.RespawnDelay < 0:
		return invalid("pickups.respawn_delay must not be negative, got %v", c.Pickups.RespawnDelay)
	case c.Pickups.ScorePerCollectible < 0:
		return invalid("pickups.score_per_collectible must not be negative, got %d", c.Pickups.ScorePerCollectible)
	case c.Win.TargetScore < 0:
		return invalid("win.target_score must not be negative, got %d", c.Win.TargetScore)
	case len(c.Scenes) == 0:
		return invalid("scenes must list at least one scene file")
	}
	if _, err := c.GroundMask(); err != nil {
		return invalid("jump.ground_layers: %v", err)
	}
	return nil
}

// GroundMask returns the layer mask the ground check tests against.
func (c Config) GroundMask() (engine.Layer, error) {
	return engine.ParseLayerMask(c.Jump.GroundLayers)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
