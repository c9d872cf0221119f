// Package gameplay holds the third-person player controller and the pickups
// it interacts with.
package gameplay

import (
	"errors"
	"fmt"

	"personaje/internal/components"
	"personaje/internal/config"
	"personaje/internal/engine"
	"personaje/internal/input"
	"personaje/internal/logger"
	"personaje/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var (
	ErrMissingRigidbody    = errors.New("player has no Rigidbody")
	ErrMissingCamera       = errors.New("player camera not found")
	ErrGroundCheckNotFound = errors.New("ground check object not found")
)

// DefaultGroundCheck is the child looked up when no ground-check name is
// configured. Without it the player's own position is used.
const DefaultGroundCheck = "GroundCheck"

// Tuning is the part of the configuration the player reads. It can be
// replaced while the game runs.
type Tuning struct {
	MovePolicy   string
	MoveForce    float32
	MaxSpeed     float32
	DeadZone     float32
	RotationRate float32
	Drag         float32

	JumpForce    float32
	GroundPolicy string
	GroundCheck  string
	GroundRadius float32
	GroundMask   engine.Layer
	GroundTag    string

	PowerUpJumpForce    float32
	PowerUpDuration     float32
	ScorePerCollectible int
	TargetScore         int
}

func TuningFromConfig(cfg config.Config) (Tuning, error) {
	mask, err := cfg.GroundMask()
	if err != nil {
		return Tuning{}, fmt.Errorf("ground layers: %w", err)
	}
	return Tuning{
		MovePolicy:          cfg.Movement.Policy,
		MoveForce:           cfg.Movement.MoveForce,
		MaxSpeed:            cfg.Movement.MaxSpeed,
		DeadZone:            cfg.Movement.DeadZone,
		RotationRate:        cfg.Movement.RotationRate,
		Drag:                cfg.Movement.Drag,
		JumpForce:           cfg.Jump.Force,
		GroundPolicy:        cfg.Jump.GroundPolicy,
		GroundCheck:         cfg.Jump.GroundCheck,
		GroundRadius:        cfg.Jump.GroundCheckRadius,
		GroundMask:          mask,
		GroundTag:           cfg.Jump.GroundTag,
		PowerUpJumpForce:    cfg.Pickups.PowerUpJumpForce,
		PowerUpDuration:     cfg.Pickups.PowerUpDuration,
		ScorePerCollectible: cfg.Pickups.ScorePerCollectible,
		TargetScore:         cfg.Win.TargetScore,
	}, nil
}

func DefaultTuning() Tuning {
	t, _ := TuningFromConfig(config.Default())
	return t
}

// Personaje is the player controller: camera-relative movement on the
// physics tick, jumping and pickups on the frame tick.
type Personaje struct {
	engine.BaseComponent
	Tuning Tuning

	Camera        engine.GameObjectRef
	ScoreText     engine.GameObjectRef
	PowerUpText   engine.GameObjectRef
	WinPanel      engine.GameObjectRef
	RestartButton engine.GameObjectRef

	OnWin     engine.Event
	OnRestart engine.Event

	rb          *components.Rigidbody
	cam         *components.OrbitCamera
	groundCheck *engine.GameObject
	scoreText   *components.UIText
	powerUpText *components.UIText
	winPanel    *components.UIPanel

	input    input.State
	jump     JumpTrigger
	ground   GroundSensor
	boost    Boost
	score    Scoreboard
	grounded bool

	missingGroundCheck string
	log                *zap.Logger
}

func NewPersonaje(camera string) *Personaje {
	return &Personaje{
		Tuning: DefaultTuning(),
		Camera: engine.Ref(camera),
		log:    zap.NewNop(),
	}
}

func (p *Personaje) Start() {
	g := p.GetGameObject()
	scene := g.Scene

	if w := p.world(); w != nil {
		p.log = logger.OrNop(w.Logger()).With(zap.String("player", g.Name))
	}

	p.rb = engine.GetComponent[*components.Rigidbody](g)
	p.cam = p.findCamera(scene)

	p.groundCheck = nil
	p.missingGroundCheck = ""
	if p.Tuning.GroundCheck == "" {
		p.groundCheck = g.FindChild(DefaultGroundCheck)
	} else if p.groundCheck = g.FindChild(p.Tuning.GroundCheck); p.groundCheck == nil {
		p.missingGroundCheck = p.Tuning.GroundCheck
	}

	if obj := p.ScoreText.Get(scene); obj != nil {
		p.scoreText = engine.GetComponent[*components.UIText](obj)
	}
	if obj := p.PowerUpText.Get(scene); obj != nil {
		p.powerUpText = engine.GetComponent[*components.UIText](obj)
	}
	if obj := p.WinPanel.Get(scene); obj != nil {
		p.winPanel = engine.GetComponent[*components.UIPanel](obj)
	}
	if obj := p.RestartButton.Get(scene); obj != nil {
		if btn := engine.GetComponent[*components.UIButton](obj); btn != nil {
			btn.OnClick.AddListener(p.OnRestart.Invoke)
		}
	}

	p.boost = NewBoost(p.Tuning.JumpForce)
	p.ApplyTuning(p.Tuning)
	p.score = NewScoreboard(p.winTarget(scene))

	if p.winPanel != nil {
		p.winPanel.Show(false)
	}
	p.refreshScore()
	p.refreshPowerUp(0)

	if err := p.Validate(); err != nil {
		p.log.Error("player not ready", zap.Error(err))
		return
	}
	p.log.Info("player ready",
		zap.String("move_policy", p.Tuning.MovePolicy),
		zap.String("ground_policy", p.Tuning.GroundPolicy),
		zap.Int("target_score", p.score.Target()))
}

func (p *Personaje) findCamera(scene *engine.Scene) *components.OrbitCamera {
	if p.Camera.IsValid() {
		return engine.GetComponent[*components.OrbitCamera](p.Camera.Get(scene))
	}
	if scene == nil {
		return nil
	}
	for _, obj := range scene.GameObjects {
		if cam := engine.GetComponent[*components.OrbitCamera](obj); cam != nil {
			return cam
		}
	}
	return nil
}

// winTarget is the configured target, or the value of every collectible
// present when the scene starts.
func (p *Personaje) winTarget(scene *engine.Scene) int {
	if p.Tuning.TargetScore > 0 || scene == nil {
		return p.Tuning.TargetScore
	}
	total := 0
	for _, obj := range scene.FindByTag(TagCollectible) {
		total += p.collectibleValue(obj)
	}
	return total
}

// Validate reports references that Start could not resolve.
func (p *Personaje) Validate() error {
	name := ""
	if g := p.GetGameObject(); g != nil {
		name = g.Name
	}
	switch {
	case p.rb == nil:
		return fmt.Errorf("player %q: %w", name, ErrMissingRigidbody)
	case p.cam == nil:
		return fmt.Errorf("player %q: %w: %q", name, ErrMissingCamera, p.Camera.Name)
	case p.missingGroundCheck != "":
		return fmt.Errorf("player %q: %w: %q", name, ErrGroundCheckNotFound, p.missingGroundCheck)
	}
	return nil
}

// ApplyTuning replaces the tuning values. A running boost keeps its
// override and expiry; score and target are left alone.
func (p *Personaje) ApplyTuning(t Tuning) {
	p.Tuning = t
	p.boost.SetBase(t.JumpForce)
	p.ground.Policy = t.GroundPolicy
	p.ground.Radius = t.GroundRadius
	p.ground.Mask = t.GroundMask
	p.ground.Tag = t.GroundTag
	if p.rb != nil {
		p.rb.Drag = t.Drag
		p.rb.MaxHorizontalSpeed = t.MaxSpeed
	}
}

// SetInput hands the player this frame's input.
func (p *Personaje) SetInput(s input.State) {
	p.input = s
}

func (p *Personaje) FixedUpdate(fixedDelta float32) {
	if p.rb == nil || p.cam == nil {
		return
	}

	dir, moving := MoveDirection(p.input.Horizontal, p.input.Vertical, p.cam.Forward(), p.cam.Right(), p.Tuning.DeadZone)

	switch p.Tuning.MovePolicy {
	case config.MovementVelocity:
		if moving {
			p.rb.Velocity.X = dir.X * p.Tuning.MaxSpeed
			p.rb.Velocity.Z = dir.Z * p.Tuning.MaxSpeed
		} else {
			p.rb.Velocity.X = 0
			p.rb.Velocity.Z = 0
		}
	default:
		if moving {
			p.rb.AddForce(rl.Vector3Scale(dir, p.Tuning.MoveForce), physics.ForceModeForce)
		}
	}

	if moving {
		rot := &p.GetGameObject().Transform.Rotation
		rot.Y = TurnToward(rot.Y, YawOf(dir), p.Tuning.RotationRate*fixedDelta)
	}
}

func (p *Personaje) Update(deltaTime float32) {
	w := p.world()
	now := p.now()

	if p.boost.Tick(now) {
		p.log.Info("power-up ended", zap.Float32("jump_force", p.boost.JumpForce()))
	}

	var vy float32
	if p.rb != nil {
		vy = p.rb.Velocity.Y
	}
	p.grounded = p.ground.Grounded(w, p.GroundPoint(), p.GetGameObject(), vy)
	if p.jump.Triggered(p.input.Jump, p.grounded) && p.rb != nil {
		p.rb.AddImpulse(rl.Vector3{Y: p.boost.JumpForce()})
		p.ground.Consume()
		p.grounded = false
		p.log.Debug("jump", zap.Float32("force", p.boost.JumpForce()))
	}

	p.refreshPowerUp(now)
}

func (p *Personaje) OnTriggerEnter(other *engine.GameObject) {
	if other == nil || !other.Active || p.score.Won() {
		return
	}

	switch {
	case other.HasTag(TagCollectible):
		value := p.collectibleValue(other)
		p.consume(other)
		won := p.score.Add(value)
		p.log.Info("collectible picked up",
			zap.String("object", other.Name),
			zap.Int("value", value),
			zap.Int("score", p.score.Score()))
		p.refreshScore()
		if won {
			p.win()
		}

	case other.HasTag(TagPowerUp):
		force, duration := p.Tuning.PowerUpJumpForce, p.Tuning.PowerUpDuration
		if pu := engine.GetComponent[*PowerUp](other); pu != nil {
			if pu.JumpForce > 0 {
				force = pu.JumpForce
			}
			if pu.Duration > 0 {
				duration = pu.Duration
			}
		}
		now := p.now()
		p.boost.Apply(force, duration, now)
		p.consume(other)
		p.log.Info("power-up started",
			zap.String("object", other.Name),
			zap.Float32("jump_force", force),
			zap.Float64("expires_at", p.boost.ExpiresAt()))
		p.refreshPowerUp(now)
	}
}

func (p *Personaje) OnCollisionEnter(other *engine.GameObject) {
	p.ground.Contact(other, true)
}

func (p *Personaje) OnCollisionExit(other *engine.GameObject) {
	p.ground.Contact(other, false)
}

func (p *Personaje) DrawGizmos() {
	rl.DrawSphereWires(p.GroundPoint(), p.Tuning.GroundRadius, 8, 8, rl.Red)
}

func (p *Personaje) win() {
	if w := p.world(); w != nil {
		w.Pause()
	}
	if p.winPanel != nil {
		p.winPanel.Show(true)
	}
	p.log.Info("win", zap.Int("score", p.score.Score()), zap.Int("target", p.score.Target()))
	p.OnWin.Invoke()
}

func (p *Personaje) consume(obj *engine.GameObject) {
	if w := p.world(); w != nil {
		w.Consume(obj)
		return
	}
	obj.SetActive(false)
}

func (p *Personaje) collectibleValue(obj *engine.GameObject) int {
	if c := engine.GetComponent[*Collectible](obj); c != nil && c.Value > 0 {
		return c.Value
	}
	return p.Tuning.ScorePerCollectible
}

func (p *Personaje) refreshScore() {
	if p.scoreText == nil {
		return
	}
	if p.score.Target() > 0 {
		p.scoreText.SetText(fmt.Sprintf("Score: %d / %d", p.score.Score(), p.score.Target()))
	} else {
		p.scoreText.SetText(fmt.Sprintf("Score: %d", p.score.Score()))
	}
}

func (p *Personaje) refreshPowerUp(now float64) {
	if p.powerUpText == nil {
		return
	}
	if r := p.boost.Remaining(now); r > 0 {
		p.powerUpText.SetText(fmt.Sprintf("Jump boost: %.1fs", r))
	} else {
		p.powerUpText.SetText("")
	}
}

// GroundPoint is where the ground check is centred.
func (p *Personaje) GroundPoint() rl.Vector3 {
	if p.groundCheck != nil {
		return p.groundCheck.WorldPosition()
	}
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3{}
}

func (p *Personaje) world() engine.WorldAccess {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil {
		return nil
	}
	return g.Scene.World
}

func (p *Personaje) now() float64 {
	if w := p.world(); w != nil {
		return w.Now()
	}
	return 0
}

func (p *Personaje) Score() int         { return p.score.Score() }
func (p *Personaje) TargetScore() int   { return p.score.Target() }
func (p *Personaje) Won() bool          { return p.score.Won() }
func (p *Personaje) Grounded() bool     { return p.grounded }
func (p *Personaje) JumpForce() float32 { return p.boost.JumpForce() }
func (p *Personaje) Boosted() bool      { return p.boost.Active() }

func init() {
	engine.RegisterScript("Personaje", personajeFactory, personajeSerializer)
}

func personajeFactory(props map[string]any) engine.Component {
	p := NewPersonaje(engine.PropString(props, "camera", ""))
	p.ScoreText = engine.Ref(engine.PropString(props, "scoreText", ""))
	p.PowerUpText = engine.Ref(engine.PropString(props, "powerUpText", ""))
	p.WinPanel = engine.Ref(engine.PropString(props, "winPanel", ""))
	p.RestartButton = engine.Ref(engine.PropString(props, "restartButton", ""))
	return p
}

func personajeSerializer(c engine.Component) map[string]any {
	p, ok := c.(*Personaje)
	if !ok {
		return nil
	}
	return map[string]any{
		"camera":        p.Camera.Name,
		"scoreText":     p.ScoreText.Name,
		"powerUpText":   p.PowerUpText.Name,
		"winPanel":      p.WinPanel.Name,
		"restartButton": p.RestartButton.Name,
	}
}
