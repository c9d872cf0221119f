package components

import (
	"math"
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera is a third-person camera that circles a target object.
// Its forward/right vectors are the reference frame for camera-relative
// movement.
type OrbitCamera struct {
	engine.BaseComponent
	Target    engine.GameObjectRef
	Distance  float32
	Height    float32 // look-at point above the target's origin
	Yaw       float32 // degrees, 0 = camera behind the target looking toward +Z
	Pitch     float32 // degrees above the horizon
	LookSpeed float32
	FOV       float32

	target *engine.GameObject
}

func NewOrbitCamera(target string) *OrbitCamera {
	return &OrbitCamera{
		Target:    engine.Ref(target),
		Distance:  8,
		Height:    1,
		Pitch:     25,
		LookSpeed: 0.2,
		FOV:       45,
	}
}

func (c *OrbitCamera) Start() {
	if g := c.GetGameObject(); g != nil {
		c.target = c.Target.Get(g.Scene)
	}
	c.follow()
}

// Orbit rotates the camera around its target by a look delta.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Yaw -= dx * c.LookSpeed
	c.Pitch += dy * c.LookSpeed
	c.Pitch = rl.Clamp(c.Pitch, -10, 80)
	if c.Yaw >= 360 {
		c.Yaw -= 360
	}
	if c.Yaw < 0 {
		c.Yaw += 360
	}
}

func (c *OrbitCamera) Update(deltaTime float32) {
	c.follow()
}

func (c *OrbitCamera) follow() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = rl.Vector3Add(c.focus(), rl.Vector3Scale(c.offsetDir(), c.Distance))
}

func (c *OrbitCamera) focus() rl.Vector3 {
	if c.target == nil {
		return rl.Vector3{Y: c.Height}
	}
	p := c.target.WorldPosition()
	p.Y += c.Height
	return p
}

// offsetDir points from the focus toward the camera.
func (c *OrbitCamera) offsetDir() rl.Vector3 {
	yaw := float64(c.Yaw) * math.Pi / 180
	pitch := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: -float32(math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: -float32(math.Cos(yaw) * math.Cos(pitch)),
	}
}

// Forward is the camera's viewing direction.
func (c *OrbitCamera) Forward() rl.Vector3 {
	return rl.Vector3Negate(c.offsetDir())
}

// Right is perpendicular to Forward on the camera's screen plane.
func (c *OrbitCamera) Right() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(c.Forward(), rl.Vector3{Y: 1}))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	return rl.Camera3D{
		Position:   g.Transform.Position,
		Target:     c.focus(),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
