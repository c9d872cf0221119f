package engine

import (
	"fmt"
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layer is a collision layer bitmask. A GameObject belongs to exactly one
// layer bit; queries take a mask of the layers they accept.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerPlayer
	LayerPickup
)

// LayerAll matches every layer.
const LayerAll Layer = math.MaxUint32

var layerByName = map[string]Layer{
	"default": LayerDefault,
	"ground":  LayerGround,
	"player":  LayerPlayer,
	"pickup":  LayerPickup,
}

// ParseLayer maps a scene or config layer name to its bit.
func ParseLayer(name string) (Layer, bool) {
	l, ok := layerByName[name]
	return l, ok
}

// ParseLayerMask ORs the named layers together. Unknown names are an error.
func ParseLayerMask(names []string) (Layer, error) {
	var mask Layer
	for _, n := range names {
		l, ok := ParseLayer(n)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", n)
		}
		mask |= l
	}
	return mask, nil
}

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Forward returns the unit vector the transform faces on the horizontal
// plane. Yaw 0 faces +Z.
func (t Transform) Forward() rl.Vector3 {
	yaw := float64(t.Rotation.Y) * math.Pi / 180
	return rl.Vector3{X: float32(math.Sin(yaw)), Y: 0, Z: float32(math.Cos(yaw))}
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      Layer
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Layer:  LayerDefault,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component implementing interface T.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) FixedUpdate(fixedDelta float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if f, ok := c.(FixedUpdater); ok {
			f.FixedUpdate(fixedDelta)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SetActive toggles the object. Inactive objects neither update nor collide.
func (g *GameObject) SetActive(active bool) {
	g.Active = active
}

// ActiveInHierarchy reports whether the object and all its parents are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for o := g; o != nil; o = o.Parent {
		if !o.Active {
			return false
		}
	}
	return true
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// FindChild searches direct children by name.
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// Children only inherit yaw; pickups and ground probes never tilt.
	yaw := float64(parentRot.Y) * math.Pi / 180
	sin, cos := float32(math.Sin(yaw)), float32(math.Cos(yaw))
	rotated := rl.Vector3{
		X: scaled.X*cos + scaled.Z*sin,
		Y: scaled.Y,
		Z: -scaled.X*sin + scaled.Z*cos,
	}
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
