package components

import (
	"personaje/internal/engine"
	"personaje/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is implemented by every collision volume component.
type Collider interface {
	engine.Component
	Shape() physics.Shape
	Trigger() bool
}

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) Shape() physics.Shape { return b.GetAABB() }

func (b *BoxCollider) Trigger() bool { return b.IsTrigger }

type SphereCollider struct {
	engine.BaseComponent
	Radius    float32
	Offset    rl.Vector3
	IsTrigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(s.GetGameObject().WorldPosition(), s.Offset)
}

func (s *SphereCollider) GetSphere() physics.Sphere {
	scale := s.GetGameObject().WorldScale()
	largest := max(scale.X, scale.Y, scale.Z)
	return physics.Sphere{Center: s.GetCenter(), Radius: s.Radius * largest}
}

func (s *SphereCollider) Shape() physics.Shape { return s.GetSphere() }

func (s *SphereCollider) Trigger() bool { return s.IsTrigger }

// GetCollider returns the first collider on g, or nil.
func GetCollider(g *engine.GameObject) Collider {
	return engine.FindComponent[Collider](g)
}
