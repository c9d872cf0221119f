package components

import (
	"personaje/internal/engine"
	"personaje/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody puts a GameObject under the world's physics step. The world
// integrates velocity, resolves it against solid colliders, and clears
// accumulated forces every fixed step.
type Rigidbody struct {
	engine.BaseComponent
	physics.Body
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Body: physics.Body{
			Mass:       1.0,
			UseGravity: true,
		},
	}
}

// AddImpulse applies an instantaneous change in momentum.
func (r *Rigidbody) AddImpulse(impulse rl.Vector3) {
	r.AddForce(impulse, physics.ForceModeImpulse)
}

// HorizontalVelocity returns velocity with the vertical component dropped.
func (r *Rigidbody) HorizontalVelocity() rl.Vector3 {
	return rl.Vector3{X: r.Velocity.X, Z: r.Velocity.Z}
}
