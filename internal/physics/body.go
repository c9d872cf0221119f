package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ForceMode selects how AddForce interprets its argument.
type ForceMode int

const (
	// ForceModeForce is a continuous force in mass*units/s², scaled by the step.
	ForceModeForce ForceMode = iota
	// ForceModeImpulse is an instantaneous change in momentum.
	ForceModeImpulse
	// ForceModeVelocityChange changes velocity directly, ignoring mass.
	ForceModeVelocityChange
)

// Body is the integrable state of a rigid body. Forces and impulses
// accumulate between steps and are cleared by Integrate.
type Body struct {
	Velocity    rl.Vector3
	Mass        float32
	Drag        float32 // linear drag per second, 0 = none
	UseGravity  bool
	IsKinematic bool // moves but doesn't get pushed by physics
	// MaxHorizontalSpeed caps |(vx, vz)| after each step. 0 = no cap.
	MaxHorizontalSpeed float32

	force    rl.Vector3
	deltaVel rl.Vector3
}

func (b *Body) AddForce(f rl.Vector3, mode ForceMode) {
	switch mode {
	case ForceModeForce:
		b.force = rl.Vector3Add(b.force, f)
	case ForceModeImpulse:
		b.deltaVel = rl.Vector3Add(b.deltaVel, rl.Vector3Scale(f, 1/b.mass()))
	case ForceModeVelocityChange:
		b.deltaVel = rl.Vector3Add(b.deltaVel, f)
	}
}

// PendingForce returns the continuous force accumulated since the last step.
func (b *Body) PendingForce() rl.Vector3 {
	return b.force
}

func (b *Body) ClearForces() {
	b.force = rl.Vector3{}
	b.deltaVel = rl.Vector3{}
}

// Integrate advances velocity by one step and returns the displacement.
// Drag uses the same 1-drag*dt damping Unity applies to linear velocity.
func (b *Body) Integrate(dt float32, gravity rl.Vector3) rl.Vector3 {
	if b.IsKinematic {
		b.ClearForces()
		return rl.Vector3Scale(b.Velocity, dt)
	}

	accel := rl.Vector3Scale(b.force, 1/b.mass())
	if b.UseGravity {
		accel = rl.Vector3Add(accel, gravity)
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(accel, dt))
	b.Velocity = rl.Vector3Add(b.Velocity, b.deltaVel)

	if b.Drag > 0 {
		damp := 1 - b.Drag*dt
		if damp < 0 {
			damp = 0
		}
		b.Velocity = rl.Vector3Scale(b.Velocity, damp)
	}
	if b.MaxHorizontalSpeed > 0 {
		b.Velocity = ClampHorizontal(b.Velocity, b.MaxHorizontalSpeed)
	}

	b.ClearForces()
	return rl.Vector3Scale(b.Velocity, dt)
}

func (b *Body) mass() float32 {
	if b.Mass <= 0 {
		return 1
	}
	return b.Mass
}

// ClampHorizontal limits the horizontal speed of v to max, keeping its
// direction and its vertical component.
func ClampHorizontal(v rl.Vector3, max float32) rl.Vector3 {
	speedSq := v.X*v.X + v.Z*v.Z
	if speedSq <= max*max || speedSq == 0 {
		return v
	}
	scale := max / float32(math.Sqrt(float64(speedSq)))
	return rl.Vector3{X: v.X * scale, Y: v.Y, Z: v.Z * scale}
}
