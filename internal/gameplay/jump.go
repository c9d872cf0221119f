package gameplay

import (
	"personaje/internal/config"
	"personaje/internal/engine"
	"personaje/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// JumpTrigger fires once per press of the jump button, and only while
// grounded. Holding the button never re-triggers.
type JumpTrigger struct {
	edge input.Edge
}

func (j *JumpTrigger) Triggered(held, grounded bool) bool {
	return j.edge.Pressed(held) && grounded
}

// GroundSensor answers "is the player standing on something".
//
// The overlap policy tests a sphere at the ground-check point every frame.
// The latch policy counts collisions with ground-tagged bodies; the count
// drops on collision exit and a jump clears it.
//
// After a jump the overlap policy ignores hits while the body rises until
// the sphere has cleared the ground once, so one contact gives one jump.
type GroundSensor struct {
	Policy string
	Radius float32
	Mask   engine.Layer
	Tag    string

	contacts int
	leaving  bool
}

// Grounded reports whether the sensor touches ground. vy is the body's
// vertical velocity.
func (s *GroundSensor) Grounded(w engine.WorldAccess, point rl.Vector3, self *engine.GameObject, vy float32) bool {
	if s.Policy == config.GroundLatch {
		return s.contacts > 0
	}
	if w == nil {
		return false
	}
	hit := s.overlaps(w, point, self)
	if s.leaving {
		if hit && vy > 0 {
			return false
		}
		s.leaving = false
	}
	return hit
}

func (s *GroundSensor) overlaps(w engine.WorldAccess, point rl.Vector3, self *engine.GameObject) bool {
	for _, g := range w.OverlapSphere(point, s.Radius, s.Mask) {
		if !isSelfOrChild(g, self) {
			return true
		}
	}
	return false
}

// Contact records a collision transition with other.
func (s *GroundSensor) Contact(other *engine.GameObject, entered bool) {
	if other == nil || !other.HasTag(s.Tag) {
		return
	}
	if entered {
		s.contacts++
	} else if s.contacts > 0 {
		s.contacts--
	}
}

// Consume uses up the current ground contact after a jump.
func (s *GroundSensor) Consume() {
	s.contacts = 0
	s.leaving = true
}

func isSelfOrChild(g, self *engine.GameObject) bool {
	for o := g; o != nil; o = o.Parent {
		if o == self {
			return true
		}
	}
	return false
}
