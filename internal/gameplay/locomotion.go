package gameplay

import (
	"math"

	"personaje/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MoveDirection converts stick input into a unit world direction relative
// to the camera. The camera basis is flattened onto the ground plane so
// looking down does not slow the player. ok is false inside the dead zone.
func MoveDirection(h, v float32, camForward, camRight rl.Vector3, deadZone float32) (dir rl.Vector3, ok bool) {
	if h*h+v*v < deadZone*deadZone {
		return rl.Vector3{}, false
	}

	forward := flatten(camForward)
	right := flatten(camRight)

	dir = rl.Vector3Add(rl.Vector3Scale(right, h), rl.Vector3Scale(forward, v))
	if rl.Vector3LengthSqr(dir) < 1e-8 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Normalize(dir), true
}

func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	if rl.Vector3LengthSqr(v) < 1e-8 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(v)
}

// ClampHorizontal limits the horizontal speed of v, leaving v.Y alone.
func ClampHorizontal(v rl.Vector3, max float32) rl.Vector3 {
	return physics.ClampHorizontal(v, max)
}

// YawOf returns the yaw in degrees that faces dir. Yaw 0 faces +Z.
func YawOf(dir rl.Vector3) float32 {
	return float32(math.Atan2(float64(dir.X), float64(dir.Z)) * 180 / math.Pi)
}

// TurnToward moves yaw a fraction t of the way to target along the
// shortest arc. t is clamped to [0,1]; the result is in (-180,180].
func TurnToward(yaw, target, t float32) float32 {
	t = rl.Clamp(t, 0, 1)
	return wrapAngle(yaw + wrapAngle(target-yaw)*t)
}

func wrapAngle(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}
