package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Now returns simulated seconds since the scene started. It does not
	// advance while the world is paused.
	Now() float64
	Pause()
	Paused() bool
	// Consume deactivates a pickup volume and schedules it to come back
	// after the configured respawn delay, or destroys it when respawn is off.
	Consume(g *GameObject)
	Destroy(g *GameObject)
	// OverlapSphere returns active non-trigger colliders whose layer is in
	// mask and whose volume intersects the sphere.
	OverlapSphere(center rl.Vector3, radius float32, mask Layer) []*GameObject
	Logger() *zap.Logger
}
