package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run on the physics tick.
// The world calls FixedUpdate once per fixed step, before integration.
type FixedUpdater interface {
	FixedUpdate(fixedDelta float32)
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
// Events are queued during the physics step and delivered once per step.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// TriggerHandler receives overlap events with trigger colliders.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Validator is implemented by components that need references resolved in
// Start. The world reports Validate errors after the scene has started.
type Validator interface {
	Validate() error
}

// GizmoDrawer draws debug shapes inside the 3D pass when debug view is on.
type GizmoDrawer interface {
	DrawGizmos()
}
