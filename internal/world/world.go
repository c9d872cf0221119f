package world

import (
	"errors"
	"slices"

	"personaje/internal/components"
	"personaje/internal/engine"
	"personaje/internal/logger"
	"personaje/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// contactSkin widens a body's box when looking for resting contacts, so an
// object sitting exactly on the floor still counts as touching it.
const contactSkin = 0.01

type Options struct {
	Gravity      float32 // vertical acceleration, negative is down
	RespawnDelay float32 // seconds before a consumed pickup returns; 0 destroys it
}

// World owns the running scene and the simulation clock. Components reach
// it through engine.WorldAccess.
type World struct {
	Scene    *engine.Scene
	Renderer *Renderer

	gravity      rl.Vector3
	respawnDelay float32
	log          *zap.Logger

	now    float64
	paused bool

	triggers   *physics.ContactTracker[uint64]
	collisions *physics.ContactTracker[uint64]
	queue      []contactEvent
	respawns   []respawn
	destroyed  []*engine.GameObject
}

type contactKind int

const (
	triggerEnter contactKind = iota
	collisionEnter
	collisionExit
)

type contactEvent struct {
	kind contactKind
	a, b uint64
}

type respawn struct {
	obj *engine.GameObject
	at  float64
}

func New(log *zap.Logger, opts Options) *World {
	w := &World{
		Renderer:     NewRenderer(),
		gravity:      rl.Vector3{Y: opts.Gravity},
		respawnDelay: opts.RespawnDelay,
		log:          logger.OrNop(log),
		triggers:     physics.NewContactTracker[uint64](),
		collisions:   physics.NewContactTracker[uint64](),
	}
	w.Reset()
	return w
}

// Reset drops the current scene and all simulation state.
func (w *World) Reset() {
	w.Scene = engine.NewScene("Main")
	w.Scene.World = w
	w.now = 0
	w.paused = false
	w.triggers.Reset()
	w.collisions.Reset()
	w.queue = w.queue[:0]
	w.respawns = nil
	w.destroyed = nil
}

// SetRespawnDelay changes the delay for pickups consumed from now on.
func (w *World) SetRespawnDelay(seconds float32) {
	w.respawnDelay = seconds
}

// Start runs Start on every object, then collects Validate errors from
// components that implement engine.Validator.
func (w *World) Start() error {
	w.Scene.Start()

	var errs []error
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if v, ok := c.(engine.Validator); ok {
				if err := v.Validate(); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Step advances the simulation by one fixed tick: FixedUpdate, integration,
// collision response, then delivery of the contact events the tick produced.
func (w *World) Step(dt float32) {
	if w.paused {
		return
	}
	w.now += float64(dt)
	w.respawnDue()

	w.Scene.FixedUpdate(dt)

	solids, triggers, bodies := w.partition()
	for _, b := range bodies {
		w.integrate(b, dt, solids)
	}
	w.detectTriggers(bodies, triggers)
	w.deliver()
	w.flushDestroyed()
}

// Update runs the per-frame component update. Nothing runs while paused.
func (w *World) Update(dt float32) {
	if w.paused {
		return
	}
	w.Scene.Update(dt)
	w.flushDestroyed()
}

func (w *World) Now() float64 { return w.now }

func (w *World) Pause() {
	if !w.paused {
		w.log.Debug("world paused", zap.Float64("t", w.now))
	}
	w.paused = true
}

func (w *World) Resume() { w.paused = false }

func (w *World) Paused() bool { return w.paused }

func (w *World) Logger() *zap.Logger { return w.log }

func (w *World) Consume(g *engine.GameObject) {
	if g == nil || !g.Active {
		return
	}
	g.SetActive(false)
	if w.respawnDelay <= 0 {
		w.Destroy(g)
		return
	}
	w.respawns = append(w.respawns, respawn{obj: g, at: w.now + float64(w.respawnDelay)})
}

// Destroy deactivates g at once and removes it from the scene at the end of
// the current step or frame.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || slices.Contains(w.destroyed, g) {
		return
	}
	g.SetActive(false)
	w.destroyed = append(w.destroyed, g)
}

func (w *World) OverlapSphere(center rl.Vector3, radius float32, mask engine.Layer) []*engine.GameObject {
	probe := physics.Sphere{Center: center, Radius: radius}
	var hits []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if g.Layer&mask == 0 || !g.ActiveInHierarchy() {
			continue
		}
		col := components.GetCollider(g)
		if col == nil || col.Trigger() {
			continue
		}
		if physics.Overlap(probe, col.Shape()) {
			hits = append(hits, g)
		}
	}
	return hits
}

// PendingRespawns returns how many consumed pickups are waiting to return.
func (w *World) PendingRespawns() int { return len(w.respawns) }

func (w *World) respawnDue() {
	kept := w.respawns[:0]
	for _, r := range w.respawns {
		if w.now < r.at {
			kept = append(kept, r)
			continue
		}
		if w.Scene.FindByUID(r.obj.UID) != nil {
			r.obj.SetActive(true)
			w.log.Debug("respawned", zap.String("object", r.obj.Name))
		}
	}
	w.respawns = kept
}

// partition sorts active colliders into static solids, trigger volumes and
// dynamic bodies.
func (w *World) partition() (solids, triggers, bodies []*engine.GameObject) {
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		col := components.GetCollider(g)
		rb := engine.GetComponent[*components.Rigidbody](g)
		switch {
		case rb != nil:
			bodies = append(bodies, g)
		case col == nil:
		case col.Trigger():
			triggers = append(triggers, g)
		default:
			solids = append(solids, g)
		}
	}
	return solids, triggers, bodies
}

// integrate moves one body and pushes it out of the solids it hits.
// Contacts are recorded for collision enter/exit.
func (w *World) integrate(g *engine.GameObject, dt float32, solids []*engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	disp := rb.Integrate(dt, w.gravity)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, disp)

	box := engine.GetComponent[*components.BoxCollider](g)
	if box == nil || box.IsTrigger || rb.IsKinematic {
		return
	}

	for _, other := range solids {
		solid := engine.GetComponent[*components.BoxCollider](other)
		if solid == nil {
			continue
		}
		otherBox := solid.GetAABB()

		push := box.GetAABB().Resolve(otherBox)
		if push != rl.Vector3Zero() {
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, push)
			if push.Y > 0 && rb.Velocity.Y < 0 {
				rb.Velocity.Y = 0
			}
			if push.Y < 0 && rb.Velocity.Y > 0 {
				rb.Velocity.Y = 0
			}
			if push.X != 0 {
				rb.Velocity.X = 0
			}
			if push.Z != 0 {
				rb.Velocity.Z = 0
			}
		}

		skin := box.GetAABB()
		skin.Min = rl.Vector3SubtractValue(skin.Min, contactSkin)
		skin.Max = rl.Vector3AddValue(skin.Max, contactSkin)
		if skin.Intersects(otherBox) {
			w.collisions.Touch(g.UID, other.UID)
		}
	}
}

func (w *World) detectTriggers(bodies, triggers []*engine.GameObject) {
	w.triggers.Begin()
	for _, b := range bodies {
		bodyCol := components.GetCollider(b)
		if bodyCol == nil {
			continue
		}
		for _, t := range triggers {
			if physics.Overlap(bodyCol.Shape(), components.GetCollider(t).Shape()) {
				w.triggers.Touch(b.UID, t.UID)
			}
		}
	}
	entered, _ := w.triggers.End()
	for _, p := range entered {
		w.queue = append(w.queue, contactEvent{kind: triggerEnter, a: p.A, b: p.B})
	}

	// Collision touches were recorded during integration.
	cEntered, cExited := w.collisions.End()
	for _, p := range cEntered {
		w.queue = append(w.queue, contactEvent{kind: collisionEnter, a: p.A, b: p.B})
	}
	for _, p := range cExited {
		w.queue = append(w.queue, contactEvent{kind: collisionExit, a: p.A, b: p.B})
	}
	w.collisions.Begin()
}

// deliver sends queued contact events to both objects of each pair.
func (w *World) deliver() {
	for i := 0; i < len(w.queue); i++ {
		ev := w.queue[i]
		a, b := w.Scene.FindByUID(ev.a), w.Scene.FindByUID(ev.b)
		if a == nil || b == nil {
			continue
		}
		switch ev.kind {
		case triggerEnter:
			notifyTrigger(a, b)
			notifyTrigger(b, a)
		case collisionEnter:
			notifyCollision(a, b, true)
			notifyCollision(b, a, true)
		case collisionExit:
			notifyCollision(a, b, false)
			notifyCollision(b, a, false)
		}
	}
	w.queue = w.queue[:0]
}

func notifyTrigger(g, other *engine.GameObject) {
	// A handler earlier in the queue may have consumed either side.
	if !g.ActiveInHierarchy() || !other.ActiveInHierarchy() {
		return
	}
	for _, c := range g.Components() {
		if h, ok := c.(engine.TriggerHandler); ok {
			h.OnTriggerEnter(other)
		}
	}
}

func notifyCollision(g, other *engine.GameObject, enter bool) {
	for _, c := range g.Components() {
		h, ok := c.(engine.CollisionHandler)
		if !ok {
			continue
		}
		if enter {
			h.OnCollisionEnter(other)
		} else {
			h.OnCollisionExit(other)
		}
	}
}

func (w *World) flushDestroyed() {
	if len(w.destroyed) == 0 {
		return
	}
	for _, g := range w.destroyed {
		if g.Parent != nil {
			g.Parent.RemoveChild(g)
		}
		w.Scene.RemoveGameObject(g)
		w.log.Debug("destroyed", zap.String("object", g.Name))
	}
	w.destroyed = w.destroyed[:0]
}
