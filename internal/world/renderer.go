package world

import (
	"personaje/internal/components"
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene's meshes and, in debug view, collider and
// gameplay gizmos. Must be called between BeginDrawing and EndDrawing.
type Renderer struct {
	Debug bool

	// Drawn and culled counts from the last frame, for the debug overlay.
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, scene *engine.Scene) {
	frustum := ExtractFrustum(camera, aspect)
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(camera)
	for _, g := range scene.GameObjects {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil || !g.ActiveInHierarchy() {
			continue
		}
		if !frustum.ContainsSphere(g.WorldPosition(), boundingRadius(mr, g)) {
			r.Culled++
			continue
		}
		mr.Draw()
		r.Drawn++
	}

	if r.Debug {
		rl.DrawGrid(40, 1)
		for _, g := range scene.GameObjects {
			if g.ActiveInHierarchy() {
				drawGizmos(g)
			}
		}
	}
	rl.EndMode3D()
}

// boundingRadius is a conservative sphere around the renderer's mesh.
func boundingRadius(mr *components.MeshRenderer, g *engine.GameObject) float32 {
	s := g.WorldScale()
	scale := max(s.X, s.Y, s.Z)
	if mr.MeshType == components.MeshSphere {
		return mr.Size.X * scale
	}
	return rl.Vector3Length(mr.Size) / 2 * scale
}

func drawGizmos(g *engine.GameObject) {
	switch col := components.GetCollider(g).(type) {
	case *components.BoxCollider:
		color := rl.Green
		if col.IsTrigger {
			color = rl.Yellow
		}
		rl.DrawCubeWiresV(col.GetCenter(), col.GetWorldSize(), color)
	case *components.SphereCollider:
		s := col.GetSphere()
		rl.DrawSphereWires(s.Center, s.Radius, 8, 8, rl.Yellow)
	}

	for _, c := range g.Components() {
		if d, ok := c.(engine.GizmoDrawer); ok {
			d.DrawGizmos()
		}
	}
}
