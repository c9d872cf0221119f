package components

import (
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

// ParseMeshType maps scene-file mesh names to MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	switch name {
	case "cube":
		return MeshCube, true
	case "sphere":
		return MeshSphere, true
	case "plane":
		return MeshPlane, true
	}
	return MeshCube, false
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(g.WorldRotation().Y, 0, 1, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3Zero(), m.Size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3Zero(), m.Size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(rl.Vector3Zero(), m.Size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}

	rl.PopMatrix()
}
