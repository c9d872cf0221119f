package components

import (
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root of a HUD hierarchy. Children with a RectTransform
// are laid out against their parent's rectangle and drawn depth-first, so
// a panel is painted before the text and buttons it contains.
type UICanvas struct {
	engine.BaseComponent
	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw(screenWidth, screenHeight int32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	screenRect := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(screenWidth),
		Height: float32(screenHeight),
	}

	c.drawUIElement(g, screenRect)
}

// Layout computes rectangles for the whole hierarchy without drawing.
func (c *UICanvas) Layout(screenWidth, screenHeight int32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	layoutUIElement(g, rl.Rectangle{Width: float32(screenWidth), Height: float32(screenHeight)})
}

func layoutUIElement(g *engine.GameObject, parentRect rl.Rectangle) rl.Rectangle {
	currentRect := parentRect
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}
	for _, child := range g.Children {
		layoutUIElement(child, currentRect)
	}
	return currentRect
}

func (c *UICanvas) drawUIElement(g *engine.GameObject, parentRect rl.Rectangle) {
	if g == nil || !g.Active {
		return
	}

	currentRect := parentRect
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}

	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(currentRect)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(currentRect)
	}
	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.Draw(currentRect)
	}

	for _, child := range g.Children {
		c.drawUIElement(child, currentRect)
	}
}
