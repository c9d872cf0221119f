package components

import (
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel is a simple background panel/container. Hide or show it, along
// with its children, through the owning GameObject's Active flag.
type UIPanel struct {
	engine.BaseComponent

	// Background color
	Color rl.Color

	// Border settings
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // Rounded corners (0 = sharp)
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:        rl.NewColor(30, 30, 40, 200),
		BorderColor:  rl.NewColor(60, 60, 75, 255),
		BorderWidth:  1,
		BorderRadius: 0,
	}
}

// Show toggles visibility of the panel's GameObject.
func (p *UIPanel) Show(visible bool) {
	if g := p.GetGameObject(); g != nil {
		g.SetActive(visible)
	}
}

func (p *UIPanel) Visible() bool {
	g := p.GetGameObject()
	return g != nil && g.ActiveInHierarchy()
}

// Draw renders the panel background
func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.BorderRadius > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
	} else {
		rl.DrawRectangleRec(rect, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
		}
	}
}
