package components

import (
	"personaje/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIButton is a clickable raygui button. raygui is immediate mode, so the
// click is detected while drawing.
type UIButton struct {
	engine.BaseComponent

	Label    string
	Disabled bool

	// Unity-style event - supports multiple listeners
	OnClick engine.Event
}

func NewUIButton(label string) *UIButton {
	return &UIButton{Label: label}
}

// Draw renders the button and fires OnClick when raygui reports a click.
func (b *UIButton) Draw(rect rl.Rectangle) {
	if b.Disabled {
		gui.Disable()
		gui.Button(rect, b.Label)
		gui.Enable()
		return
	}
	if gui.Button(rect, b.Label) {
		b.Click()
	}
}

// Click fires OnClick unless the button is disabled.
func (b *UIButton) Click() {
	if b.Disabled {
		return
	}
	b.OnClick.Invoke()
}
