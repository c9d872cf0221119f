package components

import (
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// ParseTextAlignment maps scene-file names to alignments; unknown names are left-aligned.
func ParseTextAlignment(name string) TextAlignment {
	switch name {
	case "center":
		return TextAlignCenter
	case "right":
		return TextAlignRight
	}
	return TextAlignLeft
}

// UIText displays text on screen
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{
		Text:      "Text",
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
	}
}

// SetText replaces the displayed text.
func (t *UIText) SetText(s string) {
	t.Text = s
}

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}

	// Measure text for alignment
	textWidth := float32(rl.MeasureText(t.Text, t.FontSize))

	var x float32
	switch t.Alignment {
	case TextAlignLeft:
		x = rect.X
	case TextAlignCenter:
		x = rect.X + (rect.Width-textWidth)/2
	case TextAlignRight:
		x = rect.X + rect.Width - textWidth
	}

	// Vertically center text in rect
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
