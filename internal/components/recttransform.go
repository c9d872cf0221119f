package components

import (
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Anchor presets for common UI layouts (like Unity)
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorStretchAll
)

// RectTransform places a HUD element relative to its parent rectangle.
// Anchors are fractions of the parent (0,0 = top-left), offsets are pixels.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin rl.Vector2
	AnchorMax rl.Vector2 // equal to AnchorMin for a point anchor

	// Pivot is the point of the element placed on the anchor, 0-1 within the element.
	Pivot rl.Vector2

	// AnchoredPosition offsets a point anchor, or insets stretched anchors.
	AnchoredPosition rl.Vector2

	// SizeDelta is the element size for point anchors, or the growth
	// beyond the anchor span when stretched.
	SizeDelta rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin:        rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax:        rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:            rl.Vector2{X: 0.5, Y: 0.5},
		AnchoredPosition: rl.Vector2{X: 0, Y: 0},
		SizeDelta:        rl.Vector2{X: 100, Y: 30},
	}
}

// SetAnchorPreset configures anchors using common presets
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	switch preset {
	case AnchorTopLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 0}
		rt.Pivot = rl.Vector2{X: 0, Y: 0}
	case AnchorTopCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 0}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0}
	case AnchorTopRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 0}
		rt.Pivot = rl.Vector2{X: 1, Y: 0}
	case AnchorMiddleLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 0, Y: 0.5}
	case AnchorMiddleCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
	case AnchorMiddleRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 0.5}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 0.5}
		rt.Pivot = rl.Vector2{X: 1, Y: 0.5}
	case AnchorBottomLeft:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 0, Y: 1}
		rt.Pivot = rl.Vector2{X: 0, Y: 1}
	case AnchorBottomCenter:
		rt.AnchorMin = rl.Vector2{X: 0.5, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 0.5, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 1}
	case AnchorBottomRight:
		rt.AnchorMin = rl.Vector2{X: 1, Y: 1}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 1, Y: 1}
	case AnchorStretchAll:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
	}
}

// GetScreenRect returns the computed screen-space rectangle
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect computes screen position based on parent rect and anchors
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) {
	// Calculate anchor positions in parent space
	anchorMinX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	anchorMinY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	anchorMaxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	anchorMaxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	var x, y, width, height float32

	// If anchors are the same point, use SizeDelta for size
	if rt.AnchorMin.X == rt.AnchorMax.X && rt.AnchorMin.Y == rt.AnchorMax.Y {
		// Point anchor - position relative to anchor point
		width = rt.SizeDelta.X
		height = rt.SizeDelta.Y
		x = anchorMinX + rt.AnchoredPosition.X - width*rt.Pivot.X
		y = anchorMinY + rt.AnchoredPosition.Y - height*rt.Pivot.Y
	} else {
		// Stretched anchors - SizeDelta acts as insets
		x = anchorMinX + rt.AnchoredPosition.X
		y = anchorMinY + rt.AnchoredPosition.Y
		width = (anchorMaxX - anchorMinX) + rt.SizeDelta.X
		height = (anchorMaxY - anchorMinY) + rt.SizeDelta.Y
	}

	rt.screenRect = rl.Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// ContainsPoint checks if a screen point is inside this rect
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}

var anchorPresetByName = map[string]AnchorPreset{
	"top-left":      AnchorTopLeft,
	"top-center":    AnchorTopCenter,
	"top-right":     AnchorTopRight,
	"middle-left":   AnchorMiddleLeft,
	"middle-center": AnchorMiddleCenter,
	"middle-right":  AnchorMiddleRight,
	"bottom-left":   AnchorBottomLeft,
	"bottom-center": AnchorBottomCenter,
	"bottom-right":  AnchorBottomRight,
	"stretch":       AnchorStretchAll,
}

// ParseAnchorPreset maps scene-file anchor names to presets.
func ParseAnchorPreset(name string) (AnchorPreset, bool) {
	p, ok := anchorPresetByName[name]
	return p, ok
}
