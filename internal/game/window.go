package game

import (
	"fmt"
	"slices"
	"time"

	"personaje/internal/components"
	"personaje/internal/engine"
	"personaje/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and plays Config.Scenes[scene] until the window
// closes.
func (g *Game) Run(scene int) error {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	rl.DisableCursor()

	if err := g.LoadScene(scene); err != nil {
		return err
	}

	src := input.NewKeyboard()
	for !rl.WindowShouldClose() {
		start := time.Now()
		if err := g.Tick(rl.GetFrameTime(), src.Poll()); err != nil {
			return err
		}
		g.PollConfig()
		g.updateCursor()
		g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0

		g.Draw()
	}
	return nil
}

// updateCursor frees the mouse while the win panel is up so the restart
// button can be clicked.
func (g *Game) updateCursor() {
	paused := g.World.Paused()
	if paused && rl.IsCursorHidden() {
		rl.EnableCursor()
		g.log.Debug("cursor released")
	} else if !paused && !rl.IsCursorHidden() {
		rl.DisableCursor()
	}
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	if g.camera != nil {
		aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
		g.World.Renderer.Draw(g.camera.GetRaylibCamera(), aspect, g.World.Scene)
	}
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawCanvases()
	g.DrawUI()
	rl.EndDrawing()
}

// drawCanvases paints every active HUD canvas in SortOrder.
func (g *Game) drawCanvases() {
	var canvases []*components.UICanvas
	for _, obj := range g.World.Scene.GameObjects {
		if !obj.ActiveInHierarchy() {
			continue
		}
		if c := engine.GetComponent[*components.UICanvas](obj); c != nil {
			canvases = append(canvases, c)
		}
	}
	slices.SortStableFunc(canvases, func(a, b *components.UICanvas) int {
		return a.SortOrder - b.SortOrder
	})

	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	for _, c := range canvases {
		c.Draw(sw, sh)
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Mouse to look, R to restart", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 to toggle debug view", 10, 35, 20, rl.LightGray)

	if !g.DebugMode {
		return
	}
	rl.DrawFPS(10, 60)

	r := g.World.Renderer
	y := int32(85)
	line := func(text string, color rl.Color) {
		rl.DrawText(text, 10, y, 16, color)
		y += 20
	}
	line(fmt.Sprintf("Update: %.2f ms", g.updateMs), rl.Green)
	line(fmt.Sprintf("Draw:   %.2f ms (%d drawn, %d culled)", g.drawMs, r.Drawn, r.Culled), rl.Green)
	line(fmt.Sprintf("Time:   %.2f s", g.World.Now()), rl.Lime)
	if p := g.player; p != nil {
		pos := p.GetGameObject().Transform.Position
		line(fmt.Sprintf("Pos:    (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), rl.Yellow)
		line(fmt.Sprintf("Ground: %v  Jump: %.1f", p.Grounded(), p.JumpForce()), rl.Yellow)
	}
}
