package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"personaje/internal/components"
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testScene = `{
  "name": "Test",
  "objects": [
    {
      "name": "Ground",
      "tags": ["Ground"],
      "layer": "ground",
      "position": [0, -0.5, 0],
      "components": [
        {"type": "MeshRenderer", "mesh": "cube", "size": [20, 1, 20], "color": "#556b2fff"},
        {"type": "BoxCollider", "size": [20, 1, 20]}
      ]
    },
    {
      "name": "Player",
      "layer": "player",
      "position": [0, 1, 0],
      "rotation": [0, 90, 0],
      "components": [
        {"type": "BoxCollider", "size": [1, 2, 1]},
        {"type": "Rigidbody", "mass": 2, "drag": 0.5},
        {"type": "Teleporter"},
        {"type": "Script", "name": "NoSuchScript"}
      ],
      "children": [
        {"name": "GroundCheck", "position": [0, -1, 0]}
      ]
    },
    {
      "name": "HUD",
      "components": [{"type": "UICanvas"}],
      "children": [
        {
          "name": "WinPanel",
          "active": false,
          "components": [
            {"type": "RectTransform", "anchor": "middle-center", "size": [400, 200]},
            {"type": "UIPanel", "color": "DarkGray"}
          ],
          "children": [
            {
              "name": "RestartButton",
              "components": [
                {"type": "RectTransform", "anchor": "bottom-center", "position": [0, -20], "size": [160, 40]},
                {"type": "UIButton", "label": "Restart"}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestLoadSceneData(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	w := New(zap.New(core), Options{})

	if err := w.LoadSceneData([]byte(testScene)); err != nil {
		t.Fatalf("LoadSceneData: %v", err)
	}
	if w.Scene.Name != "Test" {
		t.Errorf("scene name = %q", w.Scene.Name)
	}

	ground := w.Scene.FindByName("Ground")
	if ground == nil || ground.Layer != engine.LayerGround || !ground.HasTag("Ground") {
		t.Fatalf("ground not loaded correctly: %+v", ground)
	}
	mr := engine.GetComponent[*components.MeshRenderer](ground)
	if mr == nil || mr.Color != rl.NewColor(0x55, 0x6b, 0x2f, 0xff) {
		t.Errorf("hex color not parsed: %+v", mr)
	}

	player := w.Scene.FindByName("Player")
	rb := engine.GetComponent[*components.Rigidbody](player)
	if rb == nil || rb.Mass != 2 || rb.Drag != 0.5 || !rb.UseGravity {
		t.Errorf("rigidbody not loaded correctly: %+v", rb)
	}
	if player.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("missing scale should default to 1, got %+v", player.Transform.Scale)
	}

	check := player.FindChild("GroundCheck")
	if check == nil || w.Scene.FindByName("GroundCheck") != check {
		t.Fatal("children should be attached to their parent and registered in the scene")
	}
	if pos := check.WorldPosition(); !near(pos.Y, 0) {
		t.Errorf("ground check should sit at the player's base, got %+v", pos)
	}

	panel := w.Scene.FindByName("WinPanel")
	if panel == nil || panel.Active {
		t.Error("inactive flag not honoured")
	}
	if btn := engine.GetComponent[*components.UIButton](w.Scene.FindByName("RestartButton")); btn == nil || btn.Label != "Restart" {
		t.Error("nested button not loaded")
	}

	if got := logs.FilterMessage("skipping component").Len(); got != 2 {
		t.Errorf("expected 2 skipped components, got %d", got)
	}
}

func TestLoadSceneReplacesPreviousScene(t *testing.T) {
	w := New(nil, Options{})
	if err := w.LoadSceneData([]byte(testScene)); err != nil {
		t.Fatal(err)
	}
	w.Pause()

	if err := w.LoadSceneData([]byte(`{"objects": [{"name": "Only"}]}`)); err != nil {
		t.Fatal(err)
	}
	if len(w.Scene.GameObjects) != 1 {
		t.Errorf("expected a fresh scene, got %d objects", len(w.Scene.GameObjects))
	}
	if w.Paused() || w.Now() != 0 {
		t.Error("loading a scene should reset pause and clock")
	}
	if w.Scene.World != w {
		t.Error("new scene should be bound to the world")
	}
}

func TestLoadSceneErrors(t *testing.T) {
	w := New(nil, Options{})

	if err := w.LoadSceneData([]byte(`{"objects": [`)); err == nil {
		t.Error("malformed JSON should fail")
	}
	if err := w.LoadSceneData([]byte(`{"objects": [{"name": "X", "layer": "lava"}]}`)); err == nil {
		t.Error("unknown layer should fail")
	}
	if err := w.LoadScene(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	cam := rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	f := ExtractFrustum(cam, 16.0/9.0)

	if !f.ContainsSphere(rl.Vector3{Z: 10}, 1) {
		t.Error("sphere in front of the camera should be visible")
	}
	if f.ContainsSphere(rl.Vector3{Z: -10}, 1) {
		t.Error("sphere behind the camera should be culled")
	}
	if f.ContainsSphere(rl.Vector3{X: 100, Z: 5}, 1) {
		t.Error("sphere far to the side should be culled")
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}
