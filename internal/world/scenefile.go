package world

import (
	"encoding/json"
	"fmt"
	"os"

	"personaje/internal/components"
	"personaje/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type      string     `json:"type"`
	Size      [3]float32 `json:"size"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

type sphereColliderDef struct {
	Type      string     `json:"type"`
	Radius    float32    `json:"radius"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

type rigidbodyDef struct {
	Type        string  `json:"type"`
	Mass        float32 `json:"mass,omitempty"`
	Drag        float32 `json:"drag,omitempty"`
	UseGravity  *bool   `json:"useGravity,omitempty"`
	IsKinematic bool    `json:"isKinematic,omitempty"`
}

type orbitCameraDef struct {
	Type   string  `json:"type"`
	Target string  `json:"target"`
	Yaw    float32 `json:"yaw,omitempty"`
}

type rectTransformDef struct {
	Type     string     `json:"type"`
	Anchor   string     `json:"anchor"`
	Position [2]float32 `json:"position,omitempty"`
	Size     [2]float32 `json:"size,omitempty"`
}

type uiCanvasDef struct {
	Type      string `json:"type"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

type uiTextDef struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	FontSize int32  `json:"fontSize,omitempty"`
	Color    string `json:"color,omitempty"`
	Align    string `json:"align,omitempty"`
}

type uiPanelDef struct {
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

type uiButtonDef struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// lookupColor accepts a color name or #rrggbb / #rrggbbaa.
func lookupColor(name string, fallback rl.Color) rl.Color {
	if name == "" {
		return fallback
	}
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b uint8
	a := uint8(255)
	switch len(name) {
	case 7:
		if _, err := fmt.Sscanf(name, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return rl.NewColor(r, g, b, a)
		}
	case 9:
		if _, err := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
			return rl.NewColor(r, g, b, a)
		}
	}
	return fallback
}

// --- Loading ---

// LoadScene replaces the current scene with the one in path. Objects are
// created but not started; call Start once external wiring is done.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.LoadSceneData(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	w.Reset()
	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	for _, def := range sf.Objects {
		if _, err := w.loadObject(def, nil); err != nil {
			return err
		}
	}
	w.log.Info("scene loaded",
		zap.String("scene", w.Scene.Name),
		zap.Int("objects", len(w.Scene.GameObjects)))
	return nil
}

func (w *World) loadObject(def ObjectDef, parent *engine.GameObject) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Layer != "" {
		layer, ok := engine.ParseLayer(def.Layer)
		if !ok {
			return nil, fmt.Errorf("object %q: unknown layer %q", def.Name, def.Layer)
		}
		g.Layer = layer
	}
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			w.log.Warn("skipping malformed component", zap.String("object", def.Name), zap.Error(err))
			continue
		}

		var c engine.Component
		var err error
		switch header.Type {
		case "MeshRenderer":
			c, err = loadMeshRenderer(raw)
		case "BoxCollider":
			c, err = loadBoxCollider(raw)
		case "SphereCollider":
			c, err = loadSphereCollider(raw)
		case "Rigidbody":
			c, err = loadRigidbody(raw)
		case "OrbitCamera":
			c, err = loadOrbitCamera(raw)
		case "RectTransform":
			c, err = loadRectTransform(raw)
		case "UICanvas":
			c, err = loadUICanvas(raw)
		case "UIText":
			c, err = loadUIText(raw)
		case "UIPanel":
			c, err = loadUIPanel(raw)
		case "UIButton":
			c, err = loadUIButton(raw)
		case "Script":
			c, err = loadScript(raw)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			w.log.Warn("skipping component",
				zap.String("object", def.Name),
				zap.String("type", header.Type),
				zap.Error(err))
			continue
		}
		g.AddComponent(c)
	}

	if parent != nil {
		parent.AddChild(g)
	}
	w.Scene.AddGameObject(g)

	for _, childDef := range def.Children {
		if _, err := w.loadObject(childDef, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func loadMeshRenderer(raw json.RawMessage) (engine.Component, error) {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	mesh, ok := components.ParseMeshType(def.Mesh)
	if !ok {
		return nil, fmt.Errorf("unknown mesh %q", def.Mesh)
	}
	size := rl.Vector3{X: def.Size[0], Y: def.Size[1], Z: def.Size[2]}
	return components.NewMeshRenderer(mesh, lookupColor(def.Color, rl.White), size), nil
}

func loadBoxCollider(raw json.RawMessage) (engine.Component, error) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	col := components.NewBoxCollider(rl.Vector3{X: def.Size[0], Y: def.Size[1], Z: def.Size[2]})
	col.Offset = rl.Vector3{X: def.Offset[0], Y: def.Offset[1], Z: def.Offset[2]}
	col.IsTrigger = def.IsTrigger
	return col, nil
}

func loadSphereCollider(raw json.RawMessage) (engine.Component, error) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	if def.Radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", def.Radius)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = rl.Vector3{X: def.Offset[0], Y: def.Offset[1], Z: def.Offset[2]}
	col.IsTrigger = def.IsTrigger
	return col, nil
}

func loadRigidbody(raw json.RawMessage) (engine.Component, error) {
	var def rigidbodyDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	rb := components.NewRigidbody()
	if def.Mass > 0 {
		rb.Mass = def.Mass
	}
	rb.Drag = def.Drag
	if def.UseGravity != nil {
		rb.UseGravity = *def.UseGravity
	}
	rb.IsKinematic = def.IsKinematic
	return rb, nil
}

func loadOrbitCamera(raw json.RawMessage) (engine.Component, error) {
	var def orbitCameraDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	cam := components.NewOrbitCamera(def.Target)
	cam.Yaw = def.Yaw
	return cam, nil
}

func loadRectTransform(raw json.RawMessage) (engine.Component, error) {
	var def rectTransformDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	rt := components.NewRectTransform()
	if def.Anchor != "" {
		preset, ok := components.ParseAnchorPreset(def.Anchor)
		if !ok {
			return nil, fmt.Errorf("unknown anchor %q", def.Anchor)
		}
		rt.SetAnchorPreset(preset)
	}
	rt.AnchoredPosition = rl.Vector2{X: def.Position[0], Y: def.Position[1]}
	rt.SizeDelta = rl.Vector2{X: def.Size[0], Y: def.Size[1]}
	return rt, nil
}

func loadUICanvas(raw json.RawMessage) (engine.Component, error) {
	var def uiCanvasDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	canvas := components.NewUICanvas()
	canvas.SortOrder = def.SortOrder
	return canvas, nil
}

func loadUIText(raw json.RawMessage) (engine.Component, error) {
	var def uiTextDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	text := components.NewUIText()
	text.Text = def.Text
	if def.FontSize > 0 {
		text.FontSize = def.FontSize
	}
	text.Color = lookupColor(def.Color, text.Color)
	text.Alignment = components.ParseTextAlignment(def.Align)
	return text, nil
}

func loadUIPanel(raw json.RawMessage) (engine.Component, error) {
	var def uiPanelDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	panel := components.NewUIPanel()
	panel.Color = lookupColor(def.Color, panel.Color)
	return panel, nil
}

func loadUIButton(raw json.RawMessage) (engine.Component, error) {
	var def uiButtonDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	return components.NewUIButton(def.Label), nil
}

func loadScript(raw json.RawMessage) (engine.Component, error) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, err
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		return nil, fmt.Errorf("unknown script %q", def.Name)
	}
	return comp, nil
}
