package gameplay

import "personaje/internal/engine"

const (
	TagPlayer      = "Player"
	TagCollectible = "Collectible"
	TagPowerUp     = "PowerUp"
)

// Collectible marks a trigger volume worth points. Value 0 means the
// player's per-collectible default.
type Collectible struct {
	engine.BaseComponent
	Value int
}

// PowerUp marks a trigger volume that temporarily replaces the jump force.
// Zero fields fall back to the player's configured boost.
type PowerUp struct {
	engine.BaseComponent
	JumpForce float32
	Duration  float32
}

// Spinner turns a pickup about the Y axis so it reads as collectible.
type Spinner struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += s.Speed * deltaTime
	if g.Transform.Rotation.Y >= 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func init() {
	engine.RegisterScript("Collectible", collectibleFactory, collectibleSerializer)
	engine.RegisterScript("PowerUp", powerUpFactory, powerUpSerializer)
	engine.RegisterScript("Spinner", spinnerFactory, spinnerSerializer)
}

func collectibleFactory(props map[string]any) engine.Component {
	return &Collectible{Value: engine.PropInt(props, "value", 0)}
}

func collectibleSerializer(c engine.Component) map[string]any {
	col, ok := c.(*Collectible)
	if !ok {
		return nil
	}
	return map[string]any{"value": col.Value}
}

func powerUpFactory(props map[string]any) engine.Component {
	return &PowerUp{
		JumpForce: engine.PropFloat(props, "jumpForce", 0),
		Duration:  engine.PropFloat(props, "duration", 0),
	}
}

func powerUpSerializer(c engine.Component) map[string]any {
	p, ok := c.(*PowerUp)
	if !ok {
		return nil
	}
	return map[string]any{"jumpForce": p.JumpForce, "duration": p.Duration}
}

func spinnerFactory(props map[string]any) engine.Component {
	return &Spinner{Speed: engine.PropFloat(props, "speed", 90)}
}

func spinnerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Spinner)
	if !ok {
		return nil
	}
	return map[string]any{"speed": s.Speed}
}
