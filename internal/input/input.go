// Package input abstracts the player's controls so gameplay can run from a
// keyboard, a gamepad, or a recorded script.
package input

// State is one frame of raw input. Buttons are levels (held or not); edge
// detection is the consumer's job.
type State struct {
	Horizontal float32 // -1 left .. 1 right
	Vertical   float32 // -1 back .. 1 forward
	LookX      float32
	LookY      float32
	Jump       bool
	Restart    bool
	Debug      bool
}

// Source produces input once per rendered frame.
type Source interface {
	Poll() State
}

// Edge turns a button level into rising-edge events.
type Edge struct {
	held bool
}

// Pressed reports true only on the frame the button goes from up to down.
func (e *Edge) Pressed(down bool) bool {
	pressed := down && !e.held
	e.held = down
	return pressed
}

// Reset forgets the previous level, so a held button must be released first.
func (e *Edge) Reset(down bool) {
	e.held = down
}

func clampAxis(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
