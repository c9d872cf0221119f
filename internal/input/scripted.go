package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step holds one input state for a number of frames.
type Step struct {
	Frames     int     `yaml:"frames"`
	Horizontal float32 `yaml:"horizontal"`
	Vertical   float32 `yaml:"vertical"`
	Jump       bool    `yaml:"jump"`
	Restart    bool    `yaml:"restart"`
}

// Scripted replays a fixed list of steps, then reports idle input.
// Used for headless runs and tests.
type Scripted struct {
	steps []Step
	index int
	frame int
}

func NewScripted(steps ...Step) *Scripted {
	return &Scripted{steps: steps}
}

// LoadScript reads a YAML list of steps.
func LoadScript(path string) (*Scripted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read script: %w", err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("input: parse script %s: %w", path, err)
	}
	for i, st := range steps {
		if st.Frames <= 0 {
			return nil, fmt.Errorf("input: script %s step %d: frames must be positive", path, i)
		}
	}
	return NewScripted(steps...), nil
}

func (s *Scripted) Poll() State {
	for s.index < len(s.steps) && s.frame >= s.steps[s.index].Frames {
		s.index++
		s.frame = 0
	}
	if s.index >= len(s.steps) {
		return State{}
	}
	st := s.steps[s.index]
	s.frame++
	return State{
		Horizontal: clampAxis(st.Horizontal),
		Vertical:   clampAxis(st.Vertical),
		Jump:       st.Jump,
		Restart:    st.Restart,
	}
}

// Done reports whether every step has been played.
func (s *Scripted) Done() bool {
	return s.index >= len(s.steps) ||
		(s.index == len(s.steps)-1 && s.frame >= s.steps[s.index].Frames)
}

// Frames returns the total number of frames in the script.
func (s *Scripted) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.Frames
	}
	return n
}
