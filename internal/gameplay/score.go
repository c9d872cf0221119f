package gameplay

// Scoreboard tracks points toward a target. The win latches: once reached
// it is reported exactly once.
type Scoreboard struct {
	score  int
	target int
	won    bool
}

func NewScoreboard(target int) Scoreboard {
	return Scoreboard{target: target}
}

// Add credits points and reports whether this call reached the target.
// Negative points are ignored. A target of 0 or less never wins.
func (s *Scoreboard) Add(points int) (won bool) {
	if points > 0 {
		s.score += points
	}
	return s.check()
}

func (s *Scoreboard) check() bool {
	if s.won || s.target <= 0 || s.score < s.target {
		return false
	}
	s.won = true
	return true
}

func (s *Scoreboard) Score() int  { return s.score }
func (s *Scoreboard) Target() int { return s.target }
func (s *Scoreboard) Won() bool   { return s.won }
