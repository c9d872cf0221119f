package gameplay

// Boost is the temporary jump-force override installed by a power-up.
// Times are world seconds, so a paused world freezes the countdown.
type Boost struct {
	base      float32
	force     float32
	expiresAt float64
	active    bool
}

func NewBoost(base float32) Boost {
	return Boost{base: base, force: base}
}

// Apply installs force until now+duration. A boost already running has its
// timer restarted; a shorter duration never pulls its expiry earlier, and
// forces never stack.
func (b *Boost) Apply(force, duration float32, now float64) {
	expiresAt := now + float64(duration)
	if b.active && b.expiresAt > expiresAt {
		expiresAt = b.expiresAt
	}
	b.force = force
	b.expiresAt = expiresAt
	b.active = true
}

// Tick reverts to the base force once the boost has expired. It returns
// true on the call that ends the boost.
func (b *Boost) Tick(now float64) bool {
	if !b.active || now < b.expiresAt {
		return false
	}
	b.active = false
	b.force = b.base
	return true
}

func (b *Boost) JumpForce() float32 { return b.force }

func (b *Boost) Active() bool { return b.active }

func (b *Boost) ExpiresAt() float64 { return b.expiresAt }

// Remaining returns the seconds left on the boost, or 0.
func (b *Boost) Remaining(now float64) float32 {
	if !b.active || now >= b.expiresAt {
		return 0
	}
	return float32(b.expiresAt - now)
}

// SetBase changes the unboosted force. A running boost keeps its override.
func (b *Boost) SetBase(base float32) {
	b.base = base
	if !b.active {
		b.force = base
	}
}
