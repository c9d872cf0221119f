package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard reads WASD/arrow keys, Space, and the mouse, merged with the
// first connected gamepad. Must be polled from the window's goroutine.
type Keyboard struct {
	Gamepad   int32
	StickDead float32
	LookScale float32 // right-stick look multiplier
}

func NewKeyboard() *Keyboard {
	return &Keyboard{StickDead: 0.15, LookScale: 8}
}

func (k *Keyboard) Poll() State {
	var s State

	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		s.Horizontal += 1
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		s.Horizontal -= 1
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		s.Vertical += 1
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		s.Vertical -= 1
	}

	mouse := rl.GetMouseDelta()
	s.LookX, s.LookY = mouse.X, mouse.Y

	s.Jump = rl.IsKeyDown(rl.KeySpace)
	s.Restart = rl.IsKeyDown(rl.KeyR)
	s.Debug = rl.IsKeyDown(rl.KeyF1)

	if rl.IsGamepadAvailable(k.Gamepad) {
		lx := rl.GetGamepadAxisMovement(k.Gamepad, rl.GamepadAxisLeftX)
		ly := rl.GetGamepadAxisMovement(k.Gamepad, rl.GamepadAxisLeftY)
		if lx*lx+ly*ly > k.StickDead*k.StickDead {
			s.Horizontal += lx
			s.Vertical -= ly // stick up is negative
		}
		rx := rl.GetGamepadAxisMovement(k.Gamepad, rl.GamepadAxisRightX)
		ry := rl.GetGamepadAxisMovement(k.Gamepad, rl.GamepadAxisRightY)
		if rx*rx+ry*ry > k.StickDead*k.StickDead {
			s.LookX += rx * k.LookScale
			s.LookY += ry * k.LookScale
		}
		s.Jump = s.Jump || rl.IsGamepadButtonDown(k.Gamepad, rl.GamepadButtonRightFaceDown)
		s.Restart = s.Restart || rl.IsGamepadButtonDown(k.Gamepad, rl.GamepadButtonMiddleRight)
	}

	s.Horizontal = clampAxis(s.Horizontal)
	s.Vertical = clampAxis(s.Vertical)
	return s
}
