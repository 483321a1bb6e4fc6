// Package input turns keyboard and gamepad state into player controller
// calls.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Source supplies one frame of player input. Axes are in [-1, 1] with
// positive h to the right and positive v away from the camera.
type Source interface {
	Axes() (h, v float32)
	ActionPressed() bool
}

// Raylib reads WASD/arrow keys and the left stick of one gamepad. Keyboard
// input wins when both are active.
type Raylib struct {
	Gamepad  int32
	DeadZone float32
}

func NewRaylib(gamepad int32, deadZone float32) *Raylib {
	return &Raylib{Gamepad: gamepad, DeadZone: deadZone}
}

func (r *Raylib) Axes() (h, v float32) {
	h = keyAxis(rl.KeyA, rl.KeyD) + keyAxis(rl.KeyLeft, rl.KeyRight)
	v = keyAxis(rl.KeyS, rl.KeyW) + keyAxis(rl.KeyDown, rl.KeyUp)
	if h != 0 || v != 0 {
		return rl.Clamp(h, -1, 1), rl.Clamp(v, -1, 1)
	}
	if !rl.IsGamepadAvailable(r.Gamepad) {
		return 0, 0
	}
	h = ApplyDeadZone(rl.GetGamepadAxisMovement(r.Gamepad, rl.GamepadAxisLeftX), r.DeadZone)
	// Stick Y grows downward.
	v = ApplyDeadZone(-rl.GetGamepadAxisMovement(r.Gamepad, rl.GamepadAxisLeftY), r.DeadZone)
	return h, v
}

func (r *Raylib) ActionPressed() bool {
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyE) {
		return true
	}
	return rl.IsGamepadAvailable(r.Gamepad) && rl.IsGamepadButtonPressed(r.Gamepad, rl.GamepadButtonRightFaceDown)
}

func keyAxis(neg, pos int32) float32 {
	var v float32
	if rl.IsKeyDown(neg) {
		v--
	}
	if rl.IsKeyDown(pos) {
		v++
	}
	return v
}

// ApplyDeadZone zeroes |x| below dz and rescales the rest so the output
// still spans [-1, 1].
func ApplyDeadZone(x, dz float32) float32 {
	if dz <= 0 {
		return rl.Clamp(x, -1, 1)
	}
	if dz >= 1 {
		return 0
	}
	mag := x
	if mag < 0 {
		mag = -mag
	}
	if mag < dz {
		return 0
	}
	scaled := rl.Clamp((mag-dz)/(1-dz), 0, 1)
	if x < 0 {
		return -scaled
	}
	return scaled
}
