package game

import "mini-voxel/internal/player"

// Input is the input state for one frame. The session never reads devices
// directly; the caller fills this in once per frame.
type Input struct {
	MouseDX, MouseDY float64
	CursorX, CursorY float64

	Keys player.MoveKeys

	// Break and Place are level-triggered: true on every frame the button is held.
	Break bool
	Place bool

	Quit            bool
	ToggleWireframe bool
}
