package player

import "github.com/go-gl/mathgl/mgl32"

// MoveKeys is the set of movement keys held this frame.
type MoveKeys uint8

const (
	MoveForward MoveKeys = 1 << iota
	MoveBack
	MoveLeft
	MoveRight
)

// Has reports whether every key in k is held.
func (m MoveKeys) Has(k MoveKeys) bool {
	return m&k == k
}

// MoveByKeys moves the camera along its basis. The combined direction is
// normalized so diagonals are not faster, then scaled by speed*dt.
func (c *Camera) MoveByKeys(keys MoveKeys, speed float32, dt float64) {
	dir := mgl32.Vec3{}
	if keys.Has(MoveForward) {
		dir = dir.Add(c.Front)
	}
	if keys.Has(MoveBack) {
		dir = dir.Sub(c.Front)
	}
	if keys.Has(MoveLeft) {
		dir = dir.Sub(c.Right)
	}
	if keys.Has(MoveRight) {
		dir = dir.Add(c.Right)
	}
	if dir.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(dir.Normalize().Mul(speed * float32(dt)))
}
