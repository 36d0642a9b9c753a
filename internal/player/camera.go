package player

import (
	"math"
	"mini-voxel/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up vector the camera basis is built against.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a first-person view: a position plus yaw/pitch in degrees, with
// the derived Front/Right/Up basis.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float64
	Pitch    float64

	Front mgl32.Vec3
	Right mgl32.Vec3
	Up    mgl32.Vec3

	Sensitivity float64

	projection mgl32.Mat4
}

// NewCamera places a camera at pos looking along yaw/pitch (degrees).
func NewCamera(pos mgl32.Vec3, yaw, pitch float64) *Camera {
	c := &Camera{
		Position:    pos,
		Yaw:         yaw,
		Pitch:       clampPitch(pitch),
		Up:          WorldUp,
		Sensitivity: 0.1,
		projection: mgl32.Perspective(
			mgl32.DegToRad(config.FOV),
			config.AspectRatio,
			config.NearPlane,
			config.FarPlane,
		),
	}
	c.RecomputeBasis()
	return c
}

// UpdateOrientation adds the deltas to yaw and pitch, clamps pitch to
// ±PitchLimit afterwards and rebuilds the basis.
func (c *Camera) UpdateOrientation(yawDelta, pitchDelta float64) {
	c.Yaw += yawDelta
	c.Pitch = clampPitch(c.Pitch + pitchDelta)
	c.RecomputeBasis()
}

// ProcessMouse applies a raw cursor delta. dy is positive when the mouse
// moves up the screen.
func (c *Camera) ProcessMouse(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.UpdateOrientation(dx*c.Sensitivity, dy*c.Sensitivity)
}

// RecomputeBasis derives Front and Right from yaw and pitch.
func (c *Camera) RecomputeBasis() {
	y := float64(mgl32.DegToRad(float32(c.Yaw)))
	p := float64(mgl32.DegToRad(float32(c.Pitch)))
	c.Front = mgl32.Vec3{
		float32(math.Cos(p) * math.Cos(y)),
		float32(math.Sin(p)),
		float32(math.Cos(p) * math.Sin(y)),
	}.Normalize()
	c.Right = c.Front.Cross(WorldUp).Normalize()
	c.Up = WorldUp
}

// ViewMatrix looks from Position along Front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the fixed perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// RayFromScreen turns a cursor position in window pixels into a unit
// world-space direction through that pixel.
func (c *Camera) RayFromScreen(x, y float64, width, height int) mgl32.Vec3 {
	ndcX := float32(2*x/float64(width) - 1)
	ndcY := float32(1 - 2*y/float64(height))
	clip := mgl32.Vec4{ndcX, ndcY, -1, 1}

	eye := c.ProjectionMatrix().Inv().Mul4x1(clip)
	eye = mgl32.Vec4{eye.X(), eye.Y(), -1, 0}

	dir := c.ViewMatrix().Inv().Mul4x1(eye).Vec3()
	if dir.Len() == 0 {
		return c.Front
	}
	return dir.Normalize()
}

func clampPitch(p float64) float64 {
	if p > config.PitchLimit {
		return config.PitchLimit
	}
	if p < -config.PitchLimit {
		return -config.PitchLimit
	}
	return p
}
