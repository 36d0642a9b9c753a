// Package submit turns the voxel grid into per-cube draw submissions. It has
// no GL dependency; the backend supplies the CubeDrawer.
package submit

import (
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeDrawer draws one unit cube with the given model transform.
type CubeDrawer interface {
	DrawCube(model mgl32.Mat4, kind world.BlockKind)
}

// Model returns the transform for the voxel at (x, y, z): a pure translation.
func Model(x, y, z int) mgl32.Mat4 {
	return mgl32.Translate3D(float32(x), float32(y), float32(z))
}

// Voxels submits one draw per solid voxel and returns how many were issued.
func Voxels(g *world.Grid, d CubeDrawer) int {
	n := 0
	g.ForEachSolid(func(x, y, z int, kind world.BlockKind) {
		d.DrawCube(Model(x, y, z), kind)
		n++
	})
	return n
}

// DrawFunc adapts a plain function to CubeDrawer.
type DrawFunc func(model mgl32.Mat4, kind world.BlockKind)

func (f DrawFunc) DrawCube(model mgl32.Mat4, kind world.BlockKind) {
	f(model, kind)
}
