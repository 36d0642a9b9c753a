package physics

import (
	"math"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultStep is the marching increment used when the caller passes a
	// non-positive step.
	DefaultStep = 0.05
	// DefaultReach is how far the camera can interact with blocks.
	DefaultReach = 8.0
)

// RaycastResult stores the result of a raycast operation. Hit=false means
// nothing solid was found within range.
type RaycastResult struct {
	Voxel    [3]int
	Normal   [3]int
	Distance float32
	Hit      bool
}

// Adjacent returns the voxel touching the struck face, where a placed block
// would go.
func (r RaycastResult) Adjacent() [3]int {
	return [3]int{
		r.Voxel[0] + r.Normal[0],
		r.Voxel[1] + r.Normal[1],
		r.Voxel[2] + r.Normal[2],
	}
}

// Raycast marches from origin along direction in fixed increments of step,
// up to maxDist, and reports the first in-bounds solid voxel it samples.
func Raycast(origin, direction mgl32.Vec3, grid *world.Grid, maxDist, step float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if direction.Len() == 0 || maxDist < 0 {
		return RaycastResult{}
	}
	if step <= 0 {
		step = DefaultStep
	}
	dir := direction.Normalize()
	steps := int(maxDist / step)

	for i := 0; i <= steps; i++ {
		dist := float32(i) * step
		sample := origin.Add(dir.Mul(dist))
		voxel := voxelAt(sample)

		if !world.InBounds(voxel[0], voxel[1], voxel[2]) {
			continue
		}
		if !grid.IsSolid(voxel[0], voxel[1], voxel[2]) {
			continue
		}

		prev := voxelAt(origin.Add(dir.Mul(dist - step)))
		normal, ok := backStepNormal(voxel, prev)
		if !ok {
			normal = offsetNormal(sample, voxel, dir)
		}
		return RaycastResult{
			Voxel:    voxel,
			Normal:   normal,
			Distance: dist,
			Hit:      true,
		}
	}

	return RaycastResult{}
}

func voxelAt(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// backStepNormal derives the struck face from the voxel the previous sample
// fell in. It only succeeds when the two voxels share a face.
func backStepNormal(hit, prev [3]int) ([3]int, bool) {
	var n [3]int
	axes := 0
	for a := 0; a < 3; a++ {
		d := prev[a] - hit[a]
		switch d {
		case 0:
		case 1, -1:
			n[a] = d
			axes++
		default:
			return [3]int{}, false
		}
	}
	return n, axes == 1
}

// offsetNormal picks the face whose axis dominates the sample's offset from
// the voxel centre. Ties go to x, then y, then z.
func offsetNormal(sample mgl32.Vec3, voxel [3]int, dir mgl32.Vec3) [3]int {
	var off [3]float32
	for a := 0; a < 3; a++ {
		off[a] = sample[a] - (float32(voxel[a]) + 0.5)
	}

	axis := dominantAxis(off)
	var n [3]int
	switch {
	case off[axis] > 0:
		n[axis] = 1
	case off[axis] < 0:
		n[axis] = -1
	default:
		// Sample sits on the centre: face the ray came through.
		axis = dominantAxis([3]float32{dir[0], dir[1], dir[2]})
		if dir[axis] > 0 {
			n[axis] = -1
		} else {
			n[axis] = 1
		}
	}
	return n
}

func dominantAxis(v [3]float32) int {
	axis := 0
	best := abs32(v[0])
	for a := 1; a < 3; a++ {
		if m := abs32(v[a]); m > best {
			axis, best = a, m
		}
	}
	return axis
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
