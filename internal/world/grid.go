package world

import "errors"

// Size is the extent of the grid on every axis.
const Size = 16

const volume = Size * Size * Size

// ErrOutOfBounds is returned by writes outside [0, Size) on any axis.
var ErrOutOfBounds = errors.New("world: coordinate out of bounds")

// InBounds reports whether (x, y, z) addresses a voxel of the grid. It is the
// only place the bounds arithmetic lives.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Size
}

// Grid is a fixed Size³ block of voxels backed by a flat buffer.
type Grid struct {
	blocks [volume]BlockKind
}

// NewGrid returns an all-empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

func index(x, y, z int) int {
	return x + Size*(y+Size*z)
}

// InBounds is a convenience for the package-level predicate.
func (g *Grid) InBounds(x, y, z int) bool {
	return InBounds(x, y, z)
}

// Get returns the kind at (x, y, z), or BlockEmpty outside the grid.
func (g *Grid) Get(x, y, z int) BlockKind {
	if !InBounds(x, y, z) {
		return BlockEmpty
	}
	return g.blocks[index(x, y, z)]
}

// Set writes kind at (x, y, z). Outside the grid nothing is written and
// ErrOutOfBounds is returned.
func (g *Grid) Set(x, y, z int, kind BlockKind) error {
	if !InBounds(x, y, z) {
		return ErrOutOfBounds
	}
	g.blocks[index(x, y, z)] = kind
	return nil
}

// IsSolid is shorthand for Get(x, y, z).IsSolid().
func (g *Grid) IsSolid(x, y, z int) bool {
	return g.Get(x, y, z).IsSolid()
}

// Clear empties every voxel.
func (g *Grid) Clear() {
	g.blocks = [volume]BlockKind{}
}

// ForEachSolid calls fn for every non-empty voxel, x fastest then y then z.
func (g *Grid) ForEachSolid(fn func(x, y, z int, kind BlockKind)) {
	for i, kind := range g.blocks {
		if !kind.IsSolid() {
			continue
		}
		x := i % Size
		y := (i / Size) % Size
		z := i / (Size * Size)
		fn(x, y, z, kind)
	}
}

// CountSolid returns the number of non-empty voxels.
func (g *Grid) CountSolid() int {
	n := 0
	for _, kind := range g.blocks {
		if kind.IsSolid() {
			n++
		}
	}
	return n
}
