package world

import (
	"github.com/aquilax/go-perlin"
)

// Terrain generators fill a grid in place. Both are deterministic and write
// the buffer directly; their loops never leave [0, Size).

// GenerateFlat clears g and fills the y=0 layer with grass.
func GenerateFlat(g *Grid) {
	g.Clear()
	for x := 0; x < Size; x++ {
		for z := 0; z < Size; z++ {
			g.blocks[index(x, 0, z)] = BlockGrass
		}
	}
}

const (
	hillsAlpha  = 2.0
	hillsBeta   = 2.0
	hillsOctave = int32(3)
	hillsScale  = 0.11
)

// GenerateHills clears g and raises grass columns from a Perlin height field.
// Every column is at least one block tall (y=0 is always solid) and at most
// maxHeight blocks tall.
func GenerateHills(g *Grid, seed int64, maxHeight int) {
	if maxHeight < 1 {
		maxHeight = 1
	}
	if maxHeight > Size {
		maxHeight = Size
	}

	g.Clear()
	noise := perlin.NewPerlin(hillsAlpha, hillsBeta, hillsOctave, seed)
	for x := 0; x < Size; x++ {
		for z := 0; z < Size; z++ {
			height := ColumnHeight(noise.Noise2D(float64(x)*hillsScale, float64(z)*hillsScale), maxHeight)
			for y := 0; y < height; y++ {
				g.blocks[index(x, y, z)] = BlockGrass
			}
		}
	}
}

// ColumnHeight maps a noise sample in roughly [-1, 1] to a column height in
// [1, maxHeight].
func ColumnHeight(sample float64, maxHeight int) int {
	n := (sample + 1) / 2
	h := 1 + int(n*float64(maxHeight))
	if h < 1 {
		h = 1
	}
	if h > maxHeight {
		h = maxHeight
	}
	return h
}
