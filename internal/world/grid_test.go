package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z int
		want    bool
	}{
		{"origin", 0, 0, 0, true},
		{"far corner", Size - 1, Size - 1, Size - 1, true},
		{"negative x", -1, 0, 0, false},
		{"negative y", 0, -1, 0, false},
		{"negative z", 0, 0, -1, false},
		{"x at size", Size, 0, 0, false},
		{"y at size", 0, Size, 0, false},
		{"z at size", 0, 0, Size, false},
		{"far outside", 1000, -1000, 42, false},
	}

	g := NewGrid()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBounds(tt.x, tt.y, tt.z))
			assert.Equal(t, tt.want, g.InBounds(tt.x, tt.y, tt.z))
		})
	}
}

func TestGridOutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid()
	GenerateFlat(g)
	before := g.CountSolid()

	outside := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{Size, 0, 0}, {0, Size, 0}, {0, 0, Size},
		{-7, Size + 3, 99},
	}
	for _, p := range outside {
		assert.Equal(t, BlockEmpty, g.Get(p[0], p[1], p[2]), "get %v", p)
		assert.ErrorIs(t, g.Set(p[0], p[1], p[2], BlockGrass), ErrOutOfBounds, "set %v", p)
	}
	assert.Equal(t, before, g.CountSolid())
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Set(3, 7, 11, BlockGrass))

	assert.Equal(t, BlockGrass, g.Get(3, 7, 11))
	assert.True(t, g.IsSolid(3, 7, 11))
	// Neighbours along each stride must stay untouched.
	assert.Equal(t, BlockEmpty, g.Get(4, 7, 11))
	assert.Equal(t, BlockEmpty, g.Get(3, 8, 11))
	assert.Equal(t, BlockEmpty, g.Get(3, 7, 12))

	require.NoError(t, g.Set(3, 7, 11, BlockEmpty))
	assert.Equal(t, 0, g.CountSolid())
}

func TestForEachSolid(t *testing.T) {
	g := NewGrid()
	want := map[[3]int]bool{
		{0, 0, 0}:                      true,
		{Size - 1, 0, 0}:               true,
		{0, Size - 1, 0}:               true,
		{0, 0, Size - 1}:               true,
		{Size - 1, Size - 1, Size - 1}: true,
	}
	for p := range want {
		require.NoError(t, g.Set(p[0], p[1], p[2], BlockGrass))
	}

	got := map[[3]int]bool{}
	g.ForEachSolid(func(x, y, z int, kind BlockKind) {
		assert.Equal(t, BlockGrass, kind)
		got[[3]int{x, y, z}] = true
	})
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), g.CountSolid())
}

func TestBlockKind(t *testing.T) {
	assert.False(t, BlockEmpty.IsSolid())
	assert.Equal(t, "", BlockEmpty.RenderTag())
	assert.True(t, BlockGrass.IsSolid())
	assert.Equal(t, "grass_block.png", BlockGrass.RenderTag())
	assert.Equal(t, "grass", BlockGrass.String())
	assert.Equal(t, []BlockKind{BlockGrass}, SolidKinds())
	assert.Equal(t, "unknown", BlockKind(200).String())
}

func TestCubeMeshLayout(t *testing.T) {
	assert.Len(t, CubeVertices, CubeVertexCount*CubeVertexStride)
	assert.Len(t, CubeWireframeVertices, 24*3)
	for i := 0; i < len(CubeVertices); i += CubeVertexStride {
		for a := 0; a < 3; a++ {
			v := CubeVertices[i+a]
			assert.True(t, v == 0 || v == 1, "vertex %d axis %d = %v", i/CubeVertexStride, a, v)
		}
	}
}
