package world

// BlockKind identifies what occupies a voxel.
type BlockKind uint8

const (
	BlockEmpty BlockKind = iota
	BlockGrass

	blockKindCount
)

type blockInfo struct {
	name      string
	renderTag string
}

var blockInfos = [blockKindCount]blockInfo{
	BlockEmpty: {name: "empty"},
	BlockGrass: {name: "grass", renderTag: "grass_block.png"},
}

// IsSolid reports whether the kind occupies its voxel.
func (k BlockKind) IsSolid() bool {
	return k != BlockEmpty
}

// RenderTag returns the texture name used to draw the kind, or "" for kinds
// that are never drawn.
func (k BlockKind) RenderTag() string {
	if k >= blockKindCount {
		return ""
	}
	return blockInfos[k].renderTag
}

func (k BlockKind) String() string {
	if k >= blockKindCount {
		return "unknown"
	}
	return blockInfos[k].name
}

// SolidKinds returns every kind that has a render tag, in declaration order.
func SolidKinds() []BlockKind {
	kinds := make([]BlockKind, 0, blockKindCount)
	for k := BlockKind(0); k < blockKindCount; k++ {
		if k.IsSolid() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

var (
	// CubeVertices is a unit cube spanning [0,1] on every axis, so a translation by
	// a voxel coordinate covers exactly that voxel cell: position (3) and uv (2)
	// per vertex, 36 vertices.
	CubeVertices = []float32{
		// NORTH (Z+)
		0, 0, 1, 0, 0,
		1, 0, 1, 1, 0,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		0, 1, 1, 0, 1,
		0, 0, 1, 0, 0,

		// SOUTH (Z-)
		1, 0, 0, 0, 0,
		0, 0, 0, 1, 0,
		0, 1, 0, 1, 1,
		0, 1, 0, 1, 1,
		1, 1, 0, 0, 1,
		1, 0, 0, 0, 0,

		// WEST (X-)
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 0,
		0, 1, 1, 1, 1,
		0, 1, 1, 1, 1,
		0, 1, 0, 0, 1,
		0, 0, 0, 0, 0,

		// EAST (X+)
		1, 0, 1, 0, 0,
		1, 0, 0, 1, 0,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 0, 1,
		1, 0, 1, 0, 0,

		// TOP
		0, 1, 1, 0, 0,
		1, 1, 1, 1, 0,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		0, 1, 0, 0, 1,
		0, 1, 1, 0, 0,

		// BOTTOM
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,
		1, 0, 1, 1, 1,
		1, 0, 1, 1, 1,
		0, 0, 1, 0, 1,
		0, 0, 0, 0, 0,
	}

	// CubeWireframeVertices holds the 12 cube edges as line pairs (24 vertices).
	CubeWireframeVertices = []float32{
		0, 0, 0, 1, 0, 0,
		1, 0, 0, 1, 0, 1,
		1, 0, 1, 0, 0, 1,
		0, 0, 1, 0, 0, 0,
		0, 1, 0, 1, 1, 0,
		1, 1, 0, 1, 1, 1,
		1, 1, 1, 0, 1, 1,
		0, 1, 1, 0, 1, 0,
		0, 0, 0, 0, 1, 0,
		1, 0, 0, 1, 1, 0,
		1, 0, 1, 1, 1, 1,
		0, 0, 1, 0, 1, 1,
	}
)

const (
	CubeVertexStride = 5
	CubeVertexCount  = 36
)
