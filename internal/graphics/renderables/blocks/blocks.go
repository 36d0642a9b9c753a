package blocks

import (
	"fmt"
	"log"
	"path/filepath"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/graphics/submit"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Blocks draws every solid voxel as a textured unit cube, one draw call each.
type Blocks struct {
	assetsDir string

	shader   *graphics.Shader
	cube     *graphics.Mesh
	textures map[world.BlockKind]*graphics.Texture

	bound world.BlockKind
	// draws issued last frame
	Drawn int
}

// NewBlocks creates a new blocks renderable reading from assetsDir.
func NewBlocks(assetsDir string) *Blocks {
	return &Blocks{
		assetsDir: assetsDir,
		textures:  make(map[world.BlockKind]*graphics.Texture),
	}
}

// Init compiles the shader, uploads the cube and loads one texture per
// solid block kind.
func (b *Blocks) Init() error {
	dir := filepath.Join(b.assetsDir, "shaders", "blocks")

	var err error
	b.shader, err = graphics.NewShader(filepath.Join(dir, "main.vert"), filepath.Join(dir, "main.frag"))
	if err != nil {
		return err
	}

	for _, kind := range world.SolidKinds() {
		path := filepath.Join(b.assetsDir, "textures", kind.RenderTag())
		tex, err := graphics.LoadTexture(path)
		if err != nil {
			return fmt.Errorf("texture for %s: %w", kind, err)
		}
		b.textures[kind] = tex
	}
	log.Printf("Loaded %d block textures", len(b.textures))

	b.cube = graphics.NewMesh(world.CubeVertices, 3, 2)

	b.shader.Use()
	b.shader.SetInt("blockTexture", 0)
	return nil
}

// Render renders all solid blocks
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	// Apply wireframe polygon mode if toggled, then always reset to FILL after drawing blocks
	if ctx.Session.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.shader.Use()
	b.shader.SetMatrix4("view", &ctx.View[0])
	b.shader.SetMatrix4("proj", &ctx.Proj[0])

	b.bound = world.BlockEmpty
	b.Drawn = submit.Voxels(ctx.Session.Grid, b)
}

// DrawCube binds the kind's texture when it changes and draws the cube.
func (b *Blocks) DrawCube(model mgl32.Mat4, kind world.BlockKind) {
	if kind != b.bound {
		tex, ok := b.textures[kind]
		if !ok {
			return
		}
		tex.Bind(0)
		b.bound = kind
	}
	b.shader.SetMatrix4("model", &model[0])
	b.cube.Draw(gl.TRIANGLES)
}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	b.cube.Delete()
	for _, tex := range b.textures {
		tex.Delete()
	}
	clear(b.textures)
	b.shader.Delete()
}

func (b *Blocks) SetViewport(width, height int) {}
