package crosshair

import (
	"path/filepath"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertices are the two crosshair strokes in NDC.
var Vertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Crosshair draws a plus sign at the screen centre. Set Hidden when picking
// follows the cursor.
type Crosshair struct {
	assetsDir string
	Hidden    bool

	shader *graphics.Shader
	lines  *graphics.Mesh
}

// NewCrosshair creates a new crosshair renderable
func NewCrosshair(assetsDir string) *Crosshair {
	return &Crosshair{assetsDir: assetsDir}
}

// Init initializes the crosshair rendering system
func (c *Crosshair) Init() error {
	dir := filepath.Join(c.assetsDir, "shaders", "crosshair")

	var err error
	c.shader, err = graphics.NewShader(filepath.Join(dir, "crosshair.vert"), filepath.Join(dir, "crosshair.frag"))
	if err != nil {
		return err
	}

	c.lines = graphics.NewMesh(Vertices, 2)
	return nil
}

// Render renders the crosshair
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	if c.Hidden {
		return
	}
	defer profiling.Track("renderer.renderCrosshair")()

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	c.shader.Use()
	c.shader.SetFloat("aspectRatio", ctx.AspectRatio)

	gl.LineWidth(1.0)
	c.lines.Draw(gl.LINES)
}

// Dispose cleans up OpenGL resources
func (c *Crosshair) Dispose() {
	c.lines.Delete()
	c.shader.Delete()
}

func (c *Crosshair) SetViewport(width, height int) {}
