package wireframe

import (
	"path/filepath"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Wireframe outlines the voxel the camera is currently pointing at.
type Wireframe struct {
	assetsDir string

	shader *graphics.Shader
	edges  *graphics.Mesh
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(assetsDir string) *Wireframe {
	return &Wireframe{assetsDir: assetsDir}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	dir := filepath.Join(w.assetsDir, "shaders", "wireframe")

	var err error
	w.shader, err = graphics.NewShader(filepath.Join(dir, "wireframe.vert"), filepath.Join(dir, "wireframe.frag"))
	if err != nil {
		return err
	}

	w.edges = graphics.NewMesh(world.CubeWireframeVertices, 3)
	return nil
}

// Render draws the outline when something is hovered.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	hover := ctx.Session.Hover
	if !hover.Hit {
		return
	}
	defer profiling.Track("renderer.renderHighlightedBlock")()

	w.shader.Use()
	w.shader.SetMatrix4("proj", &ctx.Proj[0])
	w.shader.SetMatrix4("view", &ctx.View[0])

	// Grow slightly around the cell centre so the lines sit outside the faces.
	model := mgl32.Translate3D(
		float32(hover.Voxel[0])+0.5,
		float32(hover.Voxel[1])+0.5,
		float32(hover.Voxel[2])+0.5,
	).Mul4(mgl32.Scale3D(1.01, 1.01, 1.01)).Mul4(mgl32.Translate3D(-0.5, -0.5, -0.5))

	w.shader.SetMatrix4("model", &model[0])
	w.shader.SetVector3("color", 0.0, 0.0, 0.0)

	gl.LineWidth(1.0)
	w.edges.Draw(gl.LINES)
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	w.edges.Delete()
	w.shader.Delete()
}

func (w *Wireframe) SetViewport(width, height int) {}
