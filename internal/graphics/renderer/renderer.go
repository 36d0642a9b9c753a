package renderer

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sky is the clear colour.
var Sky = [3]float32{0.5, 0.7, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	aspect      float32
	disposed    bool
}

// NewRenderer sets the global GL state and initializes every renderable in
// order. On failure the ones already initialized are disposed.
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{aspect: config.AspectRatio}
	for _, rb := range rs {
		if err := rb.Init(); err != nil {
			rb.Dispose()
			r.Dispose()
			return nil, err
		}
		r.renderables = append(r.renderables, rb)
	}
	return r, nil
}

// Render clears the frame and draws every renderable with the session's
// current camera.
func (r *Renderer) Render(s *game.Session, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(Sky[0], Sky[1], Sky[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Session:     s,
		DT:          dt,
		View:        s.Camera.ViewMatrix(),
		Proj:        s.Camera.ProjectionMatrix(),
		AspectRatio: r.aspect,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order. Later calls do nothing.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and notifies the renderables.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.aspect = float32(width) / float32(height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
