package renderer

import (
	"mini-voxel/internal/game"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Session     *game.Session
	DT          float64
	View        mgl32.Mat4
	Proj        mgl32.Mat4
	AspectRatio float32
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
