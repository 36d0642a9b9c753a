package main

import (
	"fmt"
	"log"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics/renderables/blocks"
	"mini-voxel/internal/graphics/renderables/crosshair"
	"mini-voxel/internal/graphics/renderables/wireframe"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type app struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	blocks   *blocks.Blocks
	session  *game.Session
	input    *input.Manager
	limiter  *game.FPSLimiter
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	// The FPS limiter paces frames instead of v-sync.
	glfw.SwapInterval(0)
	return window, nil
}

// setup acquires the window, GL resources and the session. Any error here is
// fatal to the caller; what was already acquired is released first.
func setup(cfg config.Settings) (*app, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	window, err := setupWindow()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	session, err := game.NewSession(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	cross := crosshair.NewCrosshair(cfg.AssetsDir)
	cross.Hidden = cfg.PickFromCursor

	blocksRenderer := blocks.NewBlocks(cfg.AssetsDir)
	r, err := renderer.NewRenderer(
		blocksRenderer,
		wireframe.NewWireframe(cfg.AssetsDir),
		cross,
	)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	a := &app{
		window:   window,
		renderer: r,
		blocks:   blocksRenderer,
		session:  session,
		input:    input.NewManager(),
		limiter:  game.NewFPSLimiter(cfg.FPSLimit),
	}

	if cfg.PickFromCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	fbw, fbh := window.GetFramebufferSize()
	r.UpdateViewport(fbw, fbh)
	session.SetViewport(window.GetSize())

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
	})
	window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		a.session.SetViewport(width, height)
	})
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			a.input.Reset()
		}
	})

	log.Printf("terrain=%s solid=%d reach=%.1f step=%.2f", cfg.Terrain.Kind, session.Grid.CountSolid(), cfg.Reach, cfg.RayStep)
	return a, nil
}

// teardown releases GL objects while the context is still current.
func (a *app) teardown() {
	a.renderer.Dispose()
	a.window.Destroy()
	glfw.Terminate()
}
