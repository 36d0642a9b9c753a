package game

import (
	"fmt"

	"mini-voxel/internal/config"
	"mini-voxel/internal/edit"
	"mini-voxel/internal/physics"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Spawn pose: above the grid corner, looking down across it so the floor is
// within reach.
var (
	SpawnPosition = mgl32.Vec3{2, 4, 2}
	SpawnYaw      = 45.0
	SpawnPitch    = -35.0
)

// Session owns the grid, the camera and the edit controller, and advances
// them once per frame.
type Session struct {
	Grid   *world.Grid
	Camera *player.Camera
	Editor *edit.Controller

	// Hover is the result of this frame's pick ray.
	Hover physics.RaycastResult

	Wireframe bool

	settings      config.Settings
	width, height int
}

func NewSession(cfg config.Settings) (*Session, error) {
	grid := world.NewGrid()
	switch cfg.Terrain.Kind {
	case "", config.TerrainFlat:
		world.GenerateFlat(grid)
	case config.TerrainHills:
		world.GenerateHills(grid, cfg.Terrain.Seed, cfg.Terrain.MaxHeight)
	default:
		return nil, fmt.Errorf("unknown terrain kind %q", cfg.Terrain.Kind)
	}

	cam := player.NewCamera(SpawnPosition, SpawnYaw, SpawnPitch)
	if cfg.MouseSensitivity > 0 {
		cam.Sensitivity = cfg.MouseSensitivity
	}

	return &Session{
		Grid:     grid,
		Camera:   cam,
		Editor:   edit.NewController(grid),
		settings: cfg,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}, nil
}

// SetViewport records the framebuffer size used for cursor picking.
func (s *Session) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
}

// Update advances one frame: look, move, pick, then edit.
func (s *Session) Update(in Input, dt float64) {
	defer profiling.Track("game.Update")()

	if in.ToggleWireframe {
		s.Wireframe = !s.Wireframe
	}

	s.Camera.ProcessMouse(in.MouseDX, in.MouseDY)
	s.Camera.MoveByKeys(in.Keys, s.settings.MoveSpeed, dt)

	s.Hover = physics.Raycast(s.Camera.Position, s.pickDirection(in), s.Grid, s.settings.Reach, s.settings.RayStep)

	// The hover result is reused for the highlight, so edits see the same
	// hit the player sees this frame.
	if in.Break {
		s.Editor.Apply(edit.IntentBreak, s.Hover)
	}
	if in.Place {
		s.Editor.Apply(edit.IntentPlace, s.Hover)
	}
}

func (s *Session) pickDirection(in Input) mgl32.Vec3 {
	if s.settings.PickFromCursor {
		return s.Camera.RayFromScreen(in.CursorX, in.CursorY, s.width, s.height)
	}
	return s.Camera.Front
}
