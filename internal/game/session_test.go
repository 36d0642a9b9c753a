package game

import (
	"testing"
	"time"

	"mini-voxel/internal/config"
	"mini-voxel/internal/player"
	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookingDown returns a flat-world session with the camera above (8, 0, 8).
func lookingDown(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.Default())
	require.NoError(t, err)
	s.Camera = player.NewCamera(mgl32.Vec3{8.5, 5, 8.5}, 0, -89)
	return s
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(config.Default())
	require.NoError(t, err)

	assert.Equal(t, world.Size*world.Size, s.Grid.CountSolid())
	assert.Equal(t, SpawnPosition, s.Camera.Position)
	assert.Same(t, s.Grid, s.Editor.Grid)
	assert.False(t, s.Hover.Hit)

	s.Update(Input{}, 0)
	require.True(t, s.Hover.Hit, "floor should be in reach from spawn")
	assert.Equal(t, 0, s.Hover.Voxel[1])
}

func TestNewSessionTerrain(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Kind = config.TerrainHills
	cfg.Terrain.Seed = 7
	cfg.Terrain.MaxHeight = 4

	s, err := NewSession(cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Grid.CountSolid(), world.Size*world.Size)

	cfg.Terrain.Kind = "caves"
	_, err = NewSession(cfg)
	assert.Error(t, err)
}

func TestUpdateBreakAndPlace(t *testing.T) {
	s := lookingDown(t)
	flat := s.Grid.CountSolid()

	s.Update(Input{}, 0.016)
	require.True(t, s.Hover.Hit)
	assert.Equal(t, [3]int{8, 0, 8}, s.Hover.Voxel)
	assert.Equal(t, [3]int{0, 1, 0}, s.Hover.Normal)
	assert.Equal(t, flat, s.Grid.CountSolid(), "hovering alone does not edit")

	s.Update(Input{Place: true}, 0.016)
	assert.Equal(t, world.BlockGrass, s.Grid.Get(8, 1, 8))
	assert.Equal(t, flat+1, s.Grid.CountSolid())

	s.Update(Input{}, 0.016)
	assert.Equal(t, [3]int{8, 1, 8}, s.Hover.Voxel)

	s.Update(Input{Break: true}, 0.016)
	assert.Equal(t, world.BlockEmpty, s.Grid.Get(8, 1, 8))
	assert.Equal(t, flat, s.Grid.CountSolid())

	// Held break keeps digging: one voxel per frame.
	s.Update(Input{Break: true}, 0.016)
	assert.Equal(t, world.BlockEmpty, s.Grid.Get(8, 0, 8))
	s.Update(Input{Break: true}, 0.016)
	assert.False(t, s.Hover.Hit)
	assert.Equal(t, flat-1, s.Grid.CountSolid())
}

func TestUpdateWithoutHitDoesNotEdit(t *testing.T) {
	s := lookingDown(t)
	s.Camera = player.NewCamera(mgl32.Vec3{8, 5, 8}, 0, 60)
	before := s.Grid.CountSolid()

	s.Update(Input{Break: true, Place: true}, 0.016)
	assert.False(t, s.Hover.Hit)
	assert.Equal(t, before, s.Grid.CountSolid())
}

func TestUpdateMovesCamera(t *testing.T) {
	s := lookingDown(t)
	s.Camera = player.NewCamera(mgl32.Vec3{8, 5, 8}, 0, 0)
	speed := config.Default().MoveSpeed

	s.Update(Input{Keys: player.MoveForward}, 0.5)
	assert.InDelta(t, 8+speed*0.5, s.Camera.Position.X(), 1e-4)
	assert.InDelta(t, 5, s.Camera.Position.Y(), 1e-4)

	s.Update(Input{Keys: player.MoveForward | player.MoveBack}, 0.5)
	assert.InDelta(t, 8+speed*0.5, s.Camera.Position.X(), 1e-4)
}

func TestUpdateLookClampsPitch(t *testing.T) {
	s := lookingDown(t)
	for i := 0; i < 50; i++ {
		s.Update(Input{MouseDY: 1000}, 0.016)
		assert.LessOrEqual(t, s.Camera.Pitch, config.PitchLimit)
	}
	assert.Equal(t, config.PitchLimit, s.Camera.Pitch)
}

func TestUpdateToggleWireframe(t *testing.T) {
	s := lookingDown(t)
	s.Update(Input{ToggleWireframe: true}, 0)
	assert.True(t, s.Wireframe)
	s.Update(Input{}, 0)
	assert.True(t, s.Wireframe)
	s.Update(Input{ToggleWireframe: true}, 0)
	assert.False(t, s.Wireframe)
}

func TestUpdatePickFromCursor(t *testing.T) {
	cfg := config.Default()
	cfg.PickFromCursor = true
	s, err := NewSession(cfg)
	require.NoError(t, err)
	s.Camera = player.NewCamera(mgl32.Vec3{8.5, 5, 8.5}, 0, -89)
	s.SetViewport(800, 600)

	s.Update(Input{CursorX: 400, CursorY: 300}, 0)
	require.True(t, s.Hover.Hit)
	assert.Equal(t, [3]int{8, 0, 8}, s.Hover.Voxel)

	s.SetViewport(0, 0)
	s.Update(Input{CursorX: 400, CursorY: 300}, 0)
	assert.Equal(t, [3]int{8, 0, 8}, s.Hover.Voxel, "invalid viewport is ignored")
}

func TestFPSLimiter(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond, "zero limit does not block")

	f.SetLimit(200)
	assert.Equal(t, 200, f.Limit())
	start = time.Now()
	for i := 0; i < 10; i++ {
		f.Wait()
	}
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}
