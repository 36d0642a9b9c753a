package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed startup parameters. These are deliberately not part of Settings.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "mini-voxel"

	FOV       = 70.0
	NearPlane = 0.1
	FarPlane  = 1000.0

	PitchLimit = 89.0
)

// AspectRatio is the fixed projection aspect.
const AspectRatio = float32(WindowWidth) / float32(WindowHeight)

// EnvConfigPath names the environment variable consulted when Load gets no path.
const EnvConfigPath = "VOXEL_CONFIG"

// Terrain kinds.
const (
	TerrainFlat  = "flat"
	TerrainHills = "hills"
)

// Settings holds the tunables read from YAML.
type Settings struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	Reach            float32 `yaml:"reach"`
	RayStep          float32 `yaml:"ray_step"`
	FPSLimit         int     `yaml:"fps_limit"`
	AssetsDir        string  `yaml:"assets_dir"`
	PickFromCursor   bool    `yaml:"pick_from_cursor"`

	Terrain TerrainSettings `yaml:"terrain"`
}

// TerrainSettings selects the startup generator.
type TerrainSettings struct {
	Kind      string `yaml:"kind"`
	Seed      int64  `yaml:"seed"`
	MaxHeight int    `yaml:"max_height"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		MouseSensitivity: 0.1,
		MoveSpeed:        5.0,
		Reach:            8.0,
		RayStep:          0.05,
		FPSLimit:         120,
		AssetsDir:        "assets",
		Terrain: TerrainSettings{
			Kind:      TerrainFlat,
			Seed:      1,
			MaxHeight: 5,
		},
	}
}

// Load reads settings from path, or from $VOXEL_CONFIG when path is empty.
// With neither set it returns Default(). Fields missing from the file keep
// their defaults; out-of-range values are clamped.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return s, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := s.normalize(); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

var errUnknownTerrain = errors.New("unknown terrain kind")

func (s *Settings) normalize() error {
	d := Default()

	if s.MouseSensitivity <= 0 {
		s.MouseSensitivity = d.MouseSensitivity
	}
	if s.MouseSensitivity > 5 {
		s.MouseSensitivity = 5
	}
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = d.MoveSpeed
	}
	if s.Reach <= 0 {
		s.Reach = d.Reach
	}
	if s.Reach > 64 {
		s.Reach = 64
	}
	if s.RayStep <= 0 || s.RayStep > 0.5 {
		s.RayStep = d.RayStep
	}
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.AssetsDir == "" {
		s.AssetsDir = d.AssetsDir
	}

	switch s.Terrain.Kind {
	case "":
		s.Terrain.Kind = TerrainFlat
	case TerrainFlat, TerrainHills:
	default:
		return fmt.Errorf("%w: %q", errUnknownTerrain, s.Terrain.Kind)
	}
	if s.Terrain.MaxHeight < 1 {
		s.Terrain.MaxHeight = d.Terrain.MaxHeight
	}
	if s.Terrain.MaxHeight > 16 {
		s.Terrain.MaxHeight = 16
	}
	return nil
}
