package edit

import (
	"mini-voxel/internal/physics"
	"mini-voxel/internal/world"
)

// Intent is what the player asked to do with the targeted voxel.
type Intent int

const (
	IntentBreak Intent = iota
	IntentPlace
)

func (i Intent) String() string {
	switch i {
	case IntentBreak:
		return "break"
	case IntentPlace:
		return "place"
	default:
		return "unknown"
	}
}

// Break empties the hit voxel. It reports whether the grid changed; a miss,
// an out-of-range voxel or an already empty voxel leave it untouched.
func Break(g *world.Grid, hit physics.RaycastResult) bool {
	if !hit.Hit {
		return false
	}
	x, y, z := hit.Voxel[0], hit.Voxel[1], hit.Voxel[2]
	if !world.InBounds(x, y, z) || !g.IsSolid(x, y, z) {
		return false
	}
	return g.Set(x, y, z, world.BlockEmpty) == nil
}

// Place puts kind into the voxel touching the hit face. Placement never
// overwrites and never leaves the grid.
func Place(g *world.Grid, hit physics.RaycastResult, kind world.BlockKind) bool {
	if !hit.Hit || !kind.IsSolid() {
		return false
	}
	target := hit.Adjacent()
	x, y, z := target[0], target[1], target[2]
	if !world.InBounds(x, y, z) || g.IsSolid(x, y, z) {
		return false
	}
	return g.Set(x, y, z, kind) == nil
}

// Controller applies intents to one grid.
type Controller struct {
	Grid      *world.Grid
	PlaceKind world.BlockKind
}

// NewController places grass by default.
func NewController(g *world.Grid) *Controller {
	return &Controller{Grid: g, PlaceKind: world.BlockGrass}
}

// Apply runs intent against hit and reports whether the grid changed.
func (c *Controller) Apply(intent Intent, hit physics.RaycastResult) bool {
	switch intent {
	case IntentBreak:
		return Break(c.Grid, hit)
	case IntentPlace:
		return Place(c.Grid, hit, c.PlaceKind)
	default:
		return false
	}
}
