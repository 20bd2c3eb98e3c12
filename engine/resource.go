package engine

import (
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/input"
	"github.com/lixenwraith/worldstore/navigation"
	"github.com/lixenwraith/worldstore/vmath"
)

// Resource holds world-global singleton state, accessed via Registry.Resource
// Not touched by ClearAllComponents; copied by Registry.Assign
type Resource struct {
	// Player is the currently controlled entity, core.Nil before spawn
	Player core.Entity

	// Camera is the world-space position the view is centered on
	Camera vmath.Vec2F

	// Input is the accumulated input for the current step
	Input input.Snapshot

	// Nav is the walkability grid of this world
	Nav *navigation.Grid
}

// clone deep-copies the navigation grid; remaining fields are values
func (r Resource) clone() Resource {
	r.Nav = r.Nav.Clone()
	return r
}
