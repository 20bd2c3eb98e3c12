package physics

import (
	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/vmath"
)

// CapSpeed limits the velocity magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2F, maxSpeed float64) bool {
	if vmath.V2FMagSq(*vel) <= maxSpeed*maxSpeed {
		return false
	}
	*vel = vmath.V2FScale(vmath.V2FNormalize(*vel), maxSpeed)
	return true
}

// BlockMaskFor returns the wall flag that stops e: players and enemies each have their own, others pass
func BlockMaskFor(r *engine.Registry, e core.Entity) component.WallBlockMask {
	switch {
	case r.Components.Player.Has(e):
		return component.WallBlockPlayer
	case r.Components.Enemy.Has(e):
		return component.WallBlockEnemy
	default:
		return component.WallBlockNone
	}
}

// Blocked reports whether e's bounds placed at pos overlap any wall whose mask includes flag
func Blocked(r *engine.Registry, e core.Entity, pos vmath.Vec2F, flag component.WallBlockMask) bool {
	if flag == component.WallBlockNone {
		return false
	}
	be, ok := r.Components.Bounds.TryGet(e)
	if !ok {
		return false
	}

	for w, wall := range r.Components.Wall.All() {
		if w == e || !wall.BlockMask.Has(flag) {
			continue
		}
		bw, ok := r.Components.Bounds.TryGet(w)
		if !ok {
			continue
		}
		var wp vmath.Vec2F
		if m, ok := r.Components.Motion.TryGet(w); ok {
			wp = m.Position
		}
		if Overlaps(*be, pos, *bw, wp) {
			return true
		}
	}
	return false
}

// Step integrates every moving entity over dt seconds
// Movement into a blocking wall is resolved per axis so entities slide along walls
// Returns the number of entities whose movement was blocked on at least one axis
func Step(r *engine.Registry, dt float64) int {
	blocked := 0
	for e, m := range r.Components.Motion.All() {
		if m.Velocity == (vmath.Vec2F{}) {
			continue
		}
		if r.Components.Wall.Has(e) {
			continue
		}

		flag := BlockMaskFor(r, e)
		delta := vmath.V2FScale(m.Velocity, dt)
		hit := false

		if next := vmath.V2F(m.Position.X+delta.X, m.Position.Y); !Blocked(r, e, next, flag) {
			m.Position = next
		} else {
			m.Velocity.X = 0
			hit = true
		}
		if next := vmath.V2F(m.Position.X, m.Position.Y+delta.Y); !Blocked(r, e, next, flag) {
			m.Position = next
		} else {
			m.Velocity.Y = 0
			hit = true
		}

		if hit {
			blocked++
		}
	}
	return blocked
}
