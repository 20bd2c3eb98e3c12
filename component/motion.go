package component

import (
	"github.com/lixenwraith/worldstore/vmath"
)

// MotionComponent is the kinematic state of an entity in world space
type MotionComponent struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F
	Angle    float64     // Radians
	Scale    vmath.Vec2F // Zero means unscaled
}

// Integrate advances position by velocity over dt seconds
func (m *MotionComponent) Integrate(dt float64) {
	m.Position = vmath.V2FAdd(m.Position, vmath.V2FScale(m.Velocity, dt))
}
