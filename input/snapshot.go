package input

import "github.com/lixenwraith/worldstore/vmath"

// Action is a bit in the held-action mask
type Action uint32

const (
	ActionUp Action = 1 << iota
	ActionDown
	ActionLeft
	ActionRight
	ActionInteract
	ActionAttack
	ActionPause
)

// Snapshot is the accumulated input state for the current simulation step
// Plain value type; copying a registry copies it by assignment
type Snapshot struct {
	Held    Action
	Pressed Action // Edge-triggered this step, cleared by EndStep
	Cursor  vmath.Vec2F
	Frame   uint64
}

// Press marks actions held and edge-triggered
func (s *Snapshot) Press(a Action) {
	s.Pressed |= a &^ s.Held
	s.Held |= a
}

// Release clears actions from the held mask
func (s *Snapshot) Release(a Action) {
	s.Held &^= a
}

// IsHeld reports whether every action in a is held
func (s Snapshot) IsHeld(a Action) bool {
	return s.Held&a == a
}

// JustPressed reports whether any action in a went down this step
func (s Snapshot) JustPressed(a Action) bool {
	return s.Pressed&a != 0
}

// MoveAxis returns the unnormalized direction from held movement actions
func (s Snapshot) MoveAxis() vmath.Vec2F {
	var v vmath.Vec2F
	if s.IsHeld(ActionLeft) {
		v.X--
	}
	if s.IsHeld(ActionRight) {
		v.X++
	}
	if s.IsHeld(ActionUp) {
		v.Y--
	}
	if s.IsHeld(ActionDown) {
		v.Y++
	}
	return v
}

// EndStep clears edge-triggered state and advances the frame counter
func (s *Snapshot) EndStep() {
	s.Pressed = 0
	s.Frame++
}

// Reset returns to the zero state
func (s *Snapshot) Reset() {
	*s = Snapshot{}
}
