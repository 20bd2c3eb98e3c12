package component

// PlayerComponent marks the controlled character
type PlayerComponent struct {
	Speed float64 // World units per second
	Keys  int     // Dungeon keys carried across levels
}
