package component

import "github.com/gdamore/tcell/v2"

// SpriteComponent is the terminal-cell appearance of an entity
type SpriteComponent struct {
	Rune  rune
	Style tcell.Style
	Layer int // Higher draws later
	// Hidden sprites stay attached but are skipped by renderers
	Hidden bool
}
