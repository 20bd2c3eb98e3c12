package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/physics"
	"github.com/lixenwraith/worldstore/vmath"
)

var styleHUD = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))

// view maps world cells to screen cells, camera centered in the area above the HUD
type view struct {
	width, height int
	origin        vmath.Vec2F
}

func newView(scr tcell.Screen, camera vmath.Vec2F, hudLines int) view {
	w, h := scr.Size()
	h = max(h-hudLines, 0)
	return view{
		width:  w,
		height: h,
		origin: vmath.V2F(math.Floor(camera.X)-float64(w/2), math.Floor(camera.Y)-float64(h/2)),
	}
}

func (v view) toScreen(cellX, cellY int) (int, int, bool) {
	sx, sy := cellX-int(v.origin.X), cellY-int(v.origin.Y)
	return sx, sy, sx >= 0 && sx < v.width && sy >= 0 && sy < v.height
}

// drawWorld renders every visible sprite, lower layers first
// The sprite store is sorted by entity so equal-layer overlaps resolve the same way every frame
func drawWorld(scr tcell.Screen, r *engine.Registry, v view) {
	sprites := r.Components.Sprite
	sprites.Sort(core.Entity.Compare)

	maxLayer := 0
	for _, s := range sprites.All() {
		maxLayer = max(maxLayer, s.Layer)
	}

	probe := component.NewCircle(0)
	for layer := 0; layer <= maxLayer; layer++ {
		for e, s := range sprites.All() {
			if s.Hidden || s.Layer != layer {
				continue
			}
			m, ok := r.Components.Motion.TryGet(e)
			if !ok {
				continue
			}

			b, ok := r.Components.Bounds.TryGet(e)
			if !ok || b.Kind() == component.ShapeCircle {
				// Actors occupy the single cell under their origin
				if sx, sy, ok := v.toScreen(int(math.Floor(m.Position.X)), int(math.Floor(m.Position.Y))); ok {
					scr.SetContent(sx, sy, s.Rune, nil, s.Style)
				}
				continue
			}

			ext := b.Extent().Translate(m.Position)
			for y := int(math.Floor(ext.Min.Y)); y < int(math.Ceil(ext.Max.Y)); y++ {
				for x := int(math.Floor(ext.Min.X)); x < int(math.Ceil(ext.Max.X)); x++ {
					sx, sy, visible := v.toScreen(x, y)
					if !visible {
						continue
					}
					if physics.Overlaps(probe, vmath.V2F(float64(x)+0.5, float64(y)+0.5), *b, m.Position) {
						scr.SetContent(sx, sy, s.Rune, nil, s.Style)
					}
				}
			}
		}
	}
}

// drawText writes s at (x, y) honoring wide glyphs, truncated to the screen width
func drawText(scr tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, _ := scr.Size()
	if x >= sw {
		return
	}
	s = runewidth.Truncate(s, sw-x, "…")
	for _, r := range s {
		scr.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// drawHUD writes lines bottom-aligned under the world view
func drawHUD(scr tcell.Screen, lines []string) {
	_, sh := scr.Size()
	top := sh - len(lines)
	for i, line := range lines {
		drawText(scr, 0, top+i, line, styleHUD)
	}
}
