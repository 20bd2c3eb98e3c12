package main

import (
	"math"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/navigation"
	"github.com/lixenwraith/worldstore/parameter"
	"github.com/lixenwraith/worldstore/physics"
	"github.com/lixenwraith/worldstore/vmath"
)

// --- Draw Layers ---

const (
	layerFloor = iota
	layerWall
	layerActor
	layerPlayer
)

// --- Styles ---

var (
	styleWall        = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 140))
	styleDungeonWall = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 90, 60))
	styleEnemy       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 60, 60)).Bold(true)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 220, 120)).Bold(true)
	stylePortal      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 90, 255)).Bold(true)
)

// --- Spawning ---

func spawnPlayer(r *engine.Registry, pos vmath.Vec2F) core.Entity {
	b := r.NewEntity()
	b = engine.With(b, r.Components.Motion, component.MotionComponent{Position: pos})
	b = engine.With(b, r.Components.Bounds, component.NewCircle(parameter.SandboxPlayerRadius))
	b = engine.With(b, r.Components.Sprite, component.SpriteComponent{Rune: '@', Style: stylePlayer, Layer: layerPlayer})
	b = engine.With(b, r.Components.Health, component.HealthComponent{Current: parameter.SandboxPlayerHealth, Max: parameter.SandboxPlayerHealth})
	b = engine.With(b, r.Components.Player, component.PlayerComponent{Speed: parameter.SandboxPlayerSpeed})
	p := b.Build()

	r.Resource.Player = p
	r.Resource.Camera = pos
	return p
}

func addWall(r *engine.Registry, center, size vmath.Vec2F, angle float64, style tcell.Style) core.Entity {
	b := r.NewEntity()
	b = engine.With(b, r.Components.Motion, component.MotionComponent{Position: center, Angle: angle})
	b = engine.With(b, r.Components.Bounds, component.NewWall(size, angle))
	b = engine.With(b, r.Components.Sprite, component.SpriteComponent{Rune: '#', Style: style, Layer: layerWall})
	b = engine.With(b, r.Components.Wall, component.WallComponent{BlockMask: component.WallBlockAll})
	return b.Build()
}

func addEnemy(r *engine.Registry, pos vmath.Vec2F, glyph rune) core.Entity {
	b := r.NewEntity()
	b = engine.With(b, r.Components.Motion, component.MotionComponent{Position: pos})
	b = engine.With(b, r.Components.Bounds, component.NewCircle(parameter.SandboxEnemyRadius))
	b = engine.With(b, r.Components.Sprite, component.SpriteComponent{Rune: glyph, Style: styleEnemy, Layer: layerActor})
	b = engine.With(b, r.Components.Health, component.HealthComponent{Current: 3, Max: 3})
	b = engine.With(b, r.Components.Enemy, component.EnemyComponent{
		State:       component.EnemyIdle,
		Target:      core.Nil,
		SightRadius: parameter.SandboxEnemySight,
		Damage:      parameter.SandboxEnemyDamage,
	})
	return b.Build()
}

func addPortal(r *engine.Registry, pos vmath.Vec2F, kind component.PortalKind, seed int64) core.Entity {
	glyph := 'O'
	if kind == component.PortalDungeonExit {
		glyph = '<'
	}
	// Diamond mesh collider
	mesh := component.NewMesh([]vmath.Vec2F{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}, 0)

	b := r.NewEntity()
	b = engine.With(b, r.Components.Motion, component.MotionComponent{Position: pos})
	b = engine.With(b, r.Components.Bounds, mesh)
	b = engine.With(b, r.Components.Sprite, component.SpriteComponent{Rune: glyph, Style: stylePortal, Layer: layerFloor})
	b = engine.With(b, r.Components.Portal, component.PortalComponent{Kind: kind, Seed: seed})
	return b.Build()
}

// addBorder surrounds a width x height room with four walls
func addBorder(r *engine.Registry, width, height int, style tcell.Style) {
	w, h := float64(width), float64(height)
	addWall(r, vmath.V2F(w/2, 0.5), vmath.V2F(w, 1), 0, style)
	addWall(r, vmath.V2F(w/2, h-0.5), vmath.V2F(w, 1), 0, style)
	addWall(r, vmath.V2F(0.5, h/2), vmath.V2F(1, h-2), 0, style)
	addWall(r, vmath.V2F(w-0.5, h/2), vmath.V2F(1, h-2), 0, style)
}

// randomFree returns a random cell center inside the room not blocked on the nav grid
func randomFree(rng *rand.Rand, nav *navigation.Grid, width, height int, avoid vmath.Vec2F, clearance float64) vmath.Vec2F {
	for range 256 {
		x, y := 2+rng.IntN(width-4), 2+rng.IntN(height-4)
		p := vmath.V2F(float64(x)+0.5, float64(y)+0.5)
		if nav.Blocked(x, y) || vmath.V2FDistSq(p, avoid) < clearance*clearance {
			continue
		}
		return p
	}
	return avoid
}

// rasterizeNav marks every cell whose center lies inside a wall as blocked
func rasterizeNav(r *engine.Registry) {
	nav := r.Resource.Nav
	probe := component.NewCircle(0)
	for e := range r.Components.Wall.All() {
		b, ok := r.Components.Bounds.TryGet(e)
		if !ok {
			continue
		}
		pos := r.Components.Motion.Get(e).Position
		ext := b.Extent().Translate(pos)
		for y := int(math.Floor(ext.Min.Y)); y < int(math.Ceil(ext.Max.Y)); y++ {
			for x := int(math.Floor(ext.Min.X)); x < int(math.Ceil(ext.Max.X)); x++ {
				if physics.Overlaps(probe, vmath.V2F(float64(x)+0.5, float64(y)+0.5), *b, pos) {
					nav.SetBlocked(x, y, true)
				}
			}
		}
	}
}

// buildOverworld fills r with the open world and returns the player
func buildOverworld(r *engine.Registry, seed int64) core.Entity {
	width, height := parameter.SandboxOverworldWidth, parameter.SandboxOverworldHeight
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	r.Resource.Nav = navigation.NewGrid(width, height, 1)

	addBorder(r, width, height, styleWall)
	for range parameter.SandboxWallCount {
		center := vmath.V2F(6+rng.Float64()*float64(width-12), 6+rng.Float64()*float64(height-12))
		size := vmath.V2F(4+rng.Float64()*10, 1)
		addWall(r, center, size, rng.Float64()*math.Pi, styleWall)
	}
	rasterizeNav(r)

	spawn := randomFree(rng, r.Resource.Nav, width, height, vmath.V2F(float64(width)/2, float64(height)/2), 0)
	player := spawnPlayer(r, spawn)

	addPortal(r, randomFree(rng, r.Resource.Nav, width, height, spawn, 8), component.PortalDungeonEntrance, rng.Int64())
	for range parameter.SandboxEnemyCount {
		addEnemy(r, randomFree(rng, r.Resource.Nav, width, height, spawn, 10), 'g')
	}
	return player
}

// buildDungeon generates a dungeon template from a portal seed
// The returned registry holds no player; Worlds.EnterDungeon carries it in and places it at the spawn point
func buildDungeon(seed int64, log zerolog.Logger) (*engine.Registry, vmath.Vec2F) {
	width, height := parameter.SandboxDungeonWidth, parameter.SandboxDungeonHeight
	rng := rand.New(rand.NewPCG(uint64(seed), 0xd00d))
	r := engine.NewRegistry(
		engine.WithLogger(log.With().Str("world", "dungeon").Logger()),
		engine.WithNavGrid(navigation.NewGrid(width, height, 1)),
	)

	addBorder(r, width, height, styleDungeonWall)
	// Pillars
	for i := range 4 {
		center := vmath.V2F(float64(width)*float64(i+1)/5, float64(height)/2)
		addWall(r, center, vmath.V2F(2, 2), math.Pi/4, styleDungeonWall)
	}
	rasterizeNav(r)

	spawn := vmath.V2F(3.5, float64(height)/2+0.5)
	addPortal(r, vmath.V2F(3.5, 3.5), component.PortalDungeonExit, seed)
	for range parameter.SandboxDungeonEnemies {
		addEnemy(r, randomFree(rng, r.Resource.Nav, width, height, spawn, 12), 's')
	}
	return r, spawn
}
