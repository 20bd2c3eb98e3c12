package main

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/worldstore/audio"
	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/input"
	"github.com/lixenwraith/worldstore/parameter"
	"github.com/lixenwraith/worldstore/vmath"
)

func newTestSandbox(t *testing.T) *sandbox {
	t.Helper()
	active := engine.NewRegistry()
	return newSandbox(active, 7, audio.NewCuePlayer(0, zerolog.Nop()), zerolog.Nop())
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func findPortal(t *testing.T, r *engine.Registry, kind component.PortalKind) core.Entity {
	t.Helper()
	for e, p := range r.Components.Portal.All() {
		if p.Kind == kind {
			return e
		}
	}
	t.Fatalf("no portal of kind %d", kind)
	return core.Nil
}

func TestBuildOverworld(t *testing.T) {
	r := engine.NewRegistry()
	p := buildOverworld(r, 3)

	assert.Equal(t, p, r.Resource.Player)
	for _, s := range []string{engine.StoreMotion, engine.StoreBounds, engine.StoreSprite, engine.StoreHealth, engine.StorePlayer} {
		store, _ := r.StoreByName(s)
		assert.True(t, store.Has(p), "player missing %s", s)
	}
	assert.Equal(t, parameter.SandboxEnemyCount, r.Components.Enemy.Size())
	assert.Equal(t, 4+parameter.SandboxWallCount, r.Components.Wall.Size())
	assert.Equal(t, 1, r.Components.Portal.Size())

	nav := r.Resource.Nav
	require.Equal(t, parameter.SandboxOverworldWidth, nav.Width)
	assert.True(t, nav.Blocked(0, 0), "border rasterized")
	x, y := nav.CellAt(r.Components.Motion.Get(p).Position.X, r.Components.Motion.Get(p).Position.Y)
	assert.False(t, nav.Blocked(x, y), "player spawned on a free cell")

	// Same seed, same layout
	again := engine.NewRegistry()
	buildOverworld(again, 3)
	assert.Equal(t, r.Resource.Nav.BlockedCount(), again.Resource.Nav.BlockedCount())
	assert.Equal(t, r.Stats().Stores, again.Stats().Stores)
}

func TestBuildDungeon(t *testing.T) {
	d, spawn := buildDungeon(42, zerolog.Nop())

	assert.True(t, d.Resource.Player.IsNil())
	assert.Equal(t, 0, d.Components.Player.Size())
	assert.Equal(t, parameter.SandboxDungeonEnemies, d.Components.Enemy.Size())
	findPortal(t, d, component.PortalDungeonExit)

	x, y := d.Resource.Nav.CellAt(spawn.X, spawn.Y)
	assert.False(t, d.Resource.Nav.Blocked(x, y))
	assert.Equal(t, parameter.SandboxDungeonWidth, d.Resource.Nav.Width)
}

func TestSteerEnemies(t *testing.T) {
	r := engine.NewRegistry()
	p := spawnPlayer(r, vmath.V2F(0, 0))
	near := addEnemy(r, vmath.V2F(3, 4), 'g')
	far := addEnemy(r, vmath.V2F(100, 0), 'g')

	steerEnemies(r)

	ne := r.Components.Enemy.Get(near)
	assert.Equal(t, component.EnemyChase, ne.State)
	assert.Equal(t, p, ne.Target)
	v := r.Components.Motion.Get(near).Velocity
	assert.InDelta(t, parameter.SandboxEnemySpeed, vmath.V2FMag(v), 1e-9)
	assert.Less(t, v.X, 0.0)
	assert.Less(t, v.Y, 0.0)

	fe := r.Components.Enemy.Get(far)
	assert.Equal(t, component.EnemyIdle, fe.State)
	assert.True(t, fe.Target.IsNil())
	assert.Equal(t, vmath.Vec2F{}, r.Components.Motion.Get(far).Velocity)
}

func TestSandboxDungeonRoundTrip(t *testing.T) {
	s := newTestSandbox(t)
	now := time.Unix(0, 0)
	dt := 1.0 / parameter.SandboxFPS

	entrance := findPortal(t, s.worlds.Active, component.PortalDungeonEntrance)
	entry := s.worlds.Active.Components.Motion.Get(entrance).Position
	s.worlds.Active.Components.Motion.Get(s.player).Position = entry

	s.handleKey(key('e'))
	s.step(dt, now)
	require.True(t, s.worlds.InDungeon(), s.status)
	assert.Equal(t, s.player, s.worlds.Active.Resource.Player)
	assert.Equal(t, 1, s.worlds.Active.Components.Portal.Size(), "only the exit portal")

	exit := findPortal(t, s.worlds.Active, component.PortalDungeonExit)
	s.worlds.Active.Components.Motion.Get(s.player).Position = s.worlds.Active.Components.Motion.Get(exit).Position

	s.handleKey(key('e'))
	s.step(dt, now.Add(time.Second))
	require.False(t, s.worlds.InDungeon(), s.status)

	assert.Equal(t, 1, s.worlds.Active.Components.Player.Get(s.player).Keys)
	assert.Equal(t, entry, s.worlds.Active.Components.Motion.Get(s.player).Position)
	assert.Equal(t, entry, s.worlds.Active.Resource.Camera)
}

func TestSandboxCheckpointKeys(t *testing.T) {
	s := newTestSandbox(t)

	assert.False(t, s.handleKey(key('r')))
	assert.Contains(t, s.status, "no checkpoint")

	s.handleKey(key('c'))
	require.True(t, s.worlds.HasCheckpoint())

	h := s.worlds.Active.Components.Health.Get(s.player)
	h.Damage(4)
	s.handleKey(key('r'))
	assert.Equal(t, parameter.SandboxPlayerHealth, s.worlds.Active.Components.Health.Get(s.player).Current)
	assert.Equal(t, "checkpoint restored", s.status)
}

func TestSandboxDeathRestoresCheckpoint(t *testing.T) {
	s := newTestSandbox(t)
	s.handleKey(key('c'))

	h := s.worlds.Active.Components.Health.Get(s.player)
	h.Current = 1
	s.onPlayerDeath()
	assert.Equal(t, parameter.SandboxPlayerHealth, s.worlds.Active.Components.Health.Get(s.player).Current)

	// Without a checkpoint the player is healed in place
	fresh := newTestSandbox(t)
	fresh.worlds.Active.Components.Health.Get(fresh.player).Current = 0
	fresh.onPlayerDeath()
	assert.Equal(t, parameter.SandboxPlayerHealth, fresh.worlds.Active.Components.Health.Get(fresh.player).Current)
}

func TestSandboxMovementHoldExpires(t *testing.T) {
	s := newTestSandbox(t)
	r := s.worlds.Active
	dt := 1.0 / parameter.SandboxFPS

	// Open field so nothing blocks the move
	for _, w := range slices.Clone(r.Components.Wall.Entities()) {
		r.RemoveAllComponents(w)
	}
	start := r.Components.Motion.Get(s.player).Position

	s.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	s.step(dt, time.Unix(0, 0))
	m := r.Components.Motion.Get(s.player)
	assert.Equal(t, vmath.V2F(parameter.SandboxPlayerSpeed, 0), m.Velocity)
	assert.InDelta(t, start.X+parameter.SandboxPlayerSpeed*dt, m.Position.X, 1e-9)

	for range parameter.SandboxHoldFrames {
		s.step(dt, time.Unix(0, 0))
	}
	assert.False(t, r.Resource.Input.IsHeld(input.ActionRight), "released after hold window")
	assert.Empty(t, s.holdUntil)
	assert.Equal(t, vmath.Vec2F{}, r.Components.Motion.Get(s.player).Velocity)
}

func TestSandboxPauseAndQuit(t *testing.T) {
	s := newTestSandbox(t)
	dt := 1.0 / parameter.SandboxFPS

	s.handleKey(key('p'))
	s.step(dt, time.Unix(0, 0))
	require.True(t, s.paused)

	frame := s.worlds.Active.Resource.Input.Frame
	s.handleKey(key('d'))
	before := s.worlds.Active.Components.Motion.Get(s.player).Position
	s.step(dt, time.Unix(0, 0))
	assert.Equal(t, before, s.worlds.Active.Components.Motion.Get(s.player).Position)
	assert.Equal(t, frame+1, s.worlds.Active.Resource.Input.Frame)

	assert.True(t, s.handleKey(key('q')))
	assert.True(t, s.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, s.handleKey(key('x')))
}

func TestRenderCentersPlayer(t *testing.T) {
	s := newTestSandbox(t)
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(80, 30)

	s.render(scr)

	lines := s.hud()
	mainc, _, _, _ := scr.GetContent(40, (30-len(lines))/2)
	assert.Equal(t, '@', mainc)

	mainc, _, _, _ = scr.GetContent(0, 29)
	assert.Equal(t, 'm', mainc)
}

func TestDrawTextTruncates(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	defer scr.Fini()
	scr.SetSize(10, 1)

	drawText(scr, 7, 0, "abcdef", tcell.StyleDefault)
	mainc, _, _, _ := scr.GetContent(7, 0)
	assert.Equal(t, 'a', mainc)
	mainc, _, _, _ = scr.GetContent(9, 0)
	assert.Equal(t, '…', mainc)

	// Off-screen start is ignored
	drawText(scr, 12, 0, "zzz", tcell.StyleDefault)
}
