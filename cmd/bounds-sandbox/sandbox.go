package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/audio"
	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
	"github.com/lixenwraith/worldstore/input"
	"github.com/lixenwraith/worldstore/parameter"
	"github.com/lixenwraith/worldstore/physics"
	"github.com/lixenwraith/worldstore/vmath"
)

var movementKeys = map[rune]input.Action{
	'w': input.ActionUp,
	'a': input.ActionLeft,
	's': input.ActionDown,
	'd': input.ActionRight,
}

// sandbox is the interactive session state around the registries
type sandbox struct {
	worlds *engine.Worlds
	player core.Entity
	cues   *audio.CuePlayer
	log    zerolog.Logger

	// Terminals report key repeats but no releases, so holds expire after a few frames
	frame     uint64
	holdUntil map[input.Action]uint64

	immuneUntil time.Time
	paused      bool
	contacts    int
	status      string
}

func newSandbox(active *engine.Registry, seed int64, cues *audio.CuePlayer, log zerolog.Logger) *sandbox {
	player := buildOverworld(active, seed)
	log.Info().
		Int64("seed", seed).
		Stringer("player", player).
		Int("components", active.Stats().Components).
		Msg("overworld built")

	return &sandbox{
		worlds:    engine.NewWorlds(active),
		player:    player,
		cues:      cues,
		log:       log,
		holdUntil: make(map[input.Action]uint64),
		status:    "find the portal (O) and press e",
	}
}

// --- Input ---

func (s *sandbox) hold(a input.Action) {
	s.worlds.Active.Resource.Input.Press(a)
	s.holdUntil[a] = s.frame + parameter.SandboxHoldFrames
}

// handleKey applies one key event, returning true when the session should end
func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	in := &s.worlds.Active.Resource.Input

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.hold(input.ActionUp)
	case tcell.KeyDown:
		s.hold(input.ActionDown)
	case tcell.KeyLeft:
		s.hold(input.ActionLeft)
	case tcell.KeyRight:
		s.hold(input.ActionRight)
	case tcell.KeyTab:
		s.worlds.Active.LogStats(zerolog.InfoLevel)
		s.status = "registry stats written to log"
	case tcell.KeyRune:
		if a, ok := movementKeys[ev.Rune()]; ok {
			s.hold(a)
			return false
		}
		switch ev.Rune() {
		case 'q':
			return true
		case 'e':
			in.Press(input.ActionInteract)
		case ' ':
			in.Press(input.ActionAttack)
		case 'p':
			in.Press(input.ActionPause)
		case 'c':
			s.saveCheckpoint()
		case 'r':
			s.restoreCheckpoint("checkpoint restored")
		}
	}
	return false
}

// endStep clears edge input and releases expired holds
func (s *sandbox) endStep() {
	in := &s.worlds.Active.Resource.Input
	in.EndStep()
	s.frame++
	for a, until := range s.holdUntil {
		if s.frame >= until {
			in.Release(a)
			delete(s.holdUntil, a)
		}
	}
}

// --- Simulation ---

// step advances the active world by dt seconds
func (s *sandbox) step(dt float64, now time.Time) {
	defer s.endStep()

	r := s.worlds.Active
	in := r.Resource.Input
	if in.JustPressed(input.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	if m, ok := r.Components.Motion.TryGet(s.player); ok {
		speed := parameter.SandboxPlayerSpeed
		if p, ok := r.Components.Player.TryGet(s.player); ok {
			speed = p.Speed
		}
		m.Velocity = vmath.V2FScale(vmath.V2FNormalize(in.MoveAxis()), speed)
	}

	steerEnemies(r)
	physics.Step(r, dt)
	s.contacts = len(physics.Contacts(r))
	s.resolvePlayerContacts(in, now)

	// Worlds may have switched registry content; re-read through the stable handle
	if m, ok := s.worlds.Active.Components.Motion.TryGet(s.player); ok {
		s.worlds.Active.Resource.Camera = m.Position
	}
}

// steerEnemies chases the player when in sight, idles otherwise
func steerEnemies(r *engine.Registry) {
	target, haveTarget := r.Components.Motion.TryGet(r.Resource.Player)

	for e, enemy := range r.Components.Enemy.All() {
		m, ok := r.Components.Motion.TryGet(e)
		if !ok {
			continue
		}
		if haveTarget {
			to := vmath.V2FSub(target.Position, m.Position)
			if vmath.V2FMagSq(to) <= enemy.SightRadius*enemy.SightRadius {
				enemy.State = component.EnemyChase
				enemy.Target = r.Resource.Player
				m.Velocity = vmath.V2FScale(vmath.V2FNormalize(to), parameter.SandboxEnemySpeed)
				continue
			}
		}
		enemy.State = component.EnemyIdle
		enemy.Target = core.Nil
		m.Velocity = vmath.Vec2F{}
	}
}

func (s *sandbox) resolvePlayerContacts(in input.Snapshot, now time.Time) {
	r := s.worlds.Active
	portal := core.Nil

	for _, other := range physics.ContactsOf(r, s.player) {
		if r.Components.Portal.Has(other) {
			portal = other
			continue
		}
		enemy, ok := r.Components.Enemy.TryGet(other)
		if !ok {
			continue
		}

		if in.JustPressed(input.ActionAttack) {
			if h, ok := r.Components.Health.TryGet(other); ok && h.Damage(1) {
				r.RemoveAllComponents(other)
				s.status = fmt.Sprintf("%s slain", other)
			}
			continue
		}
		if now.Before(s.immuneUntil) {
			continue
		}

		s.immuneUntil = now.Add(parameter.SandboxContactWindow)
		s.cues.Play(audio.CueContact)
		h, ok := r.Components.Health.TryGet(s.player)
		if ok && h.Damage(enemy.Damage) {
			s.onPlayerDeath()
			return
		}
	}

	if !portal.IsNil() && in.JustPressed(input.ActionInteract) {
		s.usePortal(portal)
	}
}

func (s *sandbox) usePortal(portal core.Entity) {
	r := s.worlds.Active
	p := *r.Components.Portal.Get(portal)

	switch p.Kind {
	case component.PortalDungeonEntrance:
		dungeon, spawn := buildDungeon(p.Seed, s.log)
		if err := s.worlds.EnterDungeon(dungeon, spawn); err != nil {
			s.log.Error().Err(err).Msg("enter dungeon failed")
			return
		}
		s.status = fmt.Sprintf("entered dungeon %x", uint64(p.Seed))

	case component.PortalDungeonExit:
		if pc, ok := r.Components.Player.TryGet(s.player); ok {
			pc.Keys++
		}
		if err := s.worlds.ExitDungeon(); err != nil {
			s.log.Error().Err(err).Msg("exit dungeon failed")
			return
		}
		s.status = "back in the overworld with a new key"
	}
	s.cues.Play(audio.CuePortal)
}

func (s *sandbox) onPlayerDeath() {
	if s.worlds.HasCheckpoint() {
		s.restoreCheckpoint("you died, checkpoint restored")
		return
	}
	if h, ok := s.worlds.Active.Components.Health.TryGet(s.player); ok {
		h.Heal(h.Max)
	}
	s.status = "you died, no checkpoint, healed in place"
}

func (s *sandbox) saveCheckpoint() {
	s.worlds.SaveCheckpoint()
	s.cues.Play(audio.CueCheckpoint)
	s.status = "checkpoint saved"
}

func (s *sandbox) restoreCheckpoint(msg string) {
	if err := s.worlds.RestoreCheckpoint(); err != nil {
		s.log.Warn().Err(err).Msg("restore refused")
		s.status = "no checkpoint saved yet (c)"
		return
	}
	s.holdUntil = make(map[input.Action]uint64)
	s.immuneUntil = time.Time{}
	s.cues.Play(audio.CueRestore)
	s.status = msg
}

// --- Presentation ---

func (s *sandbox) hud() []string {
	r := s.worlds.Active
	stats := r.Stats()

	var hp, maxHP, keys int
	if h, ok := r.Components.Health.TryGet(s.player); ok {
		hp, maxHP = h.Current, h.Max
	}
	if p, ok := r.Components.Player.TryGet(s.player); ok {
		keys = p.Keys
	}
	where := "overworld"
	if s.worlds.InDungeon() {
		where = "dungeon"
	}
	state := ""
	if s.paused {
		state = "  [paused]"
	}

	return []string{
		fmt.Sprintf("♥ %d/%d  ⚿ %d  %s  components %d  contacts %d  frame %d%s",
			hp, maxHP, keys, where, stats.Components, s.contacts, stats.InputFrame, state),
		s.status,
		"move arrows/wasd  e portal  space attack  c save  r restore  p pause  tab stats  q quit",
	}
}

func (s *sandbox) render(scr tcell.Screen) {
	scr.Clear()
	lines := s.hud()
	drawWorld(scr, s.worlds.Active, newView(scr, s.worlds.Active.Resource.Camera, len(lines)))
	drawHUD(scr, lines)
	scr.Show()
}
