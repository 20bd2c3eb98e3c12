package engine

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/component"
	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/vmath"
)

// DefaultCarry lists the stores whose player components follow the player between overworld and dungeon
// Motion is excluded: the dungeon places the player at its spawn, and the overworld keeps the entry position
var DefaultCarry = []string{StoreBounds, StoreSprite, StoreHealth, StorePlayer}

// Worlds coordinates the registries of one game session
// Active is the stable handle systems operate on; other registries are parked copies
type Worlds struct {
	// Active is the registry every system reads and writes
	Active *Registry

	// Overworld holds the parked open-world state while a dungeon is active
	Overworld *Registry

	checkpoint          *Registry
	checkpointParked    *Registry
	checkpointInDungeon bool
	hasCheckpoint       bool

	inDungeon bool
	carry     []string
	log       zerolog.Logger
}

// NewWorlds wraps active with empty parked registries
// carry overrides DefaultCarry when non-empty
func NewWorlds(active *Registry, carry ...string) *Worlds {
	if len(carry) == 0 {
		carry = DefaultCarry
	}
	log := active.Logger()
	return &Worlds{
		Active:           active,
		Overworld:        NewRegistry(WithLogger(log)),
		checkpoint:       NewRegistry(WithLogger(log)),
		checkpointParked: NewRegistry(WithLogger(log)),
		carry:            carry,
		log:              log,
	}
}

// InDungeon reports whether Active currently holds a dungeon instance
func (w *Worlds) InDungeon() bool {
	return w.inDungeon
}

// HasCheckpoint reports whether SaveCheckpoint has been called
func (w *Worlds) HasCheckpoint() bool {
	return w.hasCheckpoint
}

// SaveCheckpoint snapshots the whole session, including the parked overworld when inside a dungeon
func (w *Worlds) SaveCheckpoint() {
	w.checkpoint.Assign(w.Active)
	w.checkpointInDungeon = w.inDungeon
	if w.inDungeon {
		w.checkpointParked.Assign(w.Overworld)
	}
	w.hasCheckpoint = true
	w.log.Info().Bool("in_dungeon", w.inDungeon).Msg("checkpoint saved")
}

// RestoreCheckpoint discards all mutation since the last SaveCheckpoint
func (w *Worlds) RestoreCheckpoint() error {
	if !w.hasCheckpoint {
		return eris.Wrap(ErrNoCheckpoint, "restore checkpoint")
	}
	w.Active.Assign(w.checkpoint)
	w.inDungeon = w.checkpointInDungeon
	if w.inDungeon {
		w.Overworld.Assign(w.checkpointParked)
	}
	w.log.Info().Bool("in_dungeon", w.inDungeon).Msg("checkpoint restored")
	return nil
}

// EnterDungeon parks the overworld and loads dungeon into Active
// The player's carried components are transferred in and the player is placed at spawn
func (w *Worlds) EnterDungeon(dungeon *Registry, spawn vmath.Vec2F) error {
	if w.inDungeon {
		return eris.Wrap(ErrAlreadyInDungeon, "enter dungeon")
	}
	if err := w.checkCarry(); err != nil {
		return eris.Wrap(err, "enter dungeon")
	}
	player := w.Active.Resource.Player

	w.Overworld.Assign(w.Active)
	w.Active.Assign(dungeon)
	w.Active.Resource.Player = player

	if !player.IsNil() {
		if _, err := Transfer(w.Active, w.Overworld, []core.Entity{player}, w.carry...); err != nil {
			return eris.Wrap(err, "enter dungeon")
		}
		w.Active.Components.Motion.Set(player, component.MotionComponent{Position: spawn})
		w.Active.Resource.Camera = spawn
	}

	w.inDungeon = true
	w.log.Info().Stringer("player", player).Msg("entered dungeon")
	return nil
}

// ExitDungeon carries the player back and restores the parked overworld into Active
// The player resumes at the overworld position held when the dungeon was entered
func (w *Worlds) ExitDungeon() error {
	if !w.inDungeon {
		return eris.Wrap(ErrNotInDungeon, "exit dungeon")
	}
	if err := w.checkCarry(); err != nil {
		return eris.Wrap(err, "exit dungeon")
	}
	player := w.Active.Resource.Player

	if !player.IsNil() {
		// Components lost in the dungeon stay lost
		for _, name := range w.carry {
			from, _ := w.Active.StoreByName(name)
			if !from.Has(player) {
				to, _ := w.Overworld.StoreByName(name)
				to.Remove(player)
			}
		}
		if _, err := Transfer(w.Overworld, w.Active, []core.Entity{player}, w.carry...); err != nil {
			return eris.Wrap(err, "exit dungeon")
		}
	}
	w.Active.Assign(w.Overworld)

	w.inDungeon = false
	w.log.Info().Stringer("player", player).Msg("exited dungeon")
	return nil
}

// checkCarry rejects unknown carry store names before any registry is touched
func (w *Worlds) checkCarry() error {
	for _, name := range w.carry {
		if _, ok := w.Active.StoreByName(name); !ok {
			return eris.Wrapf(ErrUnknownStore, "carry store %q", name)
		}
	}
	return nil
}
