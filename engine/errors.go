package engine

import "github.com/rotisserie/eris"

// Recoverable registry errors; test with errors.Is
var (
	// ErrComponentNotRegistered means no store of the requested component type exists in the registry
	ErrComponentNotRegistered = eris.New("component type not registered")

	// ErrUnknownStore means a transfer named a store the registry does not own
	ErrUnknownStore = eris.New("unknown store name")

	// ErrNoCheckpoint is returned by RestoreCheckpoint before any SaveCheckpoint
	ErrNoCheckpoint = eris.New("no checkpoint saved")

	ErrAlreadyInDungeon = eris.New("already in dungeon")
	ErrNotInDungeon     = eris.New("not in dungeon")
)
