package parameter

import "time"

// Bounds sandbox defaults, overridable through WORLDSTORE_* environment variables and flags
const (
	SandboxFPS      = 60
	SandboxLogPath  = "worldstore-sandbox.log"
	SandboxLogLevel = "info"
	SandboxGain     = 0.4
	SandboxSeed     = 1

	// HoldFrames keeps a movement key held after its last repeat; terminals report no key release
	SandboxHoldFrames = 8
)

// Sandbox world layout, in cells
const (
	SandboxOverworldWidth  = 80
	SandboxOverworldHeight = 40
	SandboxDungeonWidth    = 48
	SandboxDungeonHeight   = 24
	SandboxWallCount       = 6
	SandboxEnemyCount      = 5
	SandboxDungeonEnemies  = 8
)

// Sandbox actors
const (
	SandboxPlayerSpeed   = 14.0 // Cells per second
	SandboxPlayerRadius  = 0.45
	SandboxPlayerHealth  = 10
	SandboxEnemySpeed    = 6.0
	SandboxEnemyRadius   = 0.45
	SandboxEnemySight    = 10.0
	SandboxEnemyDamage   = 1
	SandboxContactWindow = 500 * time.Millisecond // Immunity after an enemy hit
)
