package component

import "github.com/lixenwraith/worldstore/core"

// EnemyState is the AI decision state, advanced by the external AI collaborator
type EnemyState uint8

const (
	EnemyIdle EnemyState = iota
	EnemyPatrol
	EnemyChase
	EnemyFlee
)

// EnemyComponent holds AI bookkeeping
type EnemyComponent struct {
	State       EnemyState
	Target      core.Entity // core.Nil when no target
	SightRadius float64
	Damage      int
}
