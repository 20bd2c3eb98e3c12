package engine

import (
	"github.com/lixenwraith/worldstore/component"
)

// Store names, used by Transfer selections and diagnostics
const (
	StoreMotion = "motion"
	StoreBounds = "bounds"
	StoreSprite = "sprite"
	StoreHealth = "health"
	StorePlayer = "player"
	StoreEnemy  = "enemy"
	StoreWall   = "wall"
	StorePortal = "portal"
)

// ComponentStore holds the typed component stores of one registry
// The set is fixed at compile time; every registry owns the same stores in the same order
type ComponentStore struct {
	// Spatial
	Motion *Store[component.MotionComponent]
	Bounds *Store[component.CollisionBounds]

	// Presentation
	Sprite *Store[component.SpriteComponent]

	// Actors
	Health *Store[component.HealthComponent]
	Player *Store[component.PlayerComponent]
	Enemy  *Store[component.EnemyComponent]

	// Level geometry
	Wall   *Store[component.WallComponent]
	Portal *Store[component.PortalComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Motion: NewNamedStore[component.MotionComponent](StoreMotion),
		Bounds: NewNamedStore[component.CollisionBounds](StoreBounds),

		Sprite: NewNamedStore[component.SpriteComponent](StoreSprite),

		Health: NewNamedStore[component.HealthComponent](StoreHealth),
		Player: NewNamedStore[component.PlayerComponent](StorePlayer),
		Enemy:  NewNamedStore[component.EnemyComponent](StoreEnemy),

		Wall:   NewNamedStore[component.WallComponent](StoreWall),
		Portal: NewNamedStore[component.PortalComponent](StorePortal),
	}
}

// all returns every store in declaration order
// Registry-to-registry copies pair stores by position in this list
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Motion,
		c.Bounds,
		c.Sprite,
		c.Health,
		c.Player,
		c.Enemy,
		c.Wall,
		c.Portal,
	}
}
