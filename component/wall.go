package component

// WallBlockMask defines what entity types a wall blocks
type WallBlockMask uint8

const (
	WallBlockNone     WallBlockMask = 0
	WallBlockPlayer   WallBlockMask = 1 << 0
	WallBlockEnemy    WallBlockMask = 1 << 1
	WallBlockMissile  WallBlockMask = 1 << 2
	WallBlockSight    WallBlockMask = 1 << 3 // Line-of-sight for AI and camera
	WallBlockMovement               = WallBlockPlayer | WallBlockEnemy
	WallBlockAll      WallBlockMask = 0xFF
)

// Has checks if specific block flag is set
func (m WallBlockMask) Has(flag WallBlockMask) bool {
	return m&flag != 0
}

// IsBlocking returns true if wall blocks any entity type
func (m WallBlockMask) IsBlocking() bool {
	return m != WallBlockNone
}

// WallComponent marks an entity as static level geometry
// Shape lives in the entity's CollisionBounds (ShapeWall or ShapeAABB)
type WallComponent struct {
	BlockMask WallBlockMask
	// Destructible walls take damage through HealthComponent
	Destructible bool
}
