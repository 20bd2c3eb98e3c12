package parameter

// ECS storage sizing
const (
	// StoreInitialCapacity is the preallocated slot count of every component store
	StoreInitialCapacity = 64

	// RegistryStoreCount is the number of component stores owned by a registry
	// Must match engine.ComponentStore field count
	RegistryStoreCount = 8
)

// Navigation grid defaults for freshly constructed registries
const (
	DefaultNavWidth    = 128
	DefaultNavHeight   = 64
	DefaultNavCellSize = 1.0
)
