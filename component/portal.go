package component

// PortalKind selects what a portal does when the player touches it
type PortalKind uint8

const (
	PortalDungeonEntrance PortalKind = iota
	PortalDungeonExit
)

// PortalComponent triggers a level switch on contact
type PortalComponent struct {
	Kind PortalKind
	Seed int64 // Dungeon generation seed handed to the external generator
}
