package core

import (
	"strconv"
	"sync/atomic"
)

// nextEntityID is the process-wide allocation counter, ids are never reused
var nextEntityID atomic.Uint64

// Entity is an opaque identity handle, it carries no component information
type Entity struct {
	id uint64
}

// Nil is the zero entity, never returned by NewEntity
var Nil = Entity{}

// NewEntity allocates an entity strictly greater than every previously allocated one
func NewEntity() Entity {
	return Entity{id: nextEntityID.Add(1)}
}

// EntityFromID rebuilds a handle from a raw id, used by loaders and tests
// Does not advance the allocation counter
func EntityFromID(id uint64) Entity {
	return Entity{id: id}
}

// ID returns the underlying integer, usable as a map key or for ordering
func (e Entity) ID() uint64 {
	return e.id
}

// IsNil reports whether e is the zero entity
func (e Entity) IsNil() bool {
	return e.id == 0
}

// Less orders entities by id
func (e Entity) Less(other Entity) bool {
	return e.id < other.id
}

// Compare returns -1, 0 or +1 ordering by id, suitable for slices.SortFunc and Store.Sort
func (e Entity) Compare(other Entity) int {
	switch {
	case e.id < other.id:
		return -1
	case e.id > other.id:
		return 1
	default:
		return 0
	}
}

func (e Entity) String() string {
	return "e#" + strconv.FormatUint(e.id, 10)
}
