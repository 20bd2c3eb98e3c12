package engine

import (
	"github.com/lixenwraith/worldstore/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows Registry to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// Name returns the component name used in diagnostics and transfers
	Name() string

	// Size returns the number of occupied slots
	Size() int

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Remove deletes the component of an entity, no-op if absent
	Remove(e core.Entity)

	// Clear removes all components from this store
	Clear()

	// Assign replaces the contents with a deep copy of other
	// No-op when other is backed by a different component type
	Assign(other AnyStore)

	// CopyEntityFrom deep-copies e's component from other, overwriting any existing one
	// Returns false on type mismatch or when other has no component for e
	CopyEntityFrom(other AnyStore, e core.Entity) bool
}

// Cloner is implemented by component types holding heap payloads that must not be aliased across stores
// Detected once per store at construction
type Cloner[T any] interface {
	Clone() T
}
