package engine

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/parameter"
)

// Store is a dense container for a specific component type T
// components[i] belongs to entities[i], and index[entities[i]] == i
// Removal is swap-with-last, so slot order is not stable across removals; use Sort when order matters
//
// Pointers returned by Insert/Get/All are valid until the next insert or removal on the same store
type Store[T any] struct {
	components []T
	entities   []core.Entity
	index      map[core.Entity]int

	// Extra slots created by InsertDuplicate, zero for ordinary stores
	duplicates int

	name  string
	clone func(T) T // Non-nil when T implements Cloner[T]
}

// NewStore creates a new component store for type T named after the type
func NewStore[T any]() *Store[T] {
	return NewNamedStore[T](typeName[T]())
}

// NewNamedStore creates a new component store for type T with an explicit diagnostic name
func NewNamedStore[T any](name string) *Store[T] {
	s := &Store[T]{
		components: make([]T, 0, parameter.StoreInitialCapacity),
		entities:   make([]core.Entity, 0, parameter.StoreInitialCapacity),
		index:      make(map[core.Entity]int, parameter.StoreInitialCapacity),
		name:       name,
	}

	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		s.clone = func(v T) T { return any(v).(Cloner[T]).Clone() }
	}
	return s
}

func typeName[T any]() string {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Name returns the diagnostic name of the store
func (s *Store[T]) Name() string {
	return s.name
}

// Insert adds a component for an entity and returns a pointer to the stored value
// Panics with core.ContractViolation if the entity already has a component in this store
func (s *Store[T]) Insert(e core.Entity, val T) *T {
	if _, exists := s.index[e]; exists {
		core.Violate("Store.Insert", e, s.name, "entity already has this component")
	}
	return s.push(e, val)
}

// InsertDuplicate adds another slot for an entity even if it already owns one
// The index points at the newest slot; Remove drops every slot of the entity
func (s *Store[T]) InsertDuplicate(e core.Entity, val T) *T {
	if _, exists := s.index[e]; exists {
		s.duplicates++
	}
	return s.push(e, val)
}

// Emplace inserts a zero-valued component, runs the initializers on it in place, and returns it
func (s *Store[T]) Emplace(e core.Entity, init ...func(*T)) *T {
	var zero T
	p := s.Insert(e, zero)
	for _, fn := range init {
		fn(p)
	}
	return p
}

// Set inserts or overwrites the component of an entity
func (s *Store[T]) Set(e core.Entity, val T) *T {
	if i, exists := s.index[e]; exists {
		s.components[i] = val
		return &s.components[i]
	}
	return s.push(e, val)
}

func (s *Store[T]) push(e core.Entity, val T) *T {
	s.components = append(s.components, val)
	s.entities = append(s.entities, e)
	i := len(s.entities) - 1
	s.index[e] = i
	return &s.components[i]
}

// Get returns the component of an entity
// Panics with core.ContractViolation if absent; check Has or use TryGet when absence is normal
func (s *Store[T]) Get(e core.Entity) *T {
	i, ok := s.index[e]
	if !ok {
		core.Violate("Store.Get", e, s.name, "component not present")
	}
	return &s.components[i]
}

// GetByID is Get addressed by raw entity id
func (s *Store[T]) GetByID(id uint64) *T {
	return s.Get(core.EntityFromID(id))
}

// TryGet returns the component of an entity if present
func (s *Store[T]) TryGet(e core.Entity) (*T, bool) {
	i, ok := s.index[e]
	if !ok {
		return nil, false
	}
	return &s.components[i], true
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes the component of an entity using swap-and-pop, no-op if absent
// The last slot moves into the freed slot, changing its iteration position
func (s *Store[T]) Remove(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	s.removeSlot(i)

	if s.duplicates == 0 {
		return
	}
	// Older slots of e created by InsertDuplicate; slots past j were already checked
	for j := len(s.entities) - 1; j >= 0; j-- {
		if s.entities[j] == e {
			s.removeSlot(j)
			s.duplicates--
		}
	}
}

// removeSlot moves the last slot into i and pops, patching the moved entity's index
func (s *Store[T]) removeSlot(i int) {
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.components[i] = s.components[last]
		s.entities[i] = moved
		if idx, ok := s.index[moved]; ok && idx == last {
			s.index[moved] = i
		}
	}

	// Release references held by the vacated slot
	var zero T
	s.components[last] = zero

	s.components = s.components[:last]
	s.entities = s.entities[:last]
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.components)
	s.components = s.components[:0]
	s.entities = s.entities[:0]
	clear(s.index)
	s.duplicates = 0
}

// Size returns number of occupied slots
// Equals EntityCount unless InsertDuplicate added extra slots
func (s *Store[T]) Size() int {
	return len(s.entities)
}

// EntityCount returns the number of entities for which Has is true
func (s *Store[T]) EntityCount() int {
	return len(s.index)
}

// Entities returns the dense entity slice in slot order
// The slice is owned by the store; do not modify, and copy before removing while iterating
func (s *Store[T]) Entities() []core.Entity {
	return s.entities
}

// Components returns the dense component slice in slot order, aligned with Entities
func (s *Store[T]) Components() []T {
	return s.components
}

// All yields (entity, component) pairs in slot order
// Removing from the store during iteration skips the entity swapped into the removed slot
func (s *Store[T]) All() iter.Seq2[core.Entity, *T] {
	return func(yield func(core.Entity, *T) bool) {
		for i := 0; i < len(s.entities); i++ {
			if !yield(s.entities[i], &s.components[i]) {
				return
			}
		}
	}
}

// Sort stably reorders slots by comparing entities
// Components are rebuilt through the pre-sort index, then the index is rebuilt from the new order
func (s *Store[T]) Sort(cmp func(a, b core.Entity) int) {
	if len(s.entities) < 2 {
		return
	}
	if s.duplicates > 0 {
		s.sortSlots(cmp)
		return
	}

	slices.SortStableFunc(s.entities, cmp)

	components := make([]T, len(s.components), cap(s.components))
	for i, e := range s.entities {
		components[i] = s.components[s.index[e]]
	}
	s.components = components

	for i, e := range s.entities {
		s.index[e] = i
	}
}

// sortSlots sorts a slot permutation, needed when one entity owns several slots
func (s *Store[T]) sortSlots(cmp func(a, b core.Entity) int) {
	order := make([]int, len(s.entities))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp(s.entities[a], s.entities[b])
	})

	components := make([]T, len(s.components), cap(s.components))
	entities := make([]core.Entity, len(s.entities), cap(s.entities))
	for i, slot := range order {
		components[i] = s.components[slot]
		entities[i] = s.entities[slot]
	}
	s.components = components
	s.entities = entities

	// Newest slot per entity wins, matching InsertDuplicate
	clear(s.index)
	for i, e := range s.entities {
		s.index[e] = i
	}
}

// Assign replaces contents with a deep copy of other; no-op if other is not a *Store[T]
func (s *Store[T]) Assign(other AnyStore) {
	src, ok := other.(*Store[T])
	if !ok || src == s {
		return
	}

	clear(s.components)
	s.components = s.components[:0]
	if s.clone == nil {
		s.components = append(s.components, src.components...)
	} else {
		for _, v := range src.components {
			s.components = append(s.components, s.clone(v))
		}
	}
	s.entities = append(s.entities[:0], src.entities...)

	clear(s.index)
	maps.Copy(s.index, src.index)
	s.duplicates = src.duplicates
}

// CopyEntityFrom deep-copies one entity's component from other, overwriting an existing one
func (s *Store[T]) CopyEntityFrom(other AnyStore, e core.Entity) bool {
	src, ok := other.(*Store[T])
	if !ok {
		return false
	}
	v, ok := src.TryGet(e)
	if !ok {
		return false
	}
	if src == s {
		return true
	}
	s.Set(e, s.copyValue(*v))
	return true
}

func (s *Store[T]) copyValue(v T) T {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}
