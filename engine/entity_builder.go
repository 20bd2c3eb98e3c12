package engine

import "github.com/lixenwraith/worldstore/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It allocates the entity upfront and adds each component to its store as With is called.
//
// Example usage:
//
//	e := With(
//	    With(r.NewEntity(), r.Components.Motion, component.MotionComponent{}),
//	    r.Components.Sprite, component.SpriteComponent{Rune: '@'},
//	).Build()
type EntityBuilder struct {
	registry *Registry
	entity   core.Entity
	built    bool
}

// NewEntity creates a new EntityBuilder with a freshly allocated entity
func (r *Registry) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		registry: r,
		entity:   core.NewEntity(),
	}
}

// Entity returns the entity being built
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With adds a component of type T to the entity being built.
// The store must belong to the builder's registry.
// Panics with core.ContractViolation if called after Build, with a foreign store, or on duplicate type.
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		core.Violate("EntityBuilder.With", eb.entity, store.Name(), "entity already built")
	}
	if !eb.registry.owns(store) {
		core.Violate("EntityBuilder.With", eb.entity, store.Name(), "store belongs to another registry")
	}
	store.Insert(eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity
// An entity built with no components is not Valid in the registry
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}

func (r *Registry) owns(store AnyStore) bool {
	for _, s := range r.stores {
		if s == store {
			return true
		}
	}
	return false
}
