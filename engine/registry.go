package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/navigation"
	"github.com/lixenwraith/worldstore/parameter"
)

// Registry owns every component store of one world plus its singleton resources
// Instances are independent: open world, dungeon and checkpoint snapshot each get their own
// Not safe for concurrent use; the simulation thread owns it during a step
type Registry struct {
	// Component stores (public for direct system access)
	Components ComponentStore

	// World-global singletons
	Resource Resource

	// Lifecycle list - every store in fixed order for uniform operations and positional copies
	stores []AnyStore

	log zerolog.Logger
}

// Option configures a Registry at construction
type Option func(*Registry)

// WithLogger sets the registry logger, default is zerolog.Nop()
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// WithNavGrid sets the initial navigation grid
func WithNavGrid(g *navigation.Grid) Option {
	return func(r *Registry) {
		r.Resource.Nav = g
	}
}

// NewRegistry creates a registry with all component stores initialized
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		Components: newComponentStore(),
		log:        zerolog.Nop(),
	}
	r.stores = r.Components.all()
	r.Resource.Nav = navigation.NewGrid(parameter.DefaultNavWidth, parameter.DefaultNavHeight, parameter.DefaultNavCellSize)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Logger returns the registry logger for collaborators that log in the registry's context
func (r *Registry) Logger() zerolog.Logger {
	return r.log
}

// Stores returns every store in registry order
func (r *Registry) Stores() []AnyStore {
	out := make([]AnyStore, len(r.stores))
	copy(out, r.stores)
	return out
}

// StoreByName returns the store registered under name
func (r *Registry) StoreByName(name string) (AnyStore, bool) {
	for _, s := range r.stores {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// RemoveAllComponents removes all components associated with an entity
// An entity left with no components is dead; there is no separate alive flag
func (r *Registry) RemoveAllComponents(e core.Entity) {
	for _, store := range r.stores {
		store.Remove(e)
	}
	if r.Resource.Player == e {
		r.log.Debug().Stringer("entity", e).Msg("player entity stripped of all components")
	}
}

// ClearAllComponents empties every store; singleton resources are left untouched
func (r *Registry) ClearAllComponents() {
	for _, store := range r.stores {
		store.Clear()
	}
	r.log.Debug().Msg("registry cleared")
}

// Valid reports whether an entity has at least one component in any store
func (r *Registry) Valid(e core.Entity) bool {
	for _, store := range r.stores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Assign replaces this registry's entire content with a deep copy of src
// Stores are paired by position (identical by construction), then resources are copied
// with the navigation grid cloned. Afterwards the two registries share no mutable state.
func (r *Registry) Assign(src *Registry) {
	if src == nil || src == r {
		return
	}
	for i, store := range r.stores {
		store.Assign(src.stores[i])
	}
	r.Resource = src.Resource.clone()

	r.log.Debug().
		Int("components", r.componentCount()).
		Stringer("player", r.Resource.Player).
		Msg("registry assigned")
}

// Clone returns a new registry holding a deep copy of r, sharing r's logger
func (r *Registry) Clone() *Registry {
	c := NewRegistry(WithLogger(r.log))
	c.Assign(r)
	return c
}

func (r *Registry) componentCount() int {
	n := 0
	for _, store := range r.stores {
		n += store.Size()
	}
	return n
}
