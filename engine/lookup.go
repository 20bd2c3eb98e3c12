package engine

import (
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/worldstore/core"
)

// StoreOf returns the registry's store for component type T
// Matches on the concrete store type, so the lookup is checked by the compiler's instantiation of T
func StoreOf[T any](r *Registry) (*Store[T], error) {
	for _, s := range r.stores {
		if typed, ok := s.(*Store[T]); ok {
			return typed, nil
		}
	}
	return nil, eris.Wrapf(ErrComponentNotRegistered, "no store for %s", typeName[T]())
}

// TryGet returns e's component of type T if present
// An unregistered T is reported as absent and logged, it never panics
func TryGet[T any](r *Registry, e core.Entity) (*T, bool) {
	store, err := StoreOf[T](r)
	if err != nil {
		r.log.Warn().Err(err).Stringer("entity", e).Msg("component lookup on unregistered type")
		return nil, false
	}
	return store.TryGet(e)
}

// GetOrEmplace returns e's component of type T, inserting a zero value first when absent
// Returns ErrComponentNotRegistered when the registry has no store for T
func GetOrEmplace[T any](r *Registry, e core.Entity) (*T, error) {
	store, err := StoreOf[T](r)
	if err != nil {
		return nil, eris.Wrapf(err, "get-or-emplace on %s", e)
	}
	if v, ok := store.TryGet(e); ok {
		return v, nil
	}
	return store.Emplace(e), nil
}
