package engine

import (
	"slices"

	"github.com/rotisserie/eris"

	"github.com/lixenwraith/worldstore/core"
)

// Transfer deep-copies the components of selected entities from src into dst
// Only the named stores are copied, all stores when none are named. Existing components in dst
// are overwritten, components in stores not selected are left alone.
// Returns the number of components copied.
func Transfer(dst, src *Registry, entities []core.Entity, stores ...string) (int, error) {
	for _, name := range stores {
		if _, ok := src.StoreByName(name); !ok {
			return 0, eris.Wrapf(ErrUnknownStore, "transfer store %q", name)
		}
	}

	copied := 0
	for i, from := range src.stores {
		if len(stores) > 0 && !slices.Contains(stores, from.Name()) {
			continue
		}
		to := dst.stores[i]
		for _, e := range entities {
			if to.CopyEntityFrom(from, e) {
				copied++
			}
		}
	}

	dst.log.Debug().
		Int("entities", len(entities)).
		Int("components", copied).
		Strs("stores", stores).
		Msg("entities transferred")
	return copied, nil
}
