package physics

import (
	"slices"

	"github.com/lixenwraith/worldstore/core"
	"github.com/lixenwraith/worldstore/engine"
)

// Contact is an overlapping entity pair, A orders before B
type Contact struct {
	A, B core.Entity
}

// Contacts collects every overlapping pair among entities holding both Bounds and Motion
// Pairs are ordered by (A, B) entity id so results do not depend on store slot order
func Contacts(r *engine.Registry) []Contact {
	bounds := r.Components.Bounds
	motion := r.Components.Motion

	entities := make([]core.Entity, 0, bounds.Size())
	for e := range bounds.All() {
		if motion.Has(e) {
			entities = append(entities, e)
		}
	}
	slices.SortFunc(entities, core.Entity.Compare)

	var contacts []Contact
	for i, a := range entities {
		ba, pa := bounds.Get(a), motion.Get(a).Position
		for _, b := range entities[i+1:] {
			if Overlaps(*ba, pa, *bounds.Get(b), motion.Get(b).Position) {
				contacts = append(contacts, Contact{A: a, B: b})
			}
		}
	}
	return contacts
}

// ContactsOf returns the entities overlapping e, in entity id order
func ContactsOf(r *engine.Registry, e core.Entity) []core.Entity {
	bounds := r.Components.Bounds
	motion := r.Components.Motion

	be, ok := bounds.TryGet(e)
	if !ok {
		return nil
	}
	me, ok := motion.TryGet(e)
	if !ok {
		return nil
	}

	var hits []core.Entity
	for other, bo := range bounds.All() {
		if other == e {
			continue
		}
		mo, ok := motion.TryGet(other)
		if !ok {
			continue
		}
		if Overlaps(*be, me.Position, *bo, mo.Position) {
			hits = append(hits, other)
		}
	}
	slices.SortFunc(hits, core.Entity.Compare)
	return hits
}
