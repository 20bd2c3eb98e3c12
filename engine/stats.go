package engine

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// StoreStat is the occupancy of one store
type StoreStat struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// RegistryStats is a diagnostic summary of a registry
type RegistryStats struct {
	Stores     []StoreStat `json:"stores"`
	Components int         `json:"components"`
	Player     uint64      `json:"player"`
	NavBlocked int         `json:"nav_blocked"`
	InputFrame uint64      `json:"input_frame"`
}

// Stats reports per-store component counts in registry order
func (r *Registry) Stats() RegistryStats {
	stats := RegistryStats{
		Stores:     make([]StoreStat, 0, len(r.stores)),
		Player:     r.Resource.Player.ID(),
		InputFrame: r.Resource.Input.Frame,
	}
	for _, s := range r.stores {
		stats.Stores = append(stats.Stores, StoreStat{Name: s.Name(), Size: s.Size()})
		stats.Components += s.Size()
	}
	if r.Resource.Nav != nil {
		stats.NavBlocked = r.Resource.Nav.BlockedCount()
	}
	return stats
}

// MarshalStats encodes Stats as JSON
func (r *Registry) MarshalStats() ([]byte, error) {
	b, err := json.Marshal(r.Stats())
	if err != nil {
		return nil, eris.Wrap(err, "marshal registry stats")
	}
	return b, nil
}

// LogStats logs every store's size at the given level
func (r *Registry) LogStats(level zerolog.Level) {
	stats := r.Stats()
	arr := zerolog.Arr()
	for _, s := range stats.Stores {
		arr = arr.Dict(zerolog.Dict().Str("store", s.Name).Int("size", s.Size))
	}
	r.log.WithLevel(level).
		Int("total_components", stats.Components).
		Uint64("player", stats.Player).
		Int("nav_blocked", stats.NavBlocked).
		Array("stores", arr).
		Msg("registry stats")
}
