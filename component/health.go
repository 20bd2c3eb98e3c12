package component

// HealthComponent tracks hit points
type HealthComponent struct {
	Current int
	Max     int
}

// Damage subtracts amount, clamped at zero, and reports whether the entity died from this hit
func (h *HealthComponent) Damage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

// Heal adds amount, clamped at Max
func (h *HealthComponent) Heal(amount int) {
	h.Current = min(h.Current+amount, h.Max)
}

// IsDead reports zero health
func (h HealthComponent) IsDead() bool {
	return h.Current <= 0
}
