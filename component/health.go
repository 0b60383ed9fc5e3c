package component

// HealthComponent tracks hit points in [0, Max]
type HealthComponent struct {
	Current int
	Max     int
}

func NewHealth(max int) HealthComponent {
	return HealthComponent{Current: max, Max: max}
}

// Damage subtracts n, floored at 0, returns true when the value changed
func (h *HealthComponent) Damage(n int) bool {
	if n <= 0 || h.Current == 0 {
		return false
	}
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
	return true
}

// Restore adds n, clamped to Max when capped, returns true when the value changed
func (h *HealthComponent) Restore(n int, capped bool) bool {
	if n <= 0 {
		return false
	}
	next := h.Current + n
	if capped && next > h.Max {
		next = h.Max
	}
	if next == h.Current {
		return false
	}
	h.Current = next
	return true
}

func (h HealthComponent) Alive() bool { return h.Current > 0 }
