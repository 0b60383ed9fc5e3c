package component

// BuffKind: ammo capacity, reload time, health restore
type BuffKind int

const (
	BuffNone BuffKind = iota
	BuffAmmoCapacity
	BuffReloadTime
	BuffHealthRestore
)

// BuffKinds lists the grantable kinds in draw order
var BuffKinds = [...]BuffKind{BuffAmmoCapacity, BuffReloadTime, BuffHealthRestore}

func (k BuffKind) String() string {
	switch k {
	case BuffAmmoCapacity:
		return "ammo_capacity"
	case BuffReloadTime:
		return "reload_time"
	case BuffHealthRestore:
		return "health_restore"
	default:
		return "none"
	}
}

// BuffGrant is the effect handed to a receiver when a pickup is consumed
// Effect is Amount*Multiplier; reload time is in seconds
type BuffGrant struct {
	Kind       BuffKind
	Amount     float32
	Multiplier float32
}

// Effect returns the scaled amount
func (g BuffGrant) Effect() float32 {
	return g.Amount * g.Multiplier
}

// GrantFor returns the fixed grant table entry for a kind
func GrantFor(kind BuffKind) (BuffGrant, bool) {
	switch kind {
	case BuffAmmoCapacity:
		return BuffGrant{Kind: kind, Amount: 3, Multiplier: 1}, true
	case BuffReloadTime:
		return BuffGrant{Kind: kind, Amount: -0.5, Multiplier: 1}, true
	case BuffHealthRestore:
		return BuffGrant{Kind: kind, Amount: 1, Multiplier: 1}, true
	default:
		return BuffGrant{}, false
	}
}
