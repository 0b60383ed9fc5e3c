package event

import "strings"

var (
	kindToName = map[Kind]string{
		KindTurretMoved:         "TurretMoved",
		KindTurretDespawned:     "TurretDespawned",
		KindTurretHit:           "TurretHit",
		KindTurretHealthChanged: "TurretHealthChanged",
		KindPickupSpawned:       "PickupSpawned",
		KindPickupHit:           "PickupHit",
		KindBuffGranted:         "BuffGranted",
		KindHostileHit:          "HostileHit",
		KindPlayerHealthChanged: "PlayerHealthChanged",
		KindProjectileSpawned:   "ProjectileSpawned",
		KindReloadStarted:       "ReloadStarted",
		KindReloadFinished:      "ReloadFinished",
		KindReset:               "Reset",
	}
	nameToKind = func() map[string]Kind {
		m := make(map[string]Kind, len(kindToName))
		for k, n := range kindToName {
			m[strings.ToLower(n)] = k
		}
		return m
	}()
)

// String returns the registered name, "Unknown" for unregistered kinds
func (k Kind) String() string {
	if n, ok := kindToName[k]; ok {
		return n
	}
	return "Unknown"
}

// KindByName resolves a name case-insensitively
func KindByName(name string) (Kind, bool) {
	k, ok := nameToKind[strings.ToLower(name)]
	return k, ok
}

// Kinds returns every registered kind in declaration order
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
