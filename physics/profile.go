package physics

import (
	"github.com/lixenwraith/dodge3d/config"
)

// BallisticProfile defines integration parameters for one projectile class
// Built once per engine from the immutable config
type BallisticProfile struct {
	Speed               float32 // World units per tick
	GravityInitial      float32 // First-tick drop
	ParabolicMultiplier float32 // Per-tick growth of the drop
	Falling             bool
}

// AimProfile defines the inaccuracy band for one projectile class
type AimProfile struct {
	InaccuracyMin float32
	InaccuracyMax float32
}

// FriendlyProfiles returns the player's ballistic and aim profiles
func FriendlyProfiles(cfg config.Config) (BallisticProfile, AimProfile) {
	p := cfg.Projectile
	return BallisticProfile{
			Speed:               p.FriendlySpeed,
			GravityInitial:      p.GravityInitial,
			ParabolicMultiplier: p.ParabolicMultiplier,
			Falling:             p.FriendlyGravity,
		}, AimProfile{
			InaccuracyMin: p.FriendlyInaccuracyMin,
			InaccuracyMax: p.FriendlyInaccuracyMax,
		}
}

// HostileProfiles returns the turret's ballistic and aim profiles
func HostileProfiles(cfg config.Config) (BallisticProfile, AimProfile) {
	p := cfg.Projectile
	return BallisticProfile{
			Speed:               p.HostileSpeed,
			GravityInitial:      p.GravityInitial,
			ParabolicMultiplier: p.ParabolicMultiplier,
			Falling:             p.HostileGravity,
		}, AimProfile{
			InaccuracyMin: p.HostileInaccuracyMin,
			InaccuracyMax: p.HostileInaccuracyMax,
		}
}
