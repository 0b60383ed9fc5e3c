package parameter

import "time"

// Player Weapon
const (
	PlayerAmmoCapacity   = 6
	PlayerReloadDuration = 1500 * time.Millisecond

	// PlayerMinReloadDuration floors reload-time buffs
	PlayerMinReloadDuration = 250 * time.Millisecond

	// Muzzle offset in camera axes (right, up, forward)
	PlayerMuzzleRight   float32 = 0
	PlayerMuzzleUp      float32 = -0.125
	PlayerMuzzleForward float32 = 0.05
)

// Player Health
const (
	PlayerMaxHealth = 10

	// PlayerCapHealthRestore clamps health buffs at PlayerMaxHealth
	PlayerCapHealthRestore = true
)
