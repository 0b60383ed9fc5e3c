package parameter

import "time"

// Turret Entity
const (
	TurretMaxHealth = 5

	// Autonomous fire loop
	TurretAmmoCapacity   = 5
	TurretFireInterval   = 500 * time.Millisecond
	TurretReloadDuration = 3 * time.Second

	// TurretSpawnDistance is how far ahead of the camera the turret is placed
	TurretSpawnDistance float32 = 2.5

	// Hitbox sits behind and below the spawn anchor, matching the model base
	TurretBaseSetback float32 = 0.5
	TurretBaseDrop    float32 = 0.15
)
