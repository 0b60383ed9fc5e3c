package parameter

import "time"

// Buff Pickups
const (
	MaxPickups     = 5
	InitialPickups = 3

	// Placement band in front of the camera
	PickupMinDistance float32 = 4
	PickupMaxDistance float32 = 6

	// PickupRespawnDelay refills a consumed slot, 0 disables
	PickupRespawnDelay = 5 * time.Second
)
