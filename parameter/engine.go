package parameter

import "time"

// Simulation Timing
const (
	// TickRate is the simulation frequency, matching the AR frame callback
	TickRate = 60

	// TickInterval is the fixed step at TickRate
	TickInterval = time.Second / TickRate

	// MaxTickDelta caps a single step after a stall so timers do not burst
	MaxTickDelta = 250 * time.Millisecond

	// DefaultSeed of 0 requests a fresh crypto seed
	DefaultSeed = 0
)

// Projectile Lifetime
const (
	// DespawnDelay is how long a projectile lives without hitting anything
	DespawnDelay = 3 * time.Second

	// HoldFireInterval is the repeat rate of a held trigger
	HoldFireInterval = 200 * time.Millisecond
)
