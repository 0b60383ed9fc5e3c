package parameter

// Projectile Kinematics
const (
	// Speeds are world units per tick
	FriendlyProjectileSpeed float32 = 0.05
	HostileProjectileSpeed  float32 = 0.05

	// Gravity is an accumulating per-tick drop, grown by the parabolic multiplier
	GravityInitialStrength float32 = 0.0005
	ParabolicMultiplier    float32 = 0.05

	FriendlyGravity = true
	HostileGravity  = false
)

// Inaccuracy: deviation angle is pi/factor scaled by recoil in [-1, 1)
const (
	FriendlyInaccuracyMin float32 = 40
	FriendlyInaccuracyMax float32 = 60
	HostileInaccuracyMin  float32 = 20
	HostileInaccuracyMax  float32 = 40
)

// Hit Radii
const (
	CameraHitRadius float32 = 0.25
	TurretHitRadius float32 = 0.3
	PickupHitRadius float32 = 0.3
)
