package event

// Kind tags a bus message; each kind has exactly one payload type
type Kind int

const (
	// KindNone is the zero kind, never valid on the bus
	KindNone Kind = iota

	// === Turret ===

	// KindTurretMoved announces a new turret hitbox position
	// Trigger: HomingEngine.SpawnTurret
	// Consumer: ShootingEngine | Payload: Position
	KindTurretMoved

	// KindTurretDespawned retracts the turret hitbox
	// Trigger: HomingEngine.DespawnTurret
	// Consumer: ShootingEngine | Payload: Empty
	KindTurretDespawned

	// KindTurretHit reports a friendly projectile inside the turret hitbox
	// Trigger: ShootingEngine collision pass
	// Consumer: HomingEngine | Payload: ProjectileRef
	KindTurretHit

	// KindTurretHealthChanged publishes turret health after spawn or damage
	// Trigger: HomingEngine
	// Consumer: HUD | Payload: Health
	KindTurretHealthChanged

	// === Pickup ===

	// KindPickupSpawned announces a pickup position for collision tests
	// Trigger: BuffEngine.Spawn
	// Consumer: ShootingEngine | Payload: Position
	KindPickupSpawned

	// KindPickupHit reports a friendly projectile inside a pickup hitbox
	// Trigger: ShootingEngine collision pass
	// Consumer: BuffEngine | Payload: Position
	KindPickupHit

	// KindBuffGranted delivers a buff effect
	// Trigger: BuffEngine on pickup hit
	// Consumer: ShootingEngine (ammo, reload), Player (health) | Payload: BuffGrant
	KindBuffGranted

	// === Player ===

	// KindHostileHit reports a hostile projectile reaching the camera
	// Trigger: HomingEngine collision pass
	// Consumer: Player | Payload: ProjectileRef
	KindHostileHit

	// KindPlayerHealthChanged publishes player health
	// Trigger: Player
	// Consumer: ShootingEngine, HUD | Payload: Health
	KindPlayerHealthChanged

	// === Shooting ===

	// KindProjectileSpawned announces a fired projectile
	// Trigger: ShootingEngine.Fire, HomingEngine.SpawnProjectile
	// Consumer: HUD | Payload: ProjectileRef
	KindProjectileSpawned

	// KindReloadStarted signals the magazine is being refilled
	// Trigger: ShootingEngine.Reload
	// Consumer: HUD | Payload: Empty
	KindReloadStarted

	// KindReloadFinished signals the magazine is full again
	// Trigger: ShootingEngine reload timer
	// Consumer: HUD | Payload: Empty
	KindReloadFinished

	// === Session ===

	// KindReset reinitializes every participant
	// Trigger: Session.Reset
	// Consumer: all (broadcast) | Payload: Empty
	KindReset

	kindCount
)
