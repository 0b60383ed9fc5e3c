// Package config holds the immutable gameplay configuration
package config

import (
	"time"

	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/parameter"
)

// Config is built once and copied into the simulation
// Durations are simulated time; speeds are world units per tick
type Config struct {
	Seed     uint64 `koanf:"seed" yaml:"seed" env:"SEED"`
	TickRate int    `koanf:"tick_rate" yaml:"tick_rate" env:"TICK_RATE"`
	Debug    bool   `koanf:"debug" yaml:"debug" env:"DEBUG"`

	Player     PlayerConfig     `koanf:"player" yaml:"player" envPrefix:"PLAYER_"`
	Turret     TurretConfig     `koanf:"turret" yaml:"turret" envPrefix:"TURRET_"`
	Projectile ProjectileConfig `koanf:"projectile" yaml:"projectile" envPrefix:"PROJECTILE_"`
	Pickup     PickupConfig     `koanf:"pickup" yaml:"pickup" envPrefix:"PICKUP_"`
}

type PlayerConfig struct {
	AmmoCapacity      int           `koanf:"ammo_capacity" yaml:"ammo_capacity" env:"AMMO_CAPACITY"`
	ReloadDuration    time.Duration `koanf:"reload_duration" yaml:"reload_duration" env:"RELOAD_DURATION"`
	MinReloadDuration time.Duration `koanf:"min_reload_duration" yaml:"min_reload_duration" env:"MIN_RELOAD_DURATION"`
	MaxHealth         int           `koanf:"max_health" yaml:"max_health" env:"MAX_HEALTH"`
	CapHealthRestore  bool          `koanf:"cap_health_restore" yaml:"cap_health_restore" env:"CAP_HEALTH_RESTORE"`
	HoldFireInterval  time.Duration `koanf:"hold_fire_interval" yaml:"hold_fire_interval" env:"HOLD_FIRE_INTERVAL"`
	MuzzleRight       float32       `koanf:"muzzle_right" yaml:"muzzle_right" env:"MUZZLE_RIGHT"`
	MuzzleUp          float32       `koanf:"muzzle_up" yaml:"muzzle_up" env:"MUZZLE_UP"`
	MuzzleForward     float32       `koanf:"muzzle_forward" yaml:"muzzle_forward" env:"MUZZLE_FORWARD"`
}

type TurretConfig struct {
	MaxHealth      int           `koanf:"max_health" yaml:"max_health" env:"MAX_HEALTH"`
	AmmoCapacity   int           `koanf:"ammo_capacity" yaml:"ammo_capacity" env:"AMMO_CAPACITY"`
	FireInterval   time.Duration `koanf:"fire_interval" yaml:"fire_interval" env:"FIRE_INTERVAL"`
	ReloadDuration time.Duration `koanf:"reload_duration" yaml:"reload_duration" env:"RELOAD_DURATION"`
	SpawnDistance  float32       `koanf:"spawn_distance" yaml:"spawn_distance" env:"SPAWN_DISTANCE"`
	BaseSetback    float32       `koanf:"base_setback" yaml:"base_setback" env:"BASE_SETBACK"`
	BaseDrop       float32       `koanf:"base_drop" yaml:"base_drop" env:"BASE_DROP"`
}

type ProjectileConfig struct {
	FriendlySpeed         float32       `koanf:"friendly_speed" yaml:"friendly_speed" env:"FRIENDLY_SPEED"`
	HostileSpeed          float32       `koanf:"hostile_speed" yaml:"hostile_speed" env:"HOSTILE_SPEED"`
	FriendlyInaccuracyMin float32       `koanf:"friendly_inaccuracy_min" yaml:"friendly_inaccuracy_min" env:"FRIENDLY_INACCURACY_MIN"`
	FriendlyInaccuracyMax float32       `koanf:"friendly_inaccuracy_max" yaml:"friendly_inaccuracy_max" env:"FRIENDLY_INACCURACY_MAX"`
	HostileInaccuracyMin  float32       `koanf:"hostile_inaccuracy_min" yaml:"hostile_inaccuracy_min" env:"HOSTILE_INACCURACY_MIN"`
	HostileInaccuracyMax  float32       `koanf:"hostile_inaccuracy_max" yaml:"hostile_inaccuracy_max" env:"HOSTILE_INACCURACY_MAX"`
	CameraHitRadius       float32       `koanf:"camera_hit_radius" yaml:"camera_hit_radius" env:"CAMERA_HIT_RADIUS"`
	TurretHitRadius       float32       `koanf:"turret_hit_radius" yaml:"turret_hit_radius" env:"TURRET_HIT_RADIUS"`
	PickupHitRadius       float32       `koanf:"pickup_hit_radius" yaml:"pickup_hit_radius" env:"PICKUP_HIT_RADIUS"`
	GravityInitial        float32       `koanf:"gravity_initial" yaml:"gravity_initial" env:"GRAVITY_INITIAL"`
	ParabolicMultiplier   float32       `koanf:"parabolic_multiplier" yaml:"parabolic_multiplier" env:"PARABOLIC_MULTIPLIER"`
	FriendlyGravity       bool          `koanf:"friendly_gravity" yaml:"friendly_gravity" env:"FRIENDLY_GRAVITY"`
	HostileGravity        bool          `koanf:"hostile_gravity" yaml:"hostile_gravity" env:"HOSTILE_GRAVITY"`
	DespawnDelay          time.Duration `koanf:"despawn_delay" yaml:"despawn_delay" env:"DESPAWN_DELAY"`
}

type PickupConfig struct {
	MaxCount     int           `koanf:"max_count" yaml:"max_count" env:"MAX_COUNT"`
	InitialCount int           `koanf:"initial_count" yaml:"initial_count" env:"INITIAL_COUNT"`
	MinDistance  float32       `koanf:"min_distance" yaml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance  float32       `koanf:"max_distance" yaml:"max_distance" env:"MAX_DISTANCE"`
	RespawnDelay time.Duration `koanf:"respawn_delay" yaml:"respawn_delay" env:"RESPAWN_DELAY"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		Seed:     parameter.DefaultSeed,
		TickRate: parameter.TickRate,
		Player: PlayerConfig{
			AmmoCapacity:      parameter.PlayerAmmoCapacity,
			ReloadDuration:    parameter.PlayerReloadDuration,
			MinReloadDuration: parameter.PlayerMinReloadDuration,
			MaxHealth:         parameter.PlayerMaxHealth,
			CapHealthRestore:  parameter.PlayerCapHealthRestore,
			HoldFireInterval:  parameter.HoldFireInterval,
			MuzzleRight:       parameter.PlayerMuzzleRight,
			MuzzleUp:          parameter.PlayerMuzzleUp,
			MuzzleForward:     parameter.PlayerMuzzleForward,
		},
		Turret: TurretConfig{
			MaxHealth:      parameter.TurretMaxHealth,
			AmmoCapacity:   parameter.TurretAmmoCapacity,
			FireInterval:   parameter.TurretFireInterval,
			ReloadDuration: parameter.TurretReloadDuration,
			SpawnDistance:  parameter.TurretSpawnDistance,
			BaseSetback:    parameter.TurretBaseSetback,
			BaseDrop:       parameter.TurretBaseDrop,
		},
		Projectile: ProjectileConfig{
			FriendlySpeed:         parameter.FriendlyProjectileSpeed,
			HostileSpeed:          parameter.HostileProjectileSpeed,
			FriendlyInaccuracyMin: parameter.FriendlyInaccuracyMin,
			FriendlyInaccuracyMax: parameter.FriendlyInaccuracyMax,
			HostileInaccuracyMin:  parameter.HostileInaccuracyMin,
			HostileInaccuracyMax:  parameter.HostileInaccuracyMax,
			CameraHitRadius:       parameter.CameraHitRadius,
			TurretHitRadius:       parameter.TurretHitRadius,
			PickupHitRadius:       parameter.PickupHitRadius,
			GravityInitial:        parameter.GravityInitialStrength,
			ParabolicMultiplier:   parameter.ParabolicMultiplier,
			FriendlyGravity:       parameter.FriendlyGravity,
			HostileGravity:        parameter.HostileGravity,
			DespawnDelay:          parameter.DespawnDelay,
		},
		Pickup: PickupConfig{
			MaxCount:     parameter.MaxPickups,
			InitialCount: parameter.InitialPickups,
			MinDistance:  parameter.PickupMinDistance,
			MaxDistance:  parameter.PickupMaxDistance,
			RespawnDelay: parameter.PickupRespawnDelay,
		},
	}
}

// TickInterval returns the fixed step implied by TickRate
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, field string) {
		if !ok {
			problems = append(problems, field)
		}
	}

	check(c.TickRate > 0, "tick_rate")

	check(c.Player.AmmoCapacity > 0, "player.ammo_capacity")
	check(c.Player.ReloadDuration >= 0, "player.reload_duration")
	check(c.Player.MinReloadDuration >= 0, "player.min_reload_duration")
	check(c.Player.MaxHealth > 0, "player.max_health")
	check(c.Player.HoldFireInterval > 0, "player.hold_fire_interval")

	check(c.Turret.MaxHealth > 0, "turret.max_health")
	check(c.Turret.AmmoCapacity > 0, "turret.ammo_capacity")
	check(c.Turret.FireInterval > 0, "turret.fire_interval")
	check(c.Turret.ReloadDuration >= 0, "turret.reload_duration")
	check(c.Turret.SpawnDistance > 0, "turret.spawn_distance")

	p := c.Projectile
	check(p.FriendlySpeed > 0, "projectile.friendly_speed")
	check(p.HostileSpeed > 0, "projectile.hostile_speed")
	check(p.FriendlyInaccuracyMin >= 0 && p.FriendlyInaccuracyMax >= p.FriendlyInaccuracyMin, "projectile.friendly_inaccuracy")
	check(p.HostileInaccuracyMin >= 0 && p.HostileInaccuracyMax >= p.HostileInaccuracyMin, "projectile.hostile_inaccuracy")
	check(p.CameraHitRadius > 0, "projectile.camera_hit_radius")
	check(p.TurretHitRadius > 0, "projectile.turret_hit_radius")
	check(p.PickupHitRadius > 0, "projectile.pickup_hit_radius")
	check(p.GravityInitial >= 0, "projectile.gravity_initial")
	check(p.ParabolicMultiplier >= 0, "projectile.parabolic_multiplier")
	check(p.DespawnDelay >= 0, "projectile.despawn_delay")

	check(c.Pickup.MaxCount >= 0, "pickup.max_count")
	check(c.Pickup.InitialCount >= 0 && c.Pickup.InitialCount <= c.Pickup.MaxCount, "pickup.initial_count")
	check(c.Pickup.MinDistance > 0 && c.Pickup.MaxDistance >= c.Pickup.MinDistance, "pickup.distance")
	check(c.Pickup.RespawnDelay >= 0, "pickup.respawn_delay")

	if len(problems) > 0 {
		return oops.In("config").
			Code("invalid_config").
			With("fields", problems).
			Errorf("invalid configuration: %d field(s) out of range", len(problems))
	}
	return nil
}
