package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// EnvPrefix namespaces environment overrides, e.g. DODGE3D_PLAYER_AMMO_CAPACITY
const EnvPrefix = "DODGE3D_"

// Source lists the layers applied on top of Default, lowest precedence first
type Source struct {
	File      string         // Optional YAML file
	Env       bool           // Apply environment overrides
	Flags     *pflag.FlagSet // Optional; only flags set on the command line apply
	EnvPrefix string         // Defaults to EnvPrefix
}

// Load layers file, environment and flags over Default and validates the result
func Load(src Source) (Config, error) {
	cfg := Default()

	if src.File != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(src.File), yaml.Parser()); err != nil {
			return Config{}, oops.In("config").Code("config_file").With("path", src.File).Wrapf(err, "load config file")
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return Config{}, oops.In("config").Code("config_file").With("path", src.File).Wrapf(err, "decode config file")
		}
	}

	if src.Env {
		prefix := src.EnvPrefix
		if prefix == "" {
			prefix = EnvPrefix
		}
		if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
			return Config{}, oops.In("config").Code("config_env").Wrapf(err, "parse env")
		}
	}

	if src.Flags != nil {
		k := koanf.New(".")
		provider := posflag.ProviderWithFlag(src.Flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(src.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, oops.In("config").Code("config_flags").Wrapf(err, "load flags")
		}
		if err := k.Unmarshal("", &cfg); err != nil {
			return Config{}, oops.In("config").Code("config_flags").Wrapf(err, "decode flags")
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers the tunables exposed on the command line
// Flag names are koanf keys so they unmarshal straight onto Config
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint64("seed", d.Seed, "rng seed, 0 picks a random one")
	fs.Int("tick_rate", d.TickRate, "simulation ticks per second")
	fs.Bool("debug", d.Debug, "verbose gameplay logging")

	fs.Int("player.ammo_capacity", d.Player.AmmoCapacity, "player magazine size")
	fs.Duration("player.reload_duration", d.Player.ReloadDuration, "player reload time")
	fs.Int("player.max_health", d.Player.MaxHealth, "player starting health")
	fs.Bool("player.cap_health_restore", d.Player.CapHealthRestore, "clamp health buffs at max health")

	fs.Int("turret.max_health", d.Turret.MaxHealth, "turret health")
	fs.Int("turret.ammo_capacity", d.Turret.AmmoCapacity, "turret burst size")
	fs.Duration("turret.fire_interval", d.Turret.FireInterval, "delay between turret shots")
	fs.Duration("turret.reload_duration", d.Turret.ReloadDuration, "turret pause between bursts")

	fs.Float32("projectile.friendly_speed", d.Projectile.FriendlySpeed, "player projectile speed per tick")
	fs.Float32("projectile.hostile_speed", d.Projectile.HostileSpeed, "turret projectile speed per tick")
	fs.Duration("projectile.despawn_delay", d.Projectile.DespawnDelay, "projectile lifetime")

	fs.Int("pickup.max_count", d.Pickup.MaxCount, "maximum live pickups")
	fs.Duration("pickup.respawn_delay", d.Pickup.RespawnDelay, "pickup refill delay, 0 disables")
}
