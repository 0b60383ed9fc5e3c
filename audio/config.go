package audio

import (
	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
)

// Config controls audio output
type Config struct {
	Enabled      bool    `env:"ENABLED"`
	SampleRate   int     `env:"SAMPLE_RATE"`
	MasterVolume float64 `env:"MASTER_VOLUME"`
	Volumes      [cueCount]float64
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		Volumes: [cueCount]float64{
			CueShot:            0.6,
			CueHostileShot:     0.4,
			CueReload:          0.5,
			CueReloadDone:      0.5,
			CuePlayerHit:       0.9,
			CuePlayerHeal:      0.6,
			CueTurretHit:       0.7,
			CueTurretDestroyed: 1.0,
		},
	}
}

// LoadConfig overlays DODGE3D_AUDIO_* environment variables on the defaults
// Master volume is clamped to [0, 1]
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DODGE3D_AUDIO_"}); err != nil {
		return cfg, oops.In("audio").Code("config_env").Wrapf(err, "parse audio environment")
	}
	cfg.MasterVolume = min(max(cfg.MasterVolume, 0), 1)
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return cfg, nil
}

// Volume returns the effective volume of a cue
func (c Config) Volume(cue Cue) float64 {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return c.Volumes[cue] * c.MasterVolume
}
