package game

import (
	"context"
	"time"

	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/component"
)

// Script drives a session headlessly at a fixed step, without a wall clock
type Script struct {
	Ticks     int
	Step      time.Duration
	FireEvery int // Ticks between taps, 0 disables
	TurretAt  int // Tick at which the turret is placed ahead, negative disables
	Poses     PoseSource
}

// Summary is the outcome of a scripted run
type Summary struct {
	Ticks        uint64 `yaml:"ticks"`
	Shots        int    `yaml:"shots"`
	HostileShots int    `yaml:"hostile_shots"`
	Reloads      int    `yaml:"reloads"`
	PlayerHealth int    `yaml:"player_health"`
	TurretHealth int    `yaml:"turret_health"`
	Defeated     bool   `yaml:"defeated"`
	Snapshots    int    `yaml:"snapshots"`
}

// Run plays the script, reloading whenever the magazine runs dry
// Stops early on defeat or context cancellation; out may be nil
func (sc Script) Run(ctx context.Context, s *Session, out *SnapshotWriter) (Summary, error) {
	step := sc.Step
	if step <= 0 {
		step = s.World().Config.TickInterval()
	}
	poses := sc.Poses
	if poses == nil {
		poses = Strafe(0, 0)
	}

	for i := 0; i < sc.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return sc.summary(s, out), oops.In("script").Code("cancelled").With("tick", i).Wrap(err)
		}

		if i == sc.TurretAt {
			s.SpawnTurretAhead()
		}
		if sc.FireEvery > 0 && i%sc.FireEvery == 0 {
			s.Tap()
		}
		if s.Shooting.Ammo().Mode == component.AmmoOutOfAmmo {
			s.Reload()
		}

		s.Tick(poses.Pose(s.World().Now()+step), step)

		if out != nil {
			if err := out.Write(s.Snapshot()); err != nil {
				return sc.summary(s, out), err
			}
		}
		if s.Defeated() {
			break
		}
	}
	return sc.summary(s, out), nil
}

func (sc Script) summary(s *Session, out *SnapshotWriter) Summary {
	hud := s.HUD.State()
	sum := Summary{
		Ticks:        s.World().Frame.Tick,
		Shots:        hud.Shots,
		HostileShots: hud.HostileShots,
		Reloads:      hud.Reloads,
		PlayerHealth: hud.PlayerHealth,
		TurretHealth: hud.TurretHealth,
		Defeated:     s.Defeated(),
	}
	if out != nil {
		sum.Snapshots = out.Count()
	}
	return sum
}
