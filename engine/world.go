package engine

import (
	"log/slog"
	"time"

	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/status"
	"github.com/lixenwraith/dodge3d/vmath"
)

// World is the simulation context shared by every engine
// Owned by the tick goroutine; nothing in it is safe for concurrent use
type World struct {
	Config    config.Config
	Bus       *Bus
	Scheduler *Scheduler
	Rand      *vmath.Streams
	Metrics   *status.Metrics
	Log       *slog.Logger
	Frame     Frame
	Seed      uint64
}

// NewWorld validates its inputs and wires the shared services
// The camera pose is required up front so no engine ever runs without one
func NewWorld(cfg config.Config, pose CameraPose, log *slog.Logger, metrics *status.Metrics) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !pose.Valid() {
		return nil, oops.In("world").Code("invalid_pose").Errorf("camera pose has no forward axis")
	}
	if log == nil {
		log = slog.Default()
	}
	if metrics == nil {
		metrics = status.Unregistered()
	}

	seed := cfg.Seed
	if seed == 0 {
		s, err := vmath.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	return &World{
		Config:    cfg,
		Bus:       NewBus(log, metrics),
		Scheduler: NewScheduler(),
		Rand:      vmath.NewStreams(seed),
		Metrics:   metrics,
		Log:       log,
		Frame:     Frame{Camera: pose, Previous: pose},
		Seed:      seed,
	}, nil
}

// BeginFrame records the new camera pose and advances the frame counters
// Timers are drained separately so the caller controls ordering
func (w *World) BeginFrame(pose CameraPose, dt time.Duration) {
	if !pose.Valid() {
		pose = w.Frame.Camera
	}
	w.Frame.Tick++
	w.Frame.Delta = dt
	w.Frame.Previous = w.Frame.Camera
	w.Frame.Camera = pose
	w.Frame.Now = w.Scheduler.Now() + dt
}

// Camera returns the current camera pose
func (w *World) Camera() CameraPose { return w.Frame.Camera }

// Now returns simulated time
func (w *World) Now() time.Duration { return w.Scheduler.Now() }
