package engine

import (
	"time"

	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/vmath"
)

// CameraPose is the tracked camera supplied every tick
// Axes are expected unit length and mutually orthogonal
type CameraPose struct {
	Position vmath.Vec3 `msgpack:"pos"`
	Forward  vmath.Vec3 `msgpack:"fwd"`
	Right    vmath.Vec3 `msgpack:"right"`
	Up       vmath.Vec3 `msgpack:"up"`
}

// DefaultPose is a camera at the origin looking down -Z
func DefaultPose() CameraPose {
	return CameraPose{
		Forward: vmath.Forward,
		Right:   vmath.Right,
		Up:      vmath.Up,
	}
}

// PoseLookingAt builds an upright pose at pos facing dir
func PoseLookingAt(pos, dir vmath.Vec3) CameraPose {
	fwd := vmath.Normalize(dir)
	if fwd == vmath.Zero {
		fwd = vmath.Forward
	}
	right := vmath.Normalize(fwd.Cross(vmath.Up))
	if right == vmath.Zero {
		right = vmath.Right
	}
	return CameraPose{
		Position: pos,
		Forward:  fwd,
		Right:    right,
		Up:       right.Cross(fwd),
	}
}

// Valid reports whether the pose has a usable forward axis
func (p CameraPose) Valid() bool {
	return p.Forward.Len() > 0
}

// Relative places an offset in (right, up, forward) camera axes into world space
func (p CameraPose) Relative(offset vmath.Vec3) vmath.Vec3 {
	return vmath.CameraRelative(p.Position, p.Right, p.Up, p.Forward, offset)
}

// Ahead returns the point distance units along the forward axis
func (p CameraPose) Ahead(distance float32) vmath.Vec3 {
	return p.Position.Add(p.Forward.Mul(distance))
}

// Frame is the per-tick context shared by all engines
type Frame struct {
	Tick     uint64
	Now      time.Duration // Simulated time
	Delta    time.Duration
	Camera   CameraPose
	Previous CameraPose
}

// TransformKind: projectile, turret, pickup
type TransformKind int

const (
	TransformProjectile TransformKind = iota
	TransformTurret
	TransformPickup
)

func (k TransformKind) String() string {
	switch k {
	case TransformProjectile:
		return "projectile"
	case TransformTurret:
		return "turret"
	case TransformPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Transform is one world-space object handed to the rendering layer
type Transform struct {
	Kind     TransformKind  `msgpack:"kind"`
	ID       uint64         `msgpack:"id"`
	Owner    core.Signature `msgpack:"owner"`
	Position vmath.Vec3     `msgpack:"pos"`
	Rotation vmath.Quat     `msgpack:"rot"`
	Tag      string         `msgpack:"tag,omitempty"`
}
