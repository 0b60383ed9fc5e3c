package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/dodge3d/vmath"
)

// InaccuracyAngle returns pi/factor scaled by recoil, 0 when factor is 0
func InaccuracyAngle(factor, recoil float32) float32 {
	if factor == 0 {
		return 0
	}
	return math.Pi / factor * recoil
}

// SampleInaccuracy draws the factor and the recoil from separate streams
func SampleInaccuracy(aim *AimProfile, factorRng, recoilRng *vmath.Rand) float32 {
	factor := factorRng.Range(aim.InaccuracyMin, aim.InaccuracyMax)
	recoil := recoilRng.Range(-1, 1)
	return InaccuracyAngle(factor, recoil)
}

// PerturbYaw rotates dir about the camera up axis
func PerturbYaw(dir, up vmath.Vec3, angle float32) vmath.Vec3 {
	return vmath.Normalize(vmath.RotateAbout(dir, up, angle))
}

// Perturb applies a lateral rotation about world up, then a vertical one about dir x up
// Both use the same angle so the error is not purely left/right
func Perturb(dir vmath.Vec3, angle float32) vmath.Vec3 {
	if angle == 0 {
		return dir
	}
	lateral := vmath.RotateAbout(dir, vmath.Up, angle)
	axis := lateral.Cross(vmath.Up)
	return vmath.Normalize(vmath.RotateAbout(lateral, axis, angle))
}

// VelocityEstimator derives target velocity from successive position samples
type VelocityEstimator struct {
	prev   vmath.Vec3
	prevAt time.Duration
	has    bool
}

// Sample records pos at now and returns velocity in units per second
// The first sample and zero elapsed time yield zero velocity
func (e *VelocityEstimator) Sample(pos vmath.Vec3, now time.Duration) vmath.Vec3 {
	var vel vmath.Vec3
	if e.has {
		if dt := now - e.prevAt; dt > 0 {
			vel = pos.Sub(e.prev).Mul(float32(1 / dt.Seconds()))
		}
	}
	e.prev = pos
	e.prevAt = now
	e.has = true
	return vel
}

func (e *VelocityEstimator) Reset() { *e = VelocityEstimator{} }

// PredictiveAim returns the unit direction from spawn toward where target will be
// when a projectile moving at speed (units per second) arrives
// Falls back to the direct line, then to -Z, when the lead is degenerate
func PredictiveAim(spawn, target, velocity vmath.Vec3, speed float32) vmath.Vec3 {
	dist := vmath.Distance(spawn, target)
	var lead float32
	if dist != 0 && speed != 0 {
		lead = dist / speed
	}
	predicted := target.Add(velocity.Mul(lead))

	dir := vmath.Normalize(predicted.Sub(spawn))
	if dir == vmath.Zero {
		dir = vmath.Normalize(target.Sub(spawn))
	}
	if dir == vmath.Zero {
		dir = vmath.Forward
	}
	return dir
}
