package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is the world-space vector used across the simulation
// Right-handed, +Y up, camera looks down -Z at rest
type Vec3 = mgl32.Vec3

// Quat is the rotation type paired with Vec3
type Quat = mgl32.Quat

var (
	Zero    = Vec3{}
	Up      = Vec3{0, 1, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, -1}
)

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec3) float32 {
	return a.Sub(b).Len()
}

// WithinRadius reports distance(a, b) <= r without a square root
func WithinRadius(a, b Vec3, r float32) bool {
	d := a.Sub(b)
	return d.Dot(d) <= r*r
}

// Normalize returns the unit vector, zero vector stays zero
func Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// RotateAbout rotates v by angle radians around axis
// Zero angle or degenerate axis returns v unchanged
func RotateAbout(v, axis Vec3, angle float32) Vec3 {
	if angle == 0 {
		return v
	}
	n := Normalize(axis)
	if n == Zero {
		return v
	}
	return mgl32.QuatRotate(angle, n).Rotate(v)
}

// Yaw returns the heading from one point toward another around +Y
// 0 means facing +Z, matching atan2(dx, dz)
func Yaw(from, to Vec3) float32 {
	d := to.Sub(from)
	if d.X() == 0 && d.Z() == 0 {
		return 0
	}
	return float32(math.Atan2(float64(d.X()), float64(d.Z())))
}

// YawRotation converts a heading into a rotation about +Y
func YawRotation(yaw float32) Quat {
	return mgl32.QuatRotate(yaw, Up)
}

// Horizontal drops the vertical component and renormalizes
func Horizontal(v Vec3) Vec3 {
	return Normalize(Vec3{v.X(), 0, v.Z()})
}

// CameraRelative places an offset expressed in camera axes into world space
// offset is (right, up, forward)
func CameraRelative(origin, right, up, forward, offset Vec3) Vec3 {
	return origin.
		Add(right.Mul(offset.X())).
		Add(up.Mul(offset.Y())).
		Add(forward.Mul(offset.Z()))
}

// LookRotation returns the rotation taking the rest forward axis onto dir
func LookRotation(dir Vec3) Quat {
	n := Normalize(dir)
	if n == Zero {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(Forward, n)
}
