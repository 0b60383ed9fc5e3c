package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWithinRadiusMatchesDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Vec3{
			rapid.Float32Range(-10, 10).Draw(t, "ax"),
			rapid.Float32Range(-10, 10).Draw(t, "ay"),
			rapid.Float32Range(-10, 10).Draw(t, "az"),
		}
		b := Vec3{
			rapid.Float32Range(-10, 10).Draw(t, "bx"),
			rapid.Float32Range(-10, 10).Draw(t, "by"),
			rapid.Float32Range(-10, 10).Draw(t, "bz"),
		}
		d := Distance(a, b)
		// Avoid the boundary where float rounding differs between the two forms
		if !WithinRadius(a, b, d*1.001+1e-4) {
			t.Fatalf("point at distance %v not within slightly larger radius", d)
		}
		if d > 1e-3 && WithinRadius(a, b, d*0.999-1e-4) {
			t.Fatalf("point at distance %v within slightly smaller radius", d)
		}
	})
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Zero, Normalize(Zero))
	assert.InDelta(t, 1.0, Normalize(Vec3{3, 4, 0}).Len(), 1e-6)
}

func TestRotateAboutPreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := Vec3{
			rapid.Float32Range(-5, 5).Draw(t, "x"),
			rapid.Float32Range(-5, 5).Draw(t, "y"),
			rapid.Float32Range(-5, 5).Draw(t, "z"),
		}
		angle := rapid.Float32Range(-math.Pi, math.Pi).Draw(t, "angle")
		r := RotateAbout(v, Up, angle)
		if math.Abs(float64(r.Len()-v.Len())) > 1e-4 {
			t.Fatalf("length changed: %v -> %v", v.Len(), r.Len())
		}
	})
}

func TestRotateAboutQuarterTurn(t *testing.T) {
	r := RotateAbout(Forward, Up, math.Pi/2)
	assert.InDelta(t, -1, r.X(), 1e-5)
	assert.InDelta(t, 0, r.Z(), 1e-5)

	assert.Equal(t, Forward, RotateAbout(Forward, Up, 0))
	assert.Equal(t, Forward, RotateAbout(Forward, Zero, 1))
}

func TestYaw(t *testing.T) {
	assert.InDelta(t, 0, Yaw(Zero, Vec3{0, 0, 1}), 1e-6)
	assert.InDelta(t, math.Pi/2, Yaw(Zero, Vec3{1, 0, 0}), 1e-6)
	assert.InDelta(t, math.Pi, math.Abs(float64(Yaw(Zero, Vec3{0, 5, -1}))), 1e-6)
	assert.Equal(t, float32(0), Yaw(Zero, Vec3{0, 3, 0}))
}

func TestCameraRelative(t *testing.T) {
	p := CameraRelative(Vec3{1, 1, 1}, Right, Up, Forward, Vec3{0.5, -0.25, 2})
	assert.InDelta(t, 1.5, p.X(), 1e-6)
	assert.InDelta(t, 0.75, p.Y(), 1e-6)
	assert.InDelta(t, -1, p.Z(), 1e-6)
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
	assert.NotZero(t, NewRand(0).Next(), "zero seed must not stall")
}

func TestRandRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRand(rapid.Uint64().Draw(t, "seed"))
		lo := rapid.Float32Range(-100, 100).Draw(t, "lo")
		span := rapid.Float32Range(0, 100).Draw(t, "span")
		v := r.Range(lo, lo+span)
		if span == 0 {
			if v != lo {
				t.Fatalf("empty range returned %v", v)
			}
			return
		}
		if v < lo || v > lo+span {
			t.Fatalf("%v outside [%v, %v]", v, lo, lo+span)
		}
	})
}

func TestStreamsIndependent(t *testing.T) {
	s := NewStreams(7)
	assert.NotEqual(t, s.Inaccuracy.Next(), s.Recoil.Next())

	again := NewStreams(7)
	assert.Equal(t, NewStreams(7).Buff.Next(), again.Buff.Next())
}

func TestLookRotation(t *testing.T) {
	q := LookRotation(Vec3{1, 0, 0})
	r := q.Rotate(Forward)
	assert.InDelta(t, 1, r.X(), 1e-5)
	assert.Equal(t, Forward, LookRotation(Zero).Rotate(Forward))
}
