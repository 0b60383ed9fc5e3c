package physics

import (
	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/vmath"
)

// Launch builds a projectile leaving origin along dir with the profile's speed and gravity
func Launch(profile *BallisticProfile, origin, dir vmath.Vec3) component.ProjectileComponent {
	p := component.ProjectileComponent{
		Position:  origin,
		Direction: vmath.Normalize(dir),
		Speed:     profile.Speed,
		Falling:   profile.Falling,
	}
	if profile.Falling {
		p.Gravity = profile.GravityInitial
	}
	return p
}

// Integrate advances one tick: move along direction, then apply and grow the accumulated drop
// The drop is an exponential approximation of a parabola, not physical gravity
func Integrate(p *component.ProjectileComponent, multiplier float32) {
	p.Position = p.Position.Add(p.Direction.Mul(p.Speed))
	if p.Falling {
		p.Position[1] -= p.Gravity
		p.Gravity *= 1 + multiplier
	}
	p.Ticks++
}
