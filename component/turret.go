package component

import "github.com/lixenwraith/dodge3d/vmath"

// TurretComponent is the single hostile emplacement driven by the homing engine
// Inert once Health reaches 0
type TurretComponent struct {
	Health   HealthComponent
	Anchor   vmath.Vec3 // Requested spawn point, projectiles leave from here
	Position vmath.Vec3 // Hitbox center announced to the shooter
	Yaw      float32    // Heading toward the camera at spawn
	Spawned  bool
	Ever     bool // Health is initialized on the first spawn only

	// Autonomous fire loop
	Fired     int  // Shots since the last reload pause
	Reloading bool // Pause between bursts
}

// Armed reports whether the turret may fire
func (t *TurretComponent) Armed() bool {
	return t.Spawned && t.Health.Alive() && !t.Reloading
}
