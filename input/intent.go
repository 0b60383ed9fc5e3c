package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentToggleMute // m
	IntentNewRound   // n, resets the session

	// Weapon
	IntentTap        // Space
	IntentHoldToggle // f, starts or stops auto fire
	IntentReload     // r

	// Turret
	IntentSpawnTurret   // t, spawns ahead of the camera
	IntentDespawnTurret // T

	// Camera
	IntentMoveForward // Up, w
	IntentMoveBack    // Down, s
	IntentStrafeLeft  // a
	IntentStrafeRight // d
	IntentTurnLeft    // Left
	IntentTurnRight   // Right

	intentCount
)

func (t IntentType) String() string {
	for name, it := range actionRegistry {
		if it == t && it != IntentNone {
			return name
		}
	}
	return "none"
}

// Movement reports whether the intent moves the camera
func (t IntentType) Movement() bool {
	return t >= IntentMoveForward && t <= IntentTurnRight
}
