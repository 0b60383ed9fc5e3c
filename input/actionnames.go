package input

// actionRegistry maps canonical action names to intents
// Used by the binding loader to resolve action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
	"new_round":   IntentNewRound,

	"fire":      IntentTap,
	"hold_fire": IntentHoldToggle,
	"reload":    IntentReload,

	"spawn_turret":   IntentSpawnTurret,
	"despawn_turret": IntentDespawnTurret,

	"move_forward": IntentMoveForward,
	"move_back":    IntentMoveBack,
	"strafe_left":  IntentStrafeLeft,
	"strafe_right": IntentStrafeRight,
	"turn_left":    IntentTurnLeft,
	"turn_right":   IntentTurnRight,
}

// ActionNames lists every bindable action
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
