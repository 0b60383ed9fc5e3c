package audio

// Cue is a short sound tied to a gameplay moment
type Cue int

const (
	CueShot            Cue = iota // Player fired
	CueHostileShot                // Turret fired
	CueReload                     // Reload started
	CueReloadDone                 // Magazine full
	CuePlayerHit                  // Player lost health
	CuePlayerHeal                 // Player regained health
	CueTurretHit                  // Turret lost health
	CueTurretDestroyed            // Turret reached zero
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHostileShot:
		return "hostile_shot"
	case CueReload:
		return "reload"
	case CueReloadDone:
		return "reload_done"
	case CuePlayerHit:
		return "player_hit"
	case CuePlayerHeal:
		return "player_heal"
	case CueTurretHit:
		return "turret_hit"
	case CueTurretDestroyed:
		return "turret_destroyed"
	default:
		return "unknown"
	}
}
