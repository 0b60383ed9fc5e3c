package core

// Signature identifies one participant on the message bus
// Unique per live participant, compared by value for routing
type Signature string

// Well-known participants
const (
	SigMediator Signature = "mediator"
	SigShooting Signature = "shooting-engine"
	SigHoming   Signature = "homing-engine"
	SigBuff     Signature = "buff-engine"
	SigPlayer   Signature = "player"
	SigHUD      Signature = "hud"
)

func (s Signature) String() string { return string(s) }

// Empty reports the zero signature, never routable
func (s Signature) Empty() bool { return s == "" }
