package event

import (
	"github.com/lixenwraith/dodge3d/component"
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/vmath"
)

// Message is the unit of bus delivery
// Sender is stamped by the bus or link at send time
type Message struct {
	Kind    Kind
	Payload Payload
	Sender  core.Signature
}

// Valid reports whether the payload matches the kind
func (m Message) Valid() bool {
	switch m.Kind {
	case KindTurretMoved, KindPickupSpawned, KindPickupHit:
		_, ok := m.Payload.(Position)
		return ok
	case KindTurretHit, KindHostileHit, KindProjectileSpawned:
		_, ok := m.Payload.(ProjectileRef)
		return ok
	case KindTurretHealthChanged, KindPlayerHealthChanged:
		_, ok := m.Payload.(Health)
		return ok
	case KindBuffGranted:
		_, ok := m.Payload.(BuffGrant)
		return ok
	case KindTurretDespawned, KindReloadStarted, KindReloadFinished, KindReset:
		_, ok := m.Payload.(Empty)
		return ok
	default:
		return false
	}
}

func (m Message) String() string {
	return m.Kind.String() + " from " + m.Sender.String()
}

func NewTurretMoved(pos vmath.Vec3) Message {
	return Message{Kind: KindTurretMoved, Payload: Position{Position: pos}}
}

func NewTurretDespawned() Message {
	return Message{Kind: KindTurretDespawned, Payload: Empty{}}
}

func NewTurretHit(id uint64, owner core.Signature) Message {
	return Message{Kind: KindTurretHit, Payload: ProjectileRef{ID: id, Owner: owner}}
}

func NewTurretHealthChanged(current, max int) Message {
	return Message{Kind: KindTurretHealthChanged, Payload: Health{Current: current, Max: max}}
}

func NewPickupSpawned(pos vmath.Vec3) Message {
	return Message{Kind: KindPickupSpawned, Payload: Position{Position: pos}}
}

func NewPickupHit(pos vmath.Vec3) Message {
	return Message{Kind: KindPickupHit, Payload: Position{Position: pos}}
}

func NewBuffGranted(g component.BuffGrant) Message {
	return Message{Kind: KindBuffGranted, Payload: BuffGrant{Grant: g}}
}

func NewHostileHit(id uint64, owner core.Signature) Message {
	return Message{Kind: KindHostileHit, Payload: ProjectileRef{ID: id, Owner: owner}}
}

func NewPlayerHealthChanged(current, max int) Message {
	return Message{Kind: KindPlayerHealthChanged, Payload: Health{Current: current, Max: max}}
}

func NewProjectileSpawned(id uint64, owner core.Signature) Message {
	return Message{Kind: KindProjectileSpawned, Payload: ProjectileRef{ID: id, Owner: owner}}
}

func NewReloadStarted() Message {
	return Message{Kind: KindReloadStarted, Payload: Empty{}}
}

func NewReloadFinished() Message {
	return Message{Kind: KindReloadFinished, Payload: Empty{}}
}

func NewReset() Message {
	return Message{Kind: KindReset, Payload: Empty{}}
}
