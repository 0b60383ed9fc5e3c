package engine

import (
	"log/slog"

	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/status"
)

// Bus routes messages between participants by signature
//
// Architecture:
//   - Synchronous inline delivery, no queue; the tick goroutine is the only caller
//   - Participants are visited in registration order
//   - Delivery iterates a snapshot, so receivers may register, unregister or send
//   - Unknown targets are a valid configuration and silently ignored
//
// Usage:
//  1. Create bus: NewBus(log, metrics)
//  2. Register participants: bus.Register(p)
//  3. Participants send through their Link
type Bus struct {
	participants []Participant
	log          *slog.Logger
	metrics      *status.Metrics
}

// NewBus creates an empty bus; nil logger falls back to slog.Default
func NewBus(log *slog.Logger, metrics *status.Metrics) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{
		log:     log.With("component", "bus"),
		metrics: metrics,
	}
}

// Register adds a participant
// Re-registering the same participant is a no-op; a different participant under a live signature is rejected
func (b *Bus) Register(p Participant) error {
	if p == nil {
		return oops.In("bus").Code("nil_participant").Errorf("cannot register nil participant")
	}
	sig := p.Signature()
	if sig.Empty() {
		return oops.In("bus").Code("empty_signature").Errorf("participant has no signature")
	}
	for _, existing := range b.participants {
		if existing.Signature() != sig {
			continue
		}
		if existing == p {
			return nil
		}
		return oops.In("bus").
			Code("duplicate_signature").
			With("signature", sig.String()).
			Errorf("signature %q already registered", sig)
	}

	// Copy-on-write keeps in-flight snapshots stable
	next := make([]Participant, len(b.participants), len(b.participants)+1)
	copy(next, b.participants)
	b.participants = append(next, p)

	if l, ok := p.(interface{ Attach(*Bus) }); ok {
		l.Attach(b)
	}
	b.log.Debug("participant registered", "signature", sig.String())
	return nil
}

// Unregister removes the participant with the given signature, false if absent
func (b *Bus) Unregister(sig core.Signature) bool {
	for i, p := range b.participants {
		if p.Signature() != sig {
			continue
		}
		next := make([]Participant, 0, len(b.participants)-1)
		next = append(next, b.participants[:i]...)
		next = append(next, b.participants[i+1:]...)
		b.participants = next
		b.log.Debug("participant unregistered", "signature", sig.String())
		return true
	}
	return false
}

// Send delivers msg to every participant whose signature equals to
func (b *Bus) Send(to core.Signature, msg event.Message) {
	if !b.admit(msg) {
		return
	}
	delivered := 0
	for _, p := range b.participants {
		if p.Signature() == to {
			p.Receive(msg)
			delivered++
		}
	}
	if delivered == 0 {
		b.log.Debug("no route", "to", to.String(), "kind", msg.Kind.String())
		b.metrics.MessageUnrouted(msg.Kind.String())
		return
	}
	b.metrics.MessageDelivered(msg.Kind.String())
}

// SendMany delivers msg to each target in order
func (b *Bus) SendMany(to []core.Signature, msg event.Message) {
	for _, sig := range to {
		b.Send(sig, msg)
	}
}

// Broadcast delivers msg to every participant; an unset sender becomes the mediator
func (b *Bus) Broadcast(msg event.Message) {
	if msg.Sender.Empty() {
		msg.Sender = core.SigMediator
	}
	if !b.admit(msg) {
		return
	}
	snapshot := b.participants
	for _, p := range snapshot {
		p.Receive(msg)
	}
	b.metrics.MessageDelivered(msg.Kind.String())
}

// Participants returns registered signatures in registration order
func (b *Bus) Participants() []core.Signature {
	out := make([]core.Signature, len(b.participants))
	for i, p := range b.participants {
		out[i] = p.Signature()
	}
	return out
}

// Has reports whether a signature is registered
func (b *Bus) Has(sig core.Signature) bool {
	for _, p := range b.participants {
		if p.Signature() == sig {
			return true
		}
	}
	return false
}

func (b *Bus) admit(msg event.Message) bool {
	if msg.Valid() {
		return true
	}
	b.log.Warn("dropping malformed message",
		"kind", msg.Kind.String(),
		"sender", msg.Sender.String(),
	)
	b.metrics.MessageDropped(msg.Kind.String())
	return false
}
