package engine

import (
	"github.com/lixenwraith/dodge3d/core"
	"github.com/lixenwraith/dodge3d/event"
)

// Participant is anything the bus can route to
// Receive must tolerate every kind, ignoring the ones it does not handle
type Participant interface {
	Signature() core.Signature
	Receive(msg event.Message)
}

// Link is the embeddable bus handle for participants
// Sends through a detached link are no-ops
type Link struct {
	sig core.Signature
	bus *Bus
}

func NewLink(sig core.Signature) Link {
	return Link{sig: sig}
}

func (l *Link) Signature() core.Signature { return l.sig }

// Attach binds the link to a bus, called by Bus.Register
func (l *Link) Attach(b *Bus) { l.bus = b }

// Detached reports whether sends will be dropped
func (l *Link) Detached() bool { return l.bus == nil }

// Send stamps the sender and routes msg to one signature
func (l *Link) Send(to core.Signature, msg event.Message) {
	if l.bus == nil {
		return
	}
	msg.Sender = l.sig
	l.bus.Send(to, msg)
}

// SendMany stamps the sender and routes msg to each signature
func (l *Link) SendMany(to []core.Signature, msg event.Message) {
	if l.bus == nil {
		return
	}
	msg.Sender = l.sig
	l.bus.SendMany(to, msg)
}
