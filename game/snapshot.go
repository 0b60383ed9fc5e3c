package game

import (
	"errors"
	"io"
	"time"

	"github.com/samber/oops"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/dodge3d/engine"
	"github.com/lixenwraith/dodge3d/system"
)

// AmmoView is the magazine as shown to the presentation layer
type AmmoView struct {
	Capacity int           `msgpack:"capacity"`
	Used     int           `msgpack:"used"`
	Mode     string        `msgpack:"mode"`
	Reload   time.Duration `msgpack:"reload"`
}

// Snapshot is everything the rendering layer needs for one frame
type Snapshot struct {
	Session    string             `msgpack:"session"`
	Tick       uint64             `msgpack:"tick"`
	Now        time.Duration      `msgpack:"now"`
	Camera     engine.CameraPose  `msgpack:"camera"`
	Transforms []engine.Transform `msgpack:"transforms"`
	HUD        system.HUDState    `msgpack:"hud"`
	Ammo       AmmoView           `msgpack:"ammo"`
	Defeated   bool               `msgpack:"defeated"`
}

// Snapshot collects world-space transforms from every engine
// The transform slice is reused across calls; copy it to keep it past the next call
func (s *Session) Snapshot() Snapshot {
	s.transforms = s.transforms[:0]
	for _, e := range s.engines {
		s.transforms = e.Transforms(s.transforms)
	}
	ammo := s.Shooting.Ammo()
	return Snapshot{
		Session:    s.id.String(),
		Tick:       s.world.Frame.Tick,
		Now:        s.world.Now(),
		Camera:     s.world.Camera(),
		Transforms: s.transforms,
		HUD:        s.HUD.State(),
		Ammo: AmmoView{
			Capacity: ammo.Capacity,
			Used:     ammo.Used,
			Mode:     ammo.Mode.String(),
			Reload:   ammo.ReloadTime,
		},
		Defeated: s.Player.Defeated(),
	}
}

// SnapshotWriter streams msgpack-encoded snapshots, one value per frame
type SnapshotWriter struct {
	enc *msgpack.Encoder
	n   int
}

func NewSnapshotWriter(w io.Writer) *SnapshotWriter {
	return &SnapshotWriter{enc: msgpack.NewEncoder(w)}
}

// Write encodes one snapshot
func (w *SnapshotWriter) Write(snap Snapshot) error {
	if err := w.enc.Encode(&snap); err != nil {
		return oops.In("snapshot").Code("encode_failed").With("tick", snap.Tick).Wrapf(err, "encode snapshot")
	}
	w.n++
	return nil
}

// Count returns the number of snapshots written
func (w *SnapshotWriter) Count() int { return w.n }

// ReadSnapshots decodes a snapshot stream until EOF
func ReadSnapshots(r io.Reader, fn func(Snapshot) error) error {
	dec := msgpack.NewDecoder(r)
	for {
		var snap Snapshot
		if err := dec.Decode(&snap); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return oops.In("snapshot").Code("decode_failed").Wrapf(err, "decode snapshot")
		}
		if err := fn(snap); err != nil {
			return err
		}
	}
}
