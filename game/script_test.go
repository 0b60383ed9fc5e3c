package game

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/dodge3d/engine"
)

func TestScriptRun(t *testing.T) {
	s := newSession(t)
	var buf bytes.Buffer
	out := NewSnapshotWriter(&buf)

	sum, err := Script{
		Ticks:     600,
		FireEvery: 20,
		TurretAt:  0,
		Poses:     Strafe(0.5, 4*time.Second),
	}.Run(context.Background(), s, out)
	require.NoError(t, err)

	assert.Positive(t, sum.Shots)
	assert.Positive(t, sum.HostileShots)
	assert.Positive(t, sum.Reloads)
	assert.Equal(t, int(sum.Ticks), sum.Snapshots)
	assert.Positive(t, buf.Len())
}

func TestScriptDeterministic(t *testing.T) {
	script := Script{Ticks: 300, FireEvery: 15, TurretAt: 10, Poses: Strafe(1, 2*time.Second)}

	a, err := script.Run(context.Background(), newSession(t), nil)
	require.NoError(t, err)
	b, err := script.Run(context.Background(), newSession(t), nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Script{Ticks: 10}.Run(ctx, newSession(t), nil)
	require.Error(t, err)
	assert.Equal(t, "cancelled", errCode(t, err))
}

func TestDriverRunsCommands(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newSession(t)
	src := engine.NewMockTimeProvider(time.Unix(0, 0), frame)
	d := NewDriver(s, Strafe(0, 0), WithTimeSource(src))

	d.Start()
	require.True(t, d.Submit(func(s *Session) { s.Tap() }))

	var got Snapshot
	require.Eventually(t, func() bool {
		select {
		case got = <-d.Frames():
			return got.HUD.Shots == 1
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	d.Stop()

	assert.Positive(t, d.Ticks())
	assert.NotEmpty(t, got.Transforms)
}
