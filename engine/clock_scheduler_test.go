package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestClockTicksAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var total atomic.Int64
	src := NewMockTimeProvider(time.Unix(0, 0), time.Millisecond)
	c := NewClock(time.Millisecond, src, func(dt time.Duration) {
		total.Add(int64(dt))
	})

	c.Start()
	c.Start()
	require.Eventually(t, func() bool { return c.Ticks() >= 3 }, 2*time.Second, time.Millisecond)
	c.Stop()
	c.Stop()

	stopped := c.Ticks()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, stopped, c.Ticks(), "no ticks after stop")
	assert.Positive(t, total.Load())
}

func TestClockStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewClock(0, nil, func(time.Duration) {})
	assert.Equal(t, time.Second/60, c.Interval())
	c.Stop()
}
