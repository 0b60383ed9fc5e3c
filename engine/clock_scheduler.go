package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dodge3d/core"
)

// TickFunc advances the simulation by dt
type TickFunc func(dt time.Duration)

// Clock drives a TickFunc on a fixed real-time interval
// The tick function only ever runs on the clock goroutine
type Clock struct {
	interval time.Duration
	source   TimeSource
	tick     TickFunc

	nextDeadline time.Time
	tickCount    atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a stopped clock; nil source uses the system clock
func NewClock(interval time.Duration, source TimeSource, tick TickFunc) *Clock {
	if source == nil {
		source = NewTimeProvider()
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Clock{
		interval: interval,
		source:   source,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Start begins ticking, repeated calls are ignored
func (c *Clock) Start() {
	if c.running.CompareAndSwap(false, true) {
		c.wg.Add(1)
		core.Go(c.loop)
	}
}

// Stop halts ticking and waits for the loop to exit
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
		if c.running.Load() {
			c.wg.Wait()
		}
	})
}

// Ticks returns the number of completed ticks
func (c *Clock) Ticks() uint64 { return c.tickCount.Load() }

// Interval returns the configured tick period
func (c *Clock) Interval() time.Duration { return c.interval }

func (c *Clock) loop() {
	defer c.wg.Done()

	last := c.source.Now()
	c.nextDeadline = last.Add(c.interval)

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-timer.C:
		}

		now := c.source.Now()
		dt := now.Sub(last)
		last = now
		if dt > 0 {
			c.tick(dt)
			c.tickCount.Add(1)
		}

		// Drift correction, resync when more than two ticks behind
		c.nextDeadline = c.nextDeadline.Add(c.interval)
		if now.Sub(c.nextDeadline) > c.interval*2 {
			c.nextDeadline = now.Add(c.interval)
		}
		sleep := c.nextDeadline.Sub(c.source.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
