package engine

import (
	"container/heap"
	"time"
)

// Handle refers to one scheduled callback
// The zero Handle is inert; Cancel is idempotent and safe after firing
type Handle struct {
	t *timer
}

// Cancel marks the callback inert, true only for the call that cancelled it
func (h Handle) Cancel() bool {
	if h.t == nil || h.t.cancelled || h.t.done {
		return false
	}
	h.t.cancelled = true
	return true
}

// Active reports whether the callback may still run
func (h Handle) Active() bool {
	return h.t != nil && !h.t.cancelled && !h.t.done
}

type timer struct {
	due       time.Duration
	seq       uint64
	interval  time.Duration // Zero for one-shot
	fn        func()
	cancelled bool
	done      bool
	index     int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	t.index = -1
	return t
}

// Scheduler is the deferred-event queue keyed by simulated time
// Drained once per tick on the tick goroutine; ties fire in scheduling order
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending timerHeap
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns simulated time since the scheduler was created
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn once, d from now; d <= 0 fires on the next drain
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return s.push(s.now+d, 0, fn)
}

// MinInterval bounds repeating callbacks so a large Advance cannot spin
const MinInterval = time.Millisecond

// Every schedules fn repeatedly, first run one interval from now
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval < MinInterval {
		interval = MinInterval
	}
	return s.push(s.now+interval, interval, fn)
}

func (s *Scheduler) push(due, interval time.Duration, fn func()) Handle {
	s.seq++
	t := &timer{due: due, seq: s.seq, interval: interval, fn: fn}
	heap.Push(&s.pending, t)
	return Handle{t: t}
}

// Advance moves simulated time forward by d and runs everything due
func (s *Scheduler) Advance(d time.Duration) int {
	if d > 0 {
		s.now += d
	}
	return s.RunDue()
}

// RunDue runs callbacks due at or before now, including ones scheduled while draining
// Returns the number of callbacks executed
func (s *Scheduler) RunDue() int {
	ran := 0
	for s.pending.Len() > 0 {
		t := s.pending[0]
		if t.due > s.now {
			break
		}
		heap.Pop(&s.pending)
		if t.cancelled {
			continue
		}
		if t.interval > 0 {
			// Reschedule before running so the callback can cancel itself
			t.due += t.interval
			s.seq++
			t.seq = s.seq
			heap.Push(&s.pending, t)
		} else {
			t.done = true
		}
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of live callbacks
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll marks every pending callback inert and empties the queue
func (s *Scheduler) CancelAll() {
	for _, t := range s.pending {
		t.cancelled = true
	}
	s.pending = s.pending[:0]
}
