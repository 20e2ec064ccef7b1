package game

import (
	"sync"
	"time"
)

// MaxFrameTime caps a single step so a stall doesn't tunnel bodies
const MaxFrameTime = 0.1

// TimeSource supplies the current time to a TickTimer
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock
type SystemTime struct{}

// Now returns time.Now()
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a TimeSource advanced by hand, for tests and replays
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTime creates a manual time source starting at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

// Now returns the current manual time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the manual time forward
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// TickTimer measures the time between simulation steps. Time spent paused
// is not counted.
type TickTimer struct {
	src TimeSource

	start   time.Time
	paused  time.Duration // elapsed time frozen at pause
	started bool
	halted  bool
}

// NewTickTimer creates a stopped timer. A nil source means the wall clock.
func NewTickTimer(src TimeSource) *TickTimer {
	if src == nil {
		src = SystemTime{}
	}
	return &TickTimer{src: src}
}

// Start (re)starts the timer from zero
func (t *TickTimer) Start() {
	t.started = true
	t.halted = false
	t.start = t.src.Now()
	t.paused = 0
}

// Stop stops the timer. Elapsed reads zero until restarted.
func (t *TickTimer) Stop() {
	t.started = false
	t.halted = false
}

// Pause freezes the elapsed time
func (t *TickTimer) Pause() {
	if t.started && !t.halted {
		t.halted = true
		t.paused = t.src.Now().Sub(t.start)
	}
}

// Resume continues from the frozen elapsed time
func (t *TickTimer) Resume() {
	if t.halted {
		t.halted = false
		t.start = t.src.Now().Add(-t.paused)
		t.paused = 0
	}
}

// Paused reports whether the timer is paused
func (t *TickTimer) Paused() bool {
	return t.halted
}

// Elapsed returns time since Start, excluding pauses
func (t *TickTimer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	if t.halted {
		return t.paused
	}
	return t.src.Now().Sub(t.start)
}

// Lap returns seconds since the previous lap, capped at MaxFrameTime, and
// restarts the timer. A paused timer laps zero.
func (t *TickTimer) Lap() float64 {
	if t.halted {
		return 0
	}
	dt := t.Elapsed().Seconds()
	t.Start()
	if dt > MaxFrameTime {
		dt = MaxFrameTime
	}
	return dt
}
