package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Rotation timing. Both angles advance by a fixed step per tick, so the
// rotation rate is tied to the tick rate rather than wall-clock deltas.
const (
	// TickInterval is the rotation tick period (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// TickStepX is the per-tick rotation increment about X (radians)
	TickStepX = 0.005

	// TickStepY is the per-tick rotation increment about Y (radians)
	TickStepY = 0.010
)

// Animator drives the continuous group rotation on its own goroutine.
// Angles derive from a single atomic tick counter, so a snapshot is always
// coherent: X and Y come from the same tick.
type Animator struct {
	interval time.Duration
	ticks    atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewAnimator creates a stopped animator. A non-positive interval falls back
// to TickInterval.
func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Animator{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the tick loop. Starting twice is a no-op, and an animator
// cannot be restarted after Stop; create a fresh one instead.
func (a *Animator) Start() {
	select {
	case <-a.stopChan:
		return
	default:
	}
	if a.running.CompareAndSwap(false, true) {
		a.wg.Add(1)
		go a.loop()
	}
}

// Stop halts the tick loop and waits for it to exit. Idempotent. After Stop
// returns, the angles never change again.
func (a *Animator) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopChan)
		if a.running.CompareAndSwap(true, false) {
			a.wg.Wait()
		}
	})
}

// Running reports whether the tick loop is live.
func (a *Animator) Running() bool {
	return a.running.Load()
}

// Angles returns the current rotation about X and Y in radians.
func (a *Animator) Angles() (x, y float64) {
	n := float64(a.ticks.Load())
	return n * TickStepX, n * TickStepY
}

func (a *Animator) loop() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopChan:
			return
		case <-ticker.C:
			a.ticks.Add(1)
		}
	}
}
