// Package progress provides the cosmetic reveal timer that animates vector
// display. It gates only when output appears, never when work runs: the
// vectorization it "waits" for has already completed by the time a ticker
// starts.
package progress

import (
	"sync"
	"time"
)

// Ticker advances a percentage on a fixed interval and invokes a callback
// per tick. Stop discards any pending ticks, so a superseding action (such
// as a reset) can guarantee no stale callback fires afterwards.
type Ticker struct {
	interval time.Duration
	step     int

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

// NewTicker creates a ticker that advances by step percent every interval.
// step below 1 is clamped to 1.
func NewTicker(interval time.Duration, step int) *Ticker {
	if step < 1 {
		step = 1
	}
	return &Ticker{
		interval: interval,
		step:     step,
		stop:     make(chan struct{}),
	}
}

// Start runs the ticker in the background, calling onTick with the current
// percentage (capped at 100) and done once 100 is reached. Callbacks stop
// immediately when Stop is called, even mid-run.
func (t *Ticker) Start(onTick func(pct int), done func()) {
	go func() {
		tick := time.NewTicker(t.interval)
		defer tick.Stop()
		pct := 0
		for {
			select {
			case <-t.stop:
				return
			case <-tick.C:
				pct += t.step
				if pct > 100 {
					pct = 100
				}
				if onTick != nil {
					onTick(pct)
				}
				if pct >= 100 {
					if done != nil {
						done()
					}
					return
				}
			}
		}
	}()
}

// Stop discards all future ticks. Safe to call more than once and safe to
// call on a ticker that already finished.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.stop)
}
