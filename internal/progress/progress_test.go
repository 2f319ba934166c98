package progress

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTicker_RunsToCompletion(t *testing.T) {
	tk := NewTicker(time.Millisecond, 25)
	doneCh := make(chan struct{})
	var last atomic.Int64
	tk.Start(func(pct int) { last.Store(int64(pct)) }, func() { close(doneCh) })
	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("ticker did not complete")
	}
	if last.Load() != 100 {
		t.Errorf("final pct = %d", last.Load())
	}
}

func TestTicker_StopDiscardsPendingTicks(t *testing.T) {
	tk := NewTicker(10*time.Millisecond, 10)
	var ticks atomic.Int64
	tk.Start(func(int) { ticks.Add(1) }, nil)
	tk.Stop()
	seen := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if ticks.Load() != seen {
		t.Errorf("ticks fired after Stop: %d -> %d", seen, ticks.Load())
	}
}

func TestTicker_StopTwice(t *testing.T) {
	tk := NewTicker(time.Millisecond, 50)
	tk.Stop()
	tk.Stop() // must not panic
}
