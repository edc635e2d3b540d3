// internal/dispatch/fallback.go
package dispatch

import (
	"sync"
	"time"

	"concierge-workers/internal/common/metrics"
)

// Fallback is the handle of a scheduled web fallback. It resolves exactly
// once: fired, suppressed by the visibility gate, or cancelled. A nil
// *Fallback stands for "no timer was scheduled" and is already resolved.
type Fallback struct {
	id    string
	timer *time.Timer
	done  chan struct{}

	mu      sync.Mutex
	settled bool
	outcome string
}

var resolved = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

func newFallback(id string) *Fallback {
	return &Fallback{id: id, done: make(chan struct{})}
}

func (f *Fallback) ID() string {
	if f == nil {
		return ""
	}
	return f.id
}

// Cancel stops a pending fallback. It reports whether the call prevented
// the fallback from running.
func (f *Fallback) Cancel() bool {
	if f == nil {
		return false
	}
	if f.timer != nil && !f.timer.Stop() {
		return false
	}
	return f.settle(metrics.FallbackCancelled)
}

// Fired reports whether the web fallback navigation happened.
func (f *Fallback) Fired() bool {
	return f.Outcome() == metrics.FallbackFired
}

// Outcome is "" while pending, then one of fired, suppressed or cancelled.
func (f *Fallback) Outcome() string {
	if f == nil {
		return ""
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Done is closed once the fallback has resolved.
func (f *Fallback) Done() <-chan struct{} {
	if f == nil {
		return resolved
	}
	return f.done
}

func (f *Fallback) settle(outcome string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settled {
		return false
	}
	f.settled = true
	f.outcome = outcome
	metrics.Fallbacks.WithLabelValues(outcome).Inc()
	close(f.done)
	return true
}
