package engine

import (
	"sync/atomic"
	"time"
)

const (
	// MaxDepth bounds the iterative-deepening loop and the killer table.
	MaxDepth uint8 = 127
	// MaxPly bounds the search stack depth (quiescence can run deeper than
	// MaxDepth, so this headroom keeps killer/history indices in range).
	MaxPly uint8 = 255

	// yieldInterval is the maximum wall-clock spacing between cooperative
	// yield checks inside the search, per spec's ≤30ms contract.
	yieldInterval = 30 * time.Millisecond

	// rootMoveTimeGuard aborts an iterative-deepening iteration early when
	// less than this much time remains before the deadline.
	rootMoveTimeGuard = 140 * time.Millisecond
)

// Clock tracks an absolute wall-clock deadline and exposes cooperative
// yield/done checks the search polls at bounded intervals instead of
// spinning on a channel or timer per node — the host executor stays
// responsive without the search owning a goroutine of its own.
type Clock struct {
	deadline    time.Time
	hasDeadline bool
	lastYield   time.Time

	// stopped is set by Stop, which a UCI front end calls from a different
	// goroutine than the one running the search to honor an early "stop"
	// command. It is the one piece of Clock state touched cross-goroutine,
	// so it alone is atomic; everything else here is single-threaded.
	stopped atomic.Bool
}

// NewClock builds a clock with no deadline (an effectively infinite
// budget); call SetDeadline to bound it.
func NewClock() *Clock {
	return &Clock{}
}

// SetDeadline arms the clock against an absolute wall-clock time.
func (c *Clock) SetDeadline(d time.Time) {
	c.deadline = d
	c.hasDeadline = true
	c.lastYield = time.Now()
	c.stopped.Store(false)
}

// Reset clears any deadline.
func (c *Clock) Reset() {
	c.hasDeadline = false
	c.stopped.Store(false)
}

// Stop forces Expired to report true starting immediately, regardless of
// the armed deadline. Safe to call from a goroutine other than the one
// running the search (e.g. a UCI "stop" handler).
func (c *Clock) Stop() {
	c.stopped.Store(true)
}

// Expired reports whether the deadline has passed or Stop was called.
func (c *Clock) Expired() bool {
	return c.stopped.Load() || (c.hasDeadline && !time.Now().Before(c.deadline))
}

// Remaining returns the time left before the deadline, or a large
// sentinel duration when no deadline is set.
func (c *Clock) Remaining() time.Duration {
	if !c.hasDeadline {
		return time.Hour
	}
	return time.Until(c.deadline)
}

// ShouldYield reports whether at least yieldInterval has elapsed since the
// last yield point, resetting the interval if so. The search calls this at
// bounded points (each move loop iteration) to honor the ≤30ms cooperative
// yielding contract without a timer goroutine per node.
func (c *Clock) ShouldYield() bool {
	if !c.hasDeadline {
		return false
	}
	if time.Since(c.lastYield) < yieldInterval {
		return false
	}
	c.lastYield = time.Now()
	return true
}
