package toc

import (
	"sync"
	"time"
)

// Velocity defaults. The threshold is in layout units per millisecond; the
// settle delay is how long after the last update the indicator animation is
// re-enabled.
const (
	DefaultVelocityThreshold = 2.0
	DefaultSettleDelay       = 150 * time.Millisecond

	// minElapsedMillis guards the velocity division when two updates land
	// inside the same millisecond
	minElapsedMillis = 0.1
)

// VelocityTracker derives scroll speed from successive offset samples
type VelocityTracker struct {
	limit      float64
	lastOffset float64
	lastTime   time.Time
	sampled    bool
	fast       bool
}

// NewVelocityTracker creates a tracker that flags scrolling faster than
// limit units per millisecond. A zero limit uses the default.
func NewVelocityTracker(limit float64) *VelocityTracker {
	if limit == 0 {
		limit = DefaultVelocityThreshold
	}
	return &VelocityTracker{limit: limit}
}

// Update records a new offset sample and reports whether scrolling is
// currently fast. The first sample never counts as fast.
func (v *VelocityTracker) Update(offset float64, now time.Time) bool {
	if !v.sampled {
		v.lastOffset = offset
		v.lastTime = now
		v.sampled = true
		v.fast = false
		return false
	}

	elapsed := float64(now.Sub(v.lastTime)) / float64(time.Millisecond)
	if elapsed < minElapsedMillis {
		elapsed = minElapsedMillis
	}
	delta := offset - v.lastOffset
	if delta < 0 {
		delta = -delta
	}
	v.fast = delta/elapsed > v.limit
	v.lastOffset = offset
	v.lastTime = now
	return v.fast
}

// Fast returns the result of the most recent Update
func (v *VelocityTracker) Fast() bool {
	return v.fast
}

// AnimationGate suppresses the indicator transition animation while the
// user is scrolling fast, and restores it once updates have settled. The
// restore timer is rearmed on every update, so it only fires after the
// settle delay passes with no further scrolling.
type AnimationGate struct {
	mu         sync.Mutex
	velocity   *VelocityTracker
	settle     time.Duration
	timer      *time.Timer
	suppressed bool
	onChange   func(suppressed bool)
	stopped    bool
}

// NewAnimationGate creates a gate. onChange is invoked on every transition;
// it may be nil when the host polls Suppressed instead. The restore
// transition fires from a timer goroutine, so onChange must be safe to call
// off the update path.
func NewAnimationGate(velocityLimit float64, settle time.Duration, onChange func(suppressed bool)) *AnimationGate {
	if settle == 0 {
		settle = DefaultSettleDelay
	}
	return &AnimationGate{
		velocity: NewVelocityTracker(velocityLimit),
		settle:   settle,
		onChange: onChange,
	}
}

// Observe feeds one scroll sample through the gate
func (g *AnimationGate) Observe(offset float64, now time.Time) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		return
	}

	fast := g.velocity.Update(offset, now)
	entered := fast && !g.suppressed
	if entered {
		g.suppressed = true
	}
	if g.suppressed {
		if g.timer == nil {
			g.timer = time.AfterFunc(g.settle, g.restore)
		} else {
			g.timer.Reset(g.settle)
		}
	}
	onChange := g.onChange
	g.mu.Unlock()

	if entered && onChange != nil {
		onChange(true)
	}
}

// restore re-enables the animation after the settle delay
func (g *AnimationGate) restore() {
	g.mu.Lock()
	if g.stopped || !g.suppressed {
		g.mu.Unlock()
		return
	}
	g.suppressed = false
	onChange := g.onChange
	g.mu.Unlock()

	if onChange != nil {
		onChange(false)
	}
}

// Suppressed reports whether the animation is currently suppressed
func (g *AnimationGate) Suppressed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.suppressed
}

// Stop cancels the pending restore timer. The gate must not be observed
// after Stop; this is the teardown guard against stale timer callbacks.
func (g *AnimationGate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	if g.timer != nil {
		g.timer.Stop()
	}
}
