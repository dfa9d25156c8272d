package toc

import (
	"time"

	"github.com/pstuifzand/tui-docview/internal/geometry"
)

// Config tunes a Tracker. Zero fields fall back to the package defaults,
// which match a pixel-based host; cell-based hosts pass their own scaled
// values.
type Config struct {
	ActiveOffset      float64
	ViewportThreshold float64
	ScrollPadding     float64
	VelocityThreshold float64
	SettleDelay       time.Duration
	// IndicatorX is the fixed horizontal position of the indicator path
	IndicatorX float64
}

// Snapshot is the published result of one update pass. It feeds both
// update channels: hosts read it from their normal render pass, and the
// same value is handed to OnUpdate callbacks for imperative hot-path
// consumers.
type Snapshot struct {
	ActiveIDs []string
	Geometry  geometry.PathGeometry
	TrackPath string
}

// Tracker drives the whole engine: one update pass per scheduled frame,
// resolving the active set, computing path geometry from the position
// cache, publishing the snapshot, and synchronizing the TOC scroll window.
// All methods must be called from the host's update thread; only the
// animation gate's settle timer runs elsewhere.
type Tracker struct {
	cfg      Config
	ids      []string
	measurer Measurer
	content  ScrollView
	tocView  ScrollView
	cache    *PositionCache
	syncer   Synchronizer
	gate     *AnimationGate
	sched    FrameScheduler

	snap     Snapshot
	onUpdate []func(Snapshot)
	closed   bool
}

// NewTracker wires the engine over a heading catalog. ids is the flattened
// catalog in order; content and tocView are the two scroll containers,
// typically discovered with FindScrollContainer.
func NewTracker(cfg Config, ids []string, measurer Measurer, content, tocView ScrollView, sched FrameScheduler) *Tracker {
	t := &Tracker{
		cfg:      cfg,
		ids:      ids,
		measurer: measurer,
		content:  content,
		tocView:  tocView,
		cache:    NewPositionCache(measurer, ids),
		syncer:   Synchronizer{Padding: cfg.ScrollPadding},
		sched:    sched,
	}
	t.gate = NewAnimationGate(cfg.VelocityThreshold, cfg.SettleDelay, nil)
	return t
}

// OnUpdate registers a callback fired at the end of every update pass with
// the freshly computed snapshot
func (t *Tracker) OnUpdate(fn func(Snapshot)) {
	t.onUpdate = append(t.onUpdate, fn)
}

// ScrollChanged schedules one update pass for the next frame. Safe to call
// on every raw scroll event; the scheduler collapses bursts.
func (t *Tracker) ScrollChanged() {
	if t.closed {
		return
	}
	t.sched.Request(t.update)
}

// InvalidateLayout marks the link positions stale and schedules an update.
// Called on resize; scrolling alone never invalidates the cache.
func (t *Tracker) InvalidateLayout() {
	if t.closed {
		return
	}
	t.cache.Invalidate()
	t.sched.Request(t.update)
}

// SetCatalog replaces the heading catalog, drops the cached positions and
// recomputes immediately
func (t *Tracker) SetCatalog(ids []string) {
	if t.closed {
		return
	}
	t.ids = ids
	t.cache.SetIDs(ids)
	t.update()
}

// Refresh forces an immediate full pass, bypassing the frame scheduler.
// Hosts call it after a layout mutation the engine cannot observe itself.
func (t *Tracker) Refresh() {
	if t.closed {
		return
	}
	t.cache.Invalidate()
	t.update()
}

// Snapshot returns the most recently published state
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}

// ActiveIDs returns the current active heading ids in catalog order
func (t *Tracker) ActiveIDs() []string {
	return t.snap.ActiveIDs
}

// Geometry returns the current indicator geometry
func (t *Tracker) Geometry() geometry.PathGeometry {
	return t.snap.Geometry
}

// TrackPath returns the SVG path data for the full-length track, or ""
// while the TOC has no measurable extent
func (t *Tracker) TrackPath() string {
	return t.snap.TrackPath
}

// AnimationSuppressed reports whether the indicator transition animation is
// currently suppressed because of fast scrolling
func (t *Tracker) AnimationSuppressed() bool {
	return t.gate.Suppressed()
}

// Close cancels the pending frame request and the settle timer. The
// tracker ignores all calls after Close.
func (t *Tracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.sched.Cancel()
	t.gate.Stop()
}

// update is the single pass: velocity, active set, geometry, snapshot and
// callbacks, then TOC autoscroll. The order matters; the synchronizer
// consumes the active set and link rects computed earlier in the pass.
func (t *Tracker) update() {
	if t.closed {
		return
	}

	t.gate.Observe(t.content.Offset(), time.Now())

	active := ResolveActive(t.ids, t.measurer.SectionRect, t.content.ViewportHeight(), ResolveConfig{
		Offset:            t.cfg.ActiveOffset,
		ViewportThreshold: t.cfg.ViewportThreshold,
	})

	links := t.cache.Get()
	geo := geometry.Calculate(links, active)

	snap := Snapshot{ActiveIDs: active, Geometry: geo}
	if len(links) > 0 && geo.TotalLength > 0 {
		snap.TrackPath = geometry.VerticalPath(t.cfg.IndicatorX, links[0].Top, links[len(links)-1].Bottom)
	}
	t.snap = snap

	for _, fn := range t.onUpdate {
		fn(snap)
	}

	t.autoscroll(active)
}

// autoscroll finds the first and last active link rects and hands them to
// the synchronizer. It never runs with an empty active set, and silently
// does nothing when none of the active headings has a rendered link.
func (t *Tracker) autoscroll(active []string) {
	if len(active) == 0 || t.tocView == nil {
		return
	}

	var first, last geometry.LinkPosition
	found := false
	for _, id := range active {
		pos, ok := t.cache.Lookup(id)
		if !ok {
			continue
		}
		if !found {
			first = pos
			found = true
		}
		last = pos
	}
	if !found {
		return
	}
	t.syncer.Sync(t.content, t.tocView, first.Rect, last.Rect)
}
