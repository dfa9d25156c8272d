package app

// loopScheduler is the app's frame-scheduling primitive: requests made
// from the event loop are held until the next render tick, so bursts of
// scroll events collapse into one engine pass per frame. Everything runs
// on the event loop goroutine, so no locking is needed.
type loopScheduler struct {
	pending func()
}

// Request schedules fn to run on the next frame. Repeated requests before
// the frame collapse into one.
func (s *loopScheduler) Request(fn func()) {
	s.pending = fn
}

// Cancel drops the pending request
func (s *loopScheduler) Cancel() {
	s.pending = nil
}

// RunPending runs and clears the pending request, if any. Called once per
// render tick; clearing first means a callback that reschedules itself is
// deferred to the next frame rather than looped.
func (s *loopScheduler) RunPending() {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn()
	}
}
