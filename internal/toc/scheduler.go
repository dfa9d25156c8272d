package toc

// FrameScheduler is the host's frame-presentation primitive. Request asks
// for fn to run once on the next frame; requests made before that frame
// collapse into a single run, which is what coalesces bursts of scroll
// events to the display refresh rate. Cancel drops a pending request and is
// called on teardown so a stale callback never touches freed state.
type FrameScheduler interface {
	Request(fn func())
	Cancel()
}
