package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pstuifzand/tui-docview/internal/geometry"
)

// fakeView is an in-memory ScrollView for synchronizer tests
type fakeView struct {
	offset   float64
	viewport float64
	content  float64
}

func (v *fakeView) Offset() float64 { return v.offset }

func (v *fakeView) SetOffset(offset float64) { v.offset = offset }

func (v *fakeView) ViewportHeight() float64 { return v.viewport }

func (v *fakeView) ContentHeight() float64 { return v.content }

func midContent() *fakeView {
	// Scrolled well into the middle so neither snap case applies
	return &fakeView{offset: 500, viewport: 800, content: 5000}
}

func TestSyncSnapsToTopAtContentTop(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := &fakeView{offset: 0, viewport: 800, content: 5000}
	tocView := &fakeView{offset: 300, viewport: 400, content: 1000}

	s.Sync(content, tocView, geometry.Rect{Top: 900, Bottom: 910}, geometry.Rect{Top: 900, Bottom: 910})

	assert.Equal(t, 0.0, tocView.Offset())
}

func TestSyncSnapsToBottomAtContentEnd(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := &fakeView{offset: 4200, viewport: 800, content: 5000}
	tocView := &fakeView{offset: 100, viewport: 400, content: 1000}

	s.Sync(content, tocView, geometry.Rect{Top: 0, Bottom: 10}, geometry.Rect{Top: 0, Bottom: 10})

	assert.Equal(t, 600.0, tocView.Offset())
}

// A range already inside the padded viewport must not move the TOC at all
func TestSyncIdempotentWhenInView(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := midContent()
	tocView := &fakeView{offset: 100, viewport: 400, content: 1000}

	// In viewport coordinates the range sits at [100, 200], well inside
	// [20, 380]
	first := geometry.Rect{Top: 200, Bottom: 210}
	last := geometry.Rect{Top: 290, Bottom: 300}

	s.Sync(content, tocView, first, last)
	assert.Equal(t, 100.0, tocView.Offset())

	// Repeat invocations stay put
	s.Sync(content, tocView, first, last)
	assert.Equal(t, 100.0, tocView.Offset())
}

func TestSyncScrollsDownByExactOverflow(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := midContent()
	tocView := &fakeView{offset: 100, viewport: 400, content: 1000}

	// Last active bottom at viewport coordinate 420, 40 past the padded
	// edge at 380
	s.Sync(content, tocView, geometry.Rect{Top: 480, Bottom: 490}, geometry.Rect{Top: 510, Bottom: 520})

	assert.Equal(t, 140.0, tocView.Offset())
}

func TestSyncScrollsUpByExactOverflow(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := midContent()
	tocView := &fakeView{offset: 100, viewport: 400, content: 1000}

	// First active top at viewport coordinate 5, 15 above the padding line
	s.Sync(content, tocView, geometry.Rect{Top: 105, Bottom: 115}, geometry.Rect{Top: 125, Bottom: 135})

	assert.Equal(t, 85.0, tocView.Offset())
}

func TestSyncClampsAtZero(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := midContent()
	tocView := &fakeView{offset: 5, viewport: 400, content: 1000}

	// Wanted scroll-up exceeds the current offset
	s.Sync(content, tocView, geometry.Rect{Top: 0, Bottom: 10}, geometry.Rect{Top: 0, Bottom: 10})

	assert.Equal(t, 0.0, tocView.Offset())
}

func TestSyncClampsAtMaxOffset(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := midContent()
	tocView := &fakeView{offset: 590, viewport: 400, content: 1000}

	// Wanted scroll-down would run past the end of the TOC list
	s.Sync(content, tocView, geometry.Rect{Top: 980, Bottom: 990}, geometry.Rect{Top: 990, Bottom: 1000})

	assert.Equal(t, 600.0, tocView.Offset())
}

func TestSyncShortTocListNeverScrolls(t *testing.T) {
	s := &Synchronizer{Padding: 20}
	content := &fakeView{offset: 0, viewport: 800, content: 5000}
	tocView := &fakeView{offset: 0, viewport: 400, content: 100}

	s.Sync(content, tocView, geometry.Rect{Top: 0, Bottom: 10}, geometry.Rect{Top: 90, Bottom: 100})

	assert.Equal(t, 0.0, tocView.Offset())
	assert.Equal(t, 0.0, MaxOffset(tocView))
}
