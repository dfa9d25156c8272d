package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pstuifzand/tui-docview/internal/geometry"
)

// stackedSections builds viewport-relative section rects for equally tall
// sections laid out back to back, as seen at the given scroll offset
func stackedSections(ids []string, height, scroll float64) SectionRects {
	rects := make(map[string]geometry.Rect, len(ids))
	for i, id := range ids {
		top := float64(i)*height - scroll
		rects[id] = geometry.Rect{Top: top, Bottom: top + height}
	}
	return func(id string) (geometry.Rect, bool) {
		r, ok := rects[id]
		return r, ok
	}
}

func TestResolveActiveAtTop(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	active := ResolveActive(ids, stackedSections(ids, 2000, 0), 800, cfg)

	assert.Equal(t, []string{"s1"}, active)
}

// At scroll 2050 the first section's bottom sits at -50, still inside the
// 100 unit buffer above the viewport, while the second has just crossed the
// top edge. Both count.
func TestResolveActiveOffsetBuffer(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	active := ResolveActive(ids, stackedSections(ids, 2000, 2050), 800, cfg)

	assert.Equal(t, []string{"s1", "s2"}, active)
}

func TestResolveActiveBufferExhausted(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	// s1's bottom is now at -150, past the buffer
	active := ResolveActive(ids, stackedSections(ids, 2000, 2150), 800, cfg)

	assert.Equal(t, []string{"s2"}, active)
}

func TestResolveActiveShortSectionsAllActive(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	// Three 50 unit sections all fit well inside an 800 unit viewport
	for _, scroll := range []float64{0, 10, 50, 100} {
		active := ResolveActive(ids, stackedSections(ids, 50, scroll), 800, cfg)
		assert.Equal(t, ids, active, "scroll=%v", scroll)
	}
}

// Scrolled past everything: the closest heading above the viewport wins,
// which is always the last one here
func TestResolveActiveFallbackPastEnd(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	active := ResolveActive(ids, stackedSections(ids, 50, 5000), 800, cfg)

	assert.Equal(t, []string{"s3"}, active)
}

// All content below the threshold line, nothing scrolled past: fall back
// to the first heading
func TestResolveActiveFallbackAboveContent(t *testing.T) {
	ids := []string{"s1", "s2"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}
	rects := func(id string) (geometry.Rect, bool) {
		switch id {
		case "s1":
			return geometry.Rect{Top: 700, Bottom: 900}, true
		case "s2":
			return geometry.Rect{Top: 900, Bottom: 1100}, true
		}
		return geometry.Rect{}, false
	}

	active := ResolveActive(ids, rects, 800, cfg)

	assert.Equal(t, []string{"s1"}, active)
}

func TestResolveActiveNeverEmptyForMeasuredCatalog(t *testing.T) {
	ids := []string{"s1", "s2", "s3", "s4", "s5"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	height := 700.0
	maxScroll := height*float64(len(ids)) - 800
	for scroll := 0.0; scroll <= maxScroll; scroll += 37 {
		active := ResolveActive(ids, stackedSections(ids, height, scroll), 800, cfg)
		assert.NotEmpty(t, active, "scroll=%v", scroll)
	}
}

func TestResolveActiveCatalogOrder(t *testing.T) {
	ids := []string{"s1", "s2", "s3"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}

	active := ResolveActive(ids, stackedSections(ids, 100, 20), 800, cfg)

	assert.Equal(t, []string{"s1", "s2", "s3"}, active)
}

func TestResolveActiveSkipsUnmeasured(t *testing.T) {
	ids := []string{"s1", "ghost", "s2"}
	cfg := ResolveConfig{Offset: 100, ViewportThreshold: 0.8}
	rects := func(id string) (geometry.Rect, bool) {
		switch id {
		case "s1":
			return geometry.Rect{Top: 0, Bottom: 100}, true
		case "s2":
			return geometry.Rect{Top: 100, Bottom: 200}, true
		}
		return geometry.Rect{}, false
	}

	active := ResolveActive(ids, rects, 800, cfg)

	assert.Equal(t, []string{"s1", "s2"}, active)
}

func TestResolveActiveEmptyCatalog(t *testing.T) {
	active := ResolveActive(nil, func(string) (geometry.Rect, bool) {
		return geometry.Rect{}, false
	}, 800, ResolveConfig{})

	assert.Nil(t, active)
}

func TestResolveActiveNothingMeasured(t *testing.T) {
	active := ResolveActive([]string{"s1", "s2"}, func(string) (geometry.Rect, bool) {
		return geometry.Rect{}, false
	}, 800, ResolveConfig{})

	assert.Nil(t, active)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg := ResolveConfig{}.withDefaults()

	assert.Equal(t, DefaultActiveOffset, cfg.Offset)
	assert.Equal(t, DefaultViewportThreshold, cfg.ViewportThreshold)
}
