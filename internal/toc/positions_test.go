package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-docview/internal/geometry"
)

// fakeMeasurer counts layout reads so tests can assert on caching behavior
type fakeMeasurer struct {
	sections  map[string]geometry.Rect
	links     map[string]geometry.Rect
	linkReads int
}

func (m *fakeMeasurer) SectionRect(id string) (geometry.Rect, bool) {
	r, ok := m.sections[id]
	return r, ok
}

func (m *fakeMeasurer) LinkRect(id string) (geometry.Rect, bool) {
	m.linkReads++
	r, ok := m.links[id]
	return r, ok
}

func rowLinks(ids ...string) map[string]geometry.Rect {
	links := make(map[string]geometry.Rect, len(ids))
	for i, id := range ids {
		links[id] = geometry.Rect{Top: float64(i), Bottom: float64(i + 1)}
	}
	return links
}

func TestPositionCacheLazy(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b")}
	NewPositionCache(m, []string{"a", "b"})

	assert.Equal(t, 0, m.linkReads, "no layout reads before the first Get")
}

func TestPositionCacheMemoizes(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b", "c")}
	c := NewPositionCache(m, []string{"a", "b", "c"})

	first := c.Get()
	require.Len(t, first, 3)
	assert.Equal(t, 3, m.linkReads)

	second := c.Get()
	assert.Equal(t, first, second)
	assert.Equal(t, 3, m.linkReads, "repeat Get must not re-measure")
}

// A resize-style invalidation between two reads must surface the new
// layout on the very next Get
func TestPositionCacheInvalidateRecomputes(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b")}
	c := NewPositionCache(m, []string{"a", "b"})
	c.Get()

	m.links["b"] = geometry.Rect{Top: 10, Bottom: 12}
	c.Invalidate()

	got := c.Get()
	require.Len(t, got, 2)
	assert.Equal(t, geometry.Rect{Top: 10, Bottom: 12}, got[1].Rect)
}

func TestPositionCacheMatchesFreshComputation(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b", "c")}
	c := NewPositionCache(m, []string{"a", "b", "c"})
	c.Get()

	m.links = rowLinks("a", "b", "c")
	for id, r := range m.links {
		r.Top += 5
		r.Bottom += 5
		m.links[id] = r
	}
	c.Invalidate()

	fresh := NewPositionCache(m, []string{"a", "b", "c"}).Get()
	assert.Equal(t, fresh, c.Get())
}

func TestPositionCacheSkipsMissingLinks(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "c")}
	c := NewPositionCache(m, []string{"a", "b", "c"})

	got := c.Get()

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	_, ok := c.Lookup("b")
	assert.False(t, ok)
}

func TestPositionCacheSetIDs(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b")}
	c := NewPositionCache(m, []string{"a"})
	c.Get()

	c.SetIDs([]string{"a", "b"})

	got := c.Get()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].ID)
}

func TestPositionCacheLookup(t *testing.T) {
	m := &fakeMeasurer{links: rowLinks("a", "b")}
	c := NewPositionCache(m, []string{"a", "b"})

	pos, ok := c.Lookup("b")

	require.True(t, ok)
	assert.Equal(t, geometry.Rect{Top: 1, Bottom: 2}, pos.Rect)
}
