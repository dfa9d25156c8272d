package toc

import "github.com/pstuifzand/tui-docview/internal/geometry"

// Measurer is the layout read boundary between the engine and its host.
// All reads are best-effort: a missing element returns ok=false and is
// skipped, never an error.
type Measurer interface {
	// SectionRect returns the rect of the content section for a heading,
	// relative to the content viewport's top edge
	SectionRect(id string) (geometry.Rect, bool)
	// LinkRect returns the rect of the TOC link for a heading, relative
	// to the TOC list container's origin
	LinkRect(id string) (geometry.Rect, bool)
}

// PositionCache memoizes the TOC link rects so scroll frames do not repeat
// layout reads. Link positions are relative to the TOC list container, so
// content scrolling never changes them; only layout-affecting events
// (resize, catalog replacement) mark the cache stale. Invalidation always
// drops the whole mapping.
type PositionCache struct {
	measurer Measurer
	ids      []string
	links    []geometry.LinkPosition
	byID     map[string]geometry.LinkPosition
	stale    bool
}

// NewPositionCache creates a cache over the given catalog ids. The cache
// starts stale and populates on the first Get.
func NewPositionCache(measurer Measurer, ids []string) *PositionCache {
	return &PositionCache{
		measurer: measurer,
		ids:      ids,
		stale:    true,
	}
}

// SetIDs replaces the catalog and drops the cached positions
func (c *PositionCache) SetIDs(ids []string) {
	c.ids = ids
	c.Invalidate()
}

// Invalidate marks the cache stale. The next Get recomputes every position.
func (c *PositionCache) Invalidate() {
	c.stale = true
}

// Get returns the link positions in catalog order, recomputing them first
// if the cache is stale or was never populated. Headings without a
// rendered link are left out.
func (c *PositionCache) Get() []geometry.LinkPosition {
	if !c.stale && c.links != nil {
		return c.links
	}

	c.links = make([]geometry.LinkPosition, 0, len(c.ids))
	c.byID = make(map[string]geometry.LinkPosition, len(c.ids))
	for _, id := range c.ids {
		rect, ok := c.measurer.LinkRect(id)
		if !ok {
			continue
		}
		pos := geometry.LinkPosition{ID: id, Rect: rect}
		c.links = append(c.links, pos)
		c.byID[id] = pos
	}
	c.stale = false
	return c.links
}

// Lookup returns the cached position for one heading, populating the cache
// if needed
func (c *PositionCache) Lookup(id string) (geometry.LinkPosition, bool) {
	c.Get()
	pos, ok := c.byID[id]
	return pos, ok
}
