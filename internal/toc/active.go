package toc

import "github.com/pstuifzand/tui-docview/internal/geometry"

// Default tuning for the active test, in layout units
const (
	DefaultActiveOffset      = 100.0
	DefaultViewportThreshold = 0.8
)

// SectionRects resolves a heading id to the rect of its content section,
// relative to the content viewport's top edge. The second return value is
// false when the section has not been rendered yet; such headings are
// skipped silently.
type SectionRects func(id string) (geometry.Rect, bool)

// ResolveConfig tunes the active test
type ResolveConfig struct {
	// Offset is the buffer above the visible area: a section whose bottom
	// has passed the top edge still counts as active until it is Offset
	// units above it
	Offset float64
	// ViewportThreshold caps how far down the viewport a section top may
	// sit and still count as active, as a fraction of the viewport height
	ViewportThreshold float64
}

func (c ResolveConfig) withDefaults() ResolveConfig {
	if c.Offset == 0 {
		c.Offset = DefaultActiveOffset
	}
	if c.ViewportThreshold == 0 {
		c.ViewportThreshold = DefaultViewportThreshold
	}
	return c
}

// ResolveActive returns the ids of the headings currently in view, in
// catalog order. A heading is active when its section top is above the
// viewport threshold line and its bottom has not scrolled more than Offset
// units past the top edge. When nothing qualifies the closest heading
// already scrolled past is used, and above the first heading the first
// catalog entry is used, so the result is never empty for a non-empty,
// measured catalog.
func ResolveActive(ids []string, rects SectionRects, viewportHeight float64, cfg ResolveConfig) []string {
	cfg = cfg.withDefaults()

	var active []string
	for _, id := range ids {
		rect, ok := rects(id)
		if !ok {
			continue
		}
		if rect.Top < viewportHeight*cfg.ViewportThreshold && rect.Bottom > -cfg.Offset {
			active = append(active, id)
		}
	}
	if len(active) > 0 {
		return active
	}

	// Fallback: the nearest heading above the viewport, i.e. the one with
	// the greatest negative top
	nearest := ""
	nearestTop := 0.0
	measured := false
	for _, id := range ids {
		rect, ok := rects(id)
		if !ok {
			continue
		}
		measured = true
		if rect.Top < 0 && (nearest == "" || rect.Top > nearestTop) {
			nearest = id
			nearestTop = rect.Top
		}
	}
	if nearest != "" {
		return []string{nearest}
	}
	// Above all content: fall back to the first measured heading
	if measured {
		for _, id := range ids {
			if _, ok := rects(id); ok {
				return []string{id}
			}
		}
	}
	return nil
}
