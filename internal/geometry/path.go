package geometry

import (
	"fmt"
	"strconv"
)

// PathGeometry describes the indicator stroke: the full track length, plus
// the start and length of the active sub-segment. All values are distances
// along the track, measured from the first link's top edge.
type PathGeometry struct {
	TotalLength  float64
	ActiveStart  float64
	ActiveLength float64
}

// Calculate computes the path geometry for an active id set. links must be
// every measured link in catalog order; activeIDs is the active subset. The
// track always spans from the first link's top to the last link's bottom,
// independent of what is active.
func Calculate(links []LinkPosition, activeIDs []string) PathGeometry {
	if len(links) == 0 {
		return PathGeometry{}
	}

	first := links[0]
	last := links[len(links)-1]
	geo := PathGeometry{TotalLength: last.Bottom - first.Top}
	if geo.TotalLength <= 0 {
		return geo
	}

	active := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	found := false
	var start, end float64
	for _, link := range links {
		if !active[link.ID] {
			continue
		}
		if !found {
			start = link.Top - first.Top
			found = true
		}
		end = link.Bottom - first.Top
	}
	if !found {
		return geo
	}

	geo.ActiveStart = start
	geo.ActiveLength = end - start
	if geo.ActiveStart < 0 {
		geo.ActiveStart = 0
	}
	if geo.ActiveStart+geo.ActiveLength > geo.TotalLength {
		geo.ActiveLength = geo.TotalLength - geo.ActiveStart
	}
	return geo
}

// DashArray returns the stroke-dasharray value that makes the dash cover
// exactly the active range: the dash is the active length, the gap is the
// full track length so the remainder stays hidden. Degenerate geometry
// (zero or negative track) yields "0" so the indicator is suppressed.
func (g PathGeometry) DashArray() string {
	if g.TotalLength <= 0 {
		return "0"
	}
	return formatLength(g.ActiveLength) + " " + formatLength(g.TotalLength)
}

// DashOffset returns the stroke-dashoffset value: the negative of the active
// start, shifting the visible dash down to where the active range begins.
func (g PathGeometry) DashOffset() string {
	if g.TotalLength <= 0 {
		return "0"
	}
	return formatLength(-g.ActiveStart)
}

// Covers reports whether the track position p (distance from the first
// link's top) falls inside the active dash. Cell-based hosts use this to
// paint the gutter column the dash pattern would produce.
func (g PathGeometry) Covers(p float64) bool {
	if g.TotalLength <= 0 || g.ActiveLength <= 0 {
		return false
	}
	return p >= g.ActiveStart && p < g.ActiveStart+g.ActiveLength
}

// VerticalPath returns the SVG path data for a single straight vertical
// segment at a fixed x. The indicator path never indents for nested heading
// levels; nesting shows up only in the link text indentation.
func VerticalPath(x, yStart, yEnd float64) string {
	return fmt.Sprintf("M %s %s L %s %s",
		formatLength(x), formatLength(yStart), formatLength(x), formatLength(yEnd))
}

// formatLength renders a coordinate with the shortest representation that
// round-trips, so the same geometry always yields the same attribute string
func formatLength(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
