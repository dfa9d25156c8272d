// Package geometry contains the layout primitives and path math that drive
// the TOC progress indicator
package geometry

// Rect is a vertical extent in the host's layout units. The engine only
// cares about the vertical axis, so there is no x coordinate here.
type Rect struct {
	Top    float64
	Bottom float64
}

// Height returns the vertical size of the rect
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// LinkPosition is the measured extent of a single TOC link, relative to the
// TOC list container's own origin (not the viewport)
type LinkPosition struct {
	ID string
	Rect
}
