// Package toc implements the scroll-to-active-section engine behind the
// table-of-contents sidebar: deciding which headings are in view, turning
// that into indicator path geometry, and keeping the TOC's own scroll
// position in sync. The package is host-agnostic; hosts supply layout
// measurements and scroll state through the interfaces in this file.
package toc

// Overflow mirrors the computed overflow style of a layout container
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

// Scrollable reports whether this overflow value makes a container a
// scroll container
func (o Overflow) Scrollable() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Element is a node in the host's layout tree, just enough surface to walk
// ancestors and inspect their overflow for scroll-container discovery.
type Element interface {
	// Parent returns the parent element, or nil at the root
	Parent() Element
	// OverflowX returns the computed horizontal overflow
	OverflowX() Overflow
	// OverflowY returns the computed vertical overflow
	OverflowY() Overflow
	// Scroll returns the element's scroll state
	Scroll() ScrollView
}

// ScrollView is the scroll state of a container. Offsets grow downward and
// are clamped by the host to [0, ContentHeight-ViewportHeight].
type ScrollView interface {
	Offset() float64
	SetOffset(offset float64)
	ViewportHeight() float64
	ContentHeight() float64
}

// FindScrollContainer walks the ancestors of el and returns the nearest one
// whose computed overflow on either axis is auto or scroll. It returns nil
// when no ancestor scrolls, which callers treat as "use the root viewport".
func FindScrollContainer(el Element) Element {
	if el == nil {
		return nil
	}
	for cur := el.Parent(); cur != nil; cur = cur.Parent() {
		if cur.OverflowX().Scrollable() || cur.OverflowY().Scrollable() {
			return cur
		}
	}
	return nil
}

// MaxOffset returns the largest valid scroll offset of a view
func MaxOffset(view ScrollView) float64 {
	max := view.ContentHeight() - view.ViewportHeight()
	if max < 0 {
		return 0
	}
	return max
}
