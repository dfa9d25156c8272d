package ui

import (
	"github.com/pstuifzand/tui-docview/internal/toc"
)

// RootElement is the top-level terminal viewport. It never scrolls itself;
// it is the "use default" fallback of scroll-container discovery.
type RootElement struct {
	width  int
	height int
}

// NewRootElement creates the root viewport element
func NewRootElement() *RootElement {
	return &RootElement{}
}

// SetSize records the terminal size
func (r *RootElement) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *RootElement) Parent() toc.Element { return nil }

func (r *RootElement) OverflowX() toc.Overflow { return toc.OverflowHidden }

func (r *RootElement) OverflowY() toc.Overflow { return toc.OverflowHidden }

func (r *RootElement) Scroll() toc.ScrollView { return nil }

// anchorElement is a leaf inside a scrollable pane, used as the starting
// point for scroll-container discovery. It has no scroll state of its own.
type anchorElement struct {
	parent toc.Element
}

func (a *anchorElement) Parent() toc.Element { return a.parent }

func (a *anchorElement) OverflowX() toc.Overflow { return toc.OverflowVisible }

func (a *anchorElement) OverflowY() toc.Overflow { return toc.OverflowVisible }

func (a *anchorElement) Scroll() toc.ScrollView { return nil }

// NewAnchor returns a leaf element whose nearest scrollable ancestor is
// found by walking up from parent
func NewAnchor(parent toc.Element) toc.Element {
	return &anchorElement{parent: parent}
}
