package toc

import "github.com/pstuifzand/tui-docview/internal/geometry"

// DefaultScrollPadding is the keep-in-view margin inside the TOC viewport,
// in layout units
const DefaultScrollPadding = 20.0

// Synchronizer keeps the active link range visible inside the TOC's own
// scroll window. It only ever mutates the TOC scroll offset, never the
// content's.
type Synchronizer struct {
	// Padding is the margin kept between the active range and the TOC
	// viewport edges. Zero means DefaultScrollPadding.
	Padding float64
}

// Sync adjusts the TOC scroll offset for the current active range.
// firstActive and lastActive are the link rects of the first and last
// active headings in catalog order, relative to the TOC list origin.
//
// Three cases, in priority order: at the top of the content the TOC snaps
// to its own top, at the bottom it snaps to its own bottom, and otherwise
// the TOC scrolls by exactly the amount the active range overflows the
// padded viewport. When the range is already comfortably in view nothing
// moves, which is what keeps the sidebar from oscillating.
func (s *Synchronizer) Sync(content, tocView ScrollView, firstActive, lastActive geometry.Rect) {
	padding := s.Padding
	if padding == 0 {
		padding = DefaultScrollPadding
	}

	if content.Offset() <= 0 {
		tocView.SetOffset(0)
		return
	}
	if content.Offset() >= content.ContentHeight()-content.ViewportHeight()-1 {
		tocView.SetOffset(MaxOffset(tocView))
		return
	}

	// Keep-in-view: translate the link rects into TOC viewport coordinates
	offset := tocView.Offset()
	firstTop := firstActive.Top - offset
	lastBottom := lastActive.Bottom - offset

	if firstTop < padding {
		next := offset - (padding - firstTop)
		if next < 0 {
			next = 0
		}
		tocView.SetOffset(next)
		return
	}
	if lastBottom > tocView.ViewportHeight()-padding {
		next := offset + (lastBottom - (tocView.ViewportHeight() - padding))
		if max := MaxOffset(tocView); next > max {
			next = max
		}
		tocView.SetOffset(next)
	}
}
