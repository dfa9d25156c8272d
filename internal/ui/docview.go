package ui

import (
	"strings"

	"github.com/pstuifzand/tui-docview/internal/geometry"
	"github.com/pstuifzand/tui-docview/internal/model"
	"github.com/pstuifzand/tui-docview/internal/toc"
)

// line style classes, precomputed once per document
const (
	lineText = iota
	lineHeading
	lineCode
)

// section is the vertical extent of one heading's content in document rows
type section struct {
	id    string
	start int
	end   int
}

// DocView renders the document content pane and owns its scroll state. It
// is the content scroll container of the TOC engine: it implements
// toc.ScrollView in row units and reports section rects relative to its
// own viewport top. It also participates in the layout tree as a
// scrollable element.
type DocView struct {
	parent toc.Element
	doc    *model.Document

	x, y          int
	width, height int

	scroll    float64
	sections  []section
	lineClass []int
}

// NewDocView creates the content pane under the given layout parent
func NewDocView(parent toc.Element) *DocView {
	return &DocView{parent: parent}
}

// SetDocument replaces the displayed document and resets the scroll offset
func (v *DocView) SetDocument(doc *model.Document) {
	v.doc = doc
	v.scroll = 0
	v.rebuild()
}

// rebuild precomputes section extents and per-line render classes
func (v *DocView) rebuild() {
	v.sections = nil
	v.lineClass = nil
	if v.doc == nil {
		return
	}

	flat := v.doc.Flatten()
	for i, h := range flat {
		v.sections = append(v.sections, section{
			id:    h.ID,
			start: h.Line,
			end:   v.doc.SectionEnd(i),
		})
	}

	v.lineClass = make([]int, len(v.doc.Lines))
	inFence := false
	headings := make(map[int]bool, len(flat))
	for _, h := range flat {
		headings[h.Line] = true
	}
	for i, line := range v.doc.Lines {
		trimmed := strings.TrimSpace(line)
		fence := strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
		switch {
		case fence:
			v.lineClass[i] = lineCode
			inFence = !inFence
		case inFence:
			v.lineClass[i] = lineCode
		case headings[i]:
			v.lineClass[i] = lineHeading
		default:
			v.lineClass[i] = lineText
		}
	}
}

// SetBounds positions the pane on screen
func (v *DocView) SetBounds(x, y, width, height int) {
	v.x = x
	v.y = y
	v.width = width
	v.height = height
	v.clampScroll()
}

// ScrollBy scrolls the content by delta rows, clamped to the document
func (v *DocView) ScrollBy(delta float64) {
	v.SetOffset(v.scroll + delta)
}

// ScrollToHeading scrolls so the heading's section starts at the viewport top
func (v *DocView) ScrollToHeading(id string) bool {
	for _, s := range v.sections {
		if s.id == id {
			v.SetOffset(float64(s.start))
			return true
		}
	}
	return false
}

func (v *DocView) clampScroll() {
	if max := toc.MaxOffset(v); v.scroll > max {
		v.scroll = max
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}

// toc.ScrollView

// Offset returns the current scroll offset in rows
func (v *DocView) Offset() float64 {
	return v.scroll
}

// SetOffset scrolls the content, clamped to [0, max]
func (v *DocView) SetOffset(offset float64) {
	v.scroll = offset
	v.clampScroll()
}

// ViewportHeight returns the visible height in rows
func (v *DocView) ViewportHeight() float64 {
	return float64(v.height)
}

// ContentHeight returns the total document height in rows
func (v *DocView) ContentHeight() float64 {
	if v.doc == nil {
		return 0
	}
	return float64(len(v.doc.Lines))
}

// toc.Element

func (v *DocView) Parent() toc.Element { return v.parent }

func (v *DocView) OverflowX() toc.Overflow { return toc.OverflowHidden }

func (v *DocView) OverflowY() toc.Overflow { return toc.OverflowAuto }

func (v *DocView) Scroll() toc.ScrollView { return v }

// SectionRect returns the section extent for a heading relative to the
// viewport top, in row units. Headings of an unloaded document report
// ok=false and are skipped by the engine.
func (v *DocView) SectionRect(id string) (geometry.Rect, bool) {
	for _, s := range v.sections {
		if s.id == id {
			return geometry.Rect{
				Top:    float64(s.start) - v.scroll,
				Bottom: float64(s.end) - v.scroll,
			}, true
		}
	}
	return geometry.Rect{}, false
}

// Render draws the visible document slice
func (v *DocView) Render(screen *Screen) {
	if v.doc == nil {
		return
	}

	first := int(v.scroll)
	for row := 0; row < v.height; row++ {
		idx := first + row
		if idx >= len(v.doc.Lines) {
			break
		}

		style := screen.DocTextStyle()
		switch v.lineClass[idx] {
		case lineHeading:
			style = screen.DocHeadingStyle()
		case lineCode:
			style = screen.DocCodeStyle()
		}
		screen.DrawStringLimited(v.x, v.y+row, v.doc.Lines[idx], v.width, style)
	}
}
