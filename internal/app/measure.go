package app

import (
	"github.com/pstuifzand/tui-docview/internal/geometry"
	"github.com/pstuifzand/tui-docview/internal/ui"
)

// viewMeasurer is the engine's layout read boundary for the TUI: section
// rects come from the content pane, link rects from the sidebar
type viewMeasurer struct {
	doc     *ui.DocView
	sidebar *ui.Sidebar
}

func (m *viewMeasurer) SectionRect(id string) (geometry.Rect, bool) {
	return m.doc.SectionRect(id)
}

func (m *viewMeasurer) LinkRect(id string) (geometry.Rect, bool) {
	return m.sidebar.LinkRect(id)
}
