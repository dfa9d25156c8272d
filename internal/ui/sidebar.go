package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-docview/internal/geometry"
	"github.com/pstuifzand/tui-docview/internal/model"
	"github.com/pstuifzand/tui-docview/internal/toc"
)

// tocEntry is one rendered TOC link. row is its position in list
// coordinates; one entry is one row tall.
type tocEntry struct {
	id    string
	text  string
	level int
	row   int
}

// Sidebar renders the TOC link list plus the progress indicator gutter.
// It is the TOC scroll container of the engine (toc.ScrollView in row
// units) and the measurement source for link rects. The indicator gutter
// paints exactly what the dash pattern describes: a cell is lit when its
// track position falls inside the active dash.
type Sidebar struct {
	parent toc.Element

	x, y          int
	width, height int

	entries  []tocEntry
	headings []*model.Heading
	scroll   float64

	filterActive bool
	filterQuery  string
	cursorPos    int
}

// NewSidebar creates the TOC sidebar under the given layout parent
func NewSidebar(parent toc.Element) *Sidebar {
	return &Sidebar{parent: parent}
}

// SetDocument rebuilds the link list from a document's heading catalog
func (sb *Sidebar) SetDocument(doc *model.Document) {
	sb.headings = nil
	if doc != nil {
		sb.headings = doc.Flatten()
	}
	sb.filterActive = false
	sb.filterQuery = ""
	sb.scroll = 0
	sb.rebuild()
}

// rebuild recomputes the visible entries, applying the fuzzy filter when
// one is set. Filtered-out headings simply have no link: the engine skips
// them the same way it skips not-yet-rendered elements.
func (sb *Sidebar) rebuild() {
	sb.entries = sb.entries[:0]
	row := 0
	for _, h := range sb.headings {
		if sb.filterQuery != "" && !fuzzy.MatchNormalizedFold(sb.filterQuery, h.Text) {
			continue
		}
		sb.entries = append(sb.entries, tocEntry{
			id:    h.ID,
			text:  h.Text,
			level: h.Level,
			row:   row,
		})
		row++
	}
}

// SetBounds positions the sidebar on screen
func (sb *Sidebar) SetBounds(x, y, width, height int) {
	sb.x = x
	sb.y = y
	sb.width = width
	sb.height = height
	sb.clampScroll()
}

func (sb *Sidebar) clampScroll() {
	if max := toc.MaxOffset(sb); sb.scroll > max {
		sb.scroll = max
	}
	if sb.scroll < 0 {
		sb.scroll = 0
	}
}

// toc.ScrollView

// Offset returns the sidebar's own scroll offset in rows
func (sb *Sidebar) Offset() float64 {
	return sb.scroll
}

// SetOffset scrolls the sidebar, clamped to its content
func (sb *Sidebar) SetOffset(offset float64) {
	sb.scroll = offset
	sb.clampScroll()
}

// ViewportHeight returns the visible height in rows
func (sb *Sidebar) ViewportHeight() float64 {
	return float64(sb.height)
}

// ContentHeight returns the total link list height in rows
func (sb *Sidebar) ContentHeight() float64 {
	return float64(len(sb.entries))
}

// toc.Element

func (sb *Sidebar) Parent() toc.Element { return sb.parent }

func (sb *Sidebar) OverflowX() toc.Overflow { return toc.OverflowHidden }

func (sb *Sidebar) OverflowY() toc.Overflow { return toc.OverflowAuto }

func (sb *Sidebar) Scroll() toc.ScrollView { return sb }

// LinkRect returns the link extent for a heading relative to the list
// origin. Headings hidden by the filter report ok=false.
func (sb *Sidebar) LinkRect(id string) (geometry.Rect, bool) {
	for _, e := range sb.entries {
		if e.id == id {
			return geometry.Rect{Top: float64(e.row), Bottom: float64(e.row + 1)}, true
		}
	}
	return geometry.Rect{}, false
}

// EntryAt returns the heading id at the given screen row, for mouse clicks
func (sb *Sidebar) EntryAt(screenY int) (string, bool) {
	row := int(sb.scroll) + screenY - sb.y
	if row < 0 || row >= len(sb.entries) {
		return "", false
	}
	return sb.entries[row].id, true
}

// Filter state

// StartFilter enters filter mode
func (sb *Sidebar) StartFilter() {
	sb.filterActive = true
	sb.cursorPos = len(sb.filterQuery)
}

// StopFilter leaves filter mode and clears the query
func (sb *Sidebar) StopFilter() {
	sb.filterActive = false
	sb.filterQuery = ""
	sb.cursorPos = 0
	sb.rebuild()
	sb.clampScroll()
}

// IsFiltering returns whether filter mode is active
func (sb *Sidebar) IsFiltering() bool {
	return sb.filterActive
}

// MatchCount returns the number of visible links
func (sb *Sidebar) MatchCount() int {
	return len(sb.entries)
}

// BestMatch returns the id of the best fuzzy match for the current query,
// used by Enter-to-jump while filtering
func (sb *Sidebar) BestMatch() (string, bool) {
	if sb.filterQuery == "" || len(sb.entries) == 0 {
		return "", false
	}

	type ranked struct {
		id   string
		rank int
	}
	var ranks []ranked
	for _, e := range sb.entries {
		matches := fuzzy.RankFindNormalizedFold(sb.filterQuery, []string{e.text})
		if len(matches) > 0 {
			ranks = append(ranks, ranked{id: e.id, rank: matches[0].Distance})
		}
	}
	if len(ranks) == 0 {
		return "", false
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].rank < ranks[j].rank })
	return ranks[0].id, true
}

// HandleKey processes one key event in filter mode. Returns false when the
// caller should leave filter mode.
func (sb *Sidebar) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(sb.filterQuery) > 0 {
			runes := []rune(sb.filterQuery)
			sb.filterQuery = string(runes[:len(runes)-1])
			sb.cursorPos = len(sb.filterQuery)
			sb.rebuild()
		}
	case tcell.KeyRune:
		sb.filterQuery += string(ev.Rune())
		sb.cursorPos = len(sb.filterQuery)
		sb.rebuild()
	}
	return true
}

// Render draws the link list and the indicator gutter for the current
// engine snapshot
func (sb *Sidebar) Render(screen *Screen, snap toc.Snapshot, animationSuppressed bool) {
	active := make(map[string]bool, len(snap.ActiveIDs))
	for _, id := range snap.ActiveIDs {
		active[id] = true
	}

	geo := snap.Geometry
	trackStyle := screen.IndicatorTrackStyle()
	activeStyle := screen.IndicatorActiveStyle(animationSuppressed)

	first := int(sb.scroll)
	for row := 0; row < sb.height; row++ {
		idx := first + row
		if idx >= len(sb.entries) {
			break
		}
		e := sb.entries[idx]

		// Gutter cell: center of this row along the track, measured from
		// the first link's top (row 0 of list coordinates)
		p := float64(e.row) + 0.5
		gutter := ' '
		style := trackStyle
		if geo.Covers(p) {
			gutter = '┃'
			style = activeStyle
		} else if geo.TotalLength > 0 && p < geo.TotalLength {
			gutter = '│'
		}
		screen.SetCell(sb.x, sb.y+row, gutter, style)

		textStyle := screen.TocTextStyle()
		if active[e.id] {
			textStyle = screen.TocActiveStyle()
		} else if sb.filterQuery != "" {
			textStyle = screen.TocFilterHitStyle()
		}
		label := strings.Repeat("  ", e.level-1) + e.text
		screen.DrawStringLimited(sb.x+2, sb.y+row, TruncateToWidthWithEllipsis(label, sb.width-2), sb.width-2, textStyle)
	}
}

// RenderFilterBar draws the filter input line
func (sb *Sidebar) RenderFilterBar(screen *Screen, y int) {
	if !sb.filterActive {
		return
	}

	label := "Filter: "
	screen.DrawString(0, y, label, screen.FilterLabelStyle())
	screen.DrawString(len(label), y, sb.filterQuery, screen.FilterTextStyle())
	screen.SetCell(len(label)+StringWidth(sb.filterQuery), y, ' ', screen.FilterCursorStyle())

	count := fmt.Sprintf(" %d match(es)", len(sb.entries))
	screen.DrawString(len(label)+StringWidth(sb.filterQuery)+2, y, count, screen.FilterCountStyle())
}
