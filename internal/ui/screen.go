package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-docview/internal/config"
	"github.com/pstuifzand/tui-docview/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	// Try to load from TOML files first, fall back to built-in themes
	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse()
}

// DefaultStyle returns the default terminal style
func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// StyleBold returns a bold style
func StyleBold() tcell.Style {
	return tcell.StyleDefault.Bold(true)
}

// Theme-aware style methods

// DocTextStyle returns the style for document body text
func (s *Screen) DocTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DocText, s.Theme.Colors.Background)
}

// DocHeadingStyle returns the style for document headings
func (s *Screen) DocHeadingStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DocHeading, s.Theme.Colors.Background).Bold(true)
}

// DocCodeStyle returns the style for fenced code block lines
func (s *Screen) DocCodeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DocCode, s.Theme.Colors.Background)
}

// TocTextStyle returns the style for inactive TOC links
func (s *Screen) TocTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TocText, s.Theme.Colors.Background)
}

// TocActiveStyle returns the style for active TOC links
func (s *Screen) TocActiveStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TocActiveText, s.Theme.Colors.Background).Bold(true)
}

// TocFilterHitStyle returns the style for TOC links matching the filter
func (s *Screen) TocFilterHitStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TocFilterHit, s.Theme.Colors.Background)
}

// IndicatorTrackStyle returns the style for the indicator track stroke
func (s *Screen) IndicatorTrackStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.IndicatorTrack, s.Theme.Colors.Background)
}

// IndicatorActiveStyle returns the style for the active indicator stroke.
// While animation is suppressed the active color is blended toward the
// track color so fast scrolling reads as instant rather than smeared.
func (s *Screen) IndicatorActiveStyle(suppressed bool) tcell.Style {
	color := s.Theme.Colors.IndicatorActive
	if suppressed {
		color = theme.BlendToward(color, s.Theme.Colors.IndicatorTrack, 0.5)
	}
	return theme.ColorPairToStyle(color, s.Theme.Colors.Background).Bold(true)
}

// FilterLabelStyle returns the style for the filter bar label
func (s *Screen) FilterLabelStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.FilterLabel)
}

// FilterTextStyle returns the style for the filter query text
func (s *Screen) FilterTextStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.FilterText)
}

// FilterCursorStyle returns the style for the filter cursor
func (s *Screen) FilterCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.Background, s.Theme.Colors.FilterCursor)
}

// FilterCountStyle returns the style for the filter match count
func (s *Screen) FilterCountStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.FilterCount)
}

// HelpStyle returns the style for help background
func (s *Screen) HelpStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// StatusModeStyle returns the style for mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}

// HeaderStyle returns the style for header title
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HeaderTitle, s.Theme.Colors.HeaderBg).Bold(true)
}

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}
