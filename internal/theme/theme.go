package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Header colors
	HeaderTitle tcell.Color
	HeaderBg    tcell.Color

	// Document pane colors
	DocText    tcell.Color
	DocHeading tcell.Color
	DocCode    tcell.Color

	// TOC sidebar colors
	TocText       tcell.Color
	TocActiveText tcell.Color
	TocFilterHit  tcell.Color

	// Progress indicator colors
	IndicatorTrack  tcell.Color
	IndicatorActive tcell.Color

	// Filter bar colors
	FilterLabel  tcell.Color
	FilterText   tcell.Color
	FilterCursor tcell.Color
	FilterCount  tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode    tcell.Color
	StatusMessage tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:      tcell.ColorDefault,
			HeaderTitle:     tcell.ColorDefault,
			HeaderBg:        tcell.ColorDefault,
			DocText:         tcell.ColorDefault,
			DocHeading:      tcell.ColorDefault,
			DocCode:         tcell.ColorDefault,
			TocText:         tcell.ColorDefault,
			TocActiveText:   tcell.ColorDefault,
			TocFilterHit:    tcell.ColorDefault,
			IndicatorTrack:  tcell.ColorGray,
			IndicatorActive: tcell.ColorAqua,
			FilterLabel:     tcell.ColorDefault,
			FilterText:      tcell.ColorDefault,
			FilterCursor:    tcell.ColorDefault,
			FilterCount:     tcell.ColorDefault,
			HelpBackground:  tcell.ColorDefault,
			HelpBorder:      tcell.ColorDefault,
			HelpTitle:       tcell.ColorDefault,
			HelpContent:     tcell.ColorDefault,
			StatusMode:      tcell.ColorDefault,
			StatusMessage:   tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:      HexToColor("#1a1b26"), // Dark background
			HeaderTitle:     HexToColor("#bb9af7"), // Magenta
			HeaderBg:        HexToColor("#1a1b26"), // Dark background
			DocText:         HexToColor("#c0caf5"), // Light gray-blue
			DocHeading:      HexToColor("#7aa2f7"), // Blue
			DocCode:         HexToColor("#565f89"), // Comment gray
			TocText:         HexToColor("#565f89"), // Comment gray
			TocActiveText:   HexToColor("#c0caf5"), // Light gray-blue
			TocFilterHit:    HexToColor("#9ece6a"), // Green
			IndicatorTrack:  HexToColor("#3b4261"), // Muted track
			IndicatorActive: HexToColor("#7dcfff"), // Cyan
			FilterLabel:     HexToColor("#bb9af7"), // Magenta
			FilterText:      HexToColor("#c0caf5"), // Light gray-blue
			FilterCursor:    HexToColor("#7aa2f7"), // Blue
			FilterCount:     HexToColor("#9ece6a"), // Green
			HelpBackground:  HexToColor("#1a1b26"), // Dark background
			HelpBorder:      HexToColor("#7dcfff"), // Cyan
			HelpTitle:       HexToColor("#bb9af7"), // Magenta
			HelpContent:     HexToColor("#c0caf5"), // Light gray-blue
			StatusMode:      HexToColor("#bb9af7"), // Magenta
			StatusMessage:   HexToColor("#9ece6a"), // Green
		},
	}
}
