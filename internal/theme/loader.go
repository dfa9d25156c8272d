package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background      string `toml:"background"`
		HeaderTitle     string `toml:"header_title"`
		HeaderBg        string `toml:"header_bg"`
		DocText         string `toml:"doc_text"`
		DocHeading      string `toml:"doc_heading"`
		DocCode         string `toml:"doc_code"`
		TocText         string `toml:"toc_text"`
		TocActiveText   string `toml:"toc_active_text"`
		TocFilterHit    string `toml:"toc_filter_hit"`
		IndicatorTrack  string `toml:"indicator_track"`
		IndicatorActive string `toml:"indicator_active"`
		FilterLabel     string `toml:"filter_label"`
		FilterText      string `toml:"filter_text"`
		FilterCursor    string `toml:"filter_cursor"`
		FilterCount     string `toml:"filter_count"`
		HelpBackground  string `toml:"help_background"`
		HelpBorder      string `toml:"help_border"`
		HelpTitle       string `toml:"help_title"`
		HelpContent     string `toml:"help_content"`
		StatusMode      string `toml:"status_mode"`
		StatusMessage   string `toml:"status_message"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tui-docview", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "tui-docview", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()

	set := func(dst *tcell.Color, value string) {
		if value != "" {
			*dst = ParseColorString(value)
		}
	}

	set(&t.Colors.Background, config.Colors.Background)
	set(&t.Colors.HeaderTitle, config.Colors.HeaderTitle)
	set(&t.Colors.HeaderBg, config.Colors.HeaderBg)
	set(&t.Colors.DocText, config.Colors.DocText)
	set(&t.Colors.DocHeading, config.Colors.DocHeading)
	set(&t.Colors.DocCode, config.Colors.DocCode)
	set(&t.Colors.TocText, config.Colors.TocText)
	set(&t.Colors.TocActiveText, config.Colors.TocActiveText)
	set(&t.Colors.TocFilterHit, config.Colors.TocFilterHit)
	set(&t.Colors.IndicatorTrack, config.Colors.IndicatorTrack)
	set(&t.Colors.IndicatorActive, config.Colors.IndicatorActive)
	set(&t.Colors.FilterLabel, config.Colors.FilterLabel)
	set(&t.Colors.FilterText, config.Colors.FilterText)
	set(&t.Colors.FilterCursor, config.Colors.FilterCursor)
	set(&t.Colors.FilterCount, config.Colors.FilterCount)
	set(&t.Colors.HelpBackground, config.Colors.HelpBackground)
	set(&t.Colors.HelpBorder, config.Colors.HelpBorder)
	set(&t.Colors.HelpTitle, config.Colors.HelpTitle)
	set(&t.Colors.HelpContent, config.Colors.HelpContent)
	set(&t.Colors.StatusMode, config.Colors.StatusMode)
	set(&t.Colors.StatusMessage, config.Colors.StatusMessage)

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
