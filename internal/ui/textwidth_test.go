package ui

import (
	"testing"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		// ASCII
		{"ASCII letter", 'A', 1},
		{"ASCII space", ' ', 1},

		// Wide characters
		{"Chinese character", '中', 2},
		{"Japanese hiragana", 'あ', 2},

		// Combining marks
		{"Combining acute", '́', 0},
		{"Zero width joiner", '‍', 0},

		// Box drawing used by the indicator gutter
		{"Heavy vertical", '┃', 1},
		{"Light vertical", '│', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneWidth(tt.r)
			if got != tt.expected {
				t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.expected)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ASCII only", "Hello", 5},
		{"Empty", "", 0},
		{"Mixed", "Go語", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringWidth(tt.input)
			if got != tt.expected {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"Fits", "Hello", 10, "Hello"},
		{"Exact", "Hello", 5, "Hello"},
		{"Truncated", "Hello World", 5, "Hello"},
		{"Zero width", "Hello", 0, ""},
		{"Wide char boundary", "a中b", 2, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateToWidth(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("TruncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestTruncateToWidthWithEllipsis(t *testing.T) {
	if got := TruncateToWidthWithEllipsis("Hello", 10); got != "Hello" {
		t.Errorf("Expected untouched string, got %q", got)
	}
	if got := TruncateToWidthWithEllipsis("Hello World", 8); got != "Hello..." {
		t.Errorf("Expected 'Hello...', got %q", got)
	}
	if got := TruncateToWidthWithEllipsis("Hello", 3); got != "Hel" {
		t.Errorf("Expected plain truncation for tiny width, got %q", got)
	}
}

func TestPadStringToWidth(t *testing.T) {
	if got := PadStringToWidth("ab", 5); got != "ab   " {
		t.Errorf("Expected 'ab   ', got %q", got)
	}
	if got := PadStringToWidth("abcdef", 3); got != "abcdef" {
		t.Errorf("Expected no truncation when already wider, got %q", got)
	}
}
