package model

import (
	"testing"
)

// buildDocument assembles a small nested catalog by hand:
//
//	intro (line 0)
//	  setup (line 3)
//	    config (line 6)
//	usage (line 10)
func buildDocument() *Document {
	intro := &Heading{ID: "intro", Text: "Intro", Level: 1, Line: 0}
	setup := &Heading{ID: "setup", Text: "Setup", Level: 2, Line: 3}
	config := &Heading{ID: "config", Text: "Config", Level: 3, Line: 6}
	usage := &Heading{ID: "usage", Text: "Usage", Level: 1, Line: 10}

	intro.AddChild(setup)
	setup.AddChild(config)

	lines := make([]string, 15)
	return &Document{
		Title:    "Intro",
		Lines:    lines,
		Headings: []*Heading{intro, usage},
	}
}

func TestFlattenDepthFirst(t *testing.T) {
	doc := buildDocument()

	flat := doc.Flatten()
	if len(flat) != 4 {
		t.Fatalf("Expected 4 headings, got %d", len(flat))
	}

	expected := []string{"intro", "setup", "config", "usage"}
	for i, id := range expected {
		if flat[i].ID != id {
			t.Errorf("Expected %q at index %d, got %q", id, i, flat[i].ID)
		}
	}
}

func TestHeadingIDs(t *testing.T) {
	doc := buildDocument()

	ids := doc.HeadingIDs()
	if len(ids) != 4 {
		t.Fatalf("Expected 4 ids, got %d", len(ids))
	}
	if ids[2] != "config" {
		t.Errorf("Expected 'config' at index 2, got %q", ids[2])
	}
}

func TestHeadingByID(t *testing.T) {
	doc := buildDocument()

	h := doc.HeadingByID("setup")
	if h == nil {
		t.Fatal("Expected to find 'setup'")
	}
	if h.Text != "Setup" {
		t.Errorf("Expected text 'Setup', got %q", h.Text)
	}

	if doc.HeadingByID("missing") != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestAddChildSetsParent(t *testing.T) {
	parent := &Heading{ID: "p", Level: 1}
	child := &Heading{ID: "c", Level: 2}

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Parent pointer not set")
	}
	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}
}

func TestSectionEnd(t *testing.T) {
	doc := buildDocument()

	// Each section runs to the next heading's line, across nesting levels
	cases := []struct {
		idx      int
		expected int
	}{
		{0, 3},  // intro ends where setup starts
		{1, 6},  // setup ends where config starts
		{2, 10}, // config ends where usage starts
		{3, 15}, // usage runs to the end of the document
	}
	for _, c := range cases {
		if got := doc.SectionEnd(c.idx); got != c.expected {
			t.Errorf("SectionEnd(%d): expected %d, got %d", c.idx, c.expected, got)
		}
	}
}

func TestSectionEndOutOfRange(t *testing.T) {
	doc := buildDocument()

	if got := doc.SectionEnd(-1); got != 15 {
		t.Errorf("Expected document end for negative index, got %d", got)
	}
	if got := doc.SectionEnd(99); got != 15 {
		t.Errorf("Expected document end for out-of-range index, got %d", got)
	}
}
