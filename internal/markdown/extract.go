// Package markdown extracts the heading catalog from markdown text. Only
// ATX headings are recognized; parsing fidelity beyond that is out of
// scope for the viewer.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/pstuifzand/tui-docview/internal/model"
)

// Load reads a markdown file and builds its document with the extracted
// heading catalog. The title is the first level-1 heading, falling back to
// the file name.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc := Parse(strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"))
	doc.Path = path
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse builds a document from raw lines. Headings inside fenced code
// blocks are ignored. IDs are slugs of the heading text, deduplicated with
// -2, -3 suffixes so they stay unique within the catalog.
func Parse(lines []string) *model.Document {
	doc := &model.Document{Lines: lines}

	seen := make(map[string]int)
	var stack []*model.Heading // current nesting chain, outermost first
	inFence := false
	fenceMarker := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if marker := fenceStart(trimmed); marker != "" {
			if !inFence {
				inFence = true
				fenceMarker = marker
			} else if strings.HasPrefix(trimmed, fenceMarker) {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		level, text := parseATXHeading(trimmed)
		if level == 0 {
			continue
		}

		h := &model.Heading{
			ID:    uniqueID(seen, text),
			Text:  text,
			Level: level,
			Line:  i,
		}

		if doc.Title == "" && level == 1 {
			doc.Title = text
		}

		// Pop the stack until the top is a shallower heading
		for len(stack) > 0 && stack[len(stack)-1].Level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			doc.Headings = append(doc.Headings, h)
		} else {
			stack[len(stack)-1].AddChild(h)
		}
		stack = append(stack, h)
	}

	return doc
}

// parseATXHeading returns the level and text of an ATX heading, or (0, "")
// for any other line
func parseATXHeading(line string) (int, string) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, ""
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, ""
	}
	text := strings.TrimSpace(rest)
	// Strip optional closing hashes
	text = strings.TrimRight(text, "#")
	text = strings.TrimRight(text, " \t")
	if text == "" {
		return 0, ""
	}
	return level, text
}

// fenceStart returns the fence marker when the line opens or closes a
// fenced code block, or ""
func fenceStart(line string) string {
	if strings.HasPrefix(line, "```") {
		return "```"
	}
	if strings.HasPrefix(line, "~~~") {
		return "~~~"
	}
	return ""
}

// uniqueID slugs the heading text and appends a counter suffix on
// collision
func uniqueID(seen map[string]int, text string) string {
	base := slug.Make(text)
	if base == "" {
		base = "section"
	}
	seen[base]++
	if seen[base] == 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, seen[base])
}
