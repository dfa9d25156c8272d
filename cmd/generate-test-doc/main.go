package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	numSections := flag.Int("sections", 40, "Number of sections to generate")
	paragraphs := flag.Int("paragraphs", 4, "Paragraphs per section")
	depth := flag.Int("depth", 3, "Maximum heading depth")
	output := flag.String("output", "large_test.md", "Output file path")
	flag.Parse()

	if *numSections < 1 {
		fmt.Fprintf(os.Stderr, "sections must be at least 1\n")
		os.Exit(1)
	}
	if *depth < 1 || *depth > 6 {
		fmt.Fprintf(os.Stderr, "depth must be between 1 and 6\n")
		os.Exit(1)
	}

	content := generateDocument(*numSections, *paragraphs, *depth)

	// Ensure directory exists
	dir := filepath.Dir(*output)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create directory: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*output, []byte(content), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated document with %d sections\n", *numSections)
	fmt.Printf("Saved to: %s\n", *output)
	fmt.Printf("File size: %.2f KB\n", float64(len(content))/1024)
}

func generateDocument(sections, paragraphs, maxDepth int) string {
	var sb strings.Builder

	sb.WriteString("# Generated Test Document\n\n")
	sb.WriteString("A scrolling test fixture with many sections of varying depth.\n\n")

	for i := 0; i < sections; i++ {
		// Cycle heading depth 2..maxDepth so the TOC shows nesting
		level := 2
		if maxDepth > 2 {
			level = 2 + i%(maxDepth-1)
		}

		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(fmt.Sprintf(" %s %d\n\n", sectionTitle(i), i+1))

		for p := 0; p < paragraphs; p++ {
			sb.WriteString(paragraphText(i + p))
			sb.WriteString("\n\n")
		}

		// Sprinkle in a code block now and then
		if i%7 == 3 {
			sb.WriteString("```\n")
			sb.WriteString(fmt.Sprintf("example := compute(%d)\n", i))
			sb.WriteString("# not a heading\n")
			sb.WriteString("```\n\n")
		}
	}

	return sb.String()
}

func sectionTitle(index int) string {
	titles := []string{
		"Overview", "Getting Started", "Configuration", "Architecture",
		"Performance", "Caching", "Error Handling", "Logging",
		"Testing", "Deployment", "Monitoring", "Security",
	}
	return titles[index%len(titles)]
}

func paragraphText(index int) string {
	sentences := []string{
		"The viewer keeps the table of contents in sync with the visible sections.",
		"Scrolling through this section moves the progress indicator along the sidebar.",
		"Each section spans from its heading to the start of the next heading.",
		"Long documents exercise the sidebar's own scroll window and the snap behavior at both ends.",
		"Short sections make several headings active at once.",
		"Fast scrolling temporarily disables the indicator transition animation.",
	}
	return sentences[index%len(sentences)]
}
