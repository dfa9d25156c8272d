package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pstuifzand/tui-docview/internal/geometry"
	"github.com/pstuifzand/tui-docview/internal/markdown"
	"github.com/pstuifzand/tui-docview/internal/toc"
)

// Renders the table-of-contents indicator for a markdown file as an SVG,
// as it would look with the content scrolled to a given offset. Useful for
// eyeballing the dash math without starting the full viewer.
func main() {
	scroll := flag.Float64("scroll", 0, "Content scroll offset in pixels")
	viewport := flag.Float64("viewport", 800, "Viewport height in pixels")
	lineHeight := flag.Float64("line-height", 20, "Rendered height of one source line")
	linkHeight := flag.Float64("link-height", 28, "Height of one TOC link")
	offset := flag.Float64("offset", toc.DefaultActiveOffset, "Active test offset in pixels")
	threshold := flag.Float64("threshold", toc.DefaultViewportThreshold, "Viewport threshold fraction")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.md>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := markdown.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load document: %v\n", err)
		os.Exit(1)
	}

	headings := doc.Flatten()
	if len(headings) == 0 {
		fmt.Fprintf(os.Stderr, "No headings in %s\n", flag.Arg(0))
		os.Exit(1)
	}

	// Section rects come straight from the line spans: a section runs from
	// its heading line to the next heading line, scaled by line height and
	// shifted by the scroll offset so they are viewport-relative.
	sections := make(map[string]geometry.Rect, len(headings))
	for i, h := range headings {
		sections[h.ID] = geometry.Rect{
			Top:    float64(h.Line)*(*lineHeight) - *scroll,
			Bottom: float64(doc.SectionEnd(i))*(*lineHeight) - *scroll,
		}
	}

	ids := doc.HeadingIDs()
	active := toc.ResolveActive(ids, func(id string) (geometry.Rect, bool) {
		r, ok := sections[id]
		return r, ok
	}, *viewport, toc.ResolveConfig{Offset: *offset, ViewportThreshold: *threshold})

	// One link per heading, stacked top to bottom.
	links := make([]geometry.LinkPosition, len(headings))
	for i, h := range headings {
		links[i] = geometry.LinkPosition{
			ID: h.ID,
			Rect: geometry.Rect{
				Top:    float64(i) * (*linkHeight),
				Bottom: float64(i+1) * (*linkHeight),
			},
		}
	}

	geo := geometry.Calculate(links, active)
	writeSVG(os.Stdout, links, geo)
}

func writeSVG(w *os.File, links []geometry.LinkPosition, geo geometry.PathGeometry) {
	height := links[len(links)-1].Bottom + 10
	path := geometry.VerticalPath(5, links[0].Top, links[len(links)-1].Bottom)

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="%g" viewBox="0 0 10 %g">`+"\n", height, height)
	fmt.Fprintf(w, `  <path d="%s" stroke="#3b4261" stroke-width="2" fill="none"/>`+"\n", path)
	fmt.Fprintf(w, `  <path d="%s" stroke="#7aa2f7" stroke-width="2" fill="none" stroke-dasharray="%s" stroke-dashoffset="%s"/>`+"\n",
		path, geo.DashArray(), geo.DashOffset())
	fmt.Fprintf(w, "</svg>\n")
}
