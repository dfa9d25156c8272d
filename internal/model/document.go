// Package model contains the document and heading catalog for the viewer
package model

// Heading is a single entry in the heading catalog. IDs are unique within
// a document; they are assigned at extraction time and never mutated
// afterwards.
type Heading struct {
	ID       string
	Text     string
	Level    int // 1..6
	Line     int // line index in the document where the heading starts
	Children []*Heading
	Parent   *Heading
}

// Document is one loaded file: its raw lines plus the nested heading
// catalog extracted from them. The catalog is rebuilt wholesale when the
// file is replaced; nothing edits it in place.
type Document struct {
	Title    string
	Path     string
	Lines    []string
	Headings []*Heading
}

// AddChild appends a child heading and sets its parent pointer
func (h *Heading) AddChild(child *Heading) {
	child.Parent = h
	h.Children = append(h.Children, child)
}

// Flatten returns every heading depth-first, which is catalog order: the
// order the headings appear in the document
func (d *Document) Flatten() []*Heading {
	var all []*Heading
	for _, h := range d.Headings {
		all = append(all, flattenHeading(h)...)
	}
	return all
}

func flattenHeading(h *Heading) []*Heading {
	all := []*Heading{h}
	for _, child := range h.Children {
		all = append(all, flattenHeading(child)...)
	}
	return all
}

// HeadingIDs returns the flattened catalog ids in order
func (d *Document) HeadingIDs() []string {
	flat := d.Flatten()
	ids := make([]string, len(flat))
	for i, h := range flat {
		ids[i] = h.ID
	}
	return ids
}

// HeadingByID finds a heading by id, or nil
func (d *Document) HeadingByID(id string) *Heading {
	for _, h := range d.Flatten() {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// SectionEnd returns the line index one past the section belonging to the
// heading at flat index idx: the start line of the next heading in catalog
// order, or the end of the document for the last one. A section spans the
// heading line and everything under it up to the next heading of any level.
func (d *Document) SectionEnd(idx int) int {
	flat := d.Flatten()
	if idx < 0 || idx >= len(flat) {
		return len(d.Lines)
	}
	if idx+1 < len(flat) {
		return flat[idx+1].Line
	}
	return len(d.Lines)
}
