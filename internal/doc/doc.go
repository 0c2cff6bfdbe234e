// Package doc defines the finished-layout artifact: a Document of page
// Frames holding positioned elements. Frames are produced once per layout
// pass, replaced wholesale on the next pass and never mutated after being
// handed off. Export and render collaborators consume exactly these shapes;
// geometry is in abstract length units, text runs are shaped glyph ids with
// advances referencing an opaque font face id.
package doc

// Document is the ordered sequence of laid-out pages.
type Document struct {
	Pages []*Frame
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}
