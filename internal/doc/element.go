package doc

import (
	"folio/internal/geom"
	"folio/internal/model"
)

// FaceID is an opaque font face handle resolved by the external font
// collaborator.
type FaceID uint32

// DefaultFace is the face used when the world offers no font selection.
const DefaultFace FaceID = 0

// Element is one drawable or semantic item inside a frame.
type Element interface {
	isElement()
}

// Glyph is one shaped glyph of a text run.
type Glyph struct {
	// ID is the glyph id within the face. Without a shaping collaborator
	// the engine uses the rune's code point.
	ID uint32
	// Advance is the horizontal advance after this glyph.
	Advance geom.Abs
	// Offset shifts the glyph from the pen position.
	Offset geom.Point
}

// TextElem is a shaped text run.
type TextElem struct {
	Face   FaceID
	Size   geom.Abs
	Fill   geom.Color
	Glyphs []Glyph
}

// Width returns the sum of the glyph advances.
func (t *TextElem) Width() geom.Abs {
	var w geom.Abs
	for _, g := range t.Glyphs {
		w += g.Advance
	}
	return w
}

// Text reconstructs the source text from glyph ids; debug helper only.
func (t *TextElem) Text() string {
	runes := make([]rune, len(t.Glyphs))
	for i, g := range t.Glyphs {
		runes[i] = rune(g.ID)
	}
	return string(runes)
}

// ShapeElem is a filled rectangle.
type ShapeElem struct {
	Size geom.Size
	Fill geom.Color
}

// GroupElem nests a frame inside another frame.
type GroupElem struct {
	Frame *Frame
}

// Destination is the target of an internal link, resolved to a page and a
// point on that page.
type Destination struct {
	Page  int
	Point geom.Point
}

// LinkElem marks a clickable region over the given extent.
type LinkElem struct {
	Size geom.Size
	Dest Destination
}

// MetaElem is an invisible marker recording that a located content node
// was realized at this position. The introspector is built from these.
type MetaElem struct {
	Node *model.Content
	Loc  model.Location
}

func (*TextElem) isElement()  {}
func (*ShapeElem) isElement() {}
func (*GroupElem) isElement() {}
func (*LinkElem) isElement()  {}
func (*MetaElem) isElement()  {}
