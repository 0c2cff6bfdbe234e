package layout

import (
	"github.com/mattn/go-runewidth"

	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
)

// cellWidth is the advance of one terminal cell at the given text size.
// Half an em approximates the pitch of common monospaced faces.
func cellWidth(size geom.Abs) geom.Abs {
	return size / 2
}

// textWidth measures a string at the given size.
func textWidth(s string, size geom.Abs) geom.Abs {
	return geom.Abs(float64(cellWidth(size)) * float64(runewidth.StringWidth(s)))
}

// shape turns a string into a glyph run. Glyph ids are code points;
// advances follow the fixed-pitch model.
func shape(s string, size geom.Abs, fill geom.Color) *doc.TextElem {
	cell := cellWidth(size)
	glyphs := make([]doc.Glyph, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, doc.Glyph{
			ID:      uint32(r),
			Advance: geom.Abs(float64(cell) * float64(runewidth.RuneWidth(r))),
		})
	}
	return &doc.TextElem{
		Face:   doc.DefaultFace,
		Size:   size,
		Fill:   fill,
		Glyphs: glyphs,
	}
}

// collectText flattens the text content of a subtree, for leader fills
// whose body must reduce to a repeatable string.
func collectText(c *model.Content) string {
	if c == nil {
		return ""
	}
	switch {
	case c.IsSequence():
		var out string
		for _, child := range c.Children() {
			out += collectText(child)
		}
		return out
	case c.IsStyled():
		child, _, ok := c.StyledParts()
		if !ok {
			return ""
		}
		return collectText(child)
	case c.Kind() == model.KindText:
		if v, ok := c.Field("text"); ok {
			if s, ok := v.AsStr(); ok {
				return s
			}
		}
		return ""
	case c.Kind() == model.KindSpace:
		return " "
	default:
		return ""
	}
}
