package library

import (
	"folio/internal/geom"
	"folio/internal/model"
)

// Text creates a text node.
func Text(s string) *model.Content {
	return model.New(model.KindText, model.Field{Name: "text", Value: model.Str(s)})
}

// Space creates a soft word gap.
func Space() *model.Content {
	return model.New(model.KindSpace)
}

// Linebreak forces the current line to end.
func Linebreak() *model.Content {
	return model.New(model.KindLinebreak)
}

// Parbreak ends the current paragraph.
func Parbreak() *model.Content {
	return model.New(model.KindParbreak)
}

// Pagebreak forces a new page.
func Pagebreak() *model.Content {
	return model.New(model.KindPagebreak)
}

// H inserts fixed horizontal spacing.
func H(amount geom.Abs) *model.Content {
	return model.New(model.KindHSpace, model.Field{Name: "amount", Value: model.Length(amount)})
}

// V inserts fixed vertical spacing.
func V(amount geom.Abs) *model.Content {
	return model.New(model.KindVSpace, model.Field{Name: "amount", Value: model.Length(amount)})
}

// Repeat fills the remaining line space by repeating its body, as in
// outline leader dots.
func Repeat(body *model.Content) *model.Content {
	return model.New(model.KindRepeat, model.Field{Name: "body", Value: model.ContentValue(body)})
}

// Hide lays its body out invisibly: it occupies space but paints
// nothing.
func Hide(body *model.Content) *model.Content {
	return model.New(model.KindHide, model.Field{Name: "body", Value: model.ContentValue(body)})
}

// Block wraps content into its own vertical block.
func Block(body *model.Content) *model.Content {
	return model.New(model.KindBlock, model.Field{Name: "body", Value: model.ContentValue(body)})
}

// Heading creates a section heading of the given 1-based level.
func Heading(level int, title *model.Content) *model.Content {
	return model.New(model.KindHeading,
		model.Field{Name: "level", Value: model.Int(int64(level))},
		model.Field{Name: "title", Value: model.ContentValue(title)},
		model.Field{Name: "outlined", Value: model.Bool(true)},
	)
}

// Labeled attaches a cross-reference label to a node.
func Labeled(c *model.Content, label string) *model.Content {
	return c.WithField("label", model.Str(label))
}

// Outline creates a table-of-contents node; its title, depth, indent
// and fill are style properties on the "outline" kind.
func Outline() *model.Content {
	return model.New(model.KindOutline)
}

// Ref creates a page-number cross reference to the heading labeled
// target.
func Ref(target string) *model.Content {
	return model.New(model.KindRef, model.Field{Name: "target", Value: model.Str(target)})
}

// Par builds a paragraph from running text.
func Par(text string) *model.Content {
	return model.Sequence(Parbreak(), Text(text), Parbreak())
}
