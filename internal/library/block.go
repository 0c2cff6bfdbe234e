package library

import (
	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/layout"
	"folio/internal/model"
	"folio/internal/realize"
)

// blockLayout lays the body out into the single region offered by the
// caller. A block never repeats regions itself; when the body is too
// tall, the enclosing flow breaks to the next region and retries.
func blockLayout(vt *realize.Vt, node *model.Content, styles model.StyleChain, region geom.Region) (*doc.Frame, error) {
	body, err := realize.FieldContent(node, "body")
	if err != nil {
		return nil, err
	}
	inner := region
	inner.Repeat = false
	frames, err := layout.Fragment(vt, body, styles, inner)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return doc.NewFrame(geom.Size{}), nil
	}
	return frames[0], nil
}
