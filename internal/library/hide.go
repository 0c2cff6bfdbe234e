package library

import (
	"folio/internal/model"
	"folio/internal/realize"
)

// hideShow keeps the body in the layout (it still occupies space) but
// marks its text invisible for rendering.
func hideShow(_ *realize.Vt, node *model.Content, _ model.StyleChain) (*model.Content, error) {
	body, err := realize.FieldContent(node, "body")
	if err != nil {
		return nil, err
	}
	return model.Styled(body, model.NewStyleMap(
		model.Set(model.KindText, "hidden", model.Bool(true)),
	)), nil
}
