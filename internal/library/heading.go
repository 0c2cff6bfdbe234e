package library

import (
	"folio/internal/geom"
	"folio/internal/model"
	"folio/internal/realize"
)

// Scale factors for heading text relative to the body size, by level.
var headingScale = []float64{1.6, 1.35, 1.15}

// headingPrepare assigns the heading its number according to the active
// numbering pattern. Headings styled with numbering none (the outline's
// own title) neither receive numbers nor advance the counters.
func headingPrepare(vt *realize.Vt, node *model.Content, styles model.StyleChain) (*model.Content, error) {
	level, err := realize.FieldInt(node, "level")
	if err != nil {
		return nil, err
	}
	pattern, ok := styles.Get(model.KindHeading, "numbering")
	if !ok {
		return node, nil
	}
	s, isStr := pattern.AsStr()
	if !isStr || s == "" {
		return node, nil
	}
	nums := vt.Bump("heading", int(level))
	return node.WithField("numbers", model.Str(formatNumbering(s, nums))), nil
}

func headingShow(vt *realize.Vt, node *model.Content, styles model.StyleChain) (*model.Content, error) {
	level, err := realize.FieldInt(node, "level")
	if err != nil {
		return nil, err
	}
	title, err := realize.FieldContent(node, "title")
	if err != nil {
		return nil, err
	}

	scale := 1.1
	if idx := int(level) - 1; idx >= 0 && idx < len(headingScale) {
		scale = headingScale[idx]
	}
	base := geom.Pt(11)
	if v, ok := styles.Get(model.KindText, "size"); ok {
		if a, ok := v.AsLength(); ok {
			base = a
		}
	}
	m := model.NewStyleMap(
		model.Set(model.KindText, "size", model.Length(geom.Abs(float64(base)*scale))),
	)

	var prefix *model.Content
	if v, ok := node.Field("numbers"); ok {
		if numbers, ok := v.AsStr(); ok && numbers != "" {
			prefix = Text(numbers + " ")
		}
	}

	inner := model.Sequence(prefix, title)
	return model.Sequence(Parbreak(), model.Styled(inner, m), Parbreak()), nil
}
