package library

import (
	"strconv"

	"golang.org/x/text/language"

	"folio/internal/diag"
	"folio/internal/geom"
	"folio/internal/introspect"
	"folio/internal/model"
	"folio/internal/realize"
)

// outlinePrepare attaches the outlined headings discovered so far to the
// node. Besides mirroring them into a queryable field, this makes the
// node's structural hash (and with it the Show memo key) depend on the
// exact heading set, so a cached outline can never survive a change in
// the headings it lists.
func outlinePrepare(vt *realize.Vt, node *model.Content, _ model.StyleChain) (*model.Content, error) {
	var headings []model.Value
	for _, m := range vt.Locate(model.SelectKind(model.KindHeading)) {
		if outlined, ok := m.Node.FieldOr("outlined", model.Bool(false)).AsBool(); !ok || !outlined {
			continue
		}
		headings = append(headings, model.ContentValue(m.Node))
	}
	return node.WithField("headings", model.Array(headings)), nil
}

func outlineShow(vt *realize.Vt, _ *model.Content, styles model.StyleChain) (*model.Content, error) {
	var seq []*model.Content
	seq = append(seq, Parbreak())

	title := styles.GetOr(model.KindOutline, "title", model.Auto())
	if !title.IsNone() {
		var body *model.Content
		switch {
		case title.IsAuto():
			body = Text(localizedOutlineTitle(styles))
		default:
			if s, ok := title.AsStr(); ok {
				body = Text(s)
			} else if c, ok := title.AsContent(); ok {
				body = c
			} else {
				body = Text(localizedOutlineTitle(styles))
			}
		}
		own := Heading(1, body).WithField("outlined", model.Bool(false))
		seq = append(seq, model.Styled(own, model.NewStyleMap(
			model.Set(model.KindHeading, "numbering", model.None()),
		)))
	}

	indent := false
	if v, ok := styles.Get(model.KindOutline, "indent"); ok {
		indent, _ = v.AsBool()
	}
	depth := int64(0)
	if v, ok := styles.Get(model.KindOutline, "depth"); ok && !v.IsNone() {
		d, isInt := v.AsInt()
		if !isInt {
			diag.Report(vt.Reporter, diag.RealizeBadStyle, 0, string(model.KindOutline),
				"outline depth must be an integer, got "+v.String())
		}
		depth = d
	}
	fill := "."
	if v, ok := styles.Get(model.KindOutline, "fill"); ok {
		if v.IsNone() {
			fill = ""
		} else if s, isStr := v.AsStr(); isStr {
			fill = s
		} else {
			diag.Report(vt.Reporter, diag.RealizeBadStyle, 0, string(model.KindOutline),
				"outline fill must be a string or none, got "+v.String())
		}
	}

	entries := 0
	var ancestors []*model.Content
	for _, m := range vt.Locate(model.SelectKind(model.KindHeading)) {
		node := m.Node
		if outlined, ok := node.FieldOr("outlined", model.Bool(false)).AsBool(); !ok || !outlined {
			continue
		}
		level, err := realize.FieldInt(node, "level")
		if err != nil {
			return nil, err
		}
		if depth > 0 && level > depth {
			continue
		}
		for len(ancestors) > 0 {
			lastLevel, _ := realize.FieldInt(ancestors[len(ancestors)-1], "level")
			if lastLevel < level {
				break
			}
			ancestors = ancestors[:len(ancestors)-1]
		}

		pos, ok := vt.PositionOf(m.Loc)
		if !ok {
			pos = introspect.Position{}
		}
		link := entryLink(pos)

		// Hidden ancestor numberings realize the indent.
		if indent {
			var lead string
			for _, a := range ancestors {
				if v, ok := a.Field("numbers"); ok {
					if s, ok := v.AsStr(); ok && s != "" {
						lead += s + " "
					}
				}
			}
			if lead != "" {
				seq = append(seq, Hide(Text(lead)), Space())
			}
		}

		var prefix *model.Content
		if v, ok := node.Field("numbers"); ok {
			if s, ok := v.AsStr(); ok && s != "" {
				prefix = Text(s + " ")
			}
		}
		titleContent, err := realize.FieldContent(node, "title")
		if err != nil {
			return nil, err
		}
		seq = append(seq, model.Styled(model.Sequence(prefix, titleContent), link))

		if fill != "" {
			seq = append(seq, Space(), Repeat(Text(fill)), Space())
		} else {
			seq = append(seq, H(geom.Pt(8)))
		}

		seq = append(seq, model.Styled(Text(strconv.Itoa(pos.Page)), link), Linebreak())
		ancestors = append(ancestors, node)
		entries++
	}
	if entries == 0 {
		diag.Report(vt.Reporter, diag.RealizeEmptyOutline, 0, string(model.KindOutline),
			"outline lists no headings")
	}

	seq = append(seq, Parbreak())
	return model.Sequence(seq...), nil
}

// entryLink builds the link styles for one outline entry, nudging the
// destination a little above the heading so it is fully visible.
func entryLink(pos introspect.Position) *model.StyleMap {
	y := (pos.Point.Y - geom.Pt(10)).Max(geom.Zero)
	dest := model.NewDict().
		Put("page", model.Int(int64(pos.Page))).
		Put("x", model.Length(pos.Point.X)).
		Put("y", model.Length(y))
	return model.NewStyleMap(model.Set(model.KindLink, "dest", model.DictValue(dest)))
}

var outlineTitleMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
})

// localizedOutlineTitle picks the auto title from the (text, lang)
// style so the choice is part of the memoization key, like every other
// styled input.
func localizedOutlineTitle(styles model.StyleChain) string {
	tag := "en"
	if v, ok := styles.Get(model.KindText, "lang"); ok {
		if s, ok := v.AsStr(); ok && s != "" {
			tag = s
		}
	}
	_, idx, _ := outlineTitleMatcher.Match(language.Make(tag))
	if idx == 1 {
		return "Inhaltsverzeichnis"
	}
	return "Contents"
}
