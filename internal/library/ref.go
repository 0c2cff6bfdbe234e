package library

import (
	"strconv"

	"folio/internal/model"
	"folio/internal/realize"
)

// refShow resolves a reference against the labeled headings of the
// previous pass. Until the target has been placed its page is the
// placeholder 0, which later passes correct.
func refShow(vt *realize.Vt, node *model.Content, _ model.StyleChain) (*model.Content, error) {
	target, err := realize.FieldStr(node, "target")
	if err != nil {
		return nil, err
	}
	sel := model.SelectKind(model.KindHeading).WithField("label", model.Str(target))
	matches := vt.Locate(sel)
	if len(matches) == 0 {
		return Text("?"), nil
	}
	pos, ok := vt.PositionOf(matches[0].Loc)
	if !ok {
		return Text("p. 0"), nil
	}
	return model.Styled(Text("p. "+strconv.Itoa(pos.Page)), entryLink(pos)), nil
}
