package realize

import (
	"folio/internal/model"
)

// Item is one element of the realized flow: a primitive node together
// with its effective style chain. When Loc is assigned, the layout
// engine records the node at its final position for introspection; a
// Marker item carries only that record and no content of its own.
type Item struct {
	Node   *model.Content
	Styles model.StyleChain
	Loc    model.Location
	Marker bool
}

// Flow realizes content into the flat, document-order item list the
// layout engine consumes. Styled wrappers extend the chain for their
// subtree; Prepare runs before Show at every node encounter; Show
// output is realized recursively.
func Flow(vt *Vt, content *model.Content, styles model.StyleChain) ([]Item, error) {
	var out []Item
	if err := flowInto(vt, content, styles, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flowInto(vt *Vt, node *model.Content, styles model.StyleChain, out *[]Item) error {
	if node == nil {
		return nil
	}
	switch {
	case node.IsSequence():
		for _, child := range node.Children() {
			if err := flowInto(vt, child, styles, out); err != nil {
				return err
			}
		}
		return nil
	case node.IsStyled():
		child, m, ok := node.StyledParts()
		if !ok {
			return &BadFieldError{Kind: node.Kind(), Field: "child", Want: model.ValContent}
		}
		return flowInto(vt, child, styles.Extend(m), out)
	}

	caps := node.Caps()
	current := node
	if caps.Has(model.CapPrepare) {
		prepared, err := Prepare(vt, current, styles)
		if err != nil {
			return err
		}
		current = prepared
	}

	loc := model.Detached
	if caps.Has(model.CapLocate) {
		loc = vt.Identify(current)
	}

	if caps.Has(model.CapShow) {
		if !loc.IsDetached() {
			*out = append(*out, Item{Node: current, Styles: styles, Loc: loc, Marker: true})
		}
		shown, err := Show(vt, current, styles)
		if err != nil {
			return err
		}
		return flowInto(vt, shown, styles, out)
	}

	*out = append(*out, Item{Node: current, Styles: styles, Loc: loc})
	return nil
}
