package layout

import (
	"folio/internal/diag"
	"folio/internal/geom"
	"folio/internal/introspect"
	"folio/internal/model"
	"folio/internal/realize"
	"folio/internal/world"
)

// Measure returns the intrinsic size of content under the given styles:
// the content is laid into a single unbounded, non-expanding region and
// only the resulting extent is kept. A zero style chain resolves against
// the world's library defaults.
//
// The computation runs under a detached context with a throwaway
// stability provider and constraint, so measuring is invisible to any
// enclosing layout pass.
func Measure(w world.World, content *model.Content, styles model.StyleChain) (geom.Size, error) {
	if styles == (model.StyleChain{}) {
		styles = model.NewChain(w.Library().Styles)
	}
	vt := realize.NewVt(w, introspect.NewProvider(), introspect.New(nil), introspect.NewConstraint(), diag.NopReporter{})
	return MeasureWith(vt, content, styles)
}

// MeasureWith measures under an existing pass context; the context is
// detached first so the pass's bookkeeping stays untouched.
func MeasureWith(vt *realize.Vt, content *model.Content, styles model.StyleChain) (geom.Size, error) {
	frames, err := Fragment(vt.Detached(), content, styles, geom.UnboundedRegion())
	if err != nil {
		return geom.Size{}, err
	}
	var size geom.Size
	for _, f := range frames {
		size.W = size.W.Max(f.Size().W)
		size.H += f.Size().H
	}
	return size, nil
}
