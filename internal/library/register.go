package library

import (
	"folio/internal/model"
	"folio/internal/realize"
)

func init() {
	// Inline primitives: no capabilities, the layout engine places them
	// natively.
	for _, kind := range []model.NodeKind{
		model.KindText,
		model.KindSpace,
		model.KindLinebreak,
		model.KindParbreak,
		model.KindHSpace,
		model.KindVSpace,
		model.KindRepeat,
		model.KindPagebreak,
	} {
		realize.Register(kind, 0, realize.Handlers{})
	}

	realize.Register(model.KindHeading,
		model.Caps(model.CapPrepare, model.CapShow, model.CapLocate),
		realize.Handlers{Prepare: headingPrepare, Show: headingShow})

	realize.Register(model.KindOutline,
		model.Caps(model.CapPrepare, model.CapShow),
		realize.Handlers{Prepare: outlinePrepare, Show: outlineShow})

	realize.Register(model.KindRef,
		model.Caps(model.CapShow),
		realize.Handlers{Show: refShow})

	realize.Register(model.KindHide,
		model.Caps(model.CapShow),
		realize.Handlers{Show: hideShow})

	realize.Register(model.KindBlock,
		model.Caps(model.CapLayout, model.CapMeasure),
		realize.Handlers{Layout: blockLayout})
}
