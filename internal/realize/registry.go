package realize

import (
	"fmt"
	"sync"

	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
)

// PrepareFunc enriches a node with derived fields before it is shown or
// laid out. Runs once per node encounter, top-down, before Show.
type PrepareFunc func(vt *Vt, node *model.Content, styles model.StyleChain) (*model.Content, error)

// ShowFunc expands a semantic node into lower-level content. It must be
// a pure function of the node, the resolved styles and the introspection
// answers it consults; its result is memoized on exactly those inputs.
type ShowFunc func(vt *Vt, node *model.Content, styles model.StyleChain) (*model.Content, error)

// LayoutFunc produces final geometry for a node in one offered region.
type LayoutFunc func(vt *Vt, node *model.Content, styles model.StyleChain, region geom.Region) (*doc.Frame, error)

// Handlers bundles the capability implementations of one node kind.
// A handler must be present exactly for the capabilities the kind
// declares (CapMeasure rides on the Layout handler).
type Handlers struct {
	Prepare PrepareFunc
	Show    ShowFunc
	Layout  LayoutFunc
}

var (
	regMu    sync.RWMutex
	handlers = map[model.NodeKind]Handlers{}
)

// Register declares a node kind with its capability set and handlers.
// It also registers the kind with the model's kind table, so library
// packages call only this. Intended for package init; panics on
// mismatched handler/capability combinations.
func Register(kind model.NodeKind, caps model.CapabilitySet, h Handlers) {
	if caps.Has(model.CapPrepare) != (h.Prepare != nil) {
		panic(fmt.Sprintf("realize: kind %q prepare handler does not match capability set", kind))
	}
	if caps.Has(model.CapShow) != (h.Show != nil) {
		panic(fmt.Sprintf("realize: kind %q show handler does not match capability set", kind))
	}
	if (caps.Has(model.CapLayout) || caps.Has(model.CapMeasure)) != (h.Layout != nil) {
		panic(fmt.Sprintf("realize: kind %q layout handler does not match capability set", kind))
	}
	model.RegisterKind(kind, caps)
	regMu.Lock()
	handlers[kind] = h
	regMu.Unlock()
}

func lookup(kind model.NodeKind) Handlers {
	regMu.RLock()
	defer regMu.RUnlock()
	return handlers[kind]
}

// Prepare dispatches the Prepare capability.
func Prepare(vt *Vt, node *model.Content, styles model.StyleChain) (*model.Content, error) {
	if !node.Caps().Has(model.CapPrepare) {
		return nil, &CapabilityError{Kind: node.Kind(), Cap: model.CapPrepare}
	}
	return lookup(node.Kind()).Prepare(vt, node, styles)
}

// Show dispatches the Show capability through the memo cache.
func Show(vt *Vt, node *model.Content, styles model.StyleChain) (*model.Content, error) {
	if !node.Caps().Has(model.CapShow) {
		return nil, &CapabilityError{Kind: node.Kind(), Cap: model.CapShow}
	}
	return showMemoized(vt, node, styles)
}

// Layout dispatches the Layout capability.
func Layout(vt *Vt, node *model.Content, styles model.StyleChain, region geom.Region) (*doc.Frame, error) {
	if !node.Caps().Has(model.CapLayout) {
		return nil, &CapabilityError{Kind: node.Kind(), Cap: model.CapLayout}
	}
	return lookup(node.Kind()).Layout(vt, node, styles, region)
}

// Measure dispatches the Measure capability: the node is laid out into a
// single unbounded, non-expanding region under a detached context and
// only the resulting size survives.
func Measure(vt *Vt, node *model.Content, styles model.StyleChain) (geom.Size, error) {
	if !node.Caps().Has(model.CapMeasure) {
		return geom.Size{}, &CapabilityError{Kind: node.Kind(), Cap: model.CapMeasure}
	}
	frame, err := lookup(node.Kind()).Layout(vt.Detached(), node, styles, geom.UnboundedRegion())
	if err != nil {
		return geom.Size{}, err
	}
	return frame.Size(), nil
}
