package realize

import (
	"folio/internal/diag"
	"folio/internal/introspect"
	"folio/internal/model"
	"folio/internal/world"
)

// Vt is the context of one layout pass, threaded through every Prepare,
// Show and Layout call. It bundles the opaque world, the stability
// provider, the introspector over the previous pass and the constraint
// recording this pass's introspection reads.
type Vt struct {
	World        world.World
	Provider     *introspect.StabilityProvider
	Introspector *introspect.Introspector
	Constraint   *introspect.Constraint
	Reporter     diag.Reporter

	// counters holds named multi-level counters (heading numbering).
	// Per pass, reset by NewVt.
	counters map[string][]int
}

// NewVt assembles a pass context.
func NewVt(w world.World, provider *introspect.StabilityProvider, ix *introspect.Introspector, c *introspect.Constraint, r diag.Reporter) *Vt {
	if r == nil {
		r = diag.NopReporter{}
	}
	return &Vt{
		World:        w,
		Provider:     provider,
		Introspector: ix,
		Constraint:   c,
		Reporter:     r,
		counters:     make(map[string][]int),
	}
}

// Detached derives a context for what-if computations (Measure): same
// world and introspector, but a throwaway provider, a throwaway
// constraint and a silent reporter, so nothing the computation does is
// visible to the enclosing pass.
func (vt *Vt) Detached() *Vt {
	return NewVt(vt.World, introspect.NewProvider(), vt.Introspector, introspect.NewConstraint(), diag.NopReporter{})
}

// Locate queries the previous pass's index and records the answer into
// the active constraint. Results are in document order.
func (vt *Vt) Locate(sel model.Selector) []introspect.Match {
	matches := vt.Introspector.Locate(sel)
	vt.Constraint.RecordLocate(sel, matches)
	return matches
}

// PageOf resolves a Location to its 1-based page number, recording the
// answer. Unresolved locations (forward references on early passes)
// yield the placeholder page 0.
func (vt *Vt) PageOf(loc model.Location) int {
	pos, ok := vt.PositionOf(loc)
	if !ok {
		return 0
	}
	return pos.Page
}

// PositionOf resolves a Location to page and point, recording the
// answer. ok is false for locations the previous pass never observed.
func (vt *Vt) PositionOf(loc model.Location) (introspect.Position, bool) {
	pos, err := vt.Introspector.Position(loc)
	resolved := err == nil
	vt.Constraint.RecordPosition(loc, pos, resolved)
	if !resolved {
		return introspect.Position{}, false
	}
	return pos, true
}

// Identify assigns the node its stable Location for this pass.
func (vt *Vt) Identify(node *model.Content) model.Location {
	return vt.Provider.Identify(node)
}

// Bump increments a named counter at the given 1-based level, truncating
// deeper levels, and returns the resulting counter state. Used for
// heading numbering during Prepare.
func (vt *Vt) Bump(name string, level int) []int {
	if level < 1 {
		level = 1
	}
	state := vt.counters[name]
	for len(state) < level {
		state = append(state, 0)
	}
	state = state[:level]
	state[level-1]++
	vt.counters[name] = state
	out := make([]int, len(state))
	copy(out, state)
	return out
}
