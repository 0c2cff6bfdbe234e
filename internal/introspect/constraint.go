package introspect

import (
	"folio/internal/model"
)

type locateRecord struct {
	sel    model.Selector
	result model.Digest
}

type factRecord struct {
	loc      model.Location
	resolved bool
	pos      Position
}

// Constraint accumulates, for one pass, every introspection query issued
// and the answer it produced. It is an append-only log owned by a single
// pass; the driver checks it against the introspector rebuilt from that
// pass's output to detect the fixed point.
type Constraint struct {
	locates []locateRecord
	facts   []factRecord
}

// NewConstraint creates an empty log.
func NewConstraint() *Constraint {
	return &Constraint{}
}

// RecordLocate logs a selector query and its result set.
func (c *Constraint) RecordLocate(sel model.Selector, matches []Match) {
	c.locates = append(c.locates, locateRecord{
		sel:    sel,
		result: digestMatches(matches),
	})
}

// RecordPosition logs a location resolution, successful or not.
func (c *Constraint) RecordPosition(loc model.Location, pos Position, resolved bool) {
	c.facts = append(c.facts, factRecord{loc: loc, resolved: resolved, pos: pos})
}

// Append merges another log into this one, preserving order. Used when a
// memoized computation replays its recorded reads into the active pass.
func (c *Constraint) Append(other *Constraint) {
	c.locates = append(c.locates, other.locates...)
	c.facts = append(c.facts, other.facts...)
}

// Len returns the number of recorded queries.
func (c *Constraint) Len() int {
	return len(c.locates) + len(c.facts)
}

// compatible re-evaluates every recorded query against ix.
func (c *Constraint) compatible(ix *Introspector) bool {
	for _, rec := range c.locates {
		if digestMatches(ix.Locate(rec.sel)) != rec.result {
			return false
		}
	}
	for _, rec := range c.facts {
		pos, err := ix.Position(rec.loc)
		if (err == nil) != rec.resolved {
			return false
		}
		if err != nil {
			continue
		}
		if pos.Page != rec.pos.Page {
			return false
		}
		if !pos.Point.X.ApproxEq(rec.pos.Point.X) || !pos.Point.Y.ApproxEq(rec.pos.Point.Y) {
			return false
		}
	}
	return true
}

func digestMatches(matches []Match) model.Digest {
	parts := make([]model.Digest, 0, 2*len(matches))
	for _, m := range matches {
		var locPart model.Digest
		// Fold the location into a digest-shaped value; the exact encoding
		// only needs to be stable and injective per (ID, Disambiguator).
		for i := 0; i < 8; i++ {
			locPart[i] = byte(m.Loc.ID >> (8 * i))
		}
		for i := 0; i < 4; i++ {
			locPart[8+i] = byte(m.Loc.Disambiguator >> (8 * i))
		}
		parts = append(parts, locPart, m.Node.Digest())
	}
	return model.CombineDigests(parts...)
}
