package introspect

import (
	"fmt"

	"folio/internal/doc"
	"folio/internal/geom"
	"folio/internal/model"
)

// Match is one result of a locate query.
type Match struct {
	Loc  model.Location
	Node *model.Content
}

// Position is a resolved layout fact about a Location.
type Position struct {
	// Page is 1-based; 0 means unresolved.
	Page  int
	Point geom.Point
}

// UnresolvedLocationError reports a Location that the pass which produced
// this introspector never observed. Callers issuing forward references
// must tolerate it and substitute a placeholder fact.
type UnresolvedLocationError struct {
	Loc model.Location
}

func (e *UnresolvedLocationError) Error() string {
	return fmt.Sprintf("introspect: unresolved location %s", e.Loc)
}

type entry struct {
	loc  model.Location
	node *model.Content
	pos  Position
}

// Introspector indexes the located content of one finished pass. It is
// immutable after construction and safe for concurrent reads.
type Introspector struct {
	// entries in document order: page, then paint order within the page.
	entries []entry
	byLoc   map[model.Location]int
}

// New builds an introspector from finished pages. Pass nil for the empty
// index used by the first layout attempt.
func New(pages []*doc.Frame) *Introspector {
	ix := &Introspector{byLoc: make(map[model.Location]int)}
	for i, page := range pages {
		ix.walk(page, i+1, geom.Point{})
	}
	return ix
}

func (ix *Introspector) walk(f *doc.Frame, page int, offset geom.Point) {
	for _, p := range f.Elements() {
		switch e := p.Elem.(type) {
		case *doc.GroupElem:
			ix.walk(e.Frame, page, offset.Add(p.Pos))
		case *doc.MetaElem:
			if e.Loc.IsDetached() {
				continue
			}
			if _, dup := ix.byLoc[e.Loc]; dup {
				continue
			}
			ix.byLoc[e.Loc] = len(ix.entries)
			ix.entries = append(ix.entries, entry{
				loc:  e.Loc,
				node: e.Node,
				pos:  Position{Page: page, Point: offset.Add(p.Pos)},
			})
		}
	}
}

// Len returns the number of indexed locations.
func (ix *Introspector) Len() int {
	return len(ix.entries)
}

// Locate returns all indexed nodes matching the selector, in document
// order.
func (ix *Introspector) Locate(sel model.Selector) []Match {
	var matches []Match
	for _, e := range ix.entries {
		if sel.Matches(e.node) {
			matches = append(matches, Match{Loc: e.loc, Node: e.node})
		}
	}
	return matches
}

// Position resolves a location to the page and point where it was
// observed.
func (ix *Introspector) Position(loc model.Location) (Position, error) {
	i, ok := ix.byLoc[loc]
	if !ok {
		return Position{}, &UnresolvedLocationError{Loc: loc}
	}
	return ix.entries[i].pos, nil
}

// All returns every indexed match in document order.
func (ix *Introspector) All() []Match {
	matches := make([]Match, len(ix.entries))
	for i, e := range ix.entries {
		matches[i] = Match{Loc: e.loc, Node: e.node}
	}
	return matches
}

// Valid reports whether this introspector would answer every query in
// the constraint identically to the answers recorded there.
func (ix *Introspector) Valid(c *Constraint) bool {
	return c.compatible(ix)
}
