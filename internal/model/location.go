package model

import "fmt"

// Location is a stable per-instance identity assigned to a content node
// during a layout pass. It is a plain value: comparable, hashable and
// totally ordered, so it can key the introspection index and iterate
// deterministically.
//
// Locations are produced only by the stability provider. Equal nodes at
// equal document positions receive equal Locations across passes; within
// one pass no Location is assigned twice.
type Location struct {
	// ID derives from the structural hash of the identified node.
	ID uint64
	// Disambiguator separates structurally equal nodes within one pass,
	// counted in document order.
	Disambiguator uint32
}

// Detached is the zero Location, assigned to nothing.
var Detached = Location{}

// IsDetached reports whether the location identifies nothing.
func (l Location) IsDetached() bool { return l == Detached }

// Less imposes the total order used for deterministic iteration.
func (l Location) Less(other Location) bool {
	if l.ID != other.ID {
		return l.ID < other.ID
	}
	return l.Disambiguator < other.Disambiguator
}

func (l Location) String() string {
	return fmt.Sprintf("loc(%016x/%d)", l.ID, l.Disambiguator)
}
