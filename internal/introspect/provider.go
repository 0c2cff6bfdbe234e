package introspect

import (
	"fmt"

	"fortio.org/safecast"

	"folio/internal/model"
)

// StabilityProvider hands out stable Locations during one layout pass.
// The base id derives from the node's structural hash; structurally equal
// nodes encountered later in the same pass get an incremented
// disambiguator. Because passes traverse the tree in document order, an
// unchanged tree yields identical Locations pass after pass.
//
// A provider belongs to exactly one pass and is not goroutine-safe;
// what-if computations (Measure) use a throwaway provider of their own.
type StabilityProvider struct {
	counters map[uint64]uint32
}

// NewProvider creates a provider with all disambiguators reset.
func NewProvider() *StabilityProvider {
	return &StabilityProvider{counters: make(map[uint64]uint32)}
}

// Identify assigns the next Location for the node. Call once per node
// instance, in document order.
func (p *StabilityProvider) Identify(node *model.Content) model.Location {
	base := node.Digest().Uint64()
	d := p.counters[base]
	next, err := safecast.Conv[uint32](uint64(d) + 1)
	if err != nil {
		// 2^32 equal nodes in one document; give up on stability rather
		// than wrap around into a reused Location.
		panic(fmt.Sprintf("introspect: disambiguator overflow for %s", node.Kind()))
	}
	p.counters[base] = next
	return model.Location{ID: base, Disambiguator: d}
}
