// Package realize turns semantic content into layoutable content.
//
// It owns the per-kind behavior table: node kinds register handler
// functions for the Prepare, Show, Layout and Measure capabilities, and
// generic dispatch invokes them polymorphically over a node's declared
// capability set. Invoking a capability a kind does not declare is a
// programming error surfaced as CapabilityError.
//
// The Vt is the context threaded through one layout pass: the world, the
// stability provider handing out Locations, the introspector answering
// queries about the previous pass, and the constraint logging every
// answer for the fixed-point check.
//
// Flow performs the realization walk itself: styled wrappers extend the
// style chain, Prepare runs top-down before Show, Show expansions are
// realized recursively, and the result is the flat document-order list
// of primitive items the layout engine consumes. Show results are
// memoized on (content digest, style digest) with their introspection
// read-set; a hit replays only if every read still answers identically.
package realize
