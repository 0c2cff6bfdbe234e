// Package model defines the content and style data model of the layout core.
//
// # Purpose
//
//   - Content: immutable tagged nodes with named fields, shared by reference,
//     forming trees (sequences of content are themselves content).
//   - Value: the closed sum type stored in node fields and style maps.
//   - StyleChain: persistent cascading property overrides, innermost first.
//   - Location: the stable per-instance identity assigned during layout and
//     used for cross-referencing.
//   - Selector: restricted node predicates (kind plus field equality) used by
//     introspection queries.
//
// Everything in this package is immutable once constructed and carries a
// structural sha256 digest, so content, values and style chains can serve as
// memoization keys and compare in constant time.
//
// Behavior lives elsewhere: node kinds register their capability sets here
// (kind.go), but the handlers for those capabilities are registered with
// internal/realize and implemented in internal/library.
package model
