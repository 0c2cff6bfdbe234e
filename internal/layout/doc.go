// Package layout is the realization and layout engine: it walks realized
// content and produces positioned frames.
//
// Pages lays a content tree into page-sized regions and yields the
// Document handed to export collaborators. Fragment lays content into an
// explicitly offered region, which is how nested blocks and intrinsic
// size measurement work. Measure is the library-level entry point for
// "how big would this be": a single unbounded, non-expanding region
// under a detached context, so nothing of the what-if computation leaks
// into the enclosing pass.
//
// Without a font collaborator the engine shapes text on a fixed-pitch
// model: one terminal cell (per go-runewidth) advances half an em. The
// glyph ids it emits are code points; the export contract only requires
// them to be opaque and stable.
package layout
