// Package diag defines the diagnostic model shared by all layout phases.
//
// Diagnostics report content-shape findings that do not abort a pass:
// overflowing regions, convergence exhaustion, suspicious style values.
// Structural programmer errors (a capability invoked on a kind that does
// not declare it, malformed value access) are ordinary Go errors instead
// and abort the pass.
//
// Producers emit through a Reporter; the driver aggregates into a Bag,
// which supports capping, sorting and deduplication so output stays
// deterministic. Rendering lives in render.go and is only used by the
// CLI layer.
package diag
