// Package introspect answers "where did this content end up" questions
// over a completed layout pass.
//
// The Introspector is a read-only index built once per pass from the
// produced document's frames. The Constraint logs every query a pass
// issued together with the answer it got; a later pass has reached a
// fixed point exactly when an Introspector built from its output would
// answer the whole log identically. The StabilityProvider assigns the
// stable Locations that make those answers comparable across passes.
package introspect
