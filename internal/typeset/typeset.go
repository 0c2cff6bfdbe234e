// Package typeset drives the layout loop: it lays the document out
// repeatedly, feeding each pass an index over the previous pass's
// output, until the introspection answers the pass depended on stop
// changing or the attempt budget runs out.
package typeset

import (
	"fmt"

	"folio/internal/diag"
	"folio/internal/doc"
	"folio/internal/introspect"
	"folio/internal/layout"
	"folio/internal/model"
	"folio/internal/observ"
	"folio/internal/realize"
	"folio/internal/world"
)

// MaxAttempts bounds the number of layout passes. A document whose
// introspection never settles gets the last attempt's output plus a
// warning instead of an endless loop.
const MaxAttempts = 5

// DefaultDiagnosticCap is the diagnostic bag capacity used when the
// caller does not set one.
const DefaultDiagnosticCap = 64

// Options tunes a typeset run.
type Options struct {
	// MaxDiagnostics caps the number of retained diagnostics. Zero
	// means DefaultDiagnosticCap.
	MaxDiagnostics int
	// Timer, when set, receives one entry per layout attempt. Nil
	// disables timing.
	Timer *observ.Timer
}

// Result is the outcome of a typeset run. Document is always set on a
// nil error, even when the loop was exhausted before converging.
type Result struct {
	Document  *doc.Document
	Diags     *diag.Bag
	Attempts  int
	Converged bool
}

// Typeset lays content out with default options.
func Typeset(w world.World, content *model.Content) (Result, error) {
	return TypesetWith(w, content, Options{})
}

// TypesetWith runs the layout loop. Each attempt starts from a fresh
// stability provider and constraint; the introspector always indexes
// the previous attempt's document (empty on the first). An attempt
// converges when an index over its own output answers every recorded
// introspection read the same way the previous index did.
func TypesetWith(w world.World, content *model.Content, opts Options) (Result, error) {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultDiagnosticCap
	}
	styles := model.NewChain(w.Library().Styles)
	ix := introspect.New(nil)

	var res Result
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		end := opts.Timer.Begin(fmt.Sprintf("attempt %d", attempt))

		bag := diag.NewBag(maxDiags)
		vt := realize.NewVt(w, introspect.NewProvider(), ix, introspect.NewConstraint(), diag.BagReporter{Bag: bag})
		document, err := layout.Pages(vt, content, styles)
		if err != nil {
			end("failed")
			return Result{}, err
		}

		next := introspect.New(document.Pages)
		res = Result{Document: document, Diags: bag, Attempts: attempt}
		if next.Valid(vt.Constraint) {
			res.Converged = true
			end("converged")
			break
		}
		end("")
		ix = next
	}

	if !res.Converged {
		res.Diags.Add(diag.Diagnostic{
			Severity: diag.ConvergenceExhausted.DefaultSeverity(),
			Code:     diag.ConvergenceExhausted,
			Message:  fmt.Sprintf("layout did not stabilize after %d attempts", MaxAttempts),
		}.WithNote("emitting the last attempt's document"))
	}
	res.Diags.Sort()
	res.Diags.Dedup()
	return res, nil
}
