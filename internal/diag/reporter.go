package diag

// Reporter is the minimal contract for phases that emit diagnostics.
// Implementations: BagReporter (stores into a Bag), NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores reported diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// NopReporter discards everything; used by what-if computations whose
// findings must not leak into the enclosing pass.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Report is a shortcut building a diagnostic at the code's default
// severity.
func Report(r Reporter, code Code, page int, nodeKind, msg string) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{
		Severity: code.DefaultSeverity(),
		Code:     code,
		Message:  msg,
		Page:     page,
		NodeKind: nodeKind,
	})
}
