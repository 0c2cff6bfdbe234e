package diag

// Note attaches secondary context to a diagnostic.
type Note struct {
	Msg string
}

// Diagnostic is one finding of a layout pass. Page 0 means the finding
// concerns the document as a whole; NodeKind may be empty when no single
// node is responsible.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Page     int
	NodeKind string
	Notes    []Note
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Msg: msg})
	return d
}
