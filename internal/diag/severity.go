package diag

// Severity ranks a finding. Layout findings are advisory by nature:
// overflow and convergence exhaustion still produce a document, so most
// codes default to warning or below. Ordered from least to most severe.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// AtLeast reports whether s ranks at or above min.
func (s Severity) AtLeast(min Severity) bool { return s >= min }

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
