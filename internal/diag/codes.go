package diag

import "fmt"

type Code uint16

const (
	// Unknown bucket for diagnostics without a dedicated code.
	UnknownCode Code = 0

	// Layout pass findings.
	LayoutOverflow Code = 1001

	// Fixed-point driver findings.
	ConvergenceExhausted Code = 2001

	// Realization findings.
	RealizeUnknownKind  Code = 3001
	RealizeBadStyle     Code = 3002
	RealizeEmptyOutline Code = 3003
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "FL0000"
	default:
		return fmt.Sprintf("FL%04d", uint16(c))
	}
}

// DefaultSeverity returns the severity a code is normally reported at.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case LayoutOverflow:
		return SevWarning
	case ConvergenceExhausted:
		return SevWarning
	case RealizeUnknownKind, RealizeBadStyle:
		return SevError
	default:
		return SevInfo
	}
}
