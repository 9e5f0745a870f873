package hvac_sizing

import "fmt"

// DiagnosticKind classifies a non-fatal condition raised during sizing.
type DiagnosticKind int

const (
	DiagNonConvergence DiagnosticKind = iota
	DiagUnsupportedEquipment
	DiagClamped
)

func (k DiagnosticKind) String() string {
	return [...]string{"non_convergence", "unsupported_equipment", "clamped"}[k]
}

// Diagnostic is a warning attached to a unit's result.
type Diagnostic struct {
	Kind    DiagnosticKind
	Source  string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s: %s", d.Kind, d.Source, d.Message)
}

func newDiagnostic(kind DiagnosticKind, source string, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Source:  source,
		Message: fmt.Sprintf(format, args...),
	}
}
