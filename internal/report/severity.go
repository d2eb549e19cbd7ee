package report

import "fmt"

// Severity indicates how a finding affects the overall verdict.
type Severity int

const (
	// SeverityHidden drops the finding entirely.
	SeverityHidden Severity = iota
	// SeverityInfo records the finding without affecting the verdict.
	SeverityInfo
	// SeverityWarning records the finding without affecting the verdict.
	SeverityWarning
	// SeverityError is the fatal tier: any recorded error finding marks the
	// comparison as having found problems.
	SeverityError
)

// String returns the lowercase rendering used in output lines.
func (s Severity) String() string {
	switch s {
	case SeverityHidden:
		return "hidden"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity converts a config string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "hidden":
		return SeverityHidden, nil
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityHidden, fmt.Errorf("unknown severity %q (want hidden, info, warning or error)", s)
}
