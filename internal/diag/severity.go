package diag

// Severity defines the importance of a diagnostic or of one message part.
type Severity uint8

const (
	// SevNote is for secondary parts that point at related code.
	SevNote Severity = iota
	// SevWarning is for findings that do not prevent further analysis.
	SevWarning
	SevError
)

// String returns the label used in rendered output.
func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
