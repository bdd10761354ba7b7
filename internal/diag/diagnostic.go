package diag

import (
	"flint/internal/source"
)

// Note is a secondary message anchored to related code.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one rendered finding: a catalog variant's message recipe
// expanded against a concrete buffer and locale.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
