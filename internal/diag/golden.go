package diag

import (
	"fmt"
	"sort"
	"strings"

	"flint/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGolden renders diagnostics into a stable one-line-per-entry
// representation suitable for golden files:
//
//	<severity> <code> <path>:<line>:<col> <message>
//
// Entries are sorted deterministically, messages are collapsed to a
// single line, and notes are included as their own entries when
// includeNotes is set.
func FormatGolden(diags []Diagnostic, f *source.File, includeNotes bool) string {
	if f == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		loc := f.Resolve(d.Primary.Start)
		rendered = append(rendered, goldenDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Line:     loc.Line,
			Column:   loc.Col,
			Message:  sanitizeMessage(d.Message),
		})
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			nloc := f.Resolve(note.Span.Start)
			rendered = append(rendered, goldenDiagnostic{
				Severity: SevNote.String(),
				Code:     d.Code.String(),
				Line:     nloc.Line,
				Column:   nloc.Col,
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, f.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
