package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"

	"flint/internal/diag"
)

// CatalogEntry is one diagnostic variant flattened for listings: the code,
// the Go type name, the severity of the primary part, and every message
// template the variant carries (primary first, then notes).
type CatalogEntry struct {
	Code      diag.Code
	Name      string
	Severity  diag.Severity
	Templates []string
}

// Entries flattens the diagnostic catalog, sorted by code.
func Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, diag.TypeCount)
	for _, d := range diag.All() {
		var b diag.MessageBuilder
		d.Message(&b)
		parts := b.Parts()

		entry := CatalogEntry{
			Code:      d.Code(),
			Name:      reflect.TypeOf(d).Name(),
			Severity:  parts[0].Severity,
			Templates: make([]string, len(parts)),
		}
		for i, p := range parts {
			entry.Templates[i] = p.Template
		}
		out = append(out, entry)
	}
	// codes share the E-prefix and a fixed digit width, so ordering by the
	// string orders by number
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// CatalogText writes one aligned line per entry:
//
//	E057  warning  use of undeclared variable: {0}
func CatalogText(w io.Writer, entries []CatalogEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s  %-7s  %s\n", e.Code, e.Severity, e.Templates[0]); err != nil {
			return err
		}
	}
	return nil
}

// CatalogEntryJSON mirrors CatalogEntry with stable field names.
type CatalogEntryJSON struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Severity  string   `json:"severity"`
	Templates []string `json:"templates"`
}

// CatalogJSON writes the catalog as an indented JSON array.
func CatalogJSON(w io.Writer, entries []CatalogEntry) error {
	out := make([]CatalogEntryJSON, len(entries))
	for i, e := range entries {
		out[i] = CatalogEntryJSON{
			Code:      e.Code.String(),
			Name:      e.Name,
			Severity:  e.Severity.String(),
			Templates: e.Templates,
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
