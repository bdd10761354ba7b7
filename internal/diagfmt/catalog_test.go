package diagfmt

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"flint/internal/diag"
)

func TestEntriesCoverCatalog(t *testing.T) {
	entries := Entries()

	if len(entries) != diag.TypeCount {
		t.Fatalf("Entries() returned %d entries, want %d", len(entries), diag.TypeCount)
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code }) {
		t.Error("Entries() is not sorted by code")
	}
	if entries[0].Code != "E001" {
		t.Errorf("First entry code = %s, want E001", entries[0].Code)
	}
	if entries[len(entries)-1].Code != "E201" {
		t.Errorf("Last entry code = %s, want E201", entries[len(entries)-1].Code)
	}

	byCode := make(map[diag.Code]CatalogEntry, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e
	}

	e040 := byCode["E040"]
	if e040.Name != "UnclosedStringLiteral" {
		t.Errorf("E040 name = %s, want UnclosedStringLiteral", e040.Name)
	}
	if e040.Severity != diag.SevError {
		t.Errorf("E040 severity = %s, want error", e040.Severity)
	}
	if len(e040.Templates) != 1 || e040.Templates[0] != "unclosed string literal" {
		t.Errorf("E040 templates = %q", e040.Templates)
	}

	if e034 := byCode["E034"]; len(e034.Templates) != 2 {
		t.Errorf("E034 templates = %q, want primary plus note", e034.Templates)
	}
	if e057 := byCode["E057"]; e057.Severity != diag.SevWarning {
		t.Errorf("E057 severity = %s, want warning", e057.Severity)
	}
}

func TestCatalogText(t *testing.T) {
	var buf bytes.Buffer
	if err := CatalogText(&buf, Entries()); err != nil {
		t.Fatalf("CatalogText() error: %v", err)
	}
	output := buf.String()

	if got := strings.Count(output, "\n"); got != diag.TypeCount {
		t.Errorf("Expected %d lines, got %d", diag.TypeCount, got)
	}
	if !strings.Contains(output, "E040  error    unclosed string literal\n") {
		t.Errorf("Expected aligned E040 line, got:\n%s", output)
	}
	if !strings.Contains(output, "E057  warning  use of undeclared variable: {0}\n") {
		t.Errorf("Expected aligned E057 line, got:\n%s", output)
	}
}

func TestCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := CatalogJSON(&buf, Entries()); err != nil {
		t.Fatalf("CatalogJSON() error: %v", err)
	}

	var out []CatalogEntryJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(out) != diag.TypeCount {
		t.Fatalf("Expected %d entries, got %d", diag.TypeCount, len(out))
	}
	if out[0].Code != "E001" || out[0].Severity != "error" {
		t.Errorf("Unexpected first entry: %+v", out[0])
	}
}
