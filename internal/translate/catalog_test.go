package translate

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"flint/internal/diag"
)

func TestLoadTable(t *testing.T) {
	tbl, err := LoadTable(filepath.Join("testdata", "locales", "de.toml"))
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if tbl.Locale != "de" {
		t.Errorf("Locale = %q, want %q", tbl.Locale, "de")
	}
	if got := tbl.Translate("unclosed string literal"); got != "nicht geschlossenes String-Literal" {
		t.Errorf("Translate() = %q", got)
	}
	if got := tbl.Translate("no such template"); got != "no such template" {
		t.Errorf("Translate() fallback = %q, want the template itself", got)
	}
}

func TestLoadTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing locale", filepath.Join("testdata", "bad", "nolocale.toml"), ErrLocaleMissing},
		{"invalid tag", filepath.Join("testdata", "bad", "badtag.toml"), ErrBadLocale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadTable() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	data := []byte("locale = \"es\"\n\n[messages]\n\"unexpected token\" = \"token inesperado\"\n")
	tbl, err := ParseTable("<stdin>", data)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if tbl.Locale != "es" {
		t.Errorf("Locale = %q, want %q", tbl.Locale, "es")
	}
	if got := tbl.Translate("unexpected token"); got != "token inesperado" {
		t.Errorf("Translate() = %q", got)
	}

	_, err = ParseTable("<stdin>", []byte("[messages]\n"))
	if !errors.Is(err, ErrLocaleMissing) {
		t.Errorf("ParseTable() without locale: error = %v, want %v", err, ErrLocaleMissing)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de_DE.UTF-8@euro", "de-DE"},
		{"de_DE.UTF-8", "de-DE"},
		{"de_DE@euro", "de-DE"},
		{"en_US", "en-US"},
		{"fr", "fr"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLocale(tt.in); got != tt.want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalog_Find(t *testing.T) {
	catalog, err := LoadDir(context.Background(), filepath.Join("testdata", "locales"))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if got, want := catalog.Locales(), []string{"de", "fr"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}

	tests := []struct {
		name      string
		requested string
		want      string // locale of the matched table; empty for no match
	}{
		{"exact", "de", "de"},
		{"posix name", "de_DE.UTF-8", "de"},
		{"posix modifier", "de_DE@euro", "de"},
		{"territory degrades to language", "fr-CA", "fr"},
		{"unknown language", "zz", ""},
		{"garbage", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := catalog.Find(tt.requested)
			switch {
			case tt.want == "" && tbl != nil:
				t.Errorf("Find(%q) = %q, want no match", tt.requested, tbl.Locale)
			case tt.want != "" && tbl == nil:
				t.Errorf("Find(%q) = nil, want %q", tt.requested, tt.want)
			case tt.want != "" && tbl.Locale != tt.want:
				t.Errorf("Find(%q) = %q, want %q", tt.requested, tbl.Locale, tt.want)
			}
		})
	}
}

func TestCatalog_FindOnEmptyCatalog(t *testing.T) {
	catalog, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	if tbl := catalog.Find("de"); tbl != nil {
		t.Errorf("Find() on empty catalog = %q, want nil", tbl.Locale)
	}
}

func TestTable_MissingAndStale(t *testing.T) {
	tbl := &Table{
		Locale: "de",
		Messages: map[string]string{
			"unclosed string literal": "nicht geschlossenes String-Literal",
			"totally retired wording": "veraltet",
		},
	}

	missing := tbl.Missing()
	all := diag.AllTemplates()
	if len(missing) != len(all)-1 {
		t.Errorf("Missing() has %d entries, want %d", len(missing), len(all)-1)
	}
	for _, tmpl := range missing {
		if tmpl == "unclosed string literal" {
			t.Error("Missing() contains a translated template")
		}
	}

	if got := tbl.Stale(); len(got) != 1 || got[0] != "totally retired wording" {
		t.Errorf("Stale() = %v, want the one retired key", got)
	}
}
