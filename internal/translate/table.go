// Package translate loads localized message tables and picks the right
// one for a requested locale. Tables are authored as TOML files keyed
// by the untranslated message template; a compiled msgpack bundle
// packs every table into a single file for distribution.
package translate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"flint/internal/diag"
)

// Table holds one locale's translations, keyed by the untranslated
// message template.
type Table struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

var _ diag.Translator = (*Table)(nil)

var (
	// ErrLocaleMissing indicates that a table file has no locale key.
	ErrLocaleMissing = errors.New("missing locale")
	// ErrBadLocale indicates that a table's locale is not a valid BCP 47 tag.
	ErrBadLocale = errors.New("invalid locale tag")
)

// LoadTable parses a translation table from a TOML file.
func LoadTable(path string) (*Table, error) {
	var t Table
	meta, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return checkTable(path, meta, &t)
}

// ParseTable parses a translation table from TOML text. The name only
// labels error messages.
func ParseTable(name string, data []byte) (*Table, error) {
	var t Table
	meta, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return checkTable(name, meta, &t)
}

func checkTable(name string, meta toml.MetaData, t *Table) (*Table, error) {
	if !meta.IsDefined("locale") || t.Locale == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrLocaleMissing)
	}
	if _, err := language.Parse(t.Locale); err != nil {
		return nil, fmt.Errorf("%s: %w: %q", name, ErrBadLocale, t.Locale)
	}
	if t.Messages == nil {
		t.Messages = map[string]string{}
	}
	return t, nil
}

// Translate maps template to its localized form, falling back to the
// template itself when the table has no usable entry.
func (t *Table) Translate(template string) string {
	if t == nil {
		return template
	}
	if tr, ok := t.Messages[template]; ok && tr != "" {
		return tr
	}
	return template
}

// Missing returns the catalog templates the table does not translate,
// sorted.
func (t *Table) Missing() []string {
	var out []string
	for _, tmpl := range diag.AllTemplates() {
		if _, ok := t.Messages[tmpl]; !ok {
			out = append(out, tmpl)
		}
	}
	return out
}

// Stale returns table keys no catalog template uses anymore, sorted.
// They usually mean the English wording changed without the table
// being updated.
func (t *Table) Stale() []string {
	known := make(map[string]struct{})
	for _, tmpl := range diag.AllTemplates() {
		known[tmpl] = struct{}{}
	}
	var out []string
	for key := range t.Messages {
		if _, ok := known[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
