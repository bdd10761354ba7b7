package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Catalog is a set of translation tables with locale matching on top.
type Catalog struct {
	tables  []*Table
	tags    []language.Tag
	matcher language.Matcher
}

// NewCatalog builds a catalog over tables. Table order decides matcher
// priority when several locales fit a request equally well.
func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{
		tables: make([]*Table, 0, len(tables)),
		tags:   make([]language.Tag, 0, len(tables)),
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		tag, err := language.Parse(t.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLocale, t.Locale)
		}
		c.tables = append(c.tables, t)
		c.tags = append(c.tags, tag)
	}
	if len(c.tags) > 0 {
		c.matcher = language.NewMatcher(c.tags)
	}
	return c, nil
}

// NormalizeLocale converts a POSIX-style locale name such as
// "de_DE.UTF-8@euro" into a BCP 47 candidate ("de-DE"). Encoding and
// modifier suffixes are dropped.
func NormalizeLocale(name string) string {
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}

// Find returns the best table for the requested locale name, or nil
// when no loaded locale matches. "de_DE.UTF-8" degrades to "de-DE",
// then to "de"; an unmatched request leaves messages untranslated
// rather than failing.
func (c *Catalog) Find(requested string) *Table {
	if c == nil || c.matcher == nil || requested == "" {
		return nil
	}
	tag, err := language.Parse(NormalizeLocale(requested))
	if err != nil {
		return nil
	}
	_, index, conf := c.matcher.Match(tag)
	if conf == language.No {
		return nil
	}
	return c.tables[index]
}

// Locales lists the loaded locale names, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.tables))
	for i, t := range c.tables {
		out[i] = t.Locale
	}
	sort.Strings(out)
	return out
}

// Len returns the number of loaded tables.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tables)
}

// Tables returns the loaded tables in catalog order. The slice aliases
// internal storage; callers must not modify it.
func (c *Catalog) Tables() []*Table {
	if c == nil {
		return nil
	}
	return c.tables
}

// LoadDir loads every *.toml table under dir concurrently and builds a
// catalog from them, ordered by file name.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return NewCatalog()
	}

	tables := make([]*Table, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(paths)))
	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				t, err := LoadTable(path)
				if err != nil {
					return err
				}
				tables[i] = t
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewCatalog(tables...)
}
