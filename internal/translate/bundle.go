package translate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when bundlePayload format changes
const bundleSchemaVersion uint16 = 1

// ErrBundleSchema indicates a bundle written by an incompatible version.
var ErrBundleSchema = errors.New("unsupported bundle schema")

// bundlePayload is the on-disk form of a compiled locale bundle. Keys
// and values are parallel slices in sorted key order so that compiling
// the same catalog twice produces identical bytes.
type bundlePayload struct {
	Schema  uint16
	Locales []bundleLocale
}

type bundleLocale struct {
	Locale string
	Keys   []string
	Values []string
}

// WriteBundle compiles the catalog's tables into a single msgpack file
// at path. The file is written atomically via a temp file rename.
func WriteBundle(path string, c *Catalog) error {
	payload := bundlePayload{
		Schema:  bundleSchemaVersion,
		Locales: make([]bundleLocale, 0, c.Len()),
	}
	for _, t := range c.Tables() {
		keys := make([]string, 0, len(t.Messages))
		for k := range t.Messages {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = t.Messages[k]
		}
		payload.Locales = append(payload.Locales, bundleLocale{
			Locale: t.Locale,
			Keys:   keys,
			Values: values,
		})
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", removeErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadBundle loads a compiled bundle and rebuilds the catalog from it.
func ReadBundle(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	var payload bundlePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: failed to decode bundle: %w", path, err)
	}
	if payload.Schema != bundleSchemaVersion {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", path, ErrBundleSchema, payload.Schema, bundleSchemaVersion)
	}

	tables := make([]*Table, 0, len(payload.Locales))
	for _, loc := range payload.Locales {
		if len(loc.Keys) != len(loc.Values) {
			return nil, fmt.Errorf("%s: locale %q has %d keys but %d values", path, loc.Locale, len(loc.Keys), len(loc.Values))
		}
		msgs := make(map[string]string, len(loc.Keys))
		for i, k := range loc.Keys {
			msgs[k] = loc.Values[i]
		}
		tables = append(tables, &Table{Locale: loc.Locale, Messages: msgs})
	}
	return NewCatalog(tables...)
}
