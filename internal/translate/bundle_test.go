package translate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestBundleRoundTrip(t *testing.T) {
	src, err := LoadDir(context.Background(), filepath.Join("testdata", "locales"))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "flint.locales")
	if err := WriteBundle(path, src); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}

	got, err := ReadBundle(path)
	if err != nil {
		t.Fatalf("ReadBundle() error = %v", err)
	}
	if !reflect.DeepEqual(got.Locales(), src.Locales()) {
		t.Errorf("Locales() after round trip = %v, want %v", got.Locales(), src.Locales())
	}

	tbl := got.Find("de")
	if tbl == nil {
		t.Fatal("Find(de) = nil after round trip")
	}
	if tr := tbl.Translate("unclosed string literal"); tr != "nicht geschlossenes String-Literal" {
		t.Errorf("Translate() after round trip = %q", tr)
	}
}

func TestWriteBundle_Deterministic(t *testing.T) {
	src, err := LoadDir(context.Background(), filepath.Join("testdata", "locales"))
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "first.locales")
	second := filepath.Join(dir, "second.locales")
	if err := WriteBundle(first, src); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}
	if err := WriteBundle(second, src); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}

	b1, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b1, b2) {
		t.Error("bundle bytes differ between identical writes")
	}
}

func TestReadBundle_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.locales")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := msgpack.NewEncoder(f).Encode(&bundlePayload{Schema: 99}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadBundle(path); !errors.Is(err, ErrBundleSchema) {
		t.Errorf("ReadBundle() error = %v, want %v", err, ErrBundleSchema)
	}
}

func TestReadBundle_MissingFile(t *testing.T) {
	if _, err := ReadBundle(filepath.Join(t.TempDir(), "nope.locales")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadBundle() error = %v, want not-exist", err)
	}
}
