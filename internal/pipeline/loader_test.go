package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"findash/internal/ingest"
	"findash/internal/store"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_WithoutCache(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.csv", "a,b\n1,2\n3,4\n")

	res, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.FromCache {
		t.Fatal("FromCache = true with no cache")
	}
	if res.Dataset.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", res.Dataset.RowCount())
	}
}

func TestLoad_SecondLoadHitsCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.csv", "a,b\n1,2\n")

	cache, err := store.Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer cache.Close()

	first, err := Load(path, cache)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if first.FromCache {
		t.Fatal("first load reported cache hit")
	}

	second, err := Load(path, cache)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second load missed cache")
	}
	if second.Dataset.RowCount() != 1 {
		t.Fatalf("cached RowCount = %d, want 1", second.Dataset.RowCount())
	}
}

func TestLoad_ModifiedFileReparses(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.csv", "a,b\n1,2\n")

	cache, err := store.Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer cache.Close()

	if _, err := Load(path, cache); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	writeFile(t, dir, "in.csv", "a,b\n1,2\n3,4\n5,6\n")

	res, err := Load(path, cache)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Dataset.RowCount() != 3 {
		t.Fatalf("RowCount after modify = %d, want 3", res.Dataset.RowCount())
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "report.txt", "not a table")

	_, err := Load(path, nil)
	if !errors.Is(err, ingest.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
