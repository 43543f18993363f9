package store

import (
	"path/filepath"
	"testing"

	"findash/internal/dataset"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "datasets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRows(
		[]string{"Category", "Amount"},
		[][]string{{"Food", "12.5"}, {"Rent", "900"}},
	)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return ds
}

func TestCache_RoundTrip(t *testing.T) {
	c := openTestCache(t)
	ds := testDataset(t)

	if err := c.Put("/tmp/in.csv", 100, 42, ds); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, hit, err := c.Get("/tmp/in.csv", 100, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.RowCount() != 2 || len(got.Columns) != 2 {
		t.Fatalf("cached dataset %dx%d, want 2x2", got.RowCount(), len(got.Columns))
	}
	amount := got.Column("Amount")
	if amount.Kind != dataset.KindNumeric || amount.Numbers[1] != 900 {
		t.Fatalf("Amount column not restored: %+v", amount)
	}
}

func TestCache_StaleFileMisses(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("/tmp/in.csv", 100, 42, testDataset(t)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, hit, _ := c.Get("/tmp/in.csv", 101, 42); hit {
		t.Fatal("hit on changed mtime")
	}
	if _, hit, _ := c.Get("/tmp/in.csv", 100, 43); hit {
		t.Fatal("hit on changed size")
	}
	if _, hit, _ := c.Get("/tmp/other.csv", 100, 42); hit {
		t.Fatal("hit on unknown path")
	}
}

func TestCache_Evict(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("/tmp/in.csv", 100, 42, testDataset(t)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Evict("/tmp/in.csv"); err != nil {
		t.Fatalf("Evict: %v", err)
	}
	if _, hit, _ := c.Get("/tmp/in.csv", 100, 42); hit {
		t.Fatal("hit after evict")
	}
}
