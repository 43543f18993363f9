package budget

import (
	"math"
	"strings"
	"testing"

	"findash/internal/dataset"
)

func mustDataset(t *testing.T, header []string, rows [][]string) *dataset.Dataset {
	t.Helper()
	d, err := dataset.FromRows(header, rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return d
}

func TestDetectCategories_NamedColumnAnyCase(t *testing.T) {
	d := mustDataset(t,
		[]string{"Amount", "Category"},
		[][]string{{"10", "Food"}, {"20", "Food"}, {"30", "Rent"}},
	)

	got := DetectCategories(d)
	want := []string{"Food", "Rent"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("DetectCategories = %v, want %v", got, want)
	}
}

func TestDetectCategories_FirstTextColumn(t *testing.T) {
	d := mustDataset(t,
		[]string{"Amount", "Type"},
		[][]string{{"10", "A"}, {"20", "B"}, {"30", "A"}},
	)

	got := DetectCategories(d)
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("DetectCategories = %v, want [A B]", got)
	}
}

func TestDetectCategories_NumericOnlyFallsBack(t *testing.T) {
	d := mustDataset(t,
		[]string{"x", "y"},
		[][]string{{"1", "2"}, {"3", "4"}},
	)

	got := DetectCategories(d)
	if len(got) != 5 {
		t.Fatalf("DetectCategories = %v, want the 5 built-in labels", got)
	}
	if got[0] != "Essential Bills" || got[4] != "Shopping" {
		t.Fatalf("fallback labels = %v", got)
	}
}

func TestDetectCategories_EmptyTextColumnIsNotFallback(t *testing.T) {
	// Zero rows with a declared category column: empty set, not the
	// built-in list. The fallback keys on column type, not row count.
	d := mustDataset(t, []string{"Category", "Amount"}, nil)

	got := DetectCategories(d)
	if len(got) != 0 {
		t.Fatalf("DetectCategories = %v, want empty", got)
	}
}

func TestAllocate_UniformShares(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		picks := make([]string, n)
		for i := range picks {
			picks[i] = strings.Repeat("c", i+1)
		}

		alloc := Allocate(picks)
		if len(alloc.Shares) != n {
			t.Fatalf("n=%d: %d shares", n, len(alloc.Shares))
		}

		sum := 0.0
		for _, cat := range picks {
			share := alloc.Shares[cat]
			if math.Abs(share-1.0/float64(n)) > 1e-9 {
				t.Fatalf("n=%d: share for %q = %v, want %v", n, cat, share, 1.0/float64(n))
			}
			sum += share
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("n=%d: shares sum to %v", n, sum)
		}
	}
}

func TestAllocate_Empty(t *testing.T) {
	alloc := Allocate(nil)
	if len(alloc.Shares) != 0 || len(alloc.Order) != 0 {
		t.Fatalf("empty selection produced %+v", alloc)
	}
}

func TestAllocate_PreservesOrder(t *testing.T) {
	alloc := Allocate([]string{"Rent", "Food", "Fun"})
	want := []string{"Rent", "Food", "Fun"}
	for i, cat := range want {
		if alloc.Order[i] != cat {
			t.Fatalf("Order = %v, want %v", alloc.Order, want)
		}
	}
}

func TestRecommend_SavingsDailyFigure(t *testing.T) {
	lines := Recommend("Savings Goal", 900)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "30.00") {
		t.Fatalf("savings line %q does not contain the daily figure 30.00", lines[1])
	}
}

func TestRecommend_KeywordPriority(t *testing.T) {
	tests := []struct {
		category string
		contains string
	}{
		{"Investment", "index funds"},
		{"Utility Bills", "bill payments"},
		{"My SAVINGS", "savings account"},
	}
	for _, tt := range tests {
		lines := Recommend(tt.category, 1000)
		if !strings.Contains(strings.Join(lines, "\n"), tt.contains) {
			t.Fatalf("Recommend(%q) = %v, want a line containing %q", tt.category, lines, tt.contains)
		}
	}
}

func TestRecommend_GenericFallback(t *testing.T) {
	lines := Recommend("Groceries", 1000)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Groceries") {
		t.Fatalf("generic advice %v does not mention the category", lines)
	}
	if !strings.Contains(joined, "groceries expenses") {
		t.Fatalf("generic advice %v missing tracking line", lines)
	}
}
