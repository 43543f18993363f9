package ingest

import (
	"errors"
	"testing"

	"github.com/ledongthuc/pdf"

	"findash/internal/dataset"
)

func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestSplitRowCells_GapsSeparateCells(t *testing.T) {
	row := []pdf.Text{
		word("Essential", 10, 40),
		word("Bills", 54, 20), // 4pt gap: same cell
		word("1200", 140, 25), // wide gap: new cell
		word("USD", 200, 20),
	}

	cells := splitRowCells(row)
	want := []string{"Essential Bills", "1200", "USD"}
	if len(cells) != len(want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cells[%d] = %q, want %q", i, cells[i], want[i])
		}
	}
}

func TestSplitRowCells_SingleWord(t *testing.T) {
	cells := splitRowCells([]pdf.Text{word("Summary", 10, 50)})
	if len(cells) != 1 || cells[0] != "Summary" {
		t.Fatalf("cells = %v, want [Summary]", cells)
	}
}

func TestSplitRowCells_Empty(t *testing.T) {
	if cells := splitRowCells(nil); cells != nil {
		t.Fatalf("cells = %v, want nil", cells)
	}
}

func TestAssembleTable_NoTableRows(t *testing.T) {
	_, err := assembleTable("empty.pdf", nil)
	if !errors.Is(err, ErrNoTablesFound) {
		t.Fatalf("err = %v, want ErrNoTablesFound", err)
	}
}

func TestAssembleTable_SchemaMismatch(t *testing.T) {
	rows := []tableRow{
		{page: 1, cells: []string{"Category", "Amount", "Date"}},
		{page: 1, cells: []string{"Food", "12.50", "2024-01-02"}},
		{page: 2, cells: []string{"Rent", "900"}},
	}

	_, err := assembleTable("statement.pdf", rows)
	var sme *SchemaMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("err = %v, want *SchemaMismatchError", err)
	}
	if sme.Page != 2 || sme.Expected != 3 || sme.Actual != 2 {
		t.Fatalf("mismatch = %+v, want page 2, 3 vs 2 columns", sme)
	}
}

func TestAssembleTable_RepeatedHeaderDropped(t *testing.T) {
	rows := []tableRow{
		{page: 1, cells: []string{"Category", "Amount"}},
		{page: 1, cells: []string{"Food", "12.50"}},
		{page: 2, cells: []string{"Category", "Amount"}},
		{page: 2, cells: []string{"Rent", "900"}},
	}

	ds, err := assembleTable("statement.pdf", rows)
	if err != nil {
		t.Fatalf("assembleTable: %v", err)
	}
	if ds.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2 (repeated header kept as data?)", ds.RowCount())
	}
	if ds.Column("Amount").Kind != dataset.KindNumeric {
		t.Fatal("Amount column lost numeric typing")
	}
}

func TestSameCells(t *testing.T) {
	if !sameCells([]string{"a", "b"}, []string{"a", "b"}) {
		t.Fatal("identical cell rows reported different")
	}
	if sameCells([]string{"a", "b"}, []string{"a", "c"}) {
		t.Fatal("different cell rows reported identical")
	}
	if sameCells([]string{"a"}, []string{"a", "b"}) {
		t.Fatal("different-width rows reported identical")
	}
}
