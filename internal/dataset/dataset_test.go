package dataset

import "testing"

func mustDataset(t *testing.T, header []string, rows [][]string) *Dataset {
	t.Helper()
	d, err := FromRows(header, rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return d
}

func TestFromRows_TypesColumns(t *testing.T) {
	d := mustDataset(t,
		[]string{"Category", "Amount", "Note"},
		[][]string{
			{"Food", "12.50", "lunch"},
			{"Rent", "1,200", ""},
			{"Food", "$8.75", "coffee"},
		},
	)

	if got := d.RowCount(); got != 3 {
		t.Fatalf("RowCount = %d, want 3", got)
	}

	amount := d.Column("Amount")
	if amount == nil || amount.Kind != KindNumeric {
		t.Fatalf("Amount column not numeric: %+v", amount)
	}
	if amount.Numbers[1] != 1200 {
		t.Fatalf("Amount[1] = %v, want 1200", amount.Numbers[1])
	}

	if got := d.TextColumns(); len(got) != 2 || got[0] != "Category" {
		t.Fatalf("TextColumns = %v, want [Category Note]", got)
	}
	if got := d.NumericColumns(); len(got) != 1 || got[0] != "Amount" {
		t.Fatalf("NumericColumns = %v, want [Amount]", got)
	}
}

func TestFromRows_RaggedRowRejected(t *testing.T) {
	_, err := FromRows([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	if err == nil {
		t.Fatal("FromRows accepted ragged rows")
	}
}

func TestInferColumn_MixedStaysText(t *testing.T) {
	// Only half the values are numeric, below the 80% threshold.
	col := inferColumn("mixed", []string{"10", "x", "20", "y"})
	if col.Kind != KindText {
		t.Fatalf("mixed column classified %s, want text", col.Kind)
	}
}

func TestInferColumn_NegativeCurrency(t *testing.T) {
	col := inferColumn("delta", []string{"-$5.00", "$3.20", "-1,000"})
	if col.Kind != KindNumeric {
		t.Fatalf("delta column classified %s, want numeric", col.Kind)
	}
	if col.Numbers[0] != -5 || col.Numbers[2] != -1000 {
		t.Fatalf("parsed numbers = %v", col.Numbers)
	}
}

func TestInferColumn_UnparseableValueRecordedAsZero(t *testing.T) {
	// 4 of 5 values parse, clearing the threshold; the stray "n/a" keeps
	// its raw string but contributes 0 to Numbers.
	col := inferColumn("amount", []string{"1", "2", "3", "4", "n/a"})
	if col.Kind != KindNumeric {
		t.Fatalf("amount column classified %s, want numeric", col.Kind)
	}
	if col.Numbers[4] != 0 {
		t.Fatalf("Numbers[4] = %v, want 0", col.Numbers[4])
	}
	if col.Values[4] != "n/a" {
		t.Fatalf("Values[4] = %q, want the raw string", col.Values[4])
	}
}

func TestInferColumn_EmptyValuesIgnored(t *testing.T) {
	col := inferColumn("sparse", []string{"", "42", "", "7"})
	if col.Kind != KindNumeric {
		t.Fatalf("sparse column classified %s, want numeric", col.Kind)
	}
}

func TestRow(t *testing.T) {
	d := mustDataset(t, []string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	row := d.Row(1)
	if row[0] != "3" || row[1] != "4" {
		t.Fatalf("Row(1) = %v, want [3 4]", row)
	}
}
